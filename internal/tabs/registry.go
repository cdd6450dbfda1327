// Package tabs holds the in-memory ordered collection of tabs.
//
// Registry order is the tab-bar order. Every operation preserves it except
// Remove, which only shortens the sequence. The registry is owned by a single
// session and is not safe for concurrent use.
package tabs

import (
	"github.com/studiowebux/editpad/internal/idgen"
	"github.com/studiowebux/editpad/internal/types"
)

// Registry is the ordered tab collection
type Registry struct {
	tabs  []types.Tab
	newID idgen.Generator
}

// NewRegistry creates an empty registry using gen for new ids.
// A nil gen falls back to idgen.Default.
func NewRegistry(gen idgen.Generator) *Registry {
	if gen == nil {
		gen = idgen.Default
	}
	return &Registry{newID: gen}
}

// Load replaces the registry contents with a stored snapshot. Records with an
// empty or repeated id are skipped, empty titles become DefaultTitle.
// Returns the number of records kept.
func (r *Registry) Load(tabs []types.Tab) int {
	seen := make(map[string]bool, len(tabs))
	r.tabs = make([]types.Tab, 0, len(tabs))
	for _, t := range tabs {
		if t.ID == "" || seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		if t.Title == "" {
			t.Title = types.DefaultTitle
		}
		r.tabs = append(r.tabs, t)
	}
	return len(r.tabs)
}

// Create appends a new tab. A non-empty title marks the title as manual.
func (r *Registry) Create(title, content string) types.Tab {
	t := types.Tab{
		ID:      r.uniqueID(),
		Title:   types.DefaultTitle,
		Content: content,
	}
	if title != "" {
		t.Title = NormalizeManualTitle(title)
		t.TitleIsManual = true
	}
	r.tabs = append(r.tabs, t)
	return t
}

// uniqueID asks the generator until it returns an id not already in use
func (r *Registry) uniqueID() string {
	for {
		id := r.newID()
		if id != "" && r.Index(id) < 0 {
			return id
		}
	}
}

// Remove deletes the tab with the given id and reports the index it occupied.
// Unknown ids are a no-op.
func (r *Registry) Remove(id string) (int, bool) {
	idx := r.Index(id)
	if idx < 0 {
		return -1, false
	}
	r.tabs = append(r.tabs[:idx], r.tabs[idx+1:]...)
	return idx, true
}

// Rename sets a manual title on the tab
func (r *Registry) Rename(id, title string) bool {
	return r.Update(id, func(t *types.Tab) {
		t.Title = NormalizeManualTitle(title)
		t.TitleIsManual = true
	})
}

// Update applies fn to the stored record in place
func (r *Registry) Update(id string, fn func(*types.Tab)) bool {
	idx := r.Index(id)
	if idx < 0 {
		return false
	}
	fn(&r.tabs[idx])
	return true
}

// Find returns a copy of the tab with the given id
func (r *Registry) Find(id string) (types.Tab, bool) {
	idx := r.Index(id)
	if idx < 0 {
		return types.Tab{}, false
	}
	return r.tabs[idx], true
}

// Index returns the position of id, or -1
func (r *Registry) Index(id string) int {
	for i := range r.tabs {
		if r.tabs[i].ID == id {
			return i
		}
	}
	return -1
}

// At returns the tab at position i
func (r *Registry) At(i int) (types.Tab, bool) {
	if i < 0 || i >= len(r.tabs) {
		return types.Tab{}, false
	}
	return r.tabs[i], true
}

// Len returns the number of tabs
func (r *Registry) Len() int {
	return len(r.tabs)
}

// All returns a copy of the tabs in order
func (r *Registry) All() []types.Tab {
	return types.CloneTabs(r.tabs)
}
