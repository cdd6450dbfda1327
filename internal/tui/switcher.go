package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
	"github.com/studiowebux/editpad/internal/types"
)

// tabTitles adapts a tab slice to fuzzy.Source
type tabTitles []types.Tab

func (t tabTitles) String(i int) string { return t[i].DisplayTitle() }
func (t tabTitles) Len() int { return len(t) }

// SwitcherState is the fuzzy tab finder
type SwitcherState struct {
	query   textinput.Model
	tabs    tabTitles
	matches []fuzzy.Match
	cursor  int
}

// NewSwitcherState creates an empty switcher
func NewSwitcherState() *SwitcherState {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = "tab title"
	ti.CharLimit = 100
	return &SwitcherState{query: ti}
}

// Open loads the tabs, clears the query and selects the active tab
func (s *SwitcherState) Open(tabs []types.Tab, activeID string) tea.Cmd {
	s.tabs = tabTitles(types.CloneTabs(tabs))
	s.query.SetValue("")
	s.filter()
	s.cursor = 0
	for i, match := range s.matches {
		if s.tabs[match.Index].ID == activeID {
			s.cursor = i
			break
		}
	}
	return s.query.Focus()
}

// Close blurs the query field
func (s *SwitcherState) Close() {
	s.query.Blur()
}

// Update forwards a message to the query field and refilters when the
// query changed
func (s *SwitcherState) Update(msg tea.Msg) tea.Cmd {
	before := s.query.Value()
	var cmd tea.Cmd
	s.query, cmd = s.query.Update(msg)
	if s.query.Value() != before {
		s.filter()
		s.cursor = 0
	}
	return cmd
}

// filter ranks tabs by fuzzy score; an empty query keeps registry order
func (s *SwitcherState) filter() {
	q := s.query.Value()
	if q == "" {
		s.matches = make([]fuzzy.Match, len(s.tabs))
		for i := range s.tabs {
			s.matches[i] = fuzzy.Match{Str: s.tabs.String(i), Index: i}
		}
		return
	}
	s.matches = fuzzy.FindFrom(q, s.tabs)
}

// Move shifts the selection by delta, wrapping around
func (s *SwitcherState) Move(delta int) {
	n := len(s.matches)
	if n == 0 {
		return
	}
	s.cursor = ((s.cursor+delta)%n + n) % n
}

// Selected returns the highlighted tab
func (s *SwitcherState) Selected() (types.Tab, bool) {
	if s.cursor < 0 || s.cursor >= len(s.matches) {
		return types.Tab{}, false
	}
	return s.tabs[s.matches[s.cursor].Index], true
}

// Matches returns the current results in rank order
func (s *SwitcherState) Matches() []fuzzy.Match {
	return s.matches
}

// Cursor returns the highlighted result index
func (s *SwitcherState) Cursor() int {
	return s.cursor
}

// QueryView renders the query field
func (s *SwitcherState) QueryView() string {
	return s.query.View()
}
