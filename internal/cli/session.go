// Package cli implements the headless editpad commands on top of the same
// session controller the TUI uses.
package cli

import (
	"fmt"
	"strings"

	"github.com/studiowebux/editpad/internal/idgen"
	"github.com/studiowebux/editpad/internal/session"
	"github.com/studiowebux/editpad/internal/tabs"
	"github.com/studiowebux/editpad/internal/types"
	"go.uber.org/zap"
)

// Session is a controller bound to an in-memory surface
type Session struct {
	ctrl    *session.Controller
	surface *session.BufferSurface
}

// OpenSession loads the persisted tabs from st and attaches a buffer
// surface
func OpenSession(st session.Store, gen idgen.Generator, logger *zap.Logger) *Session {
	ctrl := session.New(tabs.NewRegistry(gen), st, session.WithLogger(logger))
	ctrl.Init()

	surface := session.NewBufferSurface()
	ctrl.Attach(surface)

	return &Session{ctrl: ctrl, surface: surface}
}

// Controller exposes the underlying controller
func (s *Session) Controller() *session.Controller {
	return s.ctrl
}

// Close persists the session
func (s *Session) Close() {
	s.ctrl.Teardown()
}

// Resolve finds a tab by id, then by case-insensitive title. An empty ref
// means the active tab.
func (s *Session) Resolve(ref string) (types.Tab, error) {
	if ref == "" {
		t, ok := s.ctrl.Active()
		if !ok {
			return types.Tab{}, fmt.Errorf("no active tab")
		}
		return t, nil
	}

	if t, ok := s.ctrl.Find(ref); ok {
		return t, nil
	}

	var matches []types.Tab
	for _, t := range s.ctrl.Tabs() {
		if strings.EqualFold(t.DisplayTitle(), ref) {
			matches = append(matches, t)
		}
	}

	switch len(matches) {
	case 0:
		return types.Tab{}, fmt.Errorf("no tab matches %q", ref)
	case 1:
		return matches[0], nil
	default:
		ids := make([]string, len(matches))
		for i, t := range matches {
			ids[i] = t.ID
		}
		return types.Tab{}, fmt.Errorf("%d tabs are titled %q, use an id: %s", len(matches), ref, strings.Join(ids, ", "))
	}
}
