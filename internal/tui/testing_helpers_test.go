package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/editpad/internal/debounce"
	"github.com/studiowebux/editpad/internal/idgen"
	"github.com/studiowebux/editpad/internal/keybinds"
	"github.com/studiowebux/editpad/internal/session"
	"github.com/studiowebux/editpad/internal/store"
	"github.com/studiowebux/editpad/internal/tabs"
	"github.com/studiowebux/editpad/internal/types"
)

type prefsStub struct {
	on    bool
	ok    bool
	saved []bool
}

func (p *prefsStub) LoadDarkMode() (bool, bool) { return p.on, p.ok }
func (p *prefsStub) SaveDarkMode(on bool) { p.saved = append(p.saved, on) }

// testEnv is a model wired to in-memory storage and a fake clock. Messages
// the model posts to the program are recorded in sent.
type testEnv struct {
	m       *Model
	adapter *store.Adapter
	clock   *debounce.FakeClock
	prefs   *prefsStub
	copied  []string
	sent    []tea.Msg
}

// CreateTestModel creates a ready Model over the given tabs, 80x24
func CreateTestModel(t *testing.T, seed []types.Tab, activeID string) *testEnv {
	t.Helper()

	adapter := store.NewAdapter(store.NewMemory())
	if len(seed) > 0 {
		adapter.SaveTabs(seed)
		adapter.SaveActiveID(activeID)
	}
	ctrl := session.New(tabs.NewRegistry(idgen.Sequence("tab-")), adapter)
	ctrl.Init()

	env := &testEnv{
		adapter: adapter,
		clock:   debounce.NewFakeClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		prefs:   &prefsStub{on: true, ok: true},
	}
	env.m = New(Options{
		Controller:  ctrl,
		Preferences: env.prefs,
		Keybinds:    keybinds.NewDefaultRegistry(),
		Clock:       env.clock,
		SaveDelay:   500 * time.Millisecond,
		ExportDir:   t.TempDir(),
		Clipboard: func(s string) error {
			env.copied = append(env.copied, s)
			return nil
		},
	})
	env.m.send = func(msg tea.Msg) { env.sent = append(env.sent, msg) }

	env.update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return env
}

func abc() []types.Tab {
	return []types.Tab{
		{ID: "A", Title: "alpha", Content: "alpha text"},
		{ID: "B", Title: "bravo", Content: "bravo text"},
		{ID: "C", Title: "charlie", Content: "charlie text"},
	}
}

func (e *testEnv) update(msg tea.Msg) tea.Cmd {
	_, cmd := e.m.Update(msg)
	return cmd
}

func (e *testEnv) key(k tea.KeyType) tea.Cmd {
	return e.update(tea.KeyMsg{Type: k})
}

func (e *testEnv) typeText(s string) {
	for _, r := range s {
		e.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (e *testEnv) click(x, y int) tea.Cmd {
	return e.update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

// deliver feeds posted messages back into the model, as the program would
func (e *testEnv) deliver() {
	sent := e.sent
	e.sent = nil
	for _, msg := range sent {
		e.update(msg)
	}
}

func (e *testEnv) countSent(want tea.Msg) int {
	n := 0
	for _, msg := range e.sent {
		if msg == want {
			n++
		}
	}
	return n
}

func (e *testEnv) stored(t *testing.T, id string) types.Tab {
	t.Helper()
	for _, tab := range e.adapter.LoadTabs() {
		if tab.ID == id {
			return tab
		}
	}
	t.Fatalf("tab %q not in store", id)
	return types.Tab{}
}

// AssertModelField compares a single field of the model
func AssertModelField[T comparable](t *testing.T, fieldName string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", fieldName, got, want)
	}
}
