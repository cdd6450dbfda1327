package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/studiowebux/editpad/internal/debounce"
	"github.com/studiowebux/editpad/internal/keybinds"
	"github.com/studiowebux/editpad/internal/session"
	"go.uber.org/zap"
)

// DefaultSaveDelay is used when Options.SaveDelay is not set
const DefaultSaveDelay = 500 * time.Millisecond

// Options configures a Model
type Options struct {
	Controller  *session.Controller
	Preferences Preferences
	Keybinds    *keybinds.Registry
	Logger      *zap.Logger

	// Clock drives the save debounce; SystemClock when nil
	Clock     debounce.Clock
	SaveDelay time.Duration

	ExportDir string
	Mouse     bool

	// Clipboard writes text to the system clipboard; atotto/clipboard
	// when nil
	Clipboard func(string) error
}

// New creates a new TUI model. opts.Controller is required and must already
// be initialized; it is attached to the editor on the first window size
// message.
func New(opts Options) *Model {
	m := &Model{
		ctrl:      opts.Controller,
		prefs:     opts.Preferences,
		keybinds:  opts.Keybinds,
		logger:    opts.Logger,
		clock:     opts.Clock,
		exportDir: opts.ExportDir,
		clipboard: opts.Clipboard,
		mouse:     opts.Mouse,
		mode:      ModeEditor,
		rename:    NewRenameState(),
		switcher:  NewSwitcherState(),
		helpView:  viewport.New(80, 20),
		modalView: viewport.New(80, 20), // For scrollable modals
	}
	if m.keybinds == nil {
		m.keybinds = keybinds.NewDefaultRegistry()
	}
	if m.logger == nil {
		m.logger = zap.NewNop()
	}
	if m.clock == nil {
		m.clock = debounce.SystemClock{}
	}
	if m.clipboard == nil {
		m.clipboard = clipboard.WriteAll
	}
	delay := opts.SaveDelay
	if delay <= 0 {
		delay = DefaultSaveDelay
	}

	m.editor = newEditor(fmt.Sprintf(
		"Enter or paste your text here. To download and save it, press %s.",
		m.keybinds.GetBindingString(keybinds.ContextEditor, keybinds.ActionExportTab),
	))
	m.surface = newEditorSurface(&m.editor)
	m.history = NewHistory(UndoLimit, UndoMergeWindow)

	// The timer goroutine never touches the session; it asks the event loop
	// to capture instead
	m.saver = debounce.New(delay, func() { m.post(saveDueMsg{}) }, debounce.WithClock(m.clock))

	m.ctrl.Subscribe(func(e session.Event) {
		switch e.Kind {
		case session.EventActiveChanged:
			// the switch flushed the previous tab already
			m.saver.Cancel()
			m.history.Reset()
		case session.EventReady:
			m.history.Reset()
		}
	})

	m.initDarkMode()
	return m
}

func newEditor(placeholder string) textarea.Model {
	ta := textarea.New()
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.MaxWidth = 0
	ta.Placeholder = placeholder
	ta.Focus()
	return ta
}

// initDarkMode restores the saved preference, falling back to what the
// terminal reports
func (m *Model) initDarkMode() {
	m.dark = true
	if m.prefs != nil {
		if on, ok := m.prefs.LoadDarkMode(); ok {
			m.dark = on
			lipgloss.SetHasDarkBackground(m.dark)
			return
		}
	}
	m.dark = lipgloss.HasDarkBackground()
}

// Run starts the TUI and blocks until it exits. The active tab is written
// through on the way out.
func Run(m *Model) error {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if m.mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(m, opts...)
	m.send = p.Send

	_, err := p.Run()
	m.shutdown()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
