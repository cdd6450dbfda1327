package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/editpad/internal/debounce"
	"github.com/studiowebux/editpad/internal/keybinds"
	"github.com/studiowebux/editpad/internal/session"
	"go.uber.org/zap"
)

// Mode represents the current TUI mode
type Mode int

const (
	ModeEditor Mode = iota
	ModeRename
	ModeConfirmClose
	ModeSwitcher
	ModeHelp
)

func (m Mode) String() string {
	switch m {
	case ModeEditor:
		return "editor"
	case ModeRename:
		return "rename"
	case ModeConfirmClose:
		return "confirm"
	case ModeSwitcher:
		return "switcher"
	case ModeHelp:
		return "help"
	}
	return "unknown"
}

// Preferences persists UI settings that are not part of a tab
type Preferences interface {
	LoadDarkMode() (on bool, ok bool)
	SaveDarkMode(on bool)
}

// Model represents the TUI state
type Model struct {
	// Core state
	ctrl      *session.Controller
	prefs     Preferences
	keybinds  *keybinds.Registry
	logger    *zap.Logger
	clock     debounce.Clock
	saver     *debounce.Scheduler
	send      func(tea.Msg)
	exportDir string
	clipboard func(string) error
	mouse     bool

	// UI state
	mode        Mode
	editor      textarea.Model
	surface     *editorSurface
	history     *History
	rename      *RenameState
	switcher    *SwitcherState
	helpView    viewport.Model
	modalView   viewport.Model
	closeTarget string
	dark        bool

	// Dimensions
	width  int
	height int

	// Messages
	statusMsg string
	errorMsg  string

	// Double click detection on tab titles
	lastClickID string
	lastClickAt time.Time

	quitting bool
	shutDown bool
}

// saveDueMsg is posted by the debounce timer when the editor has been
// quiet for the save delay
type saveDueMsg struct{}

type clearStatusMsg struct{}
type clearErrorMsg struct{}

// Init initializes the TUI
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		if !m.ctrl.Ready() {
			// The editor exists and has a size: load the active tab into it
			m.ctrl.Attach(m.surface)
		}
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case saveDueMsg:
		m.ctrl.CaptureActive()
		return m, nil

	case clearStatusMsg:
		m.statusMsg = ""
		return m, nil

	case clearErrorMsg:
		m.errorMsg = ""
		return m, nil
	}

	// Everything else (cursor blink) goes to the focused widget
	var cmd tea.Cmd
	switch m.mode {
	case ModeEditor:
		cmd = m.updateEditor(msg)
	case ModeRename:
		cmd = m.rename.Update(msg)
	case ModeSwitcher:
		cmd = m.switcher.Update(msg)
	}
	return m, cmd
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	switch m.mode {
	case ModeHelp:
		return m.renderHelp()
	case ModeConfirmClose:
		return m.renderConfirmClose()
	case ModeSwitcher:
		return m.renderSwitcher()
	}
	return m.renderMain()
}

// updateEditor forwards msg to the textarea and schedules a save when the
// document actually changed
func (m *Model) updateEditor(msg tea.Msg) tea.Cmd {
	before := m.editor.Value()
	readOnly := m.surface.Truncated()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if m.editor.Value() == before {
		return cmd
	}

	if readOnly {
		m.surface.Restore()
		return tea.Batch(cmd, m.setErrorMessage(
			fmt.Sprintf("Tab is longer than %d lines and is read-only here", MaxEditorLines)))
	}

	m.history.Record(before, m.clock.Now())
	m.saver.Notify()
	if m.editor.LineCount() >= MaxEditorLines {
		return tea.Batch(cmd, m.setErrorMessage(
			fmt.Sprintf("Editor holds at most %d lines", MaxEditorLines)))
	}
	return cmd
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.editor.SetWidth(width)
	m.editor.SetHeight(m.editorHeight())
	m.helpView.Width = width
	m.helpView.Height = height
}

// shutdown drops a pending save and writes the active tab through. Safe to
// call more than once.
func (m *Model) shutdown() {
	if m.shutDown {
		return
	}
	m.shutDown = true
	m.saver.Cancel()
	m.ctrl.Teardown()
}

// post delivers a message to the running program, if any
func (m *Model) post(msg tea.Msg) {
	if m.send != nil {
		m.send(msg)
	}
}

// Helper methods for setting messages with timeout
func (m *Model) setStatusMessage(msg string) tea.Cmd {
	m.statusMsg = truncateMessage(msg)
	m.errorMsg = ""
	return tea.Tick(StatusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m *Model) setErrorMessage(msg string) tea.Cmd {
	m.errorMsg = truncateMessage(msg)
	m.statusMsg = ""
	return tea.Tick(StatusTimeout, func(time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}

// truncateMessage keeps footer messages to 100 runes
func truncateMessage(msg string) string {
	runes := []rune(msg)
	if len(runes) > 100 {
		return string(runes[:97]) + "..."
	}
	return msg
}
