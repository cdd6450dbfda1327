package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/studiowebux/editpad/internal/export"
	"github.com/studiowebux/editpad/internal/session"
	"go.uber.org/zap"
)

// newTab captures the current tab and opens an empty one
func (m *Model) newTab() tea.Cmd {
	if _, ok := m.ctrl.CreateAndActivate(""); !ok {
		return nil
	}
	return m.editor.Focus()
}

// cycleTab activates the tab delta positions away, wrapping around
func (m *Model) cycleTab(delta int) tea.Cmd {
	tabs := m.ctrl.Tabs()
	if len(tabs) < 2 {
		return nil
	}
	idx := 0
	for i, t := range tabs {
		if t.ID == m.ctrl.ActiveID() {
			idx = i
			break
		}
	}
	next := ((idx+delta)%len(tabs) + len(tabs)) % len(tabs)
	m.ctrl.Switch(tabs[next].ID)
	return nil
}

// requestClose opens the confirmation modal for tab id
func (m *Model) requestClose(id string) tea.Cmd {
	if _, ok := m.ctrl.Find(id); !ok {
		return nil
	}
	m.leaveMode()
	m.closeTarget = id
	m.mode = ModeConfirmClose
	m.editor.Blur()
	return nil
}

// confirmClose closes the tab the modal asked about. The modal was the
// confirmation, so the controller is told yes.
func (m *Model) confirmClose() tea.Cmd {
	id := m.closeTarget
	t, _ := m.ctrl.Find(id)
	m.closeTarget = ""
	m.mode = ModeEditor
	focus := m.editor.Focus()

	if !m.ctrl.CloseAndReconcile(id, session.AlwaysConfirm) {
		return focus
	}
	return tea.Batch(focus, m.setStatusMessage(fmt.Sprintf("Closed %s", t.DisplayTitle())))
}

func (m *Model) cancelClose() {
	m.closeTarget = ""
	m.mode = ModeEditor
	m.editor.Focus()
}

// beginRename opens the inline title field on tab id
func (m *Model) beginRename(id string) tea.Cmd {
	t, ok := m.ctrl.Find(id)
	if !ok {
		return nil
	}
	m.leaveMode()
	m.mode = ModeRename
	m.editor.Blur()
	return m.rename.Begin(id, t.DisplayTitle())
}

// commitRename applies the field to the tab being renamed
func (m *Model) commitRename() tea.Cmd {
	id, title := m.rename.TargetID(), m.rename.Value()
	m.rename.Reset()
	m.mode = ModeEditor
	m.ctrl.Rename(id, title)
	return m.editor.Focus()
}

func (m *Model) cancelRename() {
	m.rename.Reset()
	m.mode = ModeEditor
	m.editor.Focus()
}

func (m *Model) openSwitcher() tea.Cmd {
	m.leaveMode()
	m.mode = ModeSwitcher
	m.editor.Blur()
	return m.switcher.Open(m.ctrl.Tabs(), m.ctrl.ActiveID())
}

func (m *Model) selectFromSwitcher() tea.Cmd {
	t, ok := m.switcher.Selected()
	m.closeSwitcher()
	if ok {
		m.ctrl.Switch(t.ID)
	}
	return m.editor.Focus()
}

func (m *Model) closeSwitcher() {
	m.switcher.Close()
	m.mode = ModeEditor
	m.editor.Focus()
}

// leaveMode finishes whatever the current mode was doing before another
// one takes over. A rename in progress is committed.
func (m *Model) leaveMode() {
	switch m.mode {
	case ModeRename:
		m.commitRename()
	case ModeSwitcher:
		m.closeSwitcher()
	case ModeConfirmClose:
		m.cancelClose()
	case ModeHelp:
		m.mode = ModeEditor
	}
}

func (m *Model) toggleDarkMode() tea.Cmd {
	m.dark = !m.dark
	lipgloss.SetHasDarkBackground(m.dark)
	if m.prefs != nil {
		m.prefs.SaveDarkMode(m.dark)
	}
	if m.dark {
		return m.setStatusMessage("Dark mode on")
	}
	return m.setStatusMessage("Dark mode off")
}

// exportActive saves the active tab and writes it to the export directory
func (m *Model) exportActive() tea.Cmd {
	m.saver.Cancel()
	m.ctrl.CaptureActive()

	t, ok := m.ctrl.Active()
	if !ok {
		return nil
	}
	path, err := export.Write(m.exportDir, t)
	if err != nil {
		m.logger.Warn("export failed", zap.String("id", t.ID), zap.Error(err))
		return m.setErrorMessage(err.Error())
	}
	m.logger.Info("tab exported", zap.String("id", t.ID), zap.String("path", path))
	return m.setStatusMessage(fmt.Sprintf("Exported to %s", path))
}

func (m *Model) copyActive() tea.Cmd {
	text := m.surface.Content()
	if err := m.clipboard(text); err != nil {
		m.logger.Warn("clipboard write failed", zap.Error(err))
		return m.setErrorMessage(fmt.Sprintf("Copy failed: %v", err))
	}
	return m.setStatusMessage(fmt.Sprintf("Copied %d characters", len([]rune(text))))
}

// clearText empties the editor; the change is saved like any edit
func (m *Model) clearText() tea.Cmd {
	if m.editor.Value() == "" {
		return nil
	}
	m.history.Record(m.editor.Value(), m.clock.Now())
	m.editor.Reset()
	m.saver.Notify()
	return m.setStatusMessage("Cleared")
}

// undo and redo step through the active tab's history; the restored text is
// saved like any edit
func (m *Model) undo() tea.Cmd {
	text, ok := m.history.Undo(m.editor.Value())
	if !ok {
		return m.setStatusMessage("Nothing to undo")
	}
	m.editor.SetValue(text)
	m.saver.Notify()
	return nil
}

func (m *Model) redo() tea.Cmd {
	text, ok := m.history.Redo(m.editor.Value())
	if !ok {
		return m.setStatusMessage("Nothing to redo")
	}
	m.editor.SetValue(text)
	m.saver.Notify()
	return nil
}

// quit saves the active tab and stops the program
func (m *Model) quit() tea.Cmd {
	m.leaveMode()
	m.shutdown()
	m.quitting = true
	return tea.Quit
}
