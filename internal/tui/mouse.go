package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleMouse acts on left presses in the tab bar. Any press outside the
// rename field while renaming commits the new title.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	switch m.mode {
	case ModeConfirmClose, ModeSwitcher, ModeHelp:
		// modal owns the screen
		return nil
	}

	if msg.Y >= TabBarHeight {
		if m.mode == ModeRename {
			return m.commitRename()
		}
		return nil
	}

	id, part := m.layoutTabs().hit(msg.X)
	switch part {
	case hitPlus:
		m.leaveMode()
		return m.newTab()
	case hitClose:
		return m.requestClose(id)
	case hitTitle:
		if m.mode == ModeRename && id == m.rename.TargetID() {
			return nil
		}
		return m.clickTitle(id)
	}

	if m.mode == ModeRename {
		return m.commitRename()
	}
	return nil
}

// clickTitle switches to the tab; a second press on the same title within
// DoubleClickWindow starts a rename instead
func (m *Model) clickTitle(id string) tea.Cmd {
	now := m.clock.Now()
	if id == m.lastClickID && now.Sub(m.lastClickAt) <= DoubleClickWindow {
		m.lastClickID = ""
		return m.beginRename(id)
	}
	m.lastClickID = id
	m.lastClickAt = now

	m.leaveMode()
	m.ctrl.Switch(id)
	return m.editor.Focus()
}
