package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/editpad/internal/keybinds"
)

// handleKeyPress routes key presses based on current mode
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	switch m.mode {
	case ModeRename:
		return m.handleRenameKeys(msg)
	case ModeConfirmClose:
		return m.handleConfirmKeys(msg)
	case ModeSwitcher:
		return m.handleSwitcherKeys(msg)
	case ModeHelp:
		return m.handleHelpKeys(msg)
	default:
		return m.handleEditorKeys(msg)
	}
}

// handleGlobalAction runs actions that work in every mode
func (m *Model) handleGlobalAction(action keybinds.Action) (tea.Cmd, bool) {
	switch action {
	case keybinds.ActionQuit, keybinds.ActionQuitForce:
		return m.quit(), true
	case keybinds.ActionOpenHelp:
		m.openHelp()
		return nil, true
	}
	return nil, false
}

func (m *Model) handleEditorKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextEditor, msg.String())
	if !ok {
		return m.updateEditor(msg)
	}
	if cmd, handled := m.handleGlobalAction(action); handled {
		return cmd
	}

	switch action {
	case keybinds.ActionNewTab:
		return m.newTab()
	case keybinds.ActionCloseTab:
		return m.requestClose(m.ctrl.ActiveID())
	case keybinds.ActionNextTab:
		return m.cycleTab(1)
	case keybinds.ActionPrevTab:
		return m.cycleTab(-1)
	case keybinds.ActionRenameTab:
		return m.beginRename(m.ctrl.ActiveID())
	case keybinds.ActionOpenSwitcher:
		return m.openSwitcher()
	case keybinds.ActionToggleDarkMode:
		return m.toggleDarkMode()
	case keybinds.ActionExportTab:
		return m.exportActive()
	case keybinds.ActionCopyTab:
		return m.copyActive()
	case keybinds.ActionClearText:
		return m.clearText()
	case keybinds.ActionUndo:
		return m.undo()
	case keybinds.ActionRedo:
		return m.redo()
	}

	// Bound in another context only; let the editor have it
	return m.updateEditor(msg)
}

func (m *Model) handleRenameKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextRename, msg.String())
	if ok {
		switch action {
		case keybinds.ActionTextSubmit:
			return m.commitRename()
		case keybinds.ActionTextCancel:
			m.cancelRename()
			return nil
		}
		if cmd, handled := m.handleGlobalAction(action); handled {
			return cmd
		}
	}
	return m.rename.Update(msg)
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextConfirm, msg.String())
	if !ok {
		return nil
	}
	switch action {
	case keybinds.ActionConfirm:
		return m.confirmClose()
	case keybinds.ActionCancel:
		m.cancelClose()
		return nil
	}
	cmd, _ := m.handleGlobalAction(action)
	return cmd
}

func (m *Model) handleSwitcherKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextSwitcher, msg.String())
	if ok {
		switch action {
		case keybinds.ActionNavigateUp:
			m.switcher.Move(-1)
			return nil
		case keybinds.ActionNavigateDown:
			m.switcher.Move(1)
			return nil
		case keybinds.ActionTextSubmit:
			return m.selectFromSwitcher()
		case keybinds.ActionCloseModal:
			m.closeSwitcher()
			return nil
		}
		if cmd, handled := m.handleGlobalAction(action); handled {
			return cmd
		}
	}
	return m.switcher.Update(msg)
}

func (m *Model) handleHelpKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextHelp, msg.String())
	if !ok {
		return nil
	}
	switch action {
	case keybinds.ActionCloseModal:
		m.mode = ModeEditor
	case keybinds.ActionNavigateUp:
		m.helpView.ScrollUp(1)
	case keybinds.ActionNavigateDown:
		m.helpView.ScrollDown(1)
	case keybinds.ActionPageUp:
		m.helpView.PageUp()
	case keybinds.ActionPageDown:
		m.helpView.PageDown()
	case keybinds.ActionOpenHelp:
		m.mode = ModeEditor
	default:
		cmd, _ := m.handleGlobalAction(action)
		return cmd
	}
	return nil
}
