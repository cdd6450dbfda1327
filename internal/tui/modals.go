package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/studiowebux/editpad/internal/keybinds"
	"github.com/studiowebux/editpad/internal/session"
)

// openHelp fills the help viewport from the live keybinding registry
func (m *Model) openHelp() {
	m.leaveMode()
	m.editor.Blur()
	m.helpView.SetContent(m.helpContent())
	m.helpView.GotoTop()
	m.mode = ModeHelp
}

// helpContent lists every context with its actions and keys
func (m *Model) helpContent() string {
	var sb strings.Builder
	for i, ctx := range keybinds.AllContexts() {
		var actions []keybinds.Action
		keys := make(map[keybinds.Action][]string)
		for _, b := range m.keybinds.ListBindings(ctx) {
			if b.Context != ctx {
				continue
			}
			if _, seen := keys[b.Action]; !seen {
				actions = append(actions, b.Action)
			}
			keys[b.Action] = append(keys[b.Action], b.Key)
		}
		if len(actions) == 0 {
			continue
		}

		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(styleTitle.Render(strings.ToUpper(string(ctx))) + "\n")
		for _, action := range actions {
			fmt.Fprintf(&sb, "  %-22s %s\n",
				strings.Join(keys[action], ", "),
				keybinds.Describe(action))
		}
	}

	sb.WriteString("\n" + styleTitle.Render("SAVING") + "\n")
	fmt.Fprintf(&sb, "  Edits save after %s without typing, and on switch, close and quit.\n",
		m.saver.QuietPeriod())
	fmt.Fprintf(&sb, "  Tabs longer than %d lines open read-only.\n", MaxEditorLines)
	return sb.String()
}

// renderHelp renders the help screen
func (m *Model) renderHelp() string {
	footer := fmt.Sprintf("%s/%s: scroll | %s: close",
		m.keybinds.GetBindingString(keybinds.ContextHelp, keybinds.ActionNavigateUp),
		m.keybinds.GetBindingString(keybinds.ContextHelp, keybinds.ActionNavigateDown),
		m.keybinds.GetBindingString(keybinds.ContextHelp, keybinds.ActionCloseModal))

	width := m.width - ModalWidthMargin
	height := m.height - ModalHeightMarginSmall
	m.helpView.Width = max(10, width-ViewportPaddingHorizontal)
	m.helpView.Height = max(1, height-ModalOverheadLines-ModalFooterLines)

	fullContent := styleTitle.Render("Keyboard Shortcuts") + "\n\n" +
		m.helpView.View() + "\n\n" + styleSubtle.Render(footer)

	helpBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCyan).
		Width(width).
		Height(height).
		Padding(1, 2).
		Render(fullContent)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		helpBox,
	)
}

// renderConfirmClose asks before a tab is closed
func (m *Model) renderConfirmClose() string {
	t, _ := m.ctrl.Find(m.closeTarget)
	content := styleWarning.Render(session.CloseMessage(t.DisplayTitle()))
	return m.renderModalWithFooter("Close tab", content, "[y]es [n]o", ModalMaxWidth, 10)
}

// renderSwitcher shows the query and the ranked tabs
func (m *Model) renderSwitcher() string {
	var sb strings.Builder
	sb.WriteString(m.switcher.QueryView() + "\n\n")

	matches := m.switcher.Matches()
	if len(matches) == 0 {
		sb.WriteString(styleSubtle.Render("No matching tabs"))
	}

	cursor := m.switcher.Cursor()
	start := max(0, cursor-SwitcherMaxResults+1)
	end := min(len(matches), start+SwitcherMaxResults)
	for i := start; i < end; i++ {
		match := matches[i]
		marked := make(map[int]bool, len(match.MatchedIndexes))
		for _, idx := range match.MatchedIndexes {
			marked[idx] = true
		}

		var line strings.Builder
		for byteIdx, r := range match.Str {
			if marked[byteIdx] {
				line.WriteString(styleWarning.Render(string(r)))
			} else {
				line.WriteRune(r)
			}
		}

		if i == cursor {
			sb.WriteString(styleSelected.Render("› ") + line.String() + "\n")
		} else {
			sb.WriteString("  " + line.String() + "\n")
		}
	}

	footer := fmt.Sprintf("%s: open | %s: close",
		m.keybinds.GetBindingString(keybinds.ContextSwitcher, keybinds.ActionTextSubmit),
		m.keybinds.GetBindingString(keybinds.ContextSwitcher, keybinds.ActionCloseModal))
	return m.renderModalWithFooter("Find tab", sb.String(), footer, ModalMaxWidth, SwitcherMaxResults+ModalOverheadLines+ModalFooterLines+2)
}

// renderModalWithFooter renders a modal dialog with scrollable content and a fixed footer
func (m *Model) renderModalWithFooter(title, content, footer string, width, height int) string {
	// For small terminals, use almost full screen
	maxWidth := m.width - ViewportPaddingHorizontal
	maxHeight := m.height - ModalHeightMarginSmall

	if width > maxWidth {
		width = maxWidth
	}
	if height > maxHeight {
		height = maxHeight
	}

	// Ensure minimum reasonable size (but allow small for tiny terminals)
	if width < 30 && m.width >= 30 {
		width = 30
	}
	if height < 8 && m.height >= 8 {
		height = 8
	}

	footerLines := 0
	if footer != "" {
		footerLines = ModalFooterLines
	}
	contentHeight := height - ModalOverheadLines - footerLines
	if contentHeight < 1 {
		contentHeight = max(1, height-ModalOverheadMinimal-footerLines)
	}

	m.modalView.Width = max(10, width-ViewportPaddingHorizontal)
	m.modalView.Height = contentHeight
	m.modalView.SetContent(lipgloss.NewStyle().Width(m.modalView.Width).Render(content))

	fullContent := styleTitle.Render(title) + "\n\n" + m.modalView.View()
	if footer != "" {
		fullContent += "\n\n" + styleSubtle.Render(footer)
	}

	modalBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCyan).
		Width(width).
		Height(height).
		Padding(1, 2).
		Render(fullContent)

	// Modal is full screen or nearly full screen
	if width >= m.width-2 || height >= m.height-1 {
		return modalBox
	}

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modalBox,
	)
}
