package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/studiowebux/editpad/internal/keybinds"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen  = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"} // Dark green / Bright green
	colorRed    = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"} // Dark red / Bright red
	colorYellow = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"} // Dark goldenrod / Yellow
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"} // Dark gray / Light gray
	colorCyan   = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"} // Dark cyan / Cyan
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleSelected = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"})

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorYellow)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)

	// Tab bar cells carry no padding; layoutTabBar counts every column
	styleTab = lipgloss.NewStyle().
			Foreground(colorGray)

	styleTabActive = lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"})

	styleTabClose = lipgloss.NewStyle().
			Foreground(colorRed)

	styleTabPlus = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGreen)
)

// renderMain renders the tab bar, the editor and the status bar
func (m *Model) renderMain() string {
	if m.width == 0 {
		return ""
	}

	editing := ""
	if m.mode == ModeRename {
		editing = m.rename.View()
	}
	tabRow := lipgloss.NewStyle().
		MaxWidth(m.width).
		Render(m.renderTabBar(m.layoutTabs(), editing))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		tabRow,
		m.editor.View(),
		m.renderStatusBar(),
	)
}

// layoutTabs computes the tab bar for the current registry and screen width
func (m *Model) layoutTabs() tabBar {
	in := tabBarInput{
		Tabs:     m.ctrl.Tabs(),
		ActiveID: m.ctrl.ActiveID(),
		Width:    m.width,
	}
	if m.mode == ModeRename {
		in.EditingID = m.rename.TargetID()
		in.EditWidth = m.rename.Width()
	}
	return layoutTabBar(in)
}

// renderStatusBar shows the tab position on the left and messages or key
// hints on the right
func (m *Model) renderStatusBar() string {
	left := ""
	tabs := m.ctrl.Tabs()
	for i, t := range tabs {
		if t.ID == m.ctrl.ActiveID() {
			left = fmt.Sprintf("Tab %d/%d", i+1, len(tabs))
			break
		}
	}
	switch {
	case m.saver.Pending():
		left += styleWarning.Render(" ●")
	case !m.saver.LastNotify().IsZero():
		left += styleSubtle.Render(" edited " + formatAgo(m.clock.Now().Sub(m.saver.LastNotify())))
	}
	if m.surface.Truncated() {
		left += styleWarning.Render(" read-only")
	}

	right := ""
	switch {
	case m.errorMsg != "":
		right = styleError.Render(m.errorMsg)
	case m.statusMsg != "":
		right = styleSuccess.Render(m.statusMsg)
	case m.mode == ModeRename:
		right = styleSubtle.Render(fmt.Sprintf("%s: save | %s: cancel",
			m.keybinds.GetBindingString(keybinds.ContextRename, keybinds.ActionTextSubmit),
			m.keybinds.GetBindingString(keybinds.ContextRename, keybinds.ActionTextCancel)))
	default:
		right = styleSubtle.Render(fmt.Sprintf("%s new | %s close | %s find | %s help",
			m.keybinds.GetBindingString(keybinds.ContextEditor, keybinds.ActionNewTab),
			m.keybinds.GetBindingString(keybinds.ContextEditor, keybinds.ActionCloseTab),
			m.keybinds.GetBindingString(keybinds.ContextEditor, keybinds.ActionOpenSwitcher),
			m.keybinds.GetBindingString(keybinds.ContextEditor, keybinds.ActionOpenHelp)))
	}

	// Center spacing
	spacing := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}

	return lipgloss.NewStyle().
		MaxWidth(m.width).
		Render(left + strings.Repeat(" ", spacing) + right)
}

// formatAgo renders an elapsed time coarsely for the status bar
func formatAgo(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d/time.Minute))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d/time.Hour))
	}
	return fmt.Sprintf("%dd ago", int(d/(24*time.Hour)))
}

// editorHeight is the number of rows left for the textarea
func (m *Model) editorHeight() int {
	return max(1, m.height-TabBarHeight-StatusBarHeight)
}
