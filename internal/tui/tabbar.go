package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/studiowebux/editpad/internal/types"
)

const (
	closeGlyph   = "×"
	tabSeparator = "│"
	plusLabel    = " + "
)

// hitPart is what a click on the tab bar landed on
type hitPart int

const (
	hitNone hitPart = iota
	hitTitle
	hitClose
	hitPlus
)

// tabCell is one rendered tab. Columns are screen columns.
type tabCell struct {
	ID     string
	Label  string
	Active bool
	X      int
	Width  int
	CloseX int
}

// tabBar is the computed layout of the first screen row
type tabBar struct {
	Cells       []tabCell
	PlusX       int
	HiddenLeft  int
	HiddenRight int
}

type tabBarInput struct {
	Tabs      []types.Tab
	ActiveID  string
	Width     int
	EditingID string
	EditWidth int
}

// tabLabel cuts a title to MaxTabTitleWidth display columns
func tabLabel(title string) string {
	return runewidth.Truncate(title, MaxTabTitleWidth, "…")
}

// layoutTabBar places one cell per tab in registry order followed by the +
// cell. When the tabs do not fit, the window is slid so the active tab is
// visible.
func layoutTabBar(in tabBarInput) tabBar {
	sepW := runewidth.StringWidth(tabSeparator)
	plusW := runewidth.StringWidth(plusLabel)

	all := make([]tabCell, len(in.Tabs))
	activeIdx := 0
	x := 0
	for i, t := range in.Tabs {
		label := tabLabel(t.DisplayTitle())
		labelW := runewidth.StringWidth(label)
		if t.ID == in.EditingID && in.EditWidth > 0 {
			labelW = in.EditWidth
		}
		// " label × "
		width := labelW + 4
		all[i] = tabCell{
			ID:     t.ID,
			Label:  label,
			Active: t.ID == in.ActiveID,
			X:      x,
			Width:  width,
			CloseX: x + labelW + 2,
		}
		if all[i].Active {
			activeIdx = i
		}
		x += width + sepW
	}

	avail := in.Width - plusW - sepW
	bar := tabBar{PlusX: -1}
	if len(all) == 0 {
		bar.PlusX = 0
		return bar
	}

	end := func(c tabCell) int { return c.X + c.Width }

	start := 0
	for start < activeIdx && end(all[activeIdx])-all[start].X > avail {
		start++
	}
	base := all[start].X

	last := start
	for last+1 < len(all) && end(all[last+1])-base <= avail {
		last++
	}

	for _, c := range all[start : last+1] {
		c.X -= base
		c.CloseX -= base
		bar.Cells = append(bar.Cells, c)
	}
	bar.HiddenLeft = start
	bar.HiddenRight = len(all) - 1 - last
	bar.PlusX = end(bar.Cells[len(bar.Cells)-1]) + sepW
	return bar
}

// hit reports which tab (if any) and which part of it is at column x
func (b tabBar) hit(x int) (string, hitPart) {
	for _, c := range b.Cells {
		if x == c.CloseX {
			return c.ID, hitClose
		}
		if x >= c.X && x < c.X+c.Width {
			return c.ID, hitTitle
		}
	}
	if b.PlusX >= 0 && x >= b.PlusX && x < b.PlusX+runewidth.StringWidth(plusLabel) {
		return "", hitPlus
	}
	return "", hitNone
}

// renderTabBar draws the layout. editing is the inline rename field for the
// cell being renamed.
func (m *Model) renderTabBar(bar tabBar, editing string) string {
	var sb strings.Builder
	for i, c := range bar.Cells {
		if i > 0 {
			sb.WriteString(styleSubtle.Render(tabSeparator))
		}
		style := styleTab
		if c.Active {
			style = styleTabActive
		}
		label := c.Label
		if editing != "" && m.mode == ModeRename && c.ID == m.rename.TargetID() {
			w := m.rename.Width()
			label = lipgloss.NewStyle().Width(w).MaxWidth(w).Render(editing)
		}
		sb.WriteString(style.Render(" " + label + " "))
		sb.WriteString(styleTabClose.Render(closeGlyph))
		sb.WriteString(style.Render(" "))
	}
	if len(bar.Cells) > 0 {
		sb.WriteString(styleSubtle.Render(tabSeparator))
	}
	sb.WriteString(styleTabPlus.Render(plusLabel))

	if bar.HiddenLeft > 0 || bar.HiddenRight > 0 {
		sb.WriteString(styleSubtle.Render(" " + overflowHint(bar)))
	}
	return sb.String()
}

func overflowHint(bar tabBar) string {
	var parts []string
	if bar.HiddenLeft > 0 {
		parts = append(parts, "‹"+strconv.Itoa(bar.HiddenLeft))
	}
	if bar.HiddenRight > 0 {
		parts = append(parts, strconv.Itoa(bar.HiddenRight)+"›")
	}
	return strings.Join(parts, " ")
}
