package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/studiowebux/editpad/internal/types"
)

// ErrPickCancelled is returned when the user leaves the picker without
// choosing
var ErrPickCancelled = errors.New("selection cancelled")

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2).Bold(true)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	helpStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1).MarginLeft(2)
)

type tabItem struct {
	tab      types.Tab
	isActive bool
}

func (i tabItem) FilterValue() string {
	return i.tab.DisplayTitle()
}

func (i tabItem) Title() string {
	title := i.tab.DisplayTitle()
	if i.isActive {
		title += " [active]"
	}
	return title
}

func (i tabItem) Description() string { return "" }

type pickerModel struct {
	list     list.Model
	choice   string
	quitting bool
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		// while filtering, keys belong to the filter input
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			m.choice = ""
			return m, tea.Quit

		case "enter":
			if i, ok := m.list.SelectedItem().(tabItem); ok {
				m.choice = i.tab.ID
			}
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	if m.quitting {
		return ""
	}

	help := helpStyle.Render("↑/↓: navigate • /: filter • enter: select • q/esc: cancel")
	return fmt.Sprintf("%s\n\n%s", m.list.View(), help)
}

// newPicker builds the list over tabs with the active tab selected
func newPicker(title string, tabs []types.Tab, activeID string) pickerModel {
	items := make([]list.Item, 0, len(tabs))
	selected := 0
	for i, t := range tabs {
		items = append(items, tabItem{tab: t, isActive: t.ID == activeID})
		if t.ID == activeID {
			selected = i
		}
	}

	const defaultWidth = 80
	const listHeight = 14

	l := list.New(items, itemDelegate{}, defaultWidth, listHeight)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Select(selected)

	return pickerModel{list: l}
}

// PickTab shows an interactive list of the session's tabs and returns the
// chosen one
func PickTab(s *Session, title string) (types.Tab, error) {
	m := newPicker(title, s.ctrl.Tabs(), s.ctrl.ActiveID())

	finalModel, err := tea.NewProgram(m).Run()
	if err != nil {
		return types.Tab{}, fmt.Errorf("error running selector: %w", err)
	}

	result := finalModel.(pickerModel)
	if result.choice == "" {
		return types.Tab{}, ErrPickCancelled
	}
	t, ok := s.ctrl.Find(result.choice)
	if !ok {
		return types.Tab{}, fmt.Errorf("tab %q no longer exists", result.choice)
	}
	return t, nil
}

// itemDelegate renders one numbered line per tab
type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(tabItem)
	if !ok {
		return
	}

	str := fmt.Sprintf("%d. %s", index+1, i.Title())

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(str))
}
