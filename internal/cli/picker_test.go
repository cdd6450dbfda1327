package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/editpad/internal/types"
)

func pickerTabs() []types.Tab {
	return []types.Tab{
		{ID: "a", Title: "Groceries"},
		{ID: "b", Title: "Notes"},
		{ID: "c", Title: ""},
	}
}

func TestPicker_StartsOnActiveTab(t *testing.T) {
	m := newPicker("Close which tab?", pickerTabs(), "b")

	if got := m.list.Index(); got != 1 {
		t.Errorf("index = %d, want 1", got)
	}
	item := m.list.SelectedItem().(tabItem)
	if item.Title() != "Notes [active]" {
		t.Errorf("title = %q", item.Title())
	}
}

func TestPicker_EnterChoosesSelected(t *testing.T) {
	var model tea.Model = newPicker("Pick", pickerTabs(), "a")

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	result := model.(pickerModel)
	if result.choice != "b" {
		t.Errorf("choice = %q, want b", result.choice)
	}
	if cmd == nil {
		t.Error("enter should quit the picker")
	}
	if result.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestPicker_CancelKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyRunes, Runes: []rune("q")},
	} {
		var model tea.Model = newPicker("Pick", pickerTabs(), "a")
		model, _ = model.Update(key)
		result := model.(pickerModel)
		if result.choice != "" || !result.quitting {
			t.Errorf("%s: choice = %q quitting = %v", key, result.choice, result.quitting)
		}
	}
}

func TestTabItem_UntitledFilterValue(t *testing.T) {
	item := tabItem{tab: types.Tab{ID: "x"}}
	if item.FilterValue() != types.DefaultTitle {
		t.Errorf("filter value = %q", item.FilterValue())
	}
}
