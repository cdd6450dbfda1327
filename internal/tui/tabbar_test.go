package tui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/editpad/internal/types"
)

func TestLayoutTabBar_Positions(t *testing.T) {
	bar := layoutTabBar(tabBarInput{
		Tabs: []types.Tab{
			{ID: "A", Title: "A"},
			{ID: "B", Title: "B"},
		},
		ActiveID: "B",
		Width:    80,
	})

	if len(bar.Cells) != 2 {
		t.Fatalf("cells = %d, want 2", len(bar.Cells))
	}
	// " A × " then "│"
	want := []tabCell{
		{ID: "A", Label: "A", X: 0, Width: 5, CloseX: 3},
		{ID: "B", Label: "B", Active: true, X: 6, Width: 5, CloseX: 9},
	}
	for i, c := range bar.Cells {
		if c != want[i] {
			t.Errorf("cell %d = %+v, want %+v", i, c, want[i])
		}
	}
	AssertModelField(t, "plus", bar.PlusX, 12)
}

func TestLayoutTabBar_Hit(t *testing.T) {
	bar := layoutTabBar(tabBarInput{
		Tabs:     []types.Tab{{ID: "A", Title: "A"}, {ID: "B", Title: "B"}},
		ActiveID: "A",
		Width:    80,
	})

	tests := []struct {
		x        int
		wantID   string
		wantPart hitPart
	}{
		{0, "A", hitTitle},
		{1, "A", hitTitle},
		{3, "A", hitClose},
		{5, "", hitNone}, // separator
		{7, "B", hitTitle},
		{9, "B", hitClose},
		{13, "", hitPlus},
		{40, "", hitNone},
	}
	for _, tt := range tests {
		id, part := bar.hit(tt.x)
		if id != tt.wantID || part != tt.wantPart {
			t.Errorf("hit(%d) = %q,%v want %q,%v", tt.x, id, part, tt.wantID, tt.wantPart)
		}
	}
}

func TestLayoutTabBar_TruncatesLongTitles(t *testing.T) {
	bar := layoutTabBar(tabBarInput{
		Tabs:  []types.Tab{{ID: "A", Title: "a title that is far too long for one tab cell"}},
		Width: 120,
	})
	label := bar.Cells[0].Label
	if got := len([]rune(label)); got != MaxTabTitleWidth {
		t.Errorf("label %q has %d runes, want %d", label, got, MaxTabTitleWidth)
	}
}

func TestLayoutTabBar_KeepsActiveVisible(t *testing.T) {
	var all []types.Tab
	for i := 0; i < 20; i++ {
		all = append(all, types.Tab{ID: fmt.Sprintf("t%02d", i), Title: fmt.Sprintf("tab %02d", i)})
	}

	for _, active := range []string{"t00", "t10", "t19"} {
		bar := layoutTabBar(tabBarInput{Tabs: all, ActiveID: active, Width: 60})
		found := false
		for _, c := range bar.Cells {
			if c.ID == active {
				found = true
			}
			if c.X+c.Width > 60 {
				t.Errorf("active %s: cell %s ends at %d past the screen", active, c.ID, c.X+c.Width)
			}
		}
		if !found {
			t.Errorf("active %s not visible", active)
		}
		if bar.HiddenLeft+bar.HiddenRight+len(bar.Cells) != len(all) {
			t.Errorf("active %s: hidden counts do not add up", active)
		}
	}

	bar := layoutTabBar(tabBarInput{Tabs: all, ActiveID: "t19", Width: 60})
	if bar.HiddenLeft == 0 || bar.HiddenRight != 0 {
		t.Errorf("last active: hidden = %d/%d", bar.HiddenLeft, bar.HiddenRight)
	}
}

func TestLayoutTabBar_NoTabs(t *testing.T) {
	bar := layoutTabBar(tabBarInput{Width: 40})
	id, part := bar.hit(1)
	if id != "" || part != hitPlus {
		t.Errorf("hit = %q,%v want plus", id, part)
	}
}

func TestMouse_ClickSwitchesTab(t *testing.T) {
	env := CreateTestModel(t, manualTabs("one", "two"), "A")

	env.click(7, 0)

	AssertModelField(t, "active", env.m.ctrl.ActiveID(), "B")
	AssertModelField(t, "editor", env.m.editor.Value(), "two")
}

func TestMouse_DoubleClickRenames(t *testing.T) {
	env := CreateTestModel(t, manualTabs("one", "two"), "A")

	env.click(7, 0)
	env.click(7, 0)
	AssertModelField(t, "mode", env.m.mode, ModeRename)
	AssertModelField(t, "target", env.m.rename.TargetID(), "B")

	env.typeText("2")
	// a press in the editor area takes focus away and commits
	env.click(10, 5)

	AssertModelField(t, "mode", env.m.mode, ModeEditor)
	AssertModelField(t, "title", env.stored(t, "B").Title, "B2")
}

func TestMouse_SlowSecondClickDoesNotRename(t *testing.T) {
	env := CreateTestModel(t, manualTabs("", ""), "A")

	env.click(7, 0)
	env.clock.Advance(DoubleClickWindow + 1)
	env.click(7, 0)

	AssertModelField(t, "mode", env.m.mode, ModeEditor)
}

func TestMouse_CloseAndPlus(t *testing.T) {
	env := CreateTestModel(t, manualTabs("", ""), "A")

	env.click(9, 0)
	AssertModelField(t, "mode", env.m.mode, ModeConfirmClose)
	AssertModelField(t, "target", env.m.closeTarget, "B")
	env.typeText("y")
	AssertModelField(t, "tabs", len(env.m.ctrl.Tabs()), 1)
	AssertModelField(t, "active", env.m.ctrl.ActiveID(), "A")

	// one tab left: " A × │ + ", the plus starts at 6
	env.click(7, 0)
	AssertModelField(t, "tabs after plus", len(env.m.ctrl.Tabs()), 2)
}

func TestMouse_IgnoresOtherButtons(t *testing.T) {
	env := CreateTestModel(t, manualTabs("", ""), "A")

	env.update(tea.MouseMsg{X: 7, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	env.update(tea.MouseMsg{X: 7, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	AssertModelField(t, "active", env.m.ctrl.ActiveID(), "A")
}

// manualTabs builds tabs A, B, ... with one-letter manual titles so flushes
// never change the tab bar layout
func manualTabs(contents ...string) []types.Tab {
	out := make([]types.Tab, len(contents))
	for i, c := range contents {
		id := string(rune('A' + i))
		out[i] = types.Tab{ID: id, Title: id, Content: c, TitleIsManual: true}
	}
	return out
}
