package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/textarea"
)

func TestOffsetToRowCol(t *testing.T) {
	text := "ab\ncde\n\nf"
	tests := []struct {
		offset int
		row    int
		col    int
	}{
		{-3, 0, 0},
		{0, 0, 0},
		{2, 0, 2},
		{3, 1, 0},
		{5, 1, 2},
		{7, 2, 0},
		{8, 3, 0},
		{9, 3, 1},
		{100, 3, 1},
	}
	for _, tt := range tests {
		row, col := offsetToRowCol(text, tt.offset)
		if row != tt.row || col != tt.col {
			t.Errorf("offsetToRowCol(%d) = %d,%d want %d,%d", tt.offset, row, col, tt.row, tt.col)
		}
	}
}

func TestEditorSurface_SetSelection(t *testing.T) {
	ta := textarea.New()
	ta.SetWidth(40)
	ta.SetHeight(10)
	s := newEditorSurface(&ta)

	s.SetContent("first\nsecond\nthird")
	AssertModelField(t, "content", s.Content(), "first\nsecond\nthird")

	s.SetSelection(0)
	AssertModelField(t, "line at 0", ta.Line(), 0)

	s.SetSelection(9)
	AssertModelField(t, "line at 9", ta.Line(), 1)

	s.SetSelection(1000)
	AssertModelField(t, "line past end", ta.Line(), 2)
}

func TestEditorSurface_KeepsTextBeyondLineCap(t *testing.T) {
	ta := textarea.New()
	ta.CharLimit = 0
	s := newEditorSurface(&ta)

	long := strings.Repeat("x\n", MaxEditorLines) + "tail"
	s.SetContent(long)

	if ta.Value() == long {
		t.Fatal("textarea should have cut the text")
	}
	if !s.Truncated() {
		t.Fatal("Truncated should report the cut")
	}
	if s.Content() != long || s.PlainText() != long {
		t.Error("Content should return the loaded text while the view is untouched")
	}

	ta.Reset()
	if s.Truncated() || s.Content() != "" {
		t.Error("an edit should make the textarea authoritative again")
	}

	s.SetContent("short")
	if s.Truncated() || s.Content() != "short" {
		t.Error("loading short text should clear the cut state")
	}
}
