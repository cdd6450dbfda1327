package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
)

// editorSurface lets the session controller load and read the textarea.
// SetContent goes through textarea.SetValue and never reaches Update, so
// loading a tab does not schedule a save.
//
// The textarea keeps at most MaxEditorLines lines and drops the rest on
// SetValue. When that happens the loaded text stays authoritative: Content
// returns it for as long as the textarea still shows what was loaded.
type editorSurface struct {
	ta *textarea.Model

	full  string // loaded text, set only when the textarea cut it short
	shown string // textarea value right after the cut
}

func newEditorSurface(ta *textarea.Model) *editorSurface {
	return &editorSurface{ta: ta}
}

func (s *editorSurface) Content() string {
	if s.Truncated() {
		return s.full
	}
	return s.ta.Value()
}

func (s *editorSurface) SetContent(content string) {
	s.ta.SetValue(content)
	s.full, s.shown = "", ""
	if v := s.ta.Value(); v != content {
		s.full, s.shown = content, v
	}
}

func (s *editorSurface) PlainText() string {
	return s.Content()
}

// Truncated reports whether the textarea holds a cut-down view of the
// loaded text
func (s *editorSurface) Truncated() bool {
	return s.shown != "" && s.ta.Value() == s.shown
}

// Restore puts the loaded text back after an edit the textarea cannot hold,
// keeping the cursor on the same line and column
func (s *editorSurface) Restore() {
	if s.full == "" {
		return
	}
	info := s.ta.LineInfo()
	row, col := s.ta.Line(), info.StartColumn+info.ColumnOffset
	s.ta.SetValue(s.full)
	s.moveTo(row, col)
}

// SetSelection places the cursor at a rune offset into the document
func (s *editorSurface) SetSelection(offset int) {
	row, col := offsetToRowCol(s.ta.Value(), offset)
	s.moveTo(row, col)
}

func (s *editorSurface) moveTo(row, col int) {
	// bounded: every step either changes Line() or is the last one needed
	limit := s.ta.Length() + s.ta.LineCount() + 1

	for i := 0; i < limit && s.ta.Line() > 0; i++ {
		s.ta.CursorUp()
	}
	s.ta.CursorStart()
	for i := 0; i < limit && s.ta.Line() < row; i++ {
		s.ta.CursorDown()
	}
	s.ta.SetCursor(col)
}

// offsetToRowCol converts a rune offset into a line and column, clamped to
// the document
func offsetToRowCol(text string, offset int) (int, int) {
	if offset <= 0 {
		return 0, 0
	}
	row, col := 0, 0
	for i, r := range []rune(text) {
		if i == offset {
			break
		}
		if r == '\n' {
			row++
			col = 0
			continue
		}
		col++
	}
	return row, col
}
