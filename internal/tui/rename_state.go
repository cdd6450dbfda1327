package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/editpad/internal/types"
)

// RenameState holds the inline tab title field
type RenameState struct {
	targetID string
	input    textinput.Model
}

// NewRenameState creates a new rename state
func NewRenameState() *RenameState {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = types.MaxManualTitle
	ti.Width = MinRenameWidth
	return &RenameState{input: ti}
}

// Begin starts editing the title of tab id
func (s *RenameState) Begin(id, title string) tea.Cmd {
	s.targetID = id
	s.input.SetValue(title)
	s.input.CursorEnd()
	return s.input.Focus()
}

// TargetID returns the tab being renamed, or ""
func (s *RenameState) TargetID() string {
	return s.targetID
}

// Active reports whether a rename is in progress
func (s *RenameState) Active() bool {
	return s.targetID != ""
}

// Value returns the current text of the field
func (s *RenameState) Value() string {
	return s.input.Value()
}

// Update forwards a message to the text field
func (s *RenameState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

// View renders the field
func (s *RenameState) View() string {
	return s.input.View()
}

// Width is the number of columns the field occupies in the tab bar
func (s *RenameState) Width() int {
	// textinput draws the cursor one column past the text area
	return s.input.Width + 1
}

// Reset ends the rename without applying it
func (s *RenameState) Reset() {
	s.targetID = ""
	s.input.SetValue("")
	s.input.Blur()
}
