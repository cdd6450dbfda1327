package session

import "fmt"

// Surface is the editing widget the active tab is loaded into
type Surface interface {
	// Content returns the document in its stored representation
	Content() string
	// SetContent replaces the document without emitting a change
	SetContent(content string)
	// PlainText returns the document as plain text, used for auto titles
	PlainText() string
	// SetSelection moves the caret to a character offset
	SetSelection(offset int)
}

// Confirmer asks the user to approve a destructive action
type Confirmer interface {
	Confirm(message string) bool
}

// ConfirmFunc adapts a function to Confirmer
type ConfirmFunc func(message string) bool

// Confirm calls f
func (f ConfirmFunc) Confirm(message string) bool {
	return f(message)
}

// AlwaysConfirm approves every prompt
var AlwaysConfirm = ConfirmFunc(func(string) bool { return true })

// CloseMessage is the prompt shown before a tab is closed
func CloseMessage(title string) string {
	return fmt.Sprintf("Close %q? This will permanently remove its content from this machine.", title)
}

// BufferSurface is an in-memory Surface for headless use
type BufferSurface struct {
	text      string
	selection int
}

// NewBufferSurface creates an empty BufferSurface
func NewBufferSurface() *BufferSurface {
	return &BufferSurface{}
}

func (b *BufferSurface) Content() string { return b.text }

func (b *BufferSurface) SetContent(content string) {
	b.text = content
}

func (b *BufferSurface) PlainText() string { return b.text }

func (b *BufferSurface) SetSelection(offset int) {
	n := len([]rune(b.text))
	switch {
	case offset < 0:
		offset = 0
	case offset > n:
		offset = n
	}
	b.selection = offset
}

// Selection returns the caret offset
func (b *BufferSurface) Selection() int {
	return b.selection
}
