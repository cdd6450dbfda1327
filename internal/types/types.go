package types

// Title limits and defaults shared by the registry, the session controller
// and the tab bar.
const (
	DefaultTitle = "Untitled"

	// MaxManualTitle is the rune limit for titles typed by the user
	MaxManualTitle = 50

	// MaxAutoTitle is the rune limit for titles derived from content,
	// before the ellipsis is appended
	MaxAutoTitle = 30

	Ellipsis = "…"
)

// Tab is one independently persisted text document
type Tab struct {
	ID            string `json:"id" yaml:"id"`
	Title         string `json:"title" yaml:"title"`
	Content       string `json:"content" yaml:"content"`
	TitleIsManual bool   `json:"titleIsManual" yaml:"titleIsManual"`
}

// DisplayTitle returns the title to show, falling back to DefaultTitle
func (t Tab) DisplayTitle() string {
	if t.Title == "" {
		return DefaultTitle
	}
	return t.Title
}

// CloneTabs returns a copy of the slice so callers never share backing
// arrays with the registry
func CloneTabs(tabs []Tab) []Tab {
	if tabs == nil {
		return nil
	}
	out := make([]Tab, len(tabs))
	copy(out, tabs)
	return out
}
