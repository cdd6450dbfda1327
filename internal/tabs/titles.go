package tabs

import (
	"strings"

	"github.com/studiowebux/editpad/internal/types"
)

// NormalizeManualTitle trims whitespace, clamps to MaxManualTitle runes and
// falls back to DefaultTitle when nothing is left
func NormalizeManualTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return types.DefaultTitle
	}
	return truncateRunes(title, types.MaxManualTitle)
}

// AutoTitle derives a title from the first line of the trimmed plain text.
// Lines longer than MaxAutoTitle runes are cut and get an ellipsis.
func AutoTitle(plainText string) string {
	text := strings.TrimSpace(plainText)
	first, _, _ := strings.Cut(text, "\n")
	first = strings.TrimRight(first, "\r")
	if first == "" {
		return types.DefaultTitle
	}
	if runeCount(first) > types.MaxAutoTitle {
		return truncateRunes(first, types.MaxAutoTitle) + types.Ellipsis
	}
	return first
}

func truncateRunes(s string, n int) string {
	if runeCount(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

func runeCount(s string) int {
	return len([]rune(s))
}
