// Package export writes a tab's content to a file on disk.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/studiowebux/editpad/internal/types"
)

const (
	// Extension is appended to exported file names
	Extension = ".editpad"

	// DefaultName is used when a title has nothing usable for a file name
	DefaultName = "text" + Extension

	maxSlug = 60
)

// Slug turns a title into a lower-case file name stem made of letters,
// digits and single dashes
func Slug(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimRight(b.String(), "-")
	if runes := []rune(slug); len(runes) > maxSlug {
		slug = strings.TrimRight(string(runes[:maxSlug]), "-")
	}
	return slug
}

// FileName returns the export file name for t
func FileName(t types.Tab) string {
	if !t.TitleIsManual && t.Title == types.DefaultTitle {
		return DefaultName
	}
	slug := Slug(t.Title)
	if slug == "" {
		return DefaultName
	}
	return slug + Extension
}

// Write stores the tab content at dest. When dest is an existing directory
// or ends in a separator the file is named by FileName. Returns the path
// written.
func Write(dest string, t types.Tab) (string, error) {
	path := dest
	if isDir(dest) {
		path = filepath.Join(dest, FileName(t))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(t.Content), 0644); err != nil {
		return "", fmt.Errorf("failed to export tab: %w", err)
	}
	return path, nil
}

func isDir(path string) bool {
	if path == "" || strings.HasSuffix(path, string(filepath.Separator)) {
		return true
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
