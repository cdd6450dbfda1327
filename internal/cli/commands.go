package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/studiowebux/editpad/internal/export"
	"github.com/studiowebux/editpad/internal/session"
	"github.com/studiowebux/editpad/internal/types"
	"gopkg.in/yaml.v3"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// tabSummary is the list output record
type tabSummary struct {
	ID     string `json:"id" yaml:"id"`
	Title  string `json:"title" yaml:"title"`
	Chars  int    `json:"chars" yaml:"chars"`
	Active bool   `json:"active" yaml:"active"`
	Manual bool   `json:"titleIsManual" yaml:"titleIsManual"`
}

// List writes the tabs in display order. format is text, json or yaml.
func List(s *Session, w io.Writer, format string) error {
	active := s.ctrl.ActiveID()
	all := s.ctrl.Tabs()

	summaries := make([]tabSummary, len(all))
	for i, t := range all {
		summaries[i] = tabSummary{
			ID:     t.ID,
			Title:  t.DisplayTitle(),
			Chars:  utf8.RuneCountInString(t.Content),
			Active: t.ID == active,
			Manual: t.TitleIsManual,
		}
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(summaries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	case "yaml":
		data, err := yaml.Marshal(summaries)
		if err != nil {
			return fmt.Errorf("failed to format YAML: %w", err)
		}
		_, err = w.Write(data)
		return err

	case "", "text":
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("", "ID", "TITLE", "CHARS").
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			})
		for _, sum := range summaries {
			marker := ""
			if sum.Active {
				marker = "*"
			}
			t.Row(marker, sum.ID, sum.Title, strconv.Itoa(sum.Chars))
		}
		_, err := fmt.Fprintln(w, t.Render())
		return err

	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

// NewOptions describes a tab created from the command line
type NewOptions struct {
	Title   string
	Content string
}

// NewTab creates, activates and persists a tab
func NewTab(s *Session, opts NewOptions) (types.Tab, error) {
	t, ok := s.ctrl.CreateAndActivate(opts.Title)
	if !ok {
		return types.Tab{}, fmt.Errorf("session is not ready")
	}

	if opts.Content != "" {
		s.surface.SetContent(opts.Content)
		s.ctrl.CaptureActive()
		t, _ = s.ctrl.Find(t.ID)
	}
	return t, nil
}

// ReadContent reads a file, or stdin when path is "-"
func ReadContent(path string, stdin io.Reader) (string, error) {
	if path == "" {
		return "", nil
	}
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// CloseTab closes the tab identified by ref after confirm approves.
// Returns false when the user declined.
func CloseTab(s *Session, ref string, confirm session.Confirmer) (bool, error) {
	t, err := s.Resolve(ref)
	if err != nil {
		return false, err
	}
	return s.ctrl.CloseAndReconcile(t.ID, confirm), nil
}

// ExportTab writes the tab identified by ref (the active tab when empty) to
// dest and returns the path written
func ExportTab(s *Session, ref, dest string) (string, error) {
	t, err := s.Resolve(ref)
	if err != nil {
		return "", err
	}
	return export.Write(dest, t)
}
