package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// PromptConfirmer asks on Out and reads a y/n answer from In
type PromptConfirmer struct {
	In  io.Reader
	Out io.Writer
}

// NewPromptConfirmer prompts on stderr and reads stdin
func NewPromptConfirmer() *PromptConfirmer {
	return &PromptConfirmer{In: os.Stdin, Out: os.Stderr}
}

// Confirm returns true only for an explicit yes. EOF or a read error
// declines.
func (p *PromptConfirmer) Confirm(message string) bool {
	fmt.Fprintf(p.Out, "%s [y/N]: ", message)
	reader := bufio.NewReader(p.In)
	answer, err := reader.ReadString('\n')
	if err != nil && answer == "" {
		fmt.Fprintln(p.Out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// IsInteractive checks if stdin is a terminal (not piped)
func IsInteractive() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
