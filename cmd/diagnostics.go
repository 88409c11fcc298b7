// Package cmd implements the thin CLI façade over the core hedl parser:
// validate, lint, inspect, stats, and batch-validate. format/batch-format
// are declared but not implemented — they require the canonicalizer, which
// is out of this module's scope.
package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hedl-lang/hedl/internal/hedlerr"
	"github.com/hedl-lang/hedl/internal/theme"
)

// renderError formats err for terminal output. When err is a *hedlerr.Error
// with a known line, and source is non-nil, the offending line is printed
// beneath the message with a caret under the column, when known.
func renderError(path string, err error, source []byte, color bool) string {
	var herr *hedlerr.Error
	if !errors.As(err, &herr) {
		return fmt.Sprintf("%s: %s", path, err)
	}

	t := theme.Current()
	kindStyle := lipgloss.NewStyle()
	mutedStyle := lipgloss.NewStyle()
	caretStyle := lipgloss.NewStyle()
	if color {
		kindStyle = kindStyle.Foreground(t.Error).Bold(true)
		mutedStyle = mutedStyle.Foreground(t.Muted)
		caretStyle = caretStyle.Foreground(t.Caret).Bold(true)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", path, kindStyle.Render(fmt.Sprintf("%s error", herr.Kind)))
	if herr.Line > 0 {
		fmt.Fprintf(&b, "  %s: %s\n", mutedStyle.Render(fmt.Sprintf("line %d", herr.Line)), herr.Message)
	} else {
		fmt.Fprintf(&b, "  %s\n", herr.Message)
	}

	if line, ok := sourceLine(source, herr.Line); ok {
		fmt.Fprintf(&b, "  %s %s\n", mutedStyle.Render(fmt.Sprintf("%4d |", herr.Line)), line)
		if herr.Column > 0 {
			pad := strings.Repeat(" ", len(fmt.Sprintf("%4d | ", herr.Line))+herr.Column-1)
			fmt.Fprintf(&b, "  %s%s\n", pad, caretStyle.Render("^"))
		}
	}

	return b.String()
}

func sourceLine(source []byte, line int) (string, bool) {
	if source == nil || line <= 0 {
		return "", false
	}
	lines := strings.Split(string(source), "\n")
	if line > len(lines) {
		return "", false
	}
	return lines[line-1], true
}
