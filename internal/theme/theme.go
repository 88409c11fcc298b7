// Package theme provides the color palette used to render HEDL diagnostics
// on a terminal.
package theme

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the small set of semantic colors the CLI's diagnostic renderer
// needs: one per severity bucket, plus a muted tone for source context and
// a caret accent for the column pointer under an offending line.
type Theme struct {
	Error   lipgloss.Color
	Warning lipgloss.Color
	Success lipgloss.Color
	Muted   lipgloss.Color
	Caret   lipgloss.Color
}

var defaultTheme = &Theme{
	Error:   lipgloss.Color("196"),
	Warning: lipgloss.Color("214"),
	Success: lipgloss.Color("42"),
	Muted:   lipgloss.Color("240"),
	Caret:   lipgloss.Color("203"),
}

var darkTheme = &Theme{
	Error:   lipgloss.Color("196"),
	Warning: lipgloss.Color("226"),
	Success: lipgloss.Color("46"),
	Muted:   lipgloss.Color("243"),
	Caret:   lipgloss.Color("213"),
}

var lightTheme = &Theme{
	Error:   lipgloss.Color("160"),
	Warning: lipgloss.Color("136"),
	Success: lipgloss.Color("28"),
	Muted:   lipgloss.Color("246"),
	Caret:   lipgloss.Color("125"),
}

var themes = map[string]*Theme{
	"default": defaultTheme,
	"dark":    darkTheme,
	"light":   lightTheme,
}

var current *Theme

// Get returns the theme with the given name, or an error if it does not
// exist.
func Get(name string) (*Theme, error) {
	t, ok := themes[name]
	if !ok {
		return nil, fmt.Errorf("theme not found: %s", name)
	}
	return t, nil
}

// Load loads the theme with the given name as the current theme.
func Load(name string) error {
	t, err := Get(name)
	if err != nil {
		return err
	}
	current = t
	return nil
}

// Current returns the active theme, defaultTheme if none has been loaded.
func Current() *Theme {
	if current == nil {
		return defaultTheme
	}
	return current
}

// Available returns a sorted list of all available theme names.
func Available() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
