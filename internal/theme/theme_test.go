package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name      string
		themeName string
		wantTheme *Theme
		wantError bool
	}{
		{name: "get default theme", themeName: "default", wantTheme: defaultTheme},
		{name: "get dark theme", themeName: "dark", wantTheme: darkTheme},
		{name: "get light theme", themeName: "light", wantTheme: lightTheme},
		{name: "get nonexistent theme", themeName: "nonexistent", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Get(tt.themeName)
			if (err != nil) != tt.wantError {
				t.Errorf("Get(%q) error = %v, wantError %v", tt.themeName, err, tt.wantError)
				return
			}
			if got != tt.wantTheme {
				t.Errorf("Get(%q) = %v, want %v", tt.themeName, got, tt.wantTheme)
			}
		})
	}
}

func TestLoadAndCurrent(t *testing.T) {
	current = nil
	t.Cleanup(func() { current = nil })

	if got := Current(); got != defaultTheme {
		t.Errorf("Current() before any Load = %v, want defaultTheme", got)
	}

	if err := Load("dark"); err != nil {
		t.Fatalf("Load(\"dark\") failed: %v", err)
	}
	if got := Current(); got != darkTheme {
		t.Errorf("Current() after Load(\"dark\") = %v, want darkTheme", got)
	}

	if err := Load("nonexistent"); err == nil {
		t.Error("Load(\"nonexistent\") returned nil error, want error")
	}
	if got := Current(); got != darkTheme {
		t.Errorf("Current() after failed Load = %v, want darkTheme unchanged", got)
	}
}

func TestAvailable(t *testing.T) {
	got := Available()
	want := []string{"dark", "default", "light"}
	if len(got) != len(want) {
		t.Fatalf("Available() returned %v, want %v", got, want)
	}
	for i, name := range want {
		if got[i] != name {
			t.Errorf("Available()[%d] = %q, want %q", i, got[i], name)
		}
	}
}

func TestDefaultThemeColors(t *testing.T) {
	tests := []struct {
		field string
		got   lipgloss.Color
		want  lipgloss.Color
	}{
		{"Error", defaultTheme.Error, lipgloss.Color("196")},
		{"Warning", defaultTheme.Warning, lipgloss.Color("214")},
		{"Success", defaultTheme.Success, lipgloss.Color("42")},
		{"Muted", defaultTheme.Muted, lipgloss.Color("240")},
		{"Caret", defaultTheme.Caret, lipgloss.Color("203")},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("defaultTheme.%s = %q, want %q", tt.field, tt.got, tt.want)
			}
		})
	}
}
