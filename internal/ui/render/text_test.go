package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"truncation with ellipsis", "hello world", 8, "hello..."},
		{"very short max width", "hello", 3, "..."},
		{"empty string", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestTruncateAndPad(t *testing.T) {
	if got := TruncateAndPad("ab", 4); got != "ab  " {
		t.Errorf("TruncateAndPad short = %q", got)
	}
	if got := TruncateAndPad("abcdefgh", 6); got != "abc..." {
		t.Errorf("TruncateAndPad long = %q", got)
	}
}

func TestRow(t *testing.T) {
	tests := []struct {
		left, right string
		width       int
		want        string
	}{
		{"a", "b", 5, "a   b"},
		{"left", "right", 4, "left right"},
	}
	for _, tt := range tests {
		if got := Row(tt.left, tt.right, tt.width); got != tt.want {
			t.Errorf("Row(%q, %q, %d) = %q, want %q", tt.left, tt.right, tt.width, got, tt.want)
		}
	}
}

func TestCenter(t *testing.T) {
	if got := Center("ab", 6); got != "  ab  " {
		t.Errorf("Center even = %q", got)
	}
	if got := Center("ab", 5); got != " ab  " {
		t.Errorf("Center odd = %q", got)
	}
	if got := Center("abcdef", 3); got != "abcdef" {
		t.Errorf("Center overflow = %q", got)
	}
}

func TestHints(t *testing.T) {
	plain := lipgloss.NewStyle()
	pairs := [][2]string{{"space", "start"}, {"r", "reset"}, {"?", "help"}}

	got := ansi.Strip(Hints(pairs, plain, plain, 0))
	if got != "space start · r reset · ? help" {
		t.Errorf("Hints unbounded = %q", got)
	}

	got = ansi.Strip(Hints(pairs, plain, plain, 21))
	if got != "space start · r reset" {
		t.Errorf("Hints bounded = %q", got)
	}
}
