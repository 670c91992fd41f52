// Package render provides text layout helpers for TUI components.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Truncate shortens a string to fit within maxWidth, adding an ellipsis if
// truncated. Wide characters count by display width.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(s, maxWidth, "...")
}

// Pad fills a string with spaces to reach width.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// TruncateAndPad returns s at exactly width columns.
func TruncateAndPad(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// Row puts left and right at opposite ends of a width-wide line.
// At least one space separates them.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Center pads a styled line on both sides to width.
func Center(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

// Hints joins "key action" pairs with a middle dot, dropping trailing pairs
// that do not fit in width.
func Hints(pairs [][2]string, keyStyle, descStyle lipgloss.Style, width int) string {
	const sep = " · "
	var parts []string
	used := 0
	for _, p := range pairs {
		part := keyStyle.Render(p[0]) + " " + descStyle.Render(p[1])
		w := lipgloss.Width(part)
		if len(parts) > 0 {
			w += runewidth.StringWidth(sep)
		}
		if width > 0 && used+w > width {
			break
		}
		parts = append(parts, part)
		used += w
	}
	return strings.Join(parts, descStyle.Render(sep))
}
