// Package headerbar renders the one-line screen indicator at the top.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/rounds/internal/ui/render"
	"github.com/llehouerou/rounds/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// Screen names the tab to highlight.
type Screen string

const (
	ScreenSetup Screen = "setup"
	ScreenTimer Screen = "timer"
)

type tab struct {
	name   string
	screen Screen
}

var tabs = []tab{
	{"Setup", ScreenSetup},
	{"Timer", ScreenTimer},
}

// Render returns the header for width columns: the app name and tabs on
// the left, summary on the right.
func Render(current Screen, summary string, width int) string {
	if width < 20 {
		return ""
	}
	t := styles.T()

	active := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	inactive := t.S().Muted
	separator := t.S().Subtle.Render(" │ ")

	parts := make([]string, 0, len(tabs))
	for _, tb := range tabs {
		style := inactive
		if tb.screen == current {
			style = active
		}
		parts = append(parts, style.Render(tb.name))
	}

	left := t.S().Title.Render("ROUNDS") + "  " + strings.Join(parts, separator)
	right := t.S().Subtle.Render(summary)
	if lipgloss.Width(left)+lipgloss.Width(right)+1 > width {
		right = ""
	}
	return render.Row(left, right, width)
}
