// Package progressbar renders the block progress bar of the timer view.
package progressbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/rounds/internal/ui"
)

var (
	filledBlock = "▓"
	emptyBlock  = "░"
)

// Render renders a block bar of width columns filled to ratio (0 to 1).
// Format: ▓▓▓▓▓░░░░░
func Render(ratio float64, width int, color lipgloss.Color) string {
	if width < ui.MinProgressBarWidth {
		return ""
	}
	ratio = max(0, min(ratio, 1))
	filled := min(int(float64(width)*ratio), width)

	fill := lipgloss.NewStyle().Foreground(color)
	empty := lipgloss.NewStyle().Foreground(lipgloss.Color("#3a3a3a"))
	return fill.Render(strings.Repeat(filledBlock, filled)) +
		empty.Render(strings.Repeat(emptyBlock, width-filled))
}

// RenderWithLabels puts elapsed and total labels around the bar.
// Format: 1:23  ▓▓▓▓▓░░░░░  3:00
// It falls back to "1:23 / 3:00" when too narrow for the bar.
func RenderWithLabels(ratio float64, elapsed, total string, width int, color lipgloss.Color) string {
	fixed := lipgloss.Width(elapsed) + 2 + 2 + lipgloss.Width(total)
	barWidth := width - fixed
	if barWidth < ui.MinProgressBarWidth {
		return elapsed + " / " + total
	}
	return elapsed + "  " + Render(ratio, barWidth, color) + "  " + total
}
