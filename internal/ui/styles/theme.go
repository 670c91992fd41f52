package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/rounds/internal/timer"
)

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Phase colors, each a gradient pair
	Round    lipgloss.Color // Red - fighting
	RoundEnd lipgloss.Color
	Rest     lipgloss.Color // Teal - recovering
	RestEnd  lipgloss.Color

	// Brand/accent
	Primary lipgloss.Color // Focused input, titles

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	// Borders
	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	// Status
	Success lipgloss.Color // Session complete
	Error   lipgloss.Color
	Warning lipgloss.Color // Paused

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Key     lipgloss.Style // Key names in hints
	Flash   lipgloss.Style // Phase-change banner
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var defaultTheme = Theme{
	Round:    lipgloss.Color("#ff6b6b"),
	RoundEnd: lipgloss.Color("#f1a208"),
	Rest:     lipgloss.Color("#4ecdc4"),
	RestEnd:  lipgloss.Color("#a78bfa"),

	Primary: lipgloss.Color("#a78bfa"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

// PhaseColors returns the gradient endpoints for a phase.
func (t *Theme) PhaseColors(p timer.Phase) (from, to lipgloss.Color) {
	if p == timer.PhaseRest {
		return t.Rest, t.RestEnd
	}
	return t.Round, t.RoundEnd
}

// PhaseColor returns the solid color for a phase.
func (t *Theme) PhaseColor(p timer.Phase) lipgloss.Color {
	from, _ := t.PhaseColors(p)
	return from
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Key: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Flash: lipgloss.NewStyle().
			Reverse(true).
			Bold(true).
			Padding(0, 2),
		Success: lipgloss.NewStyle().Foreground(t.Success).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
