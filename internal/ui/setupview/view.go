package setupview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/rounds/internal/timer"
	"github.com/llehouerou/rounds/internal/ui"
	"github.com/llehouerou/rounds/internal/ui/render"
	"github.com/llehouerou/rounds/internal/ui/styles"
)

const labelWidth = 14

// View renders the setup screen.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	t := styles.T()
	width := ui.ContentWidth(m.Width())

	lines := []string{
		t.S().Title.Render("Training setup"),
		"",
		m.row("Rounds", m.field(inputRounds)),
		m.row("Round", m.field(inputRoundMinutes)+t.S().Muted.Render(" : ")+m.field(inputRoundSeconds)),
		m.row("Rest", m.field(inputRestMinutes)+t.S().Muted.Render(" : ")+m.field(inputRestSeconds)),
		"",
	}
	lines = append(lines, m.summary()...)
	lines = append(lines, "", render.Hints([][2]string{
		{"tab", "next"},
		{"enter", "start"},
		{"?", "help"},
		{"q", "quit"},
	}, t.S().Key, t.S().Subtle, width))

	block := lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.Width(), m.Height(), lipgloss.Center, lipgloss.Center, block)
}

func (m Model) row(label, value string) string {
	return styles.T().S().Muted.Render(render.Pad(label, labelWidth)) + value
}

func (m Model) field(i int) string {
	t := styles.T()
	border := t.Border
	if i == m.focus {
		border = t.BorderFocus
	}
	return lipgloss.NewStyle().
		Foreground(border).
		Render("[") + m.inputs[i].View() + lipgloss.NewStyle().Foreground(border).Render("]")
}

func (m Model) summary() []string {
	t := styles.T()
	s := m.Preview()

	roundTotal := s.Rounds * s.RoundDuration
	restTotal := (s.Rounds - 1) * s.RestDuration
	finish := s.ProjectedFinish(m.clock)

	value := t.S().Base.Render
	return []string{
		m.row("Round time", value(timer.FormatTime(roundTotal))),
		m.row("Rest time", value(timer.FormatTime(restTotal))),
		m.row("Total", t.S().Title.Render(timer.FormatTime(s.TotalSeconds()))),
		m.row("Finish", value(fmt.Sprintf("%s (%s)",
			finish.Format("3:04 PM"),
			humanize.RelTime(finish, m.clock, "ago", "from now")))),
	}
}
