package timerview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/rounds/internal/timer"
	"github.com/llehouerou/rounds/internal/ui"
	"github.com/llehouerou/rounds/internal/ui/progressbar"
	"github.com/llehouerou/rounds/internal/ui/render"
	"github.com/llehouerou/rounds/internal/ui/styles"
)

// bigTextMinHeight is the height below which the countdown uses plain text.
const bigTextMinHeight = 16

// View renders the timer screen.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	t := styles.T()
	s := m.engine.Snapshot()
	width := ui.ContentWidth(m.Width())
	color := t.PhaseColor(s.Phase)

	lines := []string{
		m.flashLine(width),
		render.Center(t.S().Title.Render(fmt.Sprintf("Round %d / %d", s.Round, s.Rounds)), width),
		"",
		render.Center(styles.PhaseLabel(s.Phase), width),
		"",
	}
	lines = append(lines, m.countdown(s, color, width)...)
	lines = append(lines,
		"",
		render.Center(progressbar.RenderWithLabels(
			s.Progress,
			timer.FormatTime(s.PhaseLength-s.TimeLeft),
			timer.FormatTime(s.PhaseLength),
			width, color), width),
		"",
		render.Center(m.status(s), width),
		render.Center(m.finish(s), width),
		"",
		render.Center(m.hints(s, width), width),
	)

	return lipgloss.Place(m.Width(), m.Height(), lipgloss.Center, lipgloss.Center,
		strings.Join(lines, "\n"))
}

func (m Model) countdown(s timer.Snapshot, color lipgloss.Color, width int) []string {
	style := lipgloss.NewStyle().Foreground(color).Bold(true)
	rows := bigText(s.Formatted)
	if m.Height() < bigTextMinHeight || lipgloss.Width(rows[0]) > width {
		return []string{render.Center(style.Render(s.Formatted), width)}
	}
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = render.Center(style.Render(r), width)
	}
	return out
}

func (m Model) flashLine(width int) string {
	if m.flash == "" {
		return ""
	}
	style := styles.T().S().Flash.Foreground(styles.T().PhaseColor(m.flashPhase))
	return render.Center(style.Render(m.flash), width)
}

func (m Model) status(s timer.Snapshot) string {
	t := styles.T()
	switch {
	case s.Complete:
		return t.S().Success.Render(fmt.Sprintf("Training complete! Great job, all %d rounds done.", s.Rounds))
	case s.ExitPending:
		return t.S().Warning.Render("Stop training?")
	case s.Running:
		return t.S().Muted.Render("running")
	case !s.Started:
		return t.S().Muted.Render("ready")
	}
	return t.S().Warning.Render("paused")
}

func (m Model) finish(s timer.Snapshot) string {
	if s.Complete {
		return ""
	}
	end := m.now().Add(time.Duration(s.Remaining) * time.Second)
	return styles.T().S().Subtle.Render(fmt.Sprintf("%s left · ends %s",
		timer.FormatTime(s.Remaining), end.Format("3:04 PM")))
}

func (m Model) hints(s timer.Snapshot, width int) string {
	t := styles.T()
	toggle := "start"
	if s.Running {
		toggle = "pause"
	}
	pairs := [][2]string{{"space", toggle}, {"r", "reset"}, {"esc", "back"}, {"?", "help"}, {"q", "quit"}}
	if s.Complete {
		pairs = pairs[1:]
	}
	return render.Hints(pairs, t.S().Key, t.S().Subtle, width)
}
