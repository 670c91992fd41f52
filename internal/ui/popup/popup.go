package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/rounds/internal/ui/render"
	"github.com/llehouerou/rounds/internal/ui/styles"
)

// Dialog is a static centered message box with a title and footer.
type Dialog struct {
	Title   string
	Content string
	Footer  string
}

// Render returns the dialog centered in a termWidth x termHeight screen.
func (d Dialog) Render(termWidth, termHeight int) string {
	t := styles.T()

	width := maxLineWidth(d.Content)
	width = max(width, lipgloss.Width(d.Title), lipgloss.Width(d.Footer)) + 2
	width = min(width, max(termWidth-4, 1))

	var lines []string
	if d.Title != "" {
		lines = append(lines, render.Center(t.S().Title.Render(d.Title), width), "")
	}
	for line := range strings.SplitSeq(d.Content, "\n") {
		lines = append(lines, render.TruncateAndPad(line, width))
	}
	if d.Footer != "" {
		lines = append(lines, "", render.Center(t.S().Subtle.Render(d.Footer), width))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1).
		Width(width).
		Render(strings.Join(lines, "\n"))

	return Center(box, termWidth, termHeight)
}

// RenderBordered wraps popup content in a rounded border sized to fit and
// centers it on screen.
func RenderBordered(content string, screenW, screenH int) string {
	// Border plus horizontal padding.
	width := min(maxLineWidth(content)+6, max(screenW-4, 1))
	height := min(strings.Count(content, "\n")+1+4, max(screenH-4, 1))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().BorderFocus).
		Width(width-2).
		Height(height-2).
		Padding(1, 2).
		Render(content)

	return Center(box, screenW, screenH)
}

// Center places pre-rendered content in the middle of the screen.
func Center(content string, termWidth, termHeight int) string {
	lines := strings.Split(content, "\n")
	padTop := max((termHeight-len(lines))/2, 0)
	padLeft := max((termWidth-maxLineWidth(content))/2, 0)

	var b strings.Builder
	for range padTop {
		b.WriteString(strings.Repeat(" ", termWidth) + "\n")
	}
	for _, line := range lines {
		b.WriteString(strings.Repeat(" ", padLeft))
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// Compose overlays popupView on base. Visible characters of each overlay
// line replace the base at the same columns; blank overlay lines leave the
// base untouched.
func Compose(base, popupView string, width int) string {
	baseLines := strings.Split(base, "\n")

	for i, overlayLine := range strings.Split(popupView, "\n") {
		if i >= len(baseLines) {
			break
		}

		plain := ansi.Strip(overlayLine)
		if strings.TrimSpace(plain) == "" {
			continue
		}

		startCol := len(plain) - len(strings.TrimLeft(plain, " "))
		endCol := ansi.StringWidth(strings.TrimRight(plain, " "))
		content := ansi.Cut(overlayLine, startCol, endCol)

		baseLine := baseLines[i]
		if w := ansi.StringWidth(baseLine); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}

		// Wide characters cut at either edge leave the prefix or suffix
		// short; pad so columns stay aligned.
		prefix := ansi.Cut(baseLine, 0, startCol)
		if w := ansi.StringWidth(prefix); w < startCol {
			prefix += strings.Repeat(" ", startCol-w)
		}
		line := prefix + content
		if endCol < width {
			suffix := ansi.Cut(baseLine, endCol, width)
			if w := ansi.StringWidth(suffix); w < width-endCol {
				suffix = strings.Repeat(" ", width-endCol-w) + suffix
			}
			line += suffix
		}
		baseLines[i] = line
	}

	return strings.Join(baseLines, "\n")
}

func maxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		maxW = max(maxW, lipgloss.Width(line))
	}
	return maxW
}
