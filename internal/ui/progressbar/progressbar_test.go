package progressbar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const red = lipgloss.Color("#ff6b6b")

func TestRender(t *testing.T) {
	tests := []struct {
		name       string
		ratio      float64
		width      int
		wantFilled int
	}{
		{"empty", 0, 10, 0},
		{"half", 0.5, 10, 5},
		{"full", 1, 10, 10},
		{"over", 1.5, 10, 10},
		{"under", -1, 10, 0},
		{"rounds down", 0.99, 10, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ansi.Strip(Render(tt.ratio, tt.width, red))
			if n := strings.Count(got, filledBlock); n != tt.wantFilled {
				t.Errorf("filled = %d, want %d", n, tt.wantFilled)
			}
			if w := lipgloss.Width(got); w != tt.width {
				t.Errorf("width = %d, want %d", w, tt.width)
			}
		})
	}
}

func TestRender_TooNarrow(t *testing.T) {
	if got := Render(0.5, 3, red); got != "" {
		t.Errorf("Render narrow = %q, want empty", got)
	}
}

func TestRenderWithLabels(t *testing.T) {
	got := ansi.Strip(RenderWithLabels(0.5, "1:30", "3:00", 30, red))
	if !strings.HasPrefix(got, "1:30  ") || !strings.HasSuffix(got, "  3:00") {
		t.Errorf("labels misplaced: %q", got)
	}
	if w := lipgloss.Width(got); w != 30 {
		t.Errorf("width = %d, want 30", w)
	}

	if got := RenderWithLabels(0.5, "1:30", "3:00", 12, red); got != "1:30 / 3:00" {
		t.Errorf("narrow fallback = %q", got)
	}
}
