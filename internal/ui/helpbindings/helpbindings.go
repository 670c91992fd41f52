// Package helpbindings provides a scrollable popup listing key bindings.
package helpbindings

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/rounds/internal/keymap"
	"github.com/llehouerou/rounds/internal/ui"
	"github.com/llehouerou/rounds/internal/ui/popup"
	"github.com/llehouerou/rounds/internal/ui/render"
	"github.com/llehouerou/rounds/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

// chromeHeight is the popup title, footer, border and padding.
const chromeHeight = 10

var categoryLabels = map[string]string{
	keymap.ContextGlobal: "Global",
	keymap.ContextSetup:  "Setup",
	keymap.ContextTimer:  "Timer",
}

// Model holds the state for the help bindings popup.
type Model struct {
	ui.Base
	bindings     []keymap.Binding
	scrollOffset int
}

// New creates a new help bindings model.
func New() Model {
	return Model{}
}

// SetContexts sets which binding contexts to display.
func (m *Model) SetContexts(contexts []string) {
	m.bindings = keymap.ByContext(contexts...)
	m.scrollOffset = 0
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case "j", "down":
		if m.scrollOffset < m.maxScroll() {
			m.scrollOffset++
		}
	case "k", "up":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	t := styles.T()

	lines := m.lines()
	maxWidth := 0
	for _, line := range lines {
		maxWidth = max(maxWidth, lipgloss.Width(line))
	}

	start := min(m.scrollOffset, len(lines))
	end := min(start+m.visibleHeight(), len(lines))
	visible := make([]string, 0, end-start)
	for _, line := range lines[start:end] {
		visible = append(visible, render.Pad(line, maxWidth))
	}

	var b strings.Builder
	b.WriteString(t.S().Title.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(visible, "\n"))
	b.WriteString("\n\n")
	b.WriteString(t.S().Subtle.Render(m.footer(len(lines))))
	return b.String()
}

func (m Model) lines() []string {
	t := styles.T()
	header := lipgloss.NewStyle().Foreground(t.Warning).Bold(true)

	keyWidth := 0
	for _, b := range m.bindings {
		keyWidth = max(keyWidth, lipgloss.Width(keyLabel(b)))
	}

	var lines []string
	current := ""
	for _, b := range m.bindings {
		if b.Context != current {
			if current != "" {
				lines = append(lines, "")
			}
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			lines = append(lines,
				header.Render(label),
				t.S().Subtle.Render(strings.Repeat("─", keyWidth+20)))
			current = b.Context
		}
		lines = append(lines,
			t.S().Key.Render(render.Pad(keyLabel(b), keyWidth))+"  "+t.S().Base.Render(b.Description))
	}
	return lines
}

func keyLabel(b keymap.Binding) string {
	keys := make([]string, len(b.Keys))
	for i, k := range b.Keys {
		keys[i] = keymap.DisplayKey(k)
	}
	return strings.Join(keys, ", ")
}

func (m Model) footer(total int) string {
	if total <= m.visibleHeight() {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

func (m Model) visibleHeight() int {
	return max(m.Height()-chromeHeight, 5)
}

func (m Model) maxScroll() int {
	return max(len(m.lines())-m.visibleHeight(), 0)
}
