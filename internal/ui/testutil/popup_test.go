package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rounds/internal/ui/popup"
)

type mockPopup struct {
	content    string
	keyHistory []string
}

var _ popup.Popup = (*mockPopup)(nil)

func (m *mockPopup) Init() tea.Cmd {
	return func() tea.Msg { return "init" }
}

func (m *mockPopup) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		m.keyHistory = append(m.keyHistory, key.String())
		if key.Type == tea.KeyEnter {
			return m, func() tea.Msg { return "enter-pressed" }
		}
	}
	return m, nil
}

func (m *mockPopup) View() string     { return m.content }
func (m *mockPopup) SetSize(_, _ int) {}

func TestPopupHarness(t *testing.T) {
	mock := &mockPopup{content: "Stop training?"}
	h := NewPopupHarness(mock)

	if len(h.Commands()) != 1 {
		t.Fatalf("expected init command, got %d", len(h.Commands()))
	}

	h.SendKey("y")
	h.SendKey("enter")

	if got := ExecuteCmd(h.LastCommand()); got != "enter-pressed" {
		t.Errorf("last command produced %v", got)
	}
	if len(mock.keyHistory) != 2 || mock.keyHistory[1] != "enter" {
		t.Errorf("keyHistory = %v", mock.keyHistory)
	}
	if msg := h.AssertViewContains("training"); msg != "" {
		t.Error(msg)
	}

	h.ClearCommands()
	if h.LastCommand() != nil {
		t.Error("expected no commands after clear")
	}
}
