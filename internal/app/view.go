package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/rounds/internal/ui"
	"github.com/llehouerou/rounds/internal/ui/headerbar"
	"github.com/llehouerou/rounds/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.width < ui.MinWidth || m.height < ui.MinHeight {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			styles.T().S().Muted.Render("Terminal too small"))
	}

	s := m.Store.Get()
	if tv, ok := m.Navigation.Timer(); ok {
		s = tv.Settings()
	}
	header := headerbar.Render(m.Navigation.Screen().Header(), summary(s), m.width)
	separator := styles.T().S().Subtle.Render(strings.Repeat("─", m.width))

	base := header + "\n" + separator + "\n" + m.Navigation.View()
	return m.Popups.RenderOverlay(base)
}
