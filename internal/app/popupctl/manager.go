// Package popupctl tracks the modal popups and draws them over the screen.
package popupctl

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rounds/internal/ui/confirm"
	"github.com/llehouerou/rounds/internal/ui/helpbindings"
	"github.com/llehouerou/rounds/internal/ui/popup"
)

// Manager manages all modal popups.
type Manager struct {
	popups   map[Type]popup.Popup
	errorMsg string
	width    int
	height   int
}

// New creates an empty Manager.
func New() *Manager {
	return &Manager{popups: make(map[Type]popup.Popup)}
}

// SetSize updates the dimensions for popup rendering.
func (p *Manager) SetSize(width, height int) {
	p.width = width
	p.height = height
	for _, pop := range p.popups {
		pop.SetSize(width, height)
	}
}

// IsVisible returns true if the specified popup type is visible.
func (p *Manager) IsVisible(t Type) bool {
	switch t {
	case None:
		return false
	case Error:
		return p.errorMsg != ""
	case Help, Confirm:
		return p.popups[t] != nil
	}
	return false
}

// ActivePopup returns which popup is currently active (highest priority).
func (p *Manager) ActivePopup() Type {
	for _, t := range Priority {
		if p.IsVisible(t) {
			return t
		}
	}
	return None
}

// Show displays a popup of the given type.
func (p *Manager) Show(t Type, pop popup.Popup) tea.Cmd {
	pop.SetSize(p.width, p.height)
	p.popups[t] = pop
	return pop.Init()
}

// Hide hides the specified popup type.
func (p *Manager) Hide(t Type) {
	switch t {
	case None:
	case Error:
		p.errorMsg = ""
	case Help, Confirm:
		delete(p.popups, t)
	}
}

// ShowHelp displays the key bindings of the given contexts.
func (p *Manager) ShowHelp(contexts []string) tea.Cmd {
	help := helpbindings.New()
	help.SetContexts(contexts)
	return p.Show(Help, &help)
}

// ShowConfirm asks a yes/no question. The answer comes back as a
// confirm.Result carrying ctx.
func (p *Manager) ShowConfirm(title, message string, ctx ConfirmContext) tea.Cmd {
	c := confirm.New()
	c.Show(title, message, ctx, p.width, p.height)
	return p.Show(Confirm, &c)
}

// ShowError displays an error message popup.
func (p *Manager) ShowError(msg string) {
	p.errorMsg = msg
}

// ErrorMsg returns the current error message.
func (p *Manager) ErrorMsg() string {
	return p.errorMsg
}

// HandleKey routes key events to the active popup.
// Returns (handled, cmd) where handled is true if a popup consumed the key.
func (p *Manager) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	// Error popup: dismiss on any key
	if p.errorMsg != "" {
		p.errorMsg = ""
		return true, nil
	}

	active := p.ActivePopup()
	if active == None {
		return false, nil
	}

	pop := p.popups[active]
	updated, cmd := pop.Update(msg)
	p.popups[active] = updated
	return true, cmd
}

// RenderOverlay renders active popups on top of the base view.
func (p *Manager) RenderOverlay(base string) string {
	for _, t := range RenderOrder {
		if !p.IsVisible(t) {
			continue
		}

		if t == Error {
			base = popup.Compose(base, p.renderError(), p.width)
			continue
		}

		rendered := popup.RenderBordered(p.popups[t].View(), p.width, p.height)
		base = popup.Compose(base, rendered, p.width)
	}
	return base
}

func (p *Manager) renderError() string {
	d := popup.Dialog{
		Title:   "Error",
		Content: p.errorMsg,
		Footer:  "Press any key to dismiss",
	}
	return d.Render(p.width, p.height)
}
