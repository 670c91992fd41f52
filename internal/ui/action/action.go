// Package action defines the interface for UI component actions.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action represents an action from a UI component.
// ActionType returns a string identifier for logging.
type Action interface {
	ActionType() string
}

// Msg wraps a UI action with its source component name.
// UI components report to the app through it.
type Msg struct {
	Source string // Component name: "confirm", "helpbindings", "setupview", "timerview"
	Action Action
}

var _ tea.Msg = Msg{}
