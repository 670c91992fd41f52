// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Setup actions
	ActionNextField Action = "next_field"
	ActionPrevField Action = "prev_field"
	ActionStart     Action = "start_session"

	// Timer actions
	ActionToggle Action = "toggle" // space - start/pause
	ActionReset  Action = "reset"
	ActionBack   Action = "back" // esc/b - back to setup, gated while running
)

// Binding contexts.
const (
	ContextGlobal = "global"
	ContextSetup  = "setup"
	ContextTimer  = "timer"
)
