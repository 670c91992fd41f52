package popupctl

// Type identifies which popup is currently active.
type Type int

const (
	None Type = iota
	Help
	Confirm
	Error
)

// Priority defines which popup takes precedence (highest priority first).
var Priority = []Type{
	Error,
	Confirm,
	Help,
}

// RenderOrder defines the order popups are rendered (bottom to top).
var RenderOrder = []Type{
	Help,
	Confirm,
	Error,
}

// ConfirmContext tells the app what a confirmation answer applies to.
type ConfirmContext int

const (
	// ConfirmLeaveSession gates leaving a running session for setup.
	ConfirmLeaveSession ConfirmContext = iota + 1
	// ConfirmQuit gates quitting while a session runs.
	ConfirmQuit
)
