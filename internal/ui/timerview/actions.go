package timerview

import (
	"github.com/llehouerou/rounds/internal/ui/action"
)

// Back asks the app to return to the setup screen.
type Back struct{}

// ActionType implements action.Action.
func (a Back) ActionType() string { return "timerview.back" }

// ExitRequested asks the app to confirm leaving a running session.
// Answer with ConfirmExit or CancelExit.
type ExitRequested struct{}

// ActionType implements action.Action.
func (a ExitRequested) ActionType() string { return "timerview.exit_requested" }

// ActionMsg creates an action.Msg for a timerview action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "timerview", Action: a}
}
