package setupview

import (
	"github.com/llehouerou/rounds/internal/settings"
	"github.com/llehouerou/rounds/internal/ui/action"
)

// Committed reports settings written to the store; the app starts the
// timer screen with them.
type Committed struct {
	Settings settings.Settings
}

// ActionType implements action.Action.
func (a Committed) ActionType() string { return "setupview.committed" }

// ActionMsg creates an action.Msg for a setupview action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "setupview", Action: a}
}
