// Package navctl owns the two screens and the move between them.
package navctl

import (
	"github.com/llehouerou/rounds/internal/keymap"
	"github.com/llehouerou/rounds/internal/ui/headerbar"
)

// Screen identifies the screen on display.
type Screen string

const (
	// ScreenSetup edits the session settings.
	ScreenSetup Screen = "setup"
	// ScreenTimer runs a session.
	ScreenTimer Screen = "timer"
)

// Header returns the header bar tab for the screen.
func (s Screen) Header() headerbar.Screen {
	if s == ScreenTimer {
		return headerbar.ScreenTimer
	}
	return headerbar.ScreenSetup
}

// HelpContexts returns the binding contexts the help popup lists for s.
func (s Screen) HelpContexts() []string {
	if s == ScreenTimer {
		return []string{keymap.ContextGlobal, keymap.ContextTimer}
	}
	return []string{keymap.ContextGlobal, keymap.ContextSetup}
}
