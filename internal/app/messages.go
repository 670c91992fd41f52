// Package app is the root bubbletea model: it routes keys, owns the popups
// and moves between the setup and timer screens.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rounds/internal/settings"
)

// Message category interfaces for type-based routing in Update().
// Messages from other packages cannot implement these, so they are
// handled separately in the Update() switch.

// SettingsMessage is implemented by messages from the settings store.
type SettingsMessage interface {
	tea.Msg
	settingsMessage()
}

// RemoteMessage is implemented by commands from outside the terminal.
type RemoteMessage interface {
	tea.Msg
	remoteMessage()
}

// SettingsChangedMsg carries a value committed to the settings store.
type SettingsChangedMsg settings.Settings

func (SettingsChangedMsg) settingsMessage() {}

// SettingsClosedMsg is sent once the store ends the subscription.
type SettingsClosedMsg struct{}

func (SettingsClosedMsg) settingsMessage() {}

// RemoteCommand is a control request from the desktop media keys.
type RemoteCommand int

const (
	RemoteToggle RemoteCommand = iota
	RemotePlay
	RemotePause
	RemoteReset
)

// RemoteMsg delivers a RemoteCommand to the event loop.
type RemoteMsg struct {
	Command RemoteCommand
}

func (RemoteMsg) remoteMessage() {}

// waitForSettings waits for the next committed settings value.
func waitForSettings(sub *settings.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case s := <-sub.Changed:
			return SettingsChangedMsg(s)
		case <-sub.Done:
			return SettingsClosedMsg{}
		}
	}
}
