package navctl

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rounds/internal/settings"
	"github.com/llehouerou/rounds/internal/timer"
	"github.com/llehouerou/rounds/internal/ui/setupview"
	"github.com/llehouerou/rounds/internal/ui/timerview"
)

// Manager holds the setup screen, the mounted timer screen if any, and
// which of the two is on display.
//
// A timer screen exists only between StartSession and ShowSetup. Leaving
// it closes its engine, so no tick source outlives the screen.
type Manager struct {
	screen  Screen
	setup   setupview.Model
	timer   timerview.Model
	mounted bool
	opts    []timerview.Option
	width   int
	height  int
}

// New creates a manager showing setup. opts are passed to every timer
// screen it mounts.
func New(setup setupview.Model, opts ...timerview.Option) *Manager {
	return &Manager{
		screen: ScreenSetup,
		setup:  setup,
		opts:   opts,
	}
}

// Screen returns the screen on display.
func (n *Manager) Screen() Screen {
	return n.screen
}

// Setup returns the setup screen.
func (n *Manager) Setup() setupview.Model {
	return n.setup
}

// SetSetup stores an updated setup screen.
func (n *Manager) SetSetup(m setupview.Model) {
	n.setup = m
}

// Timer returns the timer screen. ok is false when no session is mounted.
func (n *Manager) Timer() (m timerview.Model, ok bool) {
	return n.timer, n.mounted
}

// SetTimer stores an updated timer screen.
func (n *Manager) SetTimer(m timerview.Model) {
	if n.mounted {
		n.timer = m
	}
}

// StartSession mounts a fresh timer screen for s and shows it.
// A previously mounted session is closed first.
func (n *Manager) StartSession(s settings.Settings) tea.Cmd {
	n.unmount()
	n.timer = timerview.New(s, n.opts...)
	n.timer.SetSize(n.width, n.height)
	n.mounted = true
	n.screen = ScreenTimer
	return n.timer.Init()
}

// ShowSetup closes the session and shows the setup screen with the
// store's current values.
func (n *Manager) ShowSetup() {
	n.unmount()
	n.setup.Load()
	n.screen = ScreenSetup
}

// Close unmounts the timer screen for shutdown.
func (n *Manager) Close() {
	n.unmount()
}

// Snapshot returns the mounted session's state, or the initial state for
// fallback when no session is mounted.
func (n *Manager) Snapshot(fallback settings.Settings) timer.Snapshot {
	if n.mounted {
		return n.timer.Snapshot()
	}
	return timer.New(fallback).Snapshot()
}

// SetSize resizes both screens.
func (n *Manager) SetSize(width, height int) {
	n.width = width
	n.height = height
	n.setup.SetSize(width, height)
	if n.mounted {
		n.timer.SetSize(width, height)
	}
}

// View renders the screen on display.
func (n *Manager) View() string {
	if n.screen == ScreenTimer && n.mounted {
		return n.timer.View()
	}
	return n.setup.View()
}

func (n *Manager) unmount() {
	if !n.mounted {
		return
	}
	n.timer.Close()
	n.timer = timerview.Model{}
	n.mounted = false
}
