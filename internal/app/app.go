package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rounds/internal/app/navctl"
	"github.com/llehouerou/rounds/internal/app/popupctl"
	"github.com/llehouerou/rounds/internal/keymap"
	"github.com/llehouerou/rounds/internal/logging"
	"github.com/llehouerou/rounds/internal/settings"
	"github.com/llehouerou/rounds/internal/timer"
	"github.com/llehouerou/rounds/internal/ui/setupview"
	"github.com/llehouerou/rounds/internal/ui/timerview"
)

// Model is the root application model.
type Model struct {
	Store      *settings.Store
	Navigation *navctl.Manager
	Popups     *popupctl.Manager
	Remote     *Remote
	Log        *logging.Logger

	keys   *keymap.Resolver
	sub    *settings.Subscription
	notice string
	width  int
	height int
}

// Options configures New.
type Options struct {
	// Signals receives phase boundaries and completion of every session.
	Signals timer.Signals
	// Remote is updated after every message. Nil disables publishing.
	Remote *Remote
	Log    *logging.Logger
	// Notice is shown in the error popup at startup, e.g. a desktop
	// integration that failed to connect.
	Notice string
	// Now replaces time.Now for the finish time shown on both screens.
	Now func() time.Time
}

// New creates the root model on the setup screen.
func New(store *settings.Store, opts Options) Model {
	if opts.Log == nil {
		opts.Log = logging.Discard()
	}

	var setupOpts []setupview.Option
	var timerOpts []timerview.Option
	if opts.Now != nil {
		setupOpts = append(setupOpts, setupview.WithClock(opts.Now))
		timerOpts = append(timerOpts, timerview.WithClock(opts.Now))
	}
	if opts.Signals != nil {
		timerOpts = append(timerOpts, timerview.WithSignals(opts.Signals))
	}

	m := Model{
		Store:      store,
		Navigation: navctl.New(setupview.New(store, setupOpts...), timerOpts...),
		Popups:     popupctl.New(),
		Remote:     opts.Remote,
		Log:        opts.Log,
		keys:       keymap.ForContexts(keymap.ContextGlobal),
		sub:        store.Subscribe(),
		notice:     opts.Notice,
	}
	m.publish()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.notice != "" {
		m.Popups.ShowError(m.notice)
	}
	return tea.Batch(
		m.Navigation.Setup().Init(),
		waitForSettings(m.sub),
	)
}

// Close ends the running session, if any. Call it after the program exits.
func (m Model) Close() {
	m.Navigation.Close()
}

// publish hands the current timer state to the remote.
func (m Model) publish() {
	if m.Remote == nil {
		return
	}
	m.Remote.publish(m.Navigation.Snapshot(m.Store.Get()))
}

// summary is the settings line shown in the header bar.
func summary(s settings.Settings) string {
	return fmt.Sprintf("%d × %s · %s rest",
		s.Rounds, timer.FormatTime(s.RoundDuration), timer.FormatTime(s.RestDuration))
}
