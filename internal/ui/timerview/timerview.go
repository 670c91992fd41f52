// Package timerview is the screen that runs a session: countdown, phase,
// round counter and the start/pause, reset and back controls.
package timerview

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rounds/internal/keymap"
	"github.com/llehouerou/rounds/internal/settings"
	"github.com/llehouerou/rounds/internal/tick"
	"github.com/llehouerou/rounds/internal/timer"
	"github.com/llehouerou/rounds/internal/ui"
)

// FlashMsg shows a banner over the timer for ui.FlashDuration.
type FlashMsg struct {
	Text  string
	Phase timer.Phase
}

// flashExpiredMsg hides the banner it was scheduled for. Gen guards against
// a newer flash being hidden early.
type flashExpiredMsg struct {
	Gen int
}

// navSignal records the engine's navigate-back callback so Update can turn
// it into an action.
type navSignal struct {
	requested bool
}

// Model is the timer screen. It owns the engine and its tick source.
type Model struct {
	ui.Base
	engine *timer.Engine
	ticks  *tick.Source
	nav    *navSignal
	keys   *keymap.Resolver
	now    func() time.Time

	flash      string
	flashPhase timer.Phase
	flashGen   int
}

// Option configures a Model.
type Option func(*config)

type config struct {
	period  time.Duration
	signals timer.Signals
	now     func() time.Time
}

// WithSignals routes phase boundaries and completion to s.
func WithSignals(s timer.Signals) Option {
	return func(c *config) {
		c.signals = s
	}
}

// WithPeriod overrides the tick period.
func WithPeriod(d time.Duration) Option {
	return func(c *config) {
		c.period = d
	}
}

// WithClock replaces time.Now for the projected finish time.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// New creates a timer screen for s, paused at the start of round one.
func New(s settings.Settings, opts ...Option) Model {
	cfg := config{period: tick.DefaultPeriod, now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}

	nav := &navSignal{}
	ticks := tick.NewSource(cfg.period)
	engineOpts := []timer.Option{
		timer.WithTicker(ticks),
		timer.WithNavigate(func() { nav.requested = true }),
	}
	if cfg.signals != nil {
		engineOpts = append(engineOpts, timer.WithSignals(cfg.signals))
	}

	return Model{
		engine: timer.New(s, engineOpts...),
		ticks:  ticks,
		nav:    nav,
		keys:   keymap.ForContexts(keymap.ContextTimer),
		now:    cfg.now,
	}
}

// Snapshot returns the engine state.
func (m Model) Snapshot() timer.Snapshot {
	return m.engine.Snapshot()
}

// Settings returns the settings the session runs with.
func (m Model) Settings() settings.Settings {
	return m.engine.Settings()
}

// Running reports whether the countdown is running.
func (m Model) Running() bool {
	return m.engine.Running()
}

// Init implements tea.Model. The session starts paused, so no tick is
// scheduled yet.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the timer screen.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tick.Msg:
		if !m.ticks.Live(msg) {
			return m, nil
		}
		m.engine.Tick()
		return m, m.ticks.Next()

	case FlashMsg:
		m.flashGen++
		m.flash = msg.Text
		m.flashPhase = msg.Phase
		gen := m.flashGen
		return m, tea.Tick(ui.FlashDuration, func(time.Time) tea.Msg {
			return flashExpiredMsg{Gen: gen}
		})

	case flashExpiredMsg:
		if msg.Gen == m.flashGen {
			m.flash = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionToggle:
		return m, m.Toggle()
	case keymap.ActionReset:
		return m, m.Reset()
	case keymap.ActionBack:
		return m, m.RequestExit()
	}
	return m, nil
}

// Toggle starts or pauses the countdown.
func (m Model) Toggle() tea.Cmd {
	m.engine.Toggle()
	return m.collect()
}

// Play starts the countdown if paused.
func (m Model) Play() tea.Cmd {
	m.engine.Start()
	return m.collect()
}

// Pause halts the countdown if running.
func (m Model) Pause() tea.Cmd {
	m.engine.Pause()
	return m.collect()
}

// Reset returns to the start of round one, paused.
func (m Model) Reset() tea.Cmd {
	m.engine.Reset()
	return m.collect()
}

// ApplySettings restarts the session with s. Equal settings leave a
// session in progress alone.
func (m Model) ApplySettings(s settings.Settings) tea.Cmd {
	if s == m.engine.Settings() {
		return nil
	}
	m.engine.ApplySettings(s)
	return m.collect()
}

// RequestExit leaves at once when paused. While running it reports
// ExitRequested and waits for ConfirmExit or CancelExit.
func (m Model) RequestExit() tea.Cmd {
	if m.engine.RequestExit() == timer.ExitNeedsConfirmation {
		return func() tea.Msg { return ActionMsg(ExitRequested{}) }
	}
	return m.collect()
}

// ConfirmExit stops the countdown and leaves. The user's answer stands
// even when the pending request was dropped meanwhile, e.g. by a reset.
func (m Model) ConfirmExit() tea.Cmd {
	if !m.engine.ConfirmExit() {
		m.engine.Pause()
		m.nav.requested = true
	}
	return m.collect()
}

// CancelExit keeps the session as it was.
func (m Model) CancelExit() {
	m.engine.CancelExit()
}

// Close stops the tick source. Call it when the screen is unmounted.
func (m Model) Close() {
	m.engine.Close()
}

// collect gathers the follow-up commands of an engine operation: the first
// tick of a fresh generation and the back navigation.
func (m Model) collect() tea.Cmd {
	cmds := []tea.Cmd{m.ticks.Cmd()}
	if m.nav.requested {
		m.nav.requested = false
		cmds = append(cmds, func() tea.Msg { return ActionMsg(Back{}) })
	}
	return tea.Batch(cmds...)
}
