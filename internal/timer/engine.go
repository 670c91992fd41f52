package timer

import (
	"github.com/llehouerou/rounds/internal/settings"
)

// Engine is the countdown/phase state machine for one session.
//
// All methods must be called from a single goroutine. The engine owns its
// Ticker: every control operation stops the pending tick before mutating
// state and restarts it only when the engine ends up running.
type Engine struct {
	settings settings.Settings

	phase       Phase
	round       int
	timeLeft    int
	running     bool
	started     bool
	complete    bool
	exitPending bool

	ticker   Ticker
	signals  Signals
	navigate func()
}

// Option configures an Engine.
type Option func(*Engine)

// WithTicker sets the tick source.
func WithTicker(t Ticker) Option {
	return func(e *Engine) {
		if t != nil {
			e.ticker = t
		}
	}
}

// WithSignals sets the receiver of phase-boundary and completion signals.
func WithSignals(s Signals) Option {
	return func(e *Engine) {
		if s != nil {
			e.signals = s
		}
	}
}

// WithNavigate sets the callback invoked when the user leaves the session.
func WithNavigate(fn func()) Option {
	return func(e *Engine) {
		e.navigate = fn
	}
}

// New creates an engine in the initial state for s.
// s is expected to come from a settings.Store and is not validated again.
func New(s settings.Settings, opts ...Option) *Engine {
	e := &Engine{
		settings: s,
		ticker:   nopTicker{},
		signals:  nopSignals{},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.reset()
	return e
}

// Settings returns the settings of the current session.
func (e *Engine) Settings() settings.Settings { return e.settings }

// Phase returns the active phase.
func (e *Engine) Phase() Phase { return e.phase }

// Round returns the current round. During REST it already names the
// upcoming round.
func (e *Engine) Round() int { return e.round }

// TimeLeft returns the seconds remaining in the current phase.
func (e *Engine) TimeLeft() int { return e.timeLeft }

// Running reports whether the countdown is ticking.
func (e *Engine) Running() bool { return e.running }

// Started reports whether the countdown has run since the last reset.
func (e *Engine) Started() bool { return e.started }

// Complete reports whether the final round has ended.
func (e *Engine) Complete() bool { return e.complete }

// ExitPending reports whether an exit awaits confirmation.
func (e *Engine) ExitPending() bool { return e.exitPending }

// Tick advances the countdown by one second. It is a no-op while paused or
// complete, which makes stray ticks that raced a Stop harmless.
func (e *Engine) Tick() Event {
	if !e.running || e.complete {
		return EventNone
	}

	if e.timeLeft > 1 {
		e.timeLeft--
		return EventCountdown
	}

	// Boundary. A zero-length rest also lands here, so timeLeft never
	// goes negative.
	from := e.phase
	switch {
	case e.phase == PhaseRound && e.round >= e.settings.Rounds:
		e.running = false
		e.complete = true
		e.ticker.Stop()
		e.signals.PhaseBoundary(Boundary{
			From: from, To: from, Round: e.round, Rounds: e.settings.Rounds, Final: true,
		})
		e.signals.SessionComplete(Summary{
			Rounds:       e.settings.Rounds,
			TotalSeconds: e.settings.TotalSeconds(),
		})
		return EventComplete

	case e.phase == PhaseRound:
		e.phase = PhaseRest
		e.round++
		e.timeLeft = e.settings.RestDuration

	default:
		e.phase = PhaseRound
		e.timeLeft = e.settings.RoundDuration
	}

	e.signals.PhaseBoundary(Boundary{
		From: from, To: e.phase, Round: e.round, Rounds: e.settings.Rounds, Duration: e.timeLeft,
	})
	return EventPhaseChange
}

// Toggle flips between running and paused. It has no effect once complete.
func (e *Engine) Toggle() {
	if e.complete {
		return
	}
	e.ticker.Stop()
	e.running = !e.running
	if e.running {
		e.started = true
		e.ticker.Start()
	}
}

// Start resumes the countdown if it is paused.
func (e *Engine) Start() {
	if !e.running {
		e.Toggle()
	}
}

// Pause halts the countdown if it is running.
func (e *Engine) Pause() {
	if e.running {
		e.Toggle()
	}
}

// Reset returns to the initial state for the current settings.
func (e *Engine) Reset() {
	e.ticker.Stop()
	e.reset()
}

// ApplySettings replaces the settings and resets the session.
func (e *Engine) ApplySettings(s settings.Settings) {
	e.ticker.Stop()
	e.settings = s
	e.reset()
}

// RequestExit starts the exit protocol. While running, nothing changes
// except that an exit becomes pending; the caller must ask the user and then
// call ConfirmExit or CancelExit. Otherwise navigation is signaled at once.
func (e *Engine) RequestExit() ExitResult {
	if e.running {
		e.exitPending = true
		return ExitNeedsConfirmation
	}
	e.exitPending = false
	e.signalNavigate()
	return ExitNow
}

// ConfirmExit halts the timer and signals navigation.
// It reports false when no exit was pending.
func (e *Engine) ConfirmExit() bool {
	if !e.exitPending {
		return false
	}
	e.exitPending = false
	e.ticker.Stop()
	e.running = false
	e.signalNavigate()
	return true
}

// CancelExit drops a pending exit request.
func (e *Engine) CancelExit() {
	e.exitPending = false
}

// Close stops the tick source for teardown. The session is left paused.
func (e *Engine) Close() {
	e.ticker.Stop()
	e.running = false
	e.exitPending = false
}

func (e *Engine) reset() {
	e.phase = PhaseRound
	e.round = 1
	e.timeLeft = e.settings.RoundDuration
	e.running = false
	e.started = false
	e.complete = false
	e.exitPending = false
}

func (e *Engine) signalNavigate() {
	if e.navigate != nil {
		e.navigate()
	}
}
