package timer

import "fmt"

// FormatTime renders seconds as M:SS.
func FormatTime(seconds int) string {
	seconds = max(0, seconds)
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// PhaseDuration returns the full length of the active phase in seconds.
func (e *Engine) PhaseDuration() int {
	if e.phase == PhaseRest {
		return e.settings.RestDuration
	}
	return e.settings.RoundDuration
}

// Formatted returns the time left in the current phase as M:SS.
func (e *Engine) Formatted() string {
	return FormatTime(e.timeLeft)
}

// Progress returns the elapsed fraction of the current phase in [0, 1].
// A zero-length phase counts as already complete.
func (e *Engine) Progress() float64 {
	d := e.PhaseDuration()
	if d <= 0 {
		return 1.0
	}
	return float64(d-e.timeLeft) / float64(d)
}

// Remaining returns the seconds left in the whole session, counting the
// current phase and every phase after it.
func (e *Engine) Remaining() int {
	if e.complete {
		return 0
	}
	s := e.settings
	left := s.Rounds - e.round
	if e.phase == PhaseRest {
		// The upcoming round is already counted in e.round.
		return e.timeLeft + s.RoundDuration + left*(s.RestDuration+s.RoundDuration)
	}
	return e.timeLeft + left*(s.RestDuration+s.RoundDuration)
}

// Snapshot is a read-only copy of the engine state for presentation.
type Snapshot struct {
	Phase       Phase
	Round       int
	Rounds      int
	TimeLeft    int
	Running     bool
	Started     bool
	Complete    bool
	ExitPending bool
	Formatted   string
	Progress    float64
	Remaining   int
	PhaseLength int
}

// Snapshot returns the current state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Phase:       e.phase,
		Round:       e.round,
		Rounds:      e.settings.Rounds,
		TimeLeft:    e.timeLeft,
		Running:     e.running,
		Started:     e.started,
		Complete:    e.complete,
		ExitPending: e.exitPending,
		Formatted:   e.Formatted(),
		Progress:    e.Progress(),
		Remaining:   e.Remaining(),
		PhaseLength: e.PhaseDuration(),
	}
}
