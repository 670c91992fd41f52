// Package timer implements the round/rest countdown state machine.
package timer

// Phase is one of the two recurring segments of a session.
type Phase int

const (
	PhaseRound Phase = iota
	PhaseRest
)

// String returns the phase name as displayed.
func (p Phase) String() string {
	switch p {
	case PhaseRound:
		return "ROUND"
	case PhaseRest:
		return "REST"
	default:
		return "UNKNOWN"
	}
}

// Event describes what a single Tick did.
type Event int

const (
	// EventNone means the tick was ignored (paused or complete).
	EventNone Event = iota
	// EventCountdown means timeLeft was decremented.
	EventCountdown
	// EventPhaseChange means a phase boundary switched ROUND and REST.
	EventPhaseChange
	// EventComplete means the final round ended.
	EventComplete
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventCountdown:
		return "countdown"
	case EventPhaseChange:
		return "phase_change"
	case EventComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// ExitResult is the outcome of RequestExit.
type ExitResult int

const (
	// ExitNow means navigation was signaled immediately.
	ExitNow ExitResult = iota
	// ExitNeedsConfirmation means the caller must ask the user, then call
	// ConfirmExit or CancelExit.
	ExitNeedsConfirmation
)
