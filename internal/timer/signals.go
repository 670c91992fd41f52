package timer

// Boundary describes a crossed phase boundary.
type Boundary struct {
	From     Phase
	To       Phase // equals From when the session completed
	Round    int   // current round after the boundary
	Rounds   int
	Duration int  // seconds in the phase entered, 0 when Final
	Final    bool // the final round just ended
}

// Summary describes a completed session.
type Summary struct {
	Rounds       int
	TotalSeconds int
}

// Signals receives the engine's fire-and-forget side effects.
// Implementations must not block the caller.
type Signals interface {
	PhaseBoundary(b Boundary)
	SessionComplete(s Summary)
}

// Ticker is the cancelable periodic tick source driving Tick.
// Stop must make any pending tick harmless before it returns.
type Ticker interface {
	Start()
	Stop()
}

type nopSignals struct{}

func (nopSignals) PhaseBoundary(Boundary)  {}
func (nopSignals) SessionComplete(Summary) {}

type nopTicker struct{}

func (nopTicker) Start() {}
func (nopTicker) Stop()  {}
