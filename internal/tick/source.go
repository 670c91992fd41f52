// Package tick provides cancelable one-second tick sources for the timer
// engine.
package tick

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultPeriod is the length of one timer tick.
const DefaultPeriod = time.Second

// Msg is delivered once per period while a source is active.
// Gen identifies the Start call that scheduled it.
type Msg struct {
	Gen uint64
	At  time.Time
}

// Source is a tick source for bubbletea programs. tea.Tick cannot be
// canceled, so every Start and Stop bumps a generation counter and ticks
// from an older generation are reported stale by Live.
//
// Source is not safe for concurrent use; it lives on the program's event
// loop alongside the engine that drives it.
type Source struct {
	period  time.Duration
	gen     uint64
	active  bool
	pending tea.Cmd
}

// NewSource creates an inactive source.
func NewSource(period time.Duration) *Source {
	if period <= 0 {
		period = DefaultPeriod
	}
	return &Source{period: period}
}

// Start begins a new generation and queues its first tick.
// Collect the command with Cmd.
func (s *Source) Start() {
	s.gen++
	s.active = true
	s.pending = s.schedule()
}

// Stop invalidates every tick already in flight.
func (s *Source) Stop() {
	s.gen++
	s.active = false
	s.pending = nil
}

// Active reports whether the source is between Start and Stop.
func (s *Source) Active() bool {
	return s.active
}

// Generation returns the current generation.
func (s *Source) Generation() uint64 {
	return s.gen
}

// Live reports whether msg belongs to the current generation.
func (s *Source) Live(msg Msg) bool {
	return s.active && msg.Gen == s.gen
}

// Cmd returns and clears the command queued by Start.
func (s *Source) Cmd() tea.Cmd {
	cmd := s.pending
	s.pending = nil
	return cmd
}

// Next schedules the following tick of the current generation.
// Call it after handling a live tick. It returns nil when stopped.
func (s *Source) Next() tea.Cmd {
	if !s.active {
		return nil
	}
	return s.schedule()
}

func (s *Source) schedule() tea.Cmd {
	gen := s.gen
	return tea.Tick(s.period, func(t time.Time) tea.Msg {
		return Msg{Gen: gen, At: t}
	})
}
