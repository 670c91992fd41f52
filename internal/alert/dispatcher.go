// Package alert delivers the timer's phase-boundary and completion signals
// to desktop notifications, the log and the UI.
package alert

import (
	"sync"

	"github.com/llehouerou/rounds/internal/timer"
)

const queueSize = 16

// Sink receives signals. Sinks may block; the dispatcher isolates them.
type Sink interface {
	PhaseBoundary(b timer.Boundary)
	SessionComplete(s timer.Summary)
}

// Verify Dispatcher implements timer.Signals at compile time.
var _ timer.Signals = (*Dispatcher)(nil)

// Dispatcher fans signals out to sinks. Each sink has its own goroutine
// and queue, so a slow sink never delays a tick and signals reach each sink
// in order. Signals for a full queue are dropped.
type Dispatcher struct {
	mu      sync.Mutex
	workers []*worker
	closed  bool
	wg      sync.WaitGroup
}

type signal struct {
	boundary *timer.Boundary
	summary  *timer.Summary
}

type worker struct {
	sink  Sink
	queue chan signal
}

// NewDispatcher creates a dispatcher delivering to sinks.
func NewDispatcher(sinks ...Sink) *Dispatcher {
	d := &Dispatcher{}
	for _, s := range sinks {
		d.Add(s)
	}
	return d
}

// Add registers another sink. It is ignored after Close.
func (d *Dispatcher) Add(s Sink) {
	if s == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	w := &worker{sink: s, queue: make(chan signal, queueSize)}
	d.workers = append(d.workers, w)
	d.wg.Go(w.run)
}

// PhaseBoundary implements timer.Signals.
func (d *Dispatcher) PhaseBoundary(b timer.Boundary) {
	d.publish(signal{boundary: &b})
}

// SessionComplete implements timer.Signals.
func (d *Dispatcher) SessionComplete(s timer.Summary) {
	d.publish(signal{summary: &s})
}

// Close stops accepting signals, lets queued ones drain and waits for the
// sink goroutines to exit.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	for _, w := range d.workers {
		close(w.queue)
	}
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *Dispatcher) publish(sig signal) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	for _, w := range d.workers {
		select {
		case w.queue <- sig:
		default:
			// Drop if buffer full
		}
	}
}

func (w *worker) run() {
	for sig := range w.queue {
		switch {
		case sig.boundary != nil:
			w.sink.PhaseBoundary(*sig.boundary)
		case sig.summary != nil:
			w.sink.SessionComplete(*sig.summary)
		}
	}
}

// Funcs adapts plain functions to a Sink. Nil fields are skipped.
type Funcs struct {
	OnBoundary func(timer.Boundary)
	OnComplete func(timer.Summary)
}

// PhaseBoundary implements Sink.
func (f Funcs) PhaseBoundary(b timer.Boundary) {
	if f.OnBoundary != nil {
		f.OnBoundary(b)
	}
}

// SessionComplete implements Sink.
func (f Funcs) SessionComplete(s timer.Summary) {
	if f.OnComplete != nil {
		f.OnComplete(s)
	}
}
