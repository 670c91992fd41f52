package tick

import (
	"context"
	"sync"
	"time"
)

// Loop is a goroutine-backed tick source for use without bubbletea.
// Ticks arrive on C; the consumer decides with Live whether a tick is
// still current.
type Loop struct {
	parent context.Context
	period time.Duration
	c      chan Msg

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	done   chan struct{}
}

// NewLoop creates an inactive loop. Canceling ctx stops any running loop.
func NewLoop(ctx context.Context, period time.Duration) *Loop {
	if period <= 0 {
		period = DefaultPeriod
	}
	return &Loop{
		parent: ctx,
		period: period,
		c:      make(chan Msg, 1),
	}
}

// C returns the tick channel.
func (l *Loop) C() <-chan Msg {
	return l.c
}

// Start stops any running goroutine and launches a new generation.
func (l *Loop) Start() {
	l.Stop()

	l.mu.Lock()
	l.gen++
	gen := l.gen
	ctx, cancel := context.WithCancel(l.parent)
	done := make(chan struct{})
	l.cancel = cancel
	l.done = done
	l.mu.Unlock()

	go l.run(ctx, gen, done)
}

// Stop cancels the running goroutine and waits for it to exit.
func (l *Loop) Stop() {
	l.mu.Lock()
	cancel, done := l.cancel, l.done
	l.cancel, l.done = nil, nil
	l.gen++
	l.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

// Active reports whether a goroutine is running.
func (l *Loop) Active() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cancel != nil
}

// Live reports whether msg belongs to the running generation.
func (l *Loop) Live(msg Msg) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cancel != nil && msg.Gen == l.gen
}

func (l *Loop) run(ctx context.Context, gen uint64, done chan struct{}) {
	defer close(done)

	t := time.NewTicker(l.period)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case at := <-t.C:
			select {
			case l.c <- Msg{Gen: gen, At: at}:
			case <-ctx.Done():
				return
			}
		}
	}
}
