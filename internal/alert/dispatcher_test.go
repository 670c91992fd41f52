package alert

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/rounds/internal/timer"
)

type recordingSink struct {
	mu     sync.Mutex
	events []string
}

func (r *recordingSink) PhaseBoundary(b timer.Boundary) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, "boundary:"+b.To.String())
}

func (r *recordingSink) SessionComplete(timer.Summary) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, "complete")
}

func (r *recordingSink) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

type blockingSink struct {
	release chan struct{}
}

func (b *blockingSink) PhaseBoundary(timer.Boundary)  { <-b.release }
func (b *blockingSink) SessionComplete(timer.Summary) {}

func TestDispatcher_FansOutInOrder(t *testing.T) {
	a, b := &recordingSink{}, &recordingSink{}
	d := NewDispatcher(a, b)

	d.PhaseBoundary(timer.Boundary{To: timer.PhaseRest})
	d.PhaseBoundary(timer.Boundary{To: timer.PhaseRound})
	d.SessionComplete(timer.Summary{Rounds: 2})
	d.Close()

	want := []string{"boundary:REST", "boundary:ROUND", "complete"}
	assert.Equal(t, want, a.Events())
	assert.Equal(t, want, b.Events())
}

func TestDispatcher_SlowSinkDoesNotBlock(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		slow := &blockingSink{release: make(chan struct{})}
		fast := &recordingSink{}
		d := NewDispatcher(slow, fast)

		start := time.Now()
		for range queueSize * 2 {
			d.PhaseBoundary(timer.Boundary{To: timer.PhaseRest})
		}
		assert.Equal(t, time.Duration(0), time.Since(start))

		synctest.Wait()
		assert.NotEmpty(t, fast.Events())

		close(slow.release)
		d.Close()
	})
}

func TestDispatcher_IgnoresAfterClose(t *testing.T) {
	s := &recordingSink{}
	d := NewDispatcher(s)
	d.Close()

	d.PhaseBoundary(timer.Boundary{})
	d.Add(&recordingSink{})
	d.Close()

	assert.Empty(t, s.Events())
}

func TestDispatcher_DrivenByEngine(t *testing.T) {
	s := &recordingSink{}
	d := NewDispatcher(s)

	e := timer.New(settingsFor(2, 2, 1), timer.WithSignals(d))
	e.Toggle()
	for range 5 {
		e.Tick()
	}
	require.True(t, e.Complete())
	d.Close()

	assert.Equal(t, []string{"boundary:REST", "boundary:ROUND", "boundary:ROUND", "complete"}, s.Events())
}

func TestFuncs_NilFieldsSkipped(t *testing.T) {
	var got timer.Summary
	f := Funcs{OnComplete: func(s timer.Summary) { got = s }}

	f.PhaseBoundary(timer.Boundary{})
	f.SessionComplete(timer.Summary{Rounds: 4})

	assert.Equal(t, 4, got.Rounds)
}
