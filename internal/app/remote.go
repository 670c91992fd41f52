package app

import (
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rounds/internal/mpris"
	"github.com/llehouerou/rounds/internal/timer"
)

var _ mpris.Controller = (*Remote)(nil)

// Remote lets other goroutines drive the timer. Commands are posted to the
// program as RemoteMsg; the model publishes a snapshot after every update
// for Snapshot to read.
type Remote struct {
	send atomic.Pointer[func(tea.Msg)]
	snap atomic.Pointer[timer.Snapshot]
}

// NewRemote creates a remote that drops commands until SetSender is called.
func NewRemote() *Remote {
	return &Remote{}
}

// SetSender sets where commands go, usually (*tea.Program).Send.
func (r *Remote) SetSender(send func(tea.Msg)) {
	r.send.Store(&send)
}

// Toggle implements mpris.Controller.
func (r *Remote) Toggle() { r.post(RemoteToggle) }

// Play implements mpris.Controller.
func (r *Remote) Play() { r.post(RemotePlay) }

// Pause implements mpris.Controller.
func (r *Remote) Pause() { r.post(RemotePause) }

// Reset implements mpris.Controller.
func (r *Remote) Reset() { r.post(RemoteReset) }

// Snapshot returns the last published timer state.
func (r *Remote) Snapshot() timer.Snapshot {
	if s := r.snap.Load(); s != nil {
		return *s
	}
	return timer.Snapshot{}
}

func (r *Remote) publish(s timer.Snapshot) {
	r.snap.Store(&s)
}

// Send posts msg to the program. It is dropped until SetSender is called.
func (r *Remote) Send(msg tea.Msg) {
	if send := r.send.Load(); send != nil {
		(*send)(msg)
	}
}

func (r *Remote) post(c RemoteCommand) {
	r.Send(RemoteMsg{Command: c})
}
