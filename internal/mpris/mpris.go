//go:build linux

package mpris

import (
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
)

const trackID = "/org/mpris/MediaPlayer2/Rounds/Session"

// Adapter connects a Controller to MPRIS over D-Bus.
type Adapter struct {
	server *server.Server
}

// New creates and starts a new MPRIS adapter.
func New(ctrl Controller) (*Adapter, error) {
	a := &Adapter{
		server: server.NewServer("rounds", &rootAdapter{}, &playerAdapter{ctrl: ctrl}),
	}

	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error                { return nil }
func (r *rootAdapter) Quit() error                 { return nil }
func (r *rootAdapter) CanQuit() (bool, error)      { return false, nil }
func (r *rootAdapter) CanRaise() (bool, error)     { return false, nil }
func (r *rootAdapter) HasTrackList() (bool, error) { return false, nil }
func (r *rootAdapter) Identity() (string, error)   { return "Rounds", nil }
func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{}, nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	ctrl Controller
}

func (p *playerAdapter) Next() error     { return nil }
func (p *playerAdapter) Previous() error { return nil }

func (p *playerAdapter) Pause() error {
	p.ctrl.Pause()
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.ctrl.Toggle()
	return nil
}

func (p *playerAdapter) Stop() error {
	p.ctrl.Reset()
	return nil
}

func (p *playerAdapter) Play() error {
	p.ctrl.Play()
	return nil
}

func (p *playerAdapter) Seek(_ types.Microseconds) error { return nil }

func (p *playerAdapter) SetPosition(_ string, _ types.Microseconds) error { return nil }

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error { return nil }

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	switch StatusOf(p.ctrl.Snapshot()) {
	case StatusPlaying:
		return types.PlaybackStatusPlaying, nil
	case StatusPaused:
		return types.PlaybackStatusPaused, nil
	case StatusStopped:
		return types.PlaybackStatusStopped, nil
	}
	return types.PlaybackStatusStopped, nil
}

func (p *playerAdapter) Rate() (float64, error)   { return 1.0, nil }
func (p *playerAdapter) SetRate(_ float64) error  { return nil }
func (p *playerAdapter) Volume() (float64, error) { return 1.0, nil }
func (p *playerAdapter) SetVolume(_ float64) error {
	return nil
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	s := p.ctrl.Snapshot()
	return types.Metadata{
		TrackId:     dbus.ObjectPath(trackID),
		Length:      types.Microseconds((time.Duration(s.PhaseLength) * time.Second).Microseconds()),
		Title:       Title(s),
		Artist:      []string{Artist(s)},
		Album:       "Rounds",
		TrackNumber: s.Round,
	}, nil
}

// Position reports elapsed time in the current phase.
func (p *playerAdapter) Position() (int64, error) {
	s := p.ctrl.Snapshot()
	elapsed := max(s.PhaseLength-s.TimeLeft, 0)
	return (time.Duration(elapsed) * time.Second).Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) { return 1.0, nil }
func (p *playerAdapter) MaximumRate() (float64, error) { return 1.0, nil }
func (p *playerAdapter) CanGoNext() (bool, error)      { return false, nil }
func (p *playerAdapter) CanGoPrevious() (bool, error)  { return false, nil }
func (p *playerAdapter) CanSeek() (bool, error)        { return false, nil }
func (p *playerAdapter) CanControl() (bool, error)     { return true, nil }
func (p *playerAdapter) CanPause() (bool, error)       { return true, nil }

func (p *playerAdapter) CanPlay() (bool, error) {
	return !p.ctrl.Snapshot().Complete, nil
}
