// Package mpris exposes the running timer as an MPRIS media player so
// desktop media keys and widgets can pause and resume it.
package mpris

import (
	"fmt"

	"github.com/llehouerou/rounds/internal/timer"
)

// Controller is the part of the application the media player drives.
// Implementations must be safe to call from the D-Bus goroutine.
type Controller interface {
	Toggle()
	Play()
	Pause()
	Reset()
	Snapshot() timer.Snapshot
}

// Status is the MPRIS playback status of a snapshot.
type Status string

const (
	StatusPlaying Status = "Playing"
	StatusPaused  Status = "Paused"
	StatusStopped Status = "Stopped"
)

// StatusOf maps timer state to a playback status. A finished session and
// an untouched one both report Stopped.
func StatusOf(s timer.Snapshot) Status {
	switch {
	case s.Running:
		return StatusPlaying
	case s.Complete:
		return StatusStopped
	case s.Started:
		return StatusPaused
	}
	return StatusStopped
}

// Title is the track title shown by media widgets.
func Title(s timer.Snapshot) string {
	if s.Complete {
		return "Training complete"
	}
	return fmt.Sprintf("Round %d/%d", s.Round, s.Rounds)
}

// Artist is the artist line shown by media widgets.
func Artist(s timer.Snapshot) string {
	return s.Phase.String()
}
