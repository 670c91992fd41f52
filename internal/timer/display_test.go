package timer

import (
	"testing"

	"github.com/llehouerou/rounds/internal/settings"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{59, "0:59"},
		{60, "1:00"},
		{65, "1:05"},
		{180, "3:00"},
		{3599, "59:59"},
		{3600, "60:00"},
		{-3, "0:00"},
	}

	for _, tt := range tests {
		if got := FormatTime(tt.seconds); got != tt.want {
			t.Errorf("FormatTime(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestProgress(t *testing.T) {
	e := New(settings.Settings{Rounds: 2, RoundDuration: 180, RestDuration: 60})
	e.Toggle()

	if got := e.Progress(); got != 0.0 {
		t.Errorf("Progress() at start = %v, want 0", got)
	}

	tickN(e, 179)
	got := e.Progress()
	if got < 0.994 || got > 0.995 {
		t.Errorf("Progress() after 179 ticks = %v, want ~0.994", got)
	}

	e.Tick()
	if e.Phase() != PhaseRest {
		t.Fatalf("Phase() after 180 ticks = %v, want REST", e.Phase())
	}
	if got := e.Progress(); got != 0.0 {
		t.Errorf("Progress() at rest start = %v, want 0", got)
	}
}

func TestProgress_ZeroLengthPhase(t *testing.T) {
	e := New(settings.Settings{Rounds: 2, RoundDuration: 1, RestDuration: 0})
	e.Toggle()
	e.Tick()

	if e.Phase() != PhaseRest {
		t.Fatalf("Phase() = %v, want REST", e.Phase())
	}
	if got := e.Progress(); got != 1.0 {
		t.Errorf("Progress() for zero-length rest = %v, want 1", got)
	}
}

func TestRemaining(t *testing.T) {
	s := settings.Settings{Rounds: 3, RoundDuration: 180, RestDuration: 60}
	e := New(s)
	e.Toggle()

	if got := e.Remaining(); got != 660 {
		t.Errorf("Remaining() at start = %d, want 660", got)
	}

	for elapsed := 1; elapsed <= 660; elapsed++ {
		e.Tick()
		want := 660 - elapsed
		if got := e.Remaining(); got != want {
			t.Fatalf("Remaining() after %d ticks = %d, want %d", elapsed, got, want)
		}
	}
}

func TestSnapshot(t *testing.T) {
	e := New(settings.Settings{Rounds: 4, RoundDuration: 65, RestDuration: 30})
	e.Toggle()

	snap := e.Snapshot()

	if snap.Phase != PhaseRound || snap.Round != 1 || snap.Rounds != 4 {
		t.Errorf("Snapshot() = %+v, want round 1/4 in ROUND", snap)
	}
	if snap.Formatted != "1:05" {
		t.Errorf("Formatted = %q, want %q", snap.Formatted, "1:05")
	}
	if !snap.Running || snap.Complete || snap.ExitPending {
		t.Errorf("Snapshot() flags = %+v", snap)
	}
	if snap.PhaseLength != 65 {
		t.Errorf("PhaseLength = %d, want 65", snap.PhaseLength)
	}
}
