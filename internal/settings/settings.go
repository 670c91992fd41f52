// Package settings holds the round/rest configuration shared by the setup
// and timer views.
package settings

import "time"

// MinimumRoundSeconds is the default floor applied to round durations.
const MinimumRoundSeconds = 1

// Defaults for a fresh store.
const (
	DefaultRounds        = 3
	DefaultRoundDuration = 180 // 3 minutes
	DefaultRestDuration  = 60  // 1 minute
)

// Settings is an immutable snapshot of a session's configuration.
// Durations are in seconds.
type Settings struct {
	Rounds        int
	RoundDuration int
	RestDuration  int
}

// Default returns the settings used when nothing else is configured.
func Default() Settings {
	return Settings{
		Rounds:        DefaultRounds,
		RoundDuration: DefaultRoundDuration,
		RestDuration:  DefaultRestDuration,
	}
}

// TotalSeconds returns the scheduled active time of a full session.
// There is no rest after the final round.
func (s Settings) TotalSeconds() int {
	if s.Rounds <= 0 {
		return 0
	}
	return s.Rounds*s.RoundDuration + (s.Rounds-1)*s.RestDuration
}

// ProjectedFinish returns when a session started at now would end.
func (s Settings) ProjectedFinish(now time.Time) time.Time {
	return now.Add(time.Duration(s.TotalSeconds()) * time.Second)
}

// Clamp returns s with every field raised to its allowed minimum.
// Values below 1 for minRound are treated as 1.
func (s Settings) Clamp(minRound int) Settings {
	minRound = max(MinimumRoundSeconds, minRound)
	return Settings{
		Rounds:        max(1, s.Rounds),
		RoundDuration: max(minRound, s.RoundDuration),
		RestDuration:  max(0, s.RestDuration),
	}
}
