package settings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, 3, s.Rounds)
	assert.Equal(t, 180, s.RoundDuration)
	assert.Equal(t, 60, s.RestDuration)
}

func TestTotalSeconds(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		want     int
	}{
		{"three rounds with rest", Settings{Rounds: 3, RoundDuration: 180, RestDuration: 60}, 660},
		{"single round has no rest", Settings{Rounds: 1, RoundDuration: 120, RestDuration: 30}, 120},
		{"zero rest", Settings{Rounds: 4, RoundDuration: 60, RestDuration: 0}, 240},
		{"no rounds", Settings{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.settings.TotalSeconds())
		})
	}
}

func TestProjectedFinish(t *testing.T) {
	now := time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC)
	s := Settings{Rounds: 3, RoundDuration: 180, RestDuration: 60}

	got := s.ProjectedFinish(now)

	assert.Equal(t, now.Add(11*time.Minute), got)
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		in       Settings
		minRound int
		want     Settings
	}{
		{
			name:     "valid values unchanged",
			in:       Settings{Rounds: 4, RoundDuration: 120, RestDuration: 30},
			minRound: 1,
			want:     Settings{Rounds: 4, RoundDuration: 120, RestDuration: 30},
		},
		{
			name:     "zero and negative raised",
			in:       Settings{Rounds: 0, RoundDuration: -5, RestDuration: -1},
			minRound: 1,
			want:     Settings{Rounds: 1, RoundDuration: 1, RestDuration: 0},
		},
		{
			name:     "custom floor applied to round only",
			in:       Settings{Rounds: 2, RoundDuration: 30, RestDuration: 10},
			minRound: 60,
			want:     Settings{Rounds: 2, RoundDuration: 60, RestDuration: 10},
		},
		{
			name:     "floor below one treated as one",
			in:       Settings{Rounds: 2, RoundDuration: 0, RestDuration: 0},
			minRound: 0,
			want:     Settings{Rounds: 2, RoundDuration: 1, RestDuration: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Clamp(tt.minRound))
		})
	}
}
