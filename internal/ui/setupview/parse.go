package setupview

import (
	"strconv"
	"strings"

	"github.com/llehouerou/rounds/internal/settings"
)

// Fallbacks for fields left empty.
const (
	FallbackRounds        = 3
	FallbackRoundDuration = 180
	FallbackRestDuration  = 30
)

// Fields holds the raw text of the setup inputs.
type Fields struct {
	Rounds       string
	RoundMinutes string
	RoundSeconds string
	RestMinutes  string
	RestSeconds  string
}

// FieldsFor splits settings into input text.
func FieldsFor(s settings.Settings) Fields {
	return Fields{
		Rounds:       strconv.Itoa(s.Rounds),
		RoundMinutes: strconv.Itoa(s.RoundDuration / 60),
		RoundSeconds: twoDigits(s.RoundDuration % 60),
		RestMinutes:  strconv.Itoa(s.RestDuration / 60),
		RestSeconds:  twoDigits(s.RestDuration % 60),
	}
}

// Parse converts the inputs to settings. An unparsable or zero round count
// becomes FallbackRounds. A duration whose minute and second fields are
// both unparsable falls back; otherwise an unparsable half counts as zero.
// A zero round length also falls back, while a zero rest is kept.
// The result is not clamped; the store does that on commit.
func (f Fields) Parse() settings.Settings {
	rounds, ok := parseField(f.Rounds)
	if !ok || rounds == 0 {
		rounds = FallbackRounds
	}
	round := parseDuration(f.RoundMinutes, f.RoundSeconds, FallbackRoundDuration)
	if round == 0 {
		round = FallbackRoundDuration
	}
	return settings.Settings{
		Rounds:        rounds,
		RoundDuration: round,
		RestDuration:  parseDuration(f.RestMinutes, f.RestSeconds, FallbackRestDuration),
	}
}

func parseDuration(minutes, seconds string, fallback int) int {
	m, okM := parseField(minutes)
	s, okS := parseField(seconds)
	if !okM && !okS {
		return fallback
	}
	return m*60 + s
}

func parseField(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func twoDigits(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
