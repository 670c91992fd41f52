package headless

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/rounds/internal/alert"
	"github.com/llehouerou/rounds/internal/logging"
	"github.com/llehouerou/rounds/internal/settings"
	"github.com/llehouerou/rounds/internal/timer"
)

func TestRun_CompletesOnWallClock(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store := settings.NewStore(settings.Settings{Rounds: 2, RoundDuration: 3, RestDuration: 1})
		var out, logs bytes.Buffer

		start := time.Now()
		err := Run(t.Context(), store, Options{
			Log:     logging.New(&logs),
			Out:     &out,
			Verbose: true,
		})

		require.NoError(t, err)
		assert.Equal(t, 7*time.Second, time.Since(start))

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		assert.Equal(t, []string{
			"ROUND 1/2 0:02",
			"ROUND 1/2 0:01",
			"REST  2/2 0:01",
			"ROUND 2/2 0:03",
			"ROUND 2/2 0:02",
			"ROUND 2/2 0:01",
			"DONE  2/2",
		}, lines)

		assert.Contains(t, logs.String(), "[EVENT:PHASE] ROUND -> REST, round 2/2, 0:01")
		assert.Contains(t, logs.String(), "[EVENT:COMPLETE] 2 rounds, 0:07 total")
	})
}

func TestRun_Canceled(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store := settings.NewStore(settings.Default())
		ctx, cancel := context.WithTimeout(t.Context(), 2500*time.Millisecond)
		defer cancel()

		var logs bytes.Buffer
		err := Run(ctx, store, Options{Log: logging.New(&logs)})

		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Contains(t, logs.String(), "session canceled in ROUND round 1/3 with 2:58 left")
	})
}

func TestRun_ExtraSinksReceiveSignals(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store := settings.NewStore(settings.Settings{Rounds: 1, RoundDuration: 2})
		var got []timer.Summary

		err := Run(t.Context(), store, Options{
			Sinks: []alert.Sink{alert.Funcs{OnComplete: func(s timer.Summary) { got = append(got, s) }}},
		})

		require.NoError(t, err)
		assert.Equal(t, []timer.Summary{{Rounds: 1, TotalSeconds: 2}}, got)
	})
}

func TestRun_RestartsOnSettingsChange(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store := settings.NewStore(settings.Default())
		var logs bytes.Buffer
		done := make(chan error, 1)

		start := time.Now()
		go func() {
			done <- Run(t.Context(), store, Options{Log: logging.New(&logs)})
		}()

		time.Sleep(1500 * time.Millisecond)
		store.Set(settings.Settings{Rounds: 1, RoundDuration: 2})

		require.NoError(t, <-done)
		assert.Equal(t, 3500*time.Millisecond, time.Since(start))
		assert.Equal(t, 2, strings.Count(logs.String(), "session started"))
	})
}
