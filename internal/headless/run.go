// Package headless runs a session on the wall clock without a terminal UI.
package headless

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/llehouerou/rounds/internal/alert"
	"github.com/llehouerou/rounds/internal/logging"
	"github.com/llehouerou/rounds/internal/settings"
	"github.com/llehouerou/rounds/internal/tick"
	"github.com/llehouerou/rounds/internal/timer"
)

// Options configures Run.
type Options struct {
	Log     *logging.Logger
	Out     io.Writer     // status lines when Verbose
	Verbose bool          // print one status line per tick
	Period  time.Duration // defaults to tick.DefaultPeriod
	Sinks   []alert.Sink  // extra signal sinks, e.g. notifications
}

// Run plays one session with the settings in store. It returns nil once the
// session completes, or ctx's error when ctx is canceled first. Settings
// committed while running restart the session.
func Run(ctx context.Context, store *settings.Store, opts Options) error {
	log := opts.Log
	if log == nil {
		log = logging.Discard()
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	signals := alert.NewDispatcher(append([]alert.Sink{alert.NewLogSink(log)}, opts.Sinks...)...)
	defer signals.Close()

	loop := tick.NewLoop(ctx, opts.Period)
	defer loop.Stop()

	sub := store.Subscribe()
	changed, closed := sub.Changed, sub.Done

	engine := timer.New(store.Get(), timer.WithTicker(loop), timer.WithSignals(signals))
	defer engine.Close()

	logStart(log, engine.Settings())
	engine.Start()

	for {
		select {
		case <-ctx.Done():
			log.Infof("session canceled in %s round %d/%d with %s left",
				engine.Phase(), engine.Round(), engine.Settings().Rounds, engine.Formatted())
			return ctx.Err()

		case s := <-changed:
			engine.ApplySettings(s)
			logStart(log, s)
			engine.Start()

		case <-closed:
			changed, closed = nil, nil

		case msg := <-loop.C():
			if !loop.Live(msg) {
				continue
			}
			ev := engine.Tick()
			if opts.Verbose {
				printStatus(out, engine.Snapshot())
			}
			if ev == timer.EventComplete {
				return nil
			}
		}
	}
}

func logStart(log *logging.Logger, s settings.Settings) {
	log.Infof("session started: %d rounds of %s, %s rest, %s total",
		s.Rounds, timer.FormatTime(s.RoundDuration), timer.FormatTime(s.RestDuration),
		timer.FormatTime(s.TotalSeconds()))
}

func printStatus(w io.Writer, s timer.Snapshot) {
	if s.Complete {
		fmt.Fprintf(w, "DONE  %d/%d\n", s.Rounds, s.Rounds)
		return
	}
	fmt.Fprintf(w, "%-5s %d/%d %s\n", s.Phase, s.Round, s.Rounds, s.Formatted)
}
