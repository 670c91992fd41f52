package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rounds/internal/alert"
	"github.com/llehouerou/rounds/internal/app"
	"github.com/llehouerou/rounds/internal/config"
	"github.com/llehouerou/rounds/internal/errmsg"
	"github.com/llehouerou/rounds/internal/headless"
	"github.com/llehouerou/rounds/internal/logging"
	"github.com/llehouerou/rounds/internal/mpris"
	"github.com/llehouerou/rounds/internal/notify"
	"github.com/llehouerou/rounds/internal/settings"
	"github.com/llehouerou/rounds/internal/timer"
	"github.com/llehouerou/rounds/internal/ui/timerview"
)

type flags struct {
	rounds   int
	round    int
	rest     int
	headless bool
	verbose  bool
	config   string
	logFile  string
}

func parseFlags() flags {
	var f flags
	flag.IntVar(&f.rounds, "rounds", 0, "number of rounds")
	flag.IntVar(&f.round, "round", 0, "round length in seconds")
	flag.IntVar(&f.rest, "rest", -1, "rest length in seconds, 0 for none")
	flag.BoolVar(&f.headless, "headless", false, "run one session without the interface, logging to stderr")
	flag.BoolVar(&f.verbose, "v", false, "headless: print the countdown every second")
	flag.StringVar(&f.config, "config", "", "extra config file, loaded last")
	flag.StringVar(&f.logFile, "log", "", "log file (interactive mode)")
	flag.Parse()
	return f
}

// apply overrides s with the flags that were set.
func (f flags) apply(s settings.Settings) settings.Settings {
	if f.rounds > 0 {
		s.Rounds = f.rounds
	}
	if f.round > 0 {
		s.RoundDuration = f.round
	}
	if f.rest >= 0 {
		s.RestDuration = f.rest
	}
	return s
}

func main() {
	if err := run(parseFlags()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(f flags) error {
	cfg, err := config.Load(f.config)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	store := settings.NewStore(f.apply(cfg.Settings()),
		settings.WithMinimumRound(cfg.MinimumRoundSeconds()))
	defer store.Close()

	if f.headless {
		return runHeadless(f, cfg, store)
	}
	return runInteractive(f, cfg, store)
}

func runHeadless(f flags, cfg *config.Config, store *settings.Store) error {
	log := logging.New(os.Stderr)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var sinks []alert.Sink
	if n, notice := openNotifier(cfg, log); notice == "" {
		sinks = append(sinks, alert.NewNotifySink(n, log))
	}

	err := headless.Run(ctx, store, headless.Options{
		Log:     log,
		Out:     os.Stdout,
		Verbose: f.verbose,
		Sinks:   sinks,
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpSessionRun, err))
	}
	return nil
}

func runInteractive(f flags, cfg *config.Config, store *settings.Store) error {
	path := f.logFile
	if path == "" {
		path = cfg.LogPath()
	}
	log, logFile, err := logging.OpenFile(path)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpLogOpen, err))
	}
	defer logFile.Close()

	remote := app.NewRemote()
	n, notice := openNotifier(cfg, log)

	dispatcher := alert.NewDispatcher(
		alert.NewLogSink(log),
		alert.NewNotifySink(n, log),
		alert.Funcs{
			OnBoundary: func(b timer.Boundary) {
				if !b.Final {
					remote.Send(timerview.FlashMsg{Text: alert.BoundaryTitle(b), Phase: b.To})
				}
			},
			OnComplete: func(timer.Summary) {
				remote.Send(timerview.FlashMsg{Text: alert.CompleteTitle, Phase: timer.PhaseRound})
			},
		},
	)
	defer dispatcher.Close()

	if cfg.MPRISEnabled() {
		adapter, err := mpris.New(remote)
		if err != nil {
			msg := errmsg.Format(errmsg.OpMediaConnect, err)
			log.Warnf("%s", msg)
			if notice == "" {
				notice = msg
			}
		} else {
			defer adapter.Close()
		}
	}

	model := app.New(store, app.Options{
		Signals: dispatcher,
		Remote:  remote,
		Log:     log,
		Notice:  notice,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())
	remote.SetSender(p.Send)

	log.Infof("started")
	final, err := p.Run()
	if m, ok := final.(app.Model); ok {
		m.Close()
	}
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	log.Infof("stopped")
	return nil
}

// openNotifier returns the desktop notifier, or a disabled one with a
// user-facing notice when it could not connect.
func openNotifier(cfg *config.Config, log *logging.Logger) (notify.Notifier, string) {
	if !cfg.NotificationsEnabled() {
		return notify.Disabled(), ""
	}
	n, err := notify.New()
	if err != nil {
		msg := errmsg.Format(errmsg.OpNotifyConnect, err)
		log.Warnf("%s", msg)
		return notify.Disabled(), msg
	}
	return n, ""
}
