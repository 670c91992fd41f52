// Manual check of desktop alerts: sends the notifications of a two-round
// session without waiting for the timer.
package main

import (
	"log"
	"os"
	"time"

	"github.com/llehouerou/rounds/internal/alert"
	"github.com/llehouerou/rounds/internal/logging"
	"github.com/llehouerou/rounds/internal/notify"
	"github.com/llehouerou/rounds/internal/timer"
)

const pause = 2 * time.Second

func main() {
	log.Println("Connecting to the notification service...")
	n, err := notify.New()
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}

	logger := logging.New(os.Stderr)
	d := alert.NewDispatcher(alert.NewNotifySink(n, logger), alert.NewLogSink(logger))
	defer d.Close()

	boundaries := []timer.Boundary{
		{From: timer.PhaseRound, To: timer.PhaseRest, Round: 2, Rounds: 2, Duration: 30},
		{From: timer.PhaseRest, To: timer.PhaseRound, Round: 2, Rounds: 2, Duration: 90},
	}
	for _, b := range boundaries {
		log.Printf("Sending %q", alert.BoundaryTitle(b))
		d.PhaseBoundary(b)
		time.Sleep(pause)
	}

	sum := timer.Summary{Rounds: 2, TotalSeconds: 210}
	log.Printf("Sending %q", alert.CompleteTitle)
	d.SessionComplete(sum)
	log.Println("Done, the completion notification stays until dismissed")
}
