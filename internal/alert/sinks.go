package alert

import (
	"fmt"

	"github.com/llehouerou/rounds/internal/errmsg"
	"github.com/llehouerou/rounds/internal/logging"
	"github.com/llehouerou/rounds/internal/notify"
	"github.com/llehouerou/rounds/internal/timer"
)

const (
	phaseTimeout    = 4000 // ms
	completeTimeout = 0    // never expire
)

// NotifySink shows desktop notifications. Phase boundaries replace each
// other so the notification area holds a single timer entry.
type NotifySink struct {
	notifier notify.Notifier
	log      *logging.Logger
	phaseID  uint32
}

// NewNotifySink creates a sink backed by n. log may be nil.
func NewNotifySink(n notify.Notifier, log *logging.Logger) *NotifySink {
	if log == nil {
		log = logging.Discard()
	}
	return &NotifySink{notifier: n, log: log}
}

// PhaseBoundary implements Sink. The final boundary is left to
// SessionComplete.
func (s *NotifySink) PhaseBoundary(b timer.Boundary) {
	if b.Final {
		return
	}
	id, err := s.notifier.Notify(notify.Notification{
		Title:      BoundaryTitle(b),
		Body:       BoundaryBody(b),
		Icon:       "alarm-symbolic",
		Category:   notify.CategoryPhase,
		Timeout:    phaseTimeout,
		ReplacesID: s.phaseID,
		Urgency:    notify.UrgencyLow,
	})
	if err != nil {
		s.log.Warnf("%s", errmsg.Format(errmsg.OpNotifySend, err))
		return
	}
	s.phaseID = id
}

// SessionComplete implements Sink.
func (s *NotifySink) SessionComplete(sum timer.Summary) {
	id, err := s.notifier.Notify(notify.Notification{
		Title:      CompleteTitle,
		Body:       CompleteBody(sum),
		Icon:       "emblem-ok-symbolic",
		Category:   notify.CategoryComplete,
		Timeout:    completeTimeout,
		ReplacesID: s.phaseID,
		Urgency:    notify.UrgencyCritical,
	})
	if err != nil {
		s.log.Warnf("%s", errmsg.Format(errmsg.OpNotifySend, err))
		return
	}
	s.phaseID = id
}

// LogSink writes every signal to the log.
type LogSink struct {
	log *logging.Logger
}

// NewLogSink creates a sink writing to log.
func NewLogSink(log *logging.Logger) *LogSink {
	return &LogSink{log: log}
}

// PhaseBoundary implements Sink.
func (s *LogSink) PhaseBoundary(b timer.Boundary) {
	s.log.Event("PHASE", fmt.Sprintf("%s -> %s, round %d/%d, %s",
		b.From, b.To, b.Round, b.Rounds, timer.FormatTime(b.Duration)))
}

// SessionComplete implements Sink.
func (s *LogSink) SessionComplete(sum timer.Summary) {
	s.log.Event("COMPLETE", fmt.Sprintf("%d rounds, %s total",
		sum.Rounds, timer.FormatTime(sum.TotalSeconds)))
}

// CompleteTitle is the headline shown when a session ends.
const CompleteTitle = "Training complete!"

// BoundaryTitle returns the headline for a phase boundary.
func BoundaryTitle(b timer.Boundary) string {
	if b.To == timer.PhaseRest {
		return "Rest"
	}
	return fmt.Sprintf("Round %d", b.Round)
}

// BoundaryBody returns the detail line for a phase boundary.
func BoundaryBody(b timer.Boundary) string {
	if b.To == timer.PhaseRest {
		return fmt.Sprintf("%s rest · round %d/%d next", timer.FormatTime(b.Duration), b.Round, b.Rounds)
	}
	return fmt.Sprintf("%s · round %d of %d", timer.FormatTime(b.Duration), b.Round, b.Rounds)
}

// CompleteBody returns the detail line for a finished session.
func CompleteBody(sum timer.Summary) string {
	return fmt.Sprintf("Great job! You finished all %d rounds (%s).", sum.Rounds, timer.FormatTime(sum.TotalSeconds))
}
