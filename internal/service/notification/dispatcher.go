package notification

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanreview-backend/internal/domain"
)

type notifier interface {
	Notify(ctx context.Context, input NotifyInput) (*domain.Notification, error)
}

// Publisher receives every dispatched event after notifications are
// written. The websocket hub and the Kafka stream implement it.
type Publisher interface {
	Publish(ctx context.Context, ev domain.Event) error
}

// Dispatcher turns committed lifecycle events into notifications and
// forwards them to publishers. Emit never blocks the caller: when the queue
// is full the event is dropped and logged. Failures are logged and never
// reach the transition that produced the event.
type Dispatcher struct {
	notifier   notifier
	publishers []Publisher
	workers    int
	timeout    time.Duration
	log        *slog.Logger

	queue   chan domain.Event
	quit    chan struct{}
	wg      sync.WaitGroup
	started atomic.Bool
	dropped atomic.Int64
}

// NewDispatcher creates a Dispatcher with a queue of queueSize events served
// by workers goroutines.
func NewDispatcher(log *slog.Logger, n notifier, queueSize, workers int, publishers ...Publisher) *Dispatcher {
	if queueSize < 1 {
		queueSize = 1
	}
	if workers < 1 {
		workers = 1
	}
	return &Dispatcher{
		notifier:   n,
		publishers: publishers,
		workers:    workers,
		timeout:    10 * time.Second,
		log:        log.With("service", "notification_dispatcher"),
		queue:      make(chan domain.Event, queueSize),
		quit:       make(chan struct{}),
	}
}

// Emit enqueues ev without blocking.
func (d *Dispatcher) Emit(ev domain.Event) {
	select {
	case d.queue <- ev:
	default:
		d.dropped.Add(1)
		d.log.Warn("event dropped, queue full",
			slog.String("event_type", string(ev.Type)),
			slog.String("case_id", ev.CaseID.String()),
		)
	}
}

// Dropped returns how many events were dropped because the queue was full.
func (d *Dispatcher) Dropped() int64 {
	return d.dropped.Load()
}

// Started reports whether the workers are running.
func (d *Dispatcher) Started() bool {
	return d.started.Load()
}

// Start launches the workers. Calling it again is a no-op. A stopped
// Dispatcher cannot be restarted.
func (d *Dispatcher) Start() {
	if d.started.Swap(true) {
		return
	}
	for range d.workers {
		d.wg.Add(1)
		go d.run()
	}
}

// Stop signals the workers to drain the queue and exit, waiting at most
// wait for them to finish.
func (d *Dispatcher) Stop(wait time.Duration) {
	if !d.started.CompareAndSwap(true, false) {
		return
	}
	close(d.quit)

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(wait):
		d.log.Warn("dispatcher stop timed out", slog.Int("pending", len(d.queue)))
	}
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for {
		select {
		case ev := <-d.queue:
			d.handle(ev)
		case <-d.quit:
			for {
				select {
				case ev := <-d.queue:
					d.handle(ev)
				default:
					return
				}
			}
		}
	}
}

func (d *Dispatcher) handle(ev domain.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	if input, ok := notificationFor(ev); ok {
		if _, err := d.notifier.Notify(ctx, input); err != nil {
			d.log.ErrorContext(ctx, "notification write failed",
				slog.String("event_type", string(ev.Type)),
				slog.String("recipient_id", input.RecipientID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	for _, p := range d.publishers {
		if err := p.Publish(ctx, ev); err != nil {
			d.log.WarnContext(ctx, "event publish failed",
				slog.String("event_type", string(ev.Type)),
				slog.String("error", err.Error()),
			)
		}
	}
}

// notificationFor maps an event to the notification it triggers, if any.
func notificationFor(ev domain.Event) (NotifyInput, bool) {
	switch ev.Type {
	case domain.EventCaseStatusChanged:
		if ev.Status != domain.CaseStatusCompleted {
			return NotifyInput{}, false
		}
		return NotifyInput{
			RecipientID: ev.PatientID,
			Type:        domain.NotificationReportReady,
			ReferenceID: ref(ev.CaseID),
			Message:     "Your scan analysis is complete and the report is ready.",
		}, true

	case domain.EventAssignmentCreated:
		return NotifyInput{
			RecipientID: ev.PatientID,
			Type:        domain.NotificationCaseAssigned,
			ReferenceID: ref(ev.AssignmentID),
			Message:     "A doctor has been assigned to review your scan.",
		}, true

	case domain.EventMessageSent:
		recipient, msg := ev.DoctorID, "New message from your patient."
		if ev.ActorID == ev.DoctorID {
			recipient, msg = ev.PatientID, "New message from your doctor."
		}
		if recipient == uuid.Nil {
			return NotifyInput{}, false
		}
		return NotifyInput{
			RecipientID: recipient,
			Type:        domain.NotificationNewMessage,
			ReferenceID: ref(ev.AssignmentID),
			Message:     msg,
		}, true
	}
	return NotifyInput{}, false
}

func ref(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}
