package status

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"github.com/heartmarshall/scanreview-backend/internal/domain"
)

// Poller is the read the Waiter repeats. Service implements it, and so does
// the HTTP client.
type Poller interface {
	PollStatus(ctx context.Context, caseID uuid.UUID) (*domain.StatusSnapshot, error)
}

// Outcome is how a wait ended.
type Outcome int

const (
	// OutcomeCompleted means analysis finished and a result is available.
	OutcomeCompleted Outcome = iota + 1
	// OutcomeFailed means analysis failed. It is terminal and never retried.
	OutcomeFailed
	// OutcomeTimeout means the attempt ceiling was reached while the case
	// was still in progress. It may still complete later.
	OutcomeTimeout
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeFailed:
		return "failed"
	case OutcomeTimeout:
		return "timeout"
	}
	return "unknown"
}

// Err maps non-success outcomes to domain errors for callers that prefer
// error returns.
func (o Outcome) Err() error {
	switch o {
	case OutcomeFailed:
		return domain.ErrAnalysisFailed
	case OutcomeTimeout:
		return domain.ErrWaitTimeout
	}
	return nil
}

// WaitResult is the final state observed by Wait.
type WaitResult struct {
	Outcome  Outcome
	Snapshot *domain.StatusSnapshot
	Attempts int
}

var errStillRunning = errors.New("analysis still running")

// Waiter polls a case at a fixed interval until it reaches a terminal
// status or the attempt ceiling.
type Waiter struct {
	poller      Poller
	interval    time.Duration
	maxAttempts int
	log         *slog.Logger
}

// Defaults used when NewWaiter gets non-positive values.
const (
	DefaultInterval    = 3 * time.Second
	DefaultMaxAttempts = 400
)

// NewWaiter creates a Waiter.
func NewWaiter(log *slog.Logger, poller Poller, interval time.Duration, maxAttempts int) *Waiter {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Waiter{
		poller:      poller,
		interval:    interval,
		maxAttempts: maxAttempts,
		log:         log.With("service", "status_waiter"),
	}
}

// Wait blocks until the case completes, fails, or the ceiling is reached.
// Transient read errors count as attempts and are retried. Errors that no
// retry can change (missing case, rejected credentials, denied access,
// invalid input) are returned at once, as is cancellation of ctx.
func (w *Waiter) Wait(ctx context.Context, caseID uuid.UUID) (*WaitResult, error) {
	res := &WaitResult{}
	backoff := retry.WithMaxRetries(uint64(w.maxAttempts-1), retry.NewConstant(w.interval))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		res.Attempts++

		snap, err := w.poller.PollStatus(ctx, caseID)
		if err != nil {
			if isPermanent(err) || ctx.Err() != nil {
				return err
			}
			w.log.DebugContext(ctx, "status poll failed",
				slog.String("case_id", caseID.String()),
				slog.Int("attempt", res.Attempts),
				slog.String("error", err.Error()),
			)
			return retry.RetryableError(err)
		}
		res.Snapshot = snap

		switch snap.Status {
		case domain.CaseStatusCompleted:
			return nil
		case domain.CaseStatusFailed:
			return domain.ErrAnalysisFailed
		}
		return retry.RetryableError(errStillRunning)
	})

	if err != nil && ctx.Err() != nil {
		return nil, ctx.Err()
	}

	switch {
	case err == nil:
		res.Outcome = OutcomeCompleted
	case errors.Is(err, domain.ErrAnalysisFailed):
		res.Outcome = OutcomeFailed
	case isPermanent(err):
		return nil, fmt.Errorf("wait for case %s: %w", caseID, err)
	default:
		// Ceiling reached while still running or while reads kept failing.
		res.Outcome = OutcomeTimeout
	}

	w.log.InfoContext(ctx, "wait finished",
		slog.String("case_id", caseID.String()),
		slog.String("outcome", res.Outcome.String()),
		slog.Int("attempts", res.Attempts),
	)
	return res, nil
}

// isPermanent reports whether a poll error will repeat on every attempt.
// Store outages, network failures and unknown errors are retried.
func isPermanent(err error) bool {
	return errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrUnauthorized) ||
		errors.Is(err, domain.ErrForbidden) ||
		errors.Is(err, domain.ErrValidation)
}
