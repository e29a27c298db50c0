package scancase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanreview-backend/internal/domain"
)

// SetStatus moves the case forward. Re-applying the current post-pickup
// status is a no-op with Changed=false. Any other non-forward move fails
// with ErrInvalidTransition and leaves the row untouched.
func (s *Service) SetStatus(ctx context.Context, caseID uuid.UUID, status domain.CaseStatus) (*SetStatusResult, error) {
	if !status.IsValid() {
		return nil, domain.NewValidationError("status", "unknown status")
	}

	res, err := s.transition(ctx, caseID, status)
	if err != nil {
		return nil, err
	}
	if res.Changed {
		s.emitStatusChanged(ctx, res.Case)
	}
	return res, nil
}

// transition performs the guarded update and classifies a miss. It never
// emits events so it can run inside a transaction.
func (s *Service) transition(ctx context.Context, caseID uuid.UUID, to domain.CaseStatus) (*SetStatusResult, error) {
	from := to.Predecessors()

	for range casAttempts {
		c, applied, err := s.cases.CompareAndSetStatus(ctx, caseID, to, from)
		if err != nil {
			return nil, fmt.Errorf("set status: %w", err)
		}
		if applied {
			return &SetStatusResult{Case: c, Changed: true}, nil
		}

		cur, err := s.cases.GetByID(ctx, caseID)
		if err != nil {
			return nil, fmt.Errorf("get case: %w", err)
		}

		switch cur.Status.TransitionTo(to) {
		case domain.TransitionRepeat:
			s.log.DebugContext(ctx, "status repeat ignored",
				slog.String("case_id", caseID.String()),
				slog.String("status", to.String()),
			)
			return &SetStatusResult{Case: cur, Changed: false}, nil
		case domain.TransitionInvalid:
			return nil, fmt.Errorf("%s to %s: %w", cur.Status, to, domain.ErrInvalidTransition)
		}
		// TransitionAdvance: another writer moved the case between the two
		// statements. Try the guarded update again.
	}

	return nil, fmt.Errorf("set status: case %s kept changing: %w", caseID, domain.ErrConflict)
}

func (s *Service) emitStatusChanged(ctx context.Context, c *domain.Case) {
	s.log.InfoContext(ctx, "case status changed",
		slog.String("case_id", c.ID.String()),
		slog.String("status", c.Status.String()),
	)

	ev := domain.NewEvent(domain.EventCaseStatusChanged, c.ID, c.PatientID)
	ev.Status = c.Status
	s.events.Emit(ev)
}
