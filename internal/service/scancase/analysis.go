package scancase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanreview-backend/internal/domain"
)

// ErrQueueDisabled is returned by RequestAnalysis when no analysis queue is
// configured.
var ErrQueueDisabled = errors.New("analysis queue not configured")

// CompleteAnalysis records the worker's outcome. For a completed analysis
// the findings and the status change commit together, so a case is never
// completed without a result.
func (s *Service) CompleteAnalysis(ctx context.Context, input CompleteAnalysisInput) (*SetStatusResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var res *SetStatusResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if input.Findings != nil {
			if _, _, err := s.results.Upsert(txCtx, input.CaseID, *input.Findings); err != nil {
				return fmt.Errorf("write result: %w", err)
			}
		}

		var err error
		res, err = s.transition(txCtx, input.CaseID, input.Outcome)
		return err
	})
	if err != nil {
		return nil, err
	}

	if res.Changed {
		s.emitStatusChanged(ctx, res.Case)
	}
	return res, nil
}

// RequestAnalysis enqueues an analysis job and returns once the queue has
// accepted it. It does not wait for the worker; callers observe progress
// through status polling. A failed enqueue is returned and not retried.
func (s *Service) RequestAnalysis(ctx context.Context, caseID uuid.UUID) error {
	if s.queue == nil {
		return ErrQueueDisabled
	}

	c, err := s.cases.GetByID(ctx, caseID)
	if err != nil {
		return fmt.Errorf("get case: %w", err)
	}
	if c.Status != domain.CaseStatusUploaded {
		return fmt.Errorf("analysis already started (%s): %w", c.Status, domain.ErrInvalidTransition)
	}
	if c.StorageRef == domain.PendingStorageRef {
		return domain.NewValidationError("storage_ref", "upload not finished")
	}

	if err := s.queue.EnqueueAnalysis(ctx, *c); err != nil {
		s.log.WarnContext(ctx, "analysis request failed",
			slog.String("case_id", caseID.String()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("enqueue analysis: %w", err)
	}

	s.log.InfoContext(ctx, "analysis requested", slog.String("case_id", caseID.String()))
	return nil
}
