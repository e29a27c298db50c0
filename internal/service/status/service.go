// Package status serves the polling read path for case progress.
package status

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanreview-backend/internal/domain"
)

type caseReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Case, error)
}

type assignmentReader interface {
	GetByScanID(ctx context.Context, scanID uuid.UUID) (*domain.Assignment, error)
}

// Service answers point-in-time status reads. It has no side effects and
// is safe to call at any rate.
type Service struct {
	cases       caseReader
	assignments assignmentReader
	log         *slog.Logger
}

// NewService creates a new status service.
func NewService(log *slog.Logger, cases caseReader, assignments assignmentReader) *Service {
	return &Service{
		cases:       cases,
		assignments: assignments,
		log:         log.With("service", "status"),
	}
}

// PollStatus returns the case status and, once completed, its assignment
// if one exists.
func (s *Service) PollStatus(ctx context.Context, caseID uuid.UUID) (*domain.StatusSnapshot, error) {
	c, err := s.cases.GetByID(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("get case: %w", err)
	}

	snap := &domain.StatusSnapshot{
		CaseID:    c.ID,
		Status:    c.Status,
		UpdatedAt: c.UpdatedAt,
	}
	if c.Status != domain.CaseStatusCompleted {
		return snap, nil
	}

	a, err := s.assignments.GetByScanID(ctx, caseID)
	switch {
	case err == nil:
		snap.Assignment = a
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	return snap, nil
}
