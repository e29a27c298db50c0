package assignment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanreview-backend/internal/domain"
)

// Complete closes out the doctor's review. Only the bound doctor may do
// this; completing twice returns the completed assignment.
func (s *Service) Complete(ctx context.Context, assignmentID, doctorID uuid.UUID) (*domain.Assignment, error) {
	a, err := s.assignments.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	if a.DoctorID != doctorID {
		return nil, domain.ErrForbidden
	}
	if a.Status == domain.AssignmentStatusCompleted {
		return a, nil
	}

	done, applied, err := s.assignments.Complete(ctx, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("complete assignment: %w", err)
	}
	if !applied {
		return s.assignments.GetByID(ctx, assignmentID)
	}

	s.log.InfoContext(ctx, "review completed",
		slog.String("assignment_id", done.ID.String()),
		slog.String("case_id", done.ScanID.String()),
	)
	return done, nil
}

// Get returns an assignment by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Assignment, error) {
	return s.assignments.GetByID(ctx, id)
}

// GetByScan returns the assignment bound to a case.
func (s *Service) GetByScan(ctx context.Context, scanID uuid.UUID) (*domain.Assignment, error) {
	return s.assignments.GetByScanID(ctx, scanID)
}

// ListByDoctor returns the doctor's assignments, newest first.
func (s *Service) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]domain.Assignment, error) {
	return s.assignments.ListByDoctor(ctx, doctorID)
}
