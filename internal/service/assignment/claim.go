package assignment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanreview-backend/internal/domain"
)

// Claim binds the doctor to the case if it is completed and unclaimed.
// Losing the race is a typed rejection, not an error. Storage failures are
// returned immediately without retry.
func (s *Service) Claim(ctx context.Context, input ClaimInput) (*domain.ClaimResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	for range claimAttempts {
		a, created, err := s.assignments.Claim(ctx, uuid.New(), input.ScanID, input.DoctorID)
		if err != nil {
			return nil, fmt.Errorf("claim: %w", err)
		}
		if created {
			s.log.InfoContext(ctx, "case claimed",
				slog.String("case_id", a.ScanID.String()),
				slog.String("assignment_id", a.ID.String()),
				slog.String("doctor_id", a.DoctorID.String()),
			)

			ev := domain.NewEvent(domain.EventAssignmentCreated, a.ScanID, a.PatientID)
			ev.AssignmentID = a.ID
			ev.DoctorID = a.DoctorID
			ev.ActorID = a.DoctorID
			s.events.Emit(ev)

			return &domain.ClaimResult{Assignment: a}, nil
		}

		rejected, err := s.classifyMiss(ctx, input)
		if err != nil {
			return nil, err
		}
		if rejected != nil {
			return &domain.ClaimResult{Rejected: rejected}, nil
		}
	}

	return nil, fmt.Errorf("claim case %s: %w", input.ScanID, domain.ErrConflict)
}

// classifyMiss explains why the guarded insert created nothing. It returns
// (nil, nil) when the case is completed and still unclaimed, which means
// the status flipped after the insert ran.
func (s *Service) classifyMiss(ctx context.Context, input ClaimInput) (*domain.Rejected, error) {
	existing, err := s.assignments.GetByScanID(ctx, input.ScanID)
	switch {
	case err == nil:
		s.log.DebugContext(ctx, "claim rejected",
			slog.String("case_id", input.ScanID.String()),
			slog.String("doctor_id", input.DoctorID.String()),
			slog.String("holder_id", existing.DoctorID.String()),
		)
		return &domain.Rejected{Reason: domain.RejectAlreadyAssigned, Existing: existing}, nil
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("get assignment: %w", err)
	}

	c, err := s.cases.GetByID(ctx, input.ScanID)
	if err != nil {
		return nil, fmt.Errorf("get case: %w", err)
	}

	switch c.Status {
	case domain.CaseStatusUploaded, domain.CaseStatusProcessing:
		return nil, fmt.Errorf("case is %s: %w", c.Status, domain.ErrNotReady)
	case domain.CaseStatusFailed:
		return nil, fmt.Errorf("case is %s: %w", c.Status, domain.ErrNotClaimable)
	}
	return nil, nil
}
