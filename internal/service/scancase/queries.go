package scancase

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanreview-backend/internal/domain"
)

// Get returns a case by ID.
func (s *Service) Get(ctx context.Context, caseID uuid.UUID) (*domain.Case, error) {
	return s.cases.GetByID(ctx, caseID)
}

// ListByPatient returns a patient's cases, newest first.
func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]domain.Case, error) {
	if patientID == uuid.Nil {
		return nil, domain.NewValidationError("patient_id", "required")
	}
	return s.cases.ListByPatient(ctx, patientID)
}

// ListUnassigned returns completed cases nobody has claimed, oldest first.
func (s *Service) ListUnassigned(ctx context.Context) ([]domain.Case, error) {
	return s.cases.ListUnassigned(ctx)
}

// ListRecent returns recently updated cases for the operator dashboard.
func (s *Service) ListRecent(ctx context.Context, limit int) ([]domain.Case, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}
	return s.cases.ListRecent(ctx, limit)
}
