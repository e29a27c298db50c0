package assignment

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanreview-backend/internal/domain"
)

type assignmentRepo interface {
	Claim(ctx context.Context, id, scanID, doctorID uuid.UUID) (*domain.Assignment, bool, error)
	Complete(ctx context.Context, id uuid.UUID) (*domain.Assignment, bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Assignment, error)
	GetByScanID(ctx context.Context, scanID uuid.UUID) (*domain.Assignment, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]domain.Assignment, error)
}

type caseReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Case, error)
}

type eventEmitter interface {
	Emit(ev domain.Event)
}

// claimAttempts bounds retries when the case turns completed between the
// claim statement and the classification read.
const claimAttempts = 2

// Service binds doctors to completed cases. Exclusivity comes from the
// storage layer; the service only classifies outcomes.
type Service struct {
	assignments assignmentRepo
	cases       caseReader
	events      eventEmitter
	log         *slog.Logger
}

// NewService creates a new assignment service.
func NewService(log *slog.Logger, assignments assignmentRepo, cases caseReader, events eventEmitter) *Service {
	return &Service{
		assignments: assignments,
		cases:       cases,
		events:      events,
		log:         log.With("service", "assignment"),
	}
}

// ClaimInput identifies the case and the claiming doctor.
type ClaimInput struct {
	ScanID   uuid.UUID
	DoctorID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ClaimInput) Validate() error {
	var errs []domain.FieldError

	if i.ScanID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "scan_id", Message: "required"})
	}
	if i.DoctorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "doctor_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
