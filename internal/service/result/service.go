package result

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanreview-backend/internal/domain"
)

type resultRepo interface {
	Upsert(ctx context.Context, scanID uuid.UUID, findings domain.Findings) (*domain.Result, bool, error)
	GetByScanID(ctx context.Context, scanID uuid.UUID) (*domain.Result, error)
}

// Service stores AI findings. Each case has at most one result; a second
// write replaces the first.
type Service struct {
	results resultRepo
	log     *slog.Logger
}

// NewService creates a new result service.
func NewService(log *slog.Logger, results resultRepo) *Service {
	return &Service{
		results: results,
		log:     log.With("service", "result"),
	}
}

// WriteInput holds findings for one case.
type WriteInput struct {
	CaseID   uuid.UUID
	Findings domain.Findings
}

// Validate checks all fields and collects all errors.
func (i WriteInput) Validate() error {
	var errs []domain.FieldError

	if i.CaseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "case_id", Message: "required"})
	}
	if strings.TrimSpace(i.Findings.LungHealth) == "" {
		errs = append(errs, domain.FieldError{Field: "findings.lung_health", Message: "required"})
	}
	for idx, n := range i.Findings.Nodules {
		if n.ProbMalignant < 0 || n.ProbMalignant > 1 {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("findings.nodules[%d].prob_malignant", idx),
				Message: "must be between 0 and 1",
			})
		}
		if n.LongAxisMM < 0 || n.VolumeMM3 < 0 {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("findings.nodules[%d]", idx),
				Message: "size must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// WriteResult reports whether an earlier result was replaced.
type WriteResult struct {
	Result   *domain.Result
	Replaced bool
}

// Write stores findings for a case. A repeated write is a corrective
// replace, not an error.
func (s *Service) Write(ctx context.Context, input WriteInput) (*WriteResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	res, replaced, err := s.results.Upsert(ctx, input.CaseID, input.Findings)
	if err != nil {
		return nil, fmt.Errorf("write result: %w", err)
	}

	if replaced {
		s.log.InfoContext(ctx, "result replaced",
			slog.String("case_id", input.CaseID.String()),
			slog.Int("nodules", input.Findings.NumNodules()),
		)
	} else {
		s.log.InfoContext(ctx, "result written",
			slog.String("case_id", input.CaseID.String()),
			slog.Int("nodules", input.Findings.NumNodules()),
		)
	}

	return &WriteResult{Result: res, Replaced: replaced}, nil
}

// Get returns the findings for a case.
func (s *Service) Get(ctx context.Context, caseID uuid.UUID) (*domain.Result, error) {
	return s.results.GetByScanID(ctx, caseID)
}
