package scancase

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanreview-backend/internal/domain"
)

// CreateCase registers a scan that is already in object storage.
func (s *Service) CreateCase(ctx context.Context, input CreateCaseInput) (*domain.Case, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.create(ctx, input.PatientID, strings.TrimSpace(input.StorageRef))
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "case created",
		slog.String("case_id", c.ID.String()),
		slog.String("patient_id", c.PatientID.String()),
	)
	return c, nil
}

// UploadScan creates the case first and then streams the archive to
// object storage under <case_id>/<filename>. If the blob write fails the
// case stays uploaded with a pending storage reference.
func (s *Service) UploadScan(ctx context.Context, input UploadScanInput) (*domain.Case, error) {
	if s.blobs == nil {
		return nil, fmt.Errorf("object storage not configured: %w", domain.ErrStoreUnavailable)
	}
	if err := input.Validate(s.policy); err != nil {
		return nil, err
	}

	c, err := s.create(ctx, input.PatientID, domain.PendingStorageRef)
	if err != nil {
		return nil, err
	}

	key := c.ID.String() + "/" + filepath.Base(strings.TrimSpace(input.Filename))
	ref, err := s.blobs.Put(ctx, key, input.Body, input.Size, input.ContentType)
	if err != nil {
		s.log.WarnContext(ctx, "scan upload failed",
			slog.String("case_id", c.ID.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("store scan: %w", err)
	}

	updated, err := s.UpdateStorageRef(ctx, c.ID, ref)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "scan uploaded",
		slog.String("case_id", updated.ID.String()),
		slog.String("patient_id", updated.PatientID.String()),
		slog.Int64("size", input.Size),
	)
	return updated, nil
}

// UpdateStorageRef replaces the blob reference. It is only allowed before
// analysis has started.
func (s *Service) UpdateStorageRef(ctx context.Context, caseID uuid.UUID, ref string) (*domain.Case, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, domain.NewValidationError("storage_ref", "required")
	}

	c, applied, err := s.cases.UpdateStorageRef(ctx, caseID, ref)
	if err != nil {
		return nil, fmt.Errorf("update storage ref: %w", err)
	}
	if applied {
		return c, nil
	}

	cur, err := s.cases.GetByID(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("get case: %w", err)
	}
	return nil, fmt.Errorf("storage ref is frozen once status is %s: %w", cur.Status, domain.ErrInvalidTransition)
}

func (s *Service) create(ctx context.Context, patientID uuid.UUID, ref string) (*domain.Case, error) {
	now := time.Now().UTC()
	c, err := s.cases.Create(ctx, &domain.Case{
		ID:         uuid.New(),
		PatientID:  patientID,
		StorageRef: ref,
		Status:     domain.CaseStatusUploaded,
		UploadedAt: now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, fmt.Errorf("create case: %w", err)
	}
	return c, nil
}
