package scancase

import (
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanreview-backend/internal/domain"
)

// CreateCaseInput holds the parameters for registering an uploaded scan.
type CreateCaseInput struct {
	PatientID  uuid.UUID
	StorageRef string
}

// Validate checks all fields and collects all errors.
func (i CreateCaseInput) Validate() error {
	var errs []domain.FieldError

	if i.PatientID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "patient_id", Message: "required"})
	}
	ref := strings.TrimSpace(i.StorageRef)
	if ref == "" {
		errs = append(errs, domain.FieldError{Field: "storage_ref", Message: "required"})
	}
	if len(ref) > 1024 {
		errs = append(errs, domain.FieldError{Field: "storage_ref", Message: "max 1024 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UploadScanInput holds a scan archive streamed from the client.
type UploadScanInput struct {
	PatientID   uuid.UUID
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Validate checks the upload against policy and collects all errors.
func (i UploadScanInput) Validate(policy UploadPolicy) error {
	var errs []domain.FieldError

	if i.PatientID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "patient_id", Message: "required"})
	}

	name := filepath.Base(strings.TrimSpace(i.Filename))
	if name == "" || name == "." || name == string(filepath.Separator) {
		errs = append(errs, domain.FieldError{Field: "file", Message: "filename required"})
	} else if ext := strings.ToLower(filepath.Ext(name)); !slices.Contains(policy.Extensions, ext) {
		errs = append(errs, domain.FieldError{
			Field:   "file",
			Message: "unsupported extension, allowed: " + strings.Join(policy.Extensions, ", "),
		})
	}

	if i.Body == nil {
		errs = append(errs, domain.FieldError{Field: "file", Message: "required"})
	}
	if i.Size <= 0 {
		errs = append(errs, domain.FieldError{Field: "file", Message: "empty upload"})
	}
	if policy.MaxBytes > 0 && i.Size > policy.MaxBytes {
		errs = append(errs, domain.FieldError{Field: "file", Message: "file too large"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CompleteAnalysisInput holds the analysis worker's final report.
type CompleteAnalysisInput struct {
	CaseID   uuid.UUID
	Outcome  domain.CaseStatus
	Findings *domain.Findings
}

// Validate checks all fields and collects all errors.
func (i CompleteAnalysisInput) Validate() error {
	var errs []domain.FieldError

	if i.CaseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "case_id", Message: "required"})
	}
	switch i.Outcome {
	case domain.CaseStatusCompleted:
		if i.Findings == nil {
			errs = append(errs, domain.FieldError{Field: "findings", Message: "required when completed"})
		}
	case domain.CaseStatusFailed:
		if i.Findings != nil {
			errs = append(errs, domain.FieldError{Field: "findings", Message: "not allowed when failed"})
		}
	default:
		errs = append(errs, domain.FieldError{Field: "outcome", Message: "must be completed or failed"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
