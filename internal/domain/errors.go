package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrInvalidTransition is returned when a status change would move a
	// case backward or sideways in its lifecycle. The row is left untouched.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrNotClaimable is returned when a claim targets a case that is not
	// in the completed state.
	ErrNotClaimable = errors.New("case not claimable")

	// ErrNotReady is the NotClaimable variant for cases still being analysed.
	// errors.Is(ErrNotReady, ErrNotClaimable) holds.
	ErrNotReady = fmt.Errorf("case not ready: %w", ErrNotClaimable)

	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrAnalysisFailed reports a case that reached the failed state.
	ErrAnalysisFailed = errors.New("analysis failed")

	// ErrWaitTimeout reports a wait that hit its attempt ceiling before the
	// case reached a terminal state. It is distinct from ErrAnalysisFailed.
	ErrWaitTimeout = errors.New("wait timed out")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
