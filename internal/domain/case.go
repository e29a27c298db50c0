package domain

import (
	"time"

	"github.com/google/uuid"
)

// CaseStatus is the lifecycle state of an uploaded scan.
type CaseStatus string

const (
	CaseStatusUploaded   CaseStatus = "uploaded"
	CaseStatusProcessing CaseStatus = "processing"
	CaseStatusCompleted  CaseStatus = "completed"
	CaseStatusFailed     CaseStatus = "failed"
)

func (s CaseStatus) String() string { return string(s) }

func (s CaseStatus) IsValid() bool {
	switch s {
	case CaseStatusUploaded, CaseStatusProcessing, CaseStatusCompleted, CaseStatusFailed:
		return true
	}
	return false
}

// IsTerminal reports whether no further status change is possible.
func (s CaseStatus) IsTerminal() bool {
	return s == CaseStatusCompleted || s == CaseStatusFailed
}

// rank orders statuses along the lifecycle. completed and failed share a
// rank, so neither can follow the other.
func (s CaseStatus) rank() int {
	switch s {
	case CaseStatusUploaded:
		return 0
	case CaseStatusProcessing:
		return 1
	case CaseStatusCompleted, CaseStatusFailed:
		return 2
	}
	return -1
}

// Transition classifies a requested status change.
type Transition int

const (
	TransitionInvalid Transition = iota
	// TransitionAdvance moves the case strictly forward.
	TransitionAdvance
	// TransitionRepeat re-applies the current post-pickup status. Analysis
	// workers retry, so this is accepted as a no-op.
	TransitionRepeat
)

// TransitionTo classifies moving from s to next.
func (s CaseStatus) TransitionTo(next CaseStatus) Transition {
	if !s.IsValid() || !next.IsValid() {
		return TransitionInvalid
	}
	if s == next {
		if next == CaseStatusUploaded {
			return TransitionInvalid
		}
		return TransitionRepeat
	}
	if next.rank() > s.rank() {
		return TransitionAdvance
	}
	return TransitionInvalid
}

// Predecessors returns every status from which s is a forward move.
func (s CaseStatus) Predecessors() []CaseStatus {
	var out []CaseStatus
	for _, from := range []CaseStatus{CaseStatusUploaded, CaseStatusProcessing, CaseStatusCompleted, CaseStatusFailed} {
		if from.TransitionTo(s) == TransitionAdvance {
			out = append(out, from)
		}
	}
	return out
}

// Case is one uploaded scan tracked through analysis and review.
type Case struct {
	ID         uuid.UUID  `db:"id"          json:"id"`
	PatientID  uuid.UUID  `db:"patient_id"  json:"patient_id"`
	StorageRef string     `db:"storage_ref" json:"storage_ref"`
	Status     CaseStatus `db:"status"      json:"status"`
	UploadedAt time.Time  `db:"uploaded_at" json:"uploaded_at"`
	UpdatedAt  time.Time  `db:"updated_at"  json:"updated_at"`
}

// PendingStorageRef marks a case whose blob upload has not finished yet.
const PendingStorageRef = "pending"
