package domain

import (
	"time"

	"github.com/google/uuid"
)

// AssignmentStatus is the review state of a claimed case.
type AssignmentStatus string

const (
	AssignmentStatusAssigned  AssignmentStatus = "assigned"
	AssignmentStatusCompleted AssignmentStatus = "completed"
)

func (s AssignmentStatus) String() string { return string(s) }

func (s AssignmentStatus) IsValid() bool {
	switch s {
	case AssignmentStatusAssigned, AssignmentStatusCompleted:
		return true
	}
	return false
}

// Assignment binds exactly one doctor to one case. It is never deleted.
type Assignment struct {
	ID          uuid.UUID        `db:"id"           json:"id"`
	ScanID      uuid.UUID        `db:"scan_id"      json:"scan_id"`
	DoctorID    uuid.UUID        `db:"doctor_id"    json:"doctor_id"`
	Status      AssignmentStatus `db:"status"       json:"status"`
	AcceptedAt  time.Time        `db:"accepted_at"  json:"accepted_at"`
	CompletedAt *time.Time       `db:"completed_at" json:"completed_at,omitempty"`

	// PatientID is joined from the case; it is not stored on the assignment.
	PatientID uuid.UUID `db:"patient_id" json:"patient_id"`
}

// IsParticipant reports whether userID is the doctor or the case's patient.
func (a Assignment) IsParticipant(userID uuid.UUID) bool {
	return userID != uuid.Nil && (userID == a.DoctorID || userID == a.PatientID)
}

// Counterpart returns the other participant, or uuid.Nil for outsiders.
func (a Assignment) Counterpart(userID uuid.UUID) uuid.UUID {
	switch userID {
	case a.DoctorID:
		return a.PatientID
	case a.PatientID:
		return a.DoctorID
	}
	return uuid.Nil
}

// RejectReason explains why a claim did not create an assignment.
type RejectReason string

const RejectAlreadyAssigned RejectReason = "ALREADY_ASSIGNED"

// Rejected is the expected outcome of losing a claim race.
type Rejected struct {
	Reason RejectReason `json:"reason"`
	// Existing is the assignment that won, when it could be read back.
	Existing *Assignment `json:"-"`
}

// ClaimResult holds either the new assignment or a rejection, never both.
type ClaimResult struct {
	Assignment *Assignment
	Rejected   *Rejected
}
