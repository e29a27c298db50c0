package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType names a committed state transition.
type EventType string

const (
	EventCaseStatusChanged EventType = "case.status_changed"
	EventAssignmentCreated EventType = "assignment.created"
	EventMessageSent       EventType = "message.sent"
)

// Event describes a transition after it has been committed. Events are
// advisory: consumers may drop them and observers fall back to polling.
type Event struct {
	ID           uuid.UUID  `json:"id"`
	Type         EventType  `json:"type"`
	CaseID       uuid.UUID  `json:"case_id"`
	PatientID    uuid.UUID  `json:"patient_id"`
	AssignmentID uuid.UUID  `json:"assignment_id,omitzero"`
	DoctorID     uuid.UUID  `json:"doctor_id,omitzero"`
	ActorID      uuid.UUID  `json:"actor_id,omitzero"`
	Status       CaseStatus `json:"status,omitempty"`
	MessageID    uuid.UUID  `json:"message_id,omitzero"`
	OccurredAt   time.Time  `json:"occurred_at"`
}

// NewEvent stamps an event with a fresh ID and the current time.
func NewEvent(t EventType, caseID, patientID uuid.UUID) Event {
	return Event{
		ID:         uuid.New(),
		Type:       t,
		CaseID:     caseID,
		PatientID:  patientID,
		OccurredAt: time.Now().UTC(),
	}
}

// StatusSnapshot is the point-in-time view returned to polling observers.
type StatusSnapshot struct {
	CaseID     uuid.UUID   `json:"case_id"`
	Status     CaseStatus  `json:"status"`
	UpdatedAt  time.Time   `json:"updated_at"`
	Assignment *Assignment `json:"assignment,omitempty"`
}
