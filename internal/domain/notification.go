package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType tags what a notification refers to.
type NotificationType string

const (
	NotificationReportReady  NotificationType = "report_ready"
	NotificationCaseAssigned NotificationType = "case_assigned"
	NotificationNewMessage   NotificationType = "new_message"
)

func (t NotificationType) String() string { return string(t) }

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationReportReady, NotificationCaseAssigned, NotificationNewMessage:
		return true
	}
	return false
}

// Notification is a per-user record of a state change. Only IsRead changes
// after creation, and only from false to true.
type Notification struct {
	ID          uuid.UUID        `db:"id"           json:"id"`
	UserID      uuid.UUID        `db:"user_id"      json:"user_id"`
	Type        NotificationType `db:"type"         json:"type"`
	ReferenceID *uuid.UUID       `db:"reference_id" json:"reference_id,omitempty"`
	Message     string           `db:"message"      json:"message"`
	IsRead      bool             `db:"is_read"      json:"is_read"`
	CreatedAt   time.Time        `db:"created_at"   json:"created_at"`
	ReadAt      *time.Time       `db:"read_at"      json:"read_at,omitempty"`
}
