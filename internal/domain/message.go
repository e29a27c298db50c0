package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is one entry in an assignment's append-only chat log.
// Seq breaks sent_at ties in insertion order.
type Message struct {
	ID            uuid.UUID `db:"id"             json:"id"`
	Seq           int64     `db:"seq"            json:"seq"`
	AssignmentID  uuid.UUID `db:"assignment_id"  json:"assignment_id"`
	SenderID      uuid.UUID `db:"sender_id"      json:"sender_id"`
	Body          string    `db:"body"           json:"body"`
	AttachmentRef *string   `db:"attachment_ref" json:"attachment_ref,omitempty"`
	SentAt        time.Time `db:"sent_at"        json:"sent_at"`
}
