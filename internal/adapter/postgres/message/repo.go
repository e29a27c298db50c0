// Package message implements the per-assignment chat log using PostgreSQL.
package message

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/scanreview-backend/internal/adapter/postgres"
	"github.com/heartmarshall/scanreview-backend/internal/domain"
)

const columns = "id, seq, assignment_id, sender_id, body, attachment_ref, sent_at"

// appendSQL stamps sent_at no earlier than the latest message of the same
// assignment, so a new message always sorts last even under clock skew
// between sessions.
const appendSQL = `
INSERT INTO messages (id, assignment_id, sender_id, body, attachment_ref, sent_at)
SELECT $1, $2, $3, $4, $5,
       GREATEST(clock_timestamp(), COALESCE(MAX(m.sent_at), '-infinity'::timestamptz))
FROM messages m
WHERE m.assignment_id = $2
RETURNING ` + columns

// Repo provides message persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new message repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Append adds a message to the assignment's log.
func (r *Repo) Append(ctx context.Context, m *domain.Message) (*domain.Message, error) {
	var out domain.Message
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, appendSQL,
		m.ID, m.AssignmentID, m.SenderID, m.Body, m.AttachmentRef)
	if err != nil {
		return nil, postgres.MapError(err, "assignment", m.AssignmentID)
	}
	return &out, nil
}

// History returns the assignment's messages in send order. When afterSeq is
// positive only messages appended after that sequence number are returned.
// The cursor is best-effort: seq is allocated at insert but visible only at
// commit, so a slow writer holding a lower seq can land behind a reader that
// already moved past it. Readers that must not miss a message refetch the
// full history.
func (r *Repo) History(ctx context.Context, assignmentID uuid.UUID, afterSeq int64) ([]domain.Message, error) {
	b := postgres.Builder().
		Select(columns).
		From("messages").
		Where(sq.Eq{"assignment_id": assignmentID}).
		OrderBy("sent_at", "seq")
	if afterSeq > 0 {
		b = b.Where(sq.Gt{"seq": afterSeq})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build message history: %w", err)
	}

	out := []domain.Message{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "messages", assignmentID)
	}
	return out, nil
}
