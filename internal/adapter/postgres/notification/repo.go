// Package notification implements per-user notification persistence using PostgreSQL.
package notification

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/scanreview-backend/internal/adapter/postgres"
	"github.com/heartmarshall/scanreview-backend/internal/domain"
)

const (
	table   = "notifications"
	columns = "id, user_id, type, reference_id, message, is_read, created_at, read_at"
)

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new notification repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create appends a notification.
func (r *Repo) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "user_id", "type", "reference_id", "message", "is_read", "created_at").
		Values(n.ID, n.UserID, string(n.Type), n.ReferenceID, n.Message, false, n.CreatedAt).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert notification: %w", err)
	}

	var out domain.Notification
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "notification", n.ID)
	}
	return &out, nil
}

// MarkRead sets is_read for a notification owned by userID. read_at keeps
// the first read time, so repeating the call changes nothing.
func (r *Repo) MarkRead(ctx context.Context, id, userID uuid.UUID) (*domain.Notification, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("is_read", true).
		Set("read_at", sq.Expr("COALESCE(read_at, now())")).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build mark read: %w", err)
	}

	var out domain.Notification
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "notification", id)
	}
	return &out, nil
}

// MarkAllRead marks every unread notification of userID as read and
// returns how many changed.
func (r *Repo) MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("is_read", true).
		Set("read_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": userID, "is_read": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build mark all read: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "notifications", userID)
	}
	return int(tag.RowsAffected()), nil
}

// ListByUser returns up to limit notifications, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Notification, error) {
	query, args, err := postgres.Builder().
		Select(columns).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list notifications: %w", err)
	}

	out := []domain.Notification{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "notifications", userID)
	}
	return out, nil
}

// CountUnread returns the number of unread notifications for userID.
func (r *Repo) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	query, args, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(sq.Eq{"user_id": userID, "is_read": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count unread: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "notifications", userID)
	}
	return n, nil
}

// DeleteReadBefore removes read notifications created before threshold.
func (r *Repo) DeleteReadBefore(ctx context.Context, threshold time.Time) (int64, error) {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"is_read": true}).
		Where(sq.Lt{"created_at": threshold}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete notifications: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "notifications", threshold)
	}
	return tag.RowsAffected(), nil
}
