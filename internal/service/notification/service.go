package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanreview-backend/internal/domain"
)

type notificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Notification, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
	DeleteReadBefore(ctx context.Context, threshold time.Time) (int64, error)
}

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
	MaxMessageLength = 500
)

// Service stores per-user notifications and tracks read state.
type Service struct {
	notifications notificationRepo
	log           *slog.Logger
}

// NewService creates a new notification service.
func NewService(log *slog.Logger, notifications notificationRepo) *Service {
	return &Service{
		notifications: notifications,
		log:           log.With("service", "notification"),
	}
}

// NotifyInput holds one notification to append.
type NotifyInput struct {
	RecipientID uuid.UUID
	Type        domain.NotificationType
	ReferenceID *uuid.UUID
	Message     string
}

// Validate checks all fields and collects all errors.
func (i NotifyInput) Validate() error {
	var errs []domain.FieldError

	if i.RecipientID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "recipient_id", Message: "required"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "unknown type"})
	}
	msg := strings.TrimSpace(i.Message)
	if msg == "" {
		errs = append(errs, domain.FieldError{Field: "message", Message: "required"})
	}
	if len(msg) > MaxMessageLength {
		errs = append(errs, domain.FieldError{Field: "message", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Notify appends a notification for the recipient.
func (s *Service) Notify(ctx context.Context, input NotifyInput) (*domain.Notification, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	n, err := s.notifications.Create(ctx, &domain.Notification{
		ID:          uuid.New(),
		UserID:      input.RecipientID,
		Type:        input.Type,
		ReferenceID: input.ReferenceID,
		Message:     strings.TrimSpace(input.Message),
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}
	return n, nil
}

// MarkRead flips is_read for the caller's notification. Repeating the call
// is a no-op. Another user's notification is reported as not found.
func (s *Service) MarkRead(ctx context.Context, notificationID, userID uuid.UUID) (*domain.Notification, error) {
	return s.notifications.MarkRead(ctx, notificationID, userID)
}

// MarkAllRead marks every unread notification of the user as read.
func (s *Service) MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error) {
	n, err := s.notifications.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("mark all read: %w", err)
	}
	return n, nil
}

// ListFor returns the user's notifications, newest first.
func (s *Service) ListFor(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return s.notifications.ListByUser(ctx, userID, limit)
}

// UnreadCount returns how many notifications the user has not read.
func (s *Service) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.notifications.CountUnread(ctx, userID)
}

// PurgeRead deletes read notifications older than retention.
func (s *Service) PurgeRead(ctx context.Context, retention time.Duration) (int64, error) {
	threshold := time.Now().UTC().Add(-retention)
	deleted, err := s.notifications.DeleteReadBefore(ctx, threshold)
	if err != nil {
		return 0, fmt.Errorf("delete read notifications: %w", err)
	}

	s.log.InfoContext(ctx, "read notifications purged",
		slog.Int64("deleted", deleted),
		slog.Time("threshold", threshold),
	)
	return deleted, nil
}
