package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanreview-backend/internal/domain"
)

type notificationService interface {
	ListFor(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Notification, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, notificationID, userID uuid.UUID) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error)
}

// NotificationHandler serves the caller's notification inbox.
type NotificationHandler struct {
	notifications notificationService
	log           *slog.Logger
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(notifications notificationService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{notifications: notifications, log: logger.With("handler", "notification")}
}

// List handles GET /api/v1/notifications?limit=N.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := caller(w, r)
	if !ok {
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "VALIDATION", "limit: must be an integer")
			return
		}
		limit = n
	}

	list, err := h.notifications.ListFor(r.Context(), userID, limit)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	if list == nil {
		list = []domain.Notification{}
	}
	writeJSON(w, http.StatusOK, list)
}

// UnreadCount handles GET /api/v1/notifications/unread-count.
func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := caller(w, r)
	if !ok {
		return
	}

	n, err := h.notifications.UnreadCount(r.Context(), userID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"unread": n})
}

// MarkRead handles POST /api/v1/notifications/{id}/read.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	userID, _, ok := caller(w, r)
	if !ok {
		return
	}

	n, err := h.notifications.MarkRead(r.Context(), id, userID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

// MarkAllRead handles POST /api/v1/notifications/read-all.
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := caller(w, r)
	if !ok {
		return
	}

	n, err := h.notifications.MarkAllRead(r.Context(), userID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"updated": n})
}
