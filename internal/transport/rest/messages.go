package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/scanreview-backend/internal/domain"
	"github.com/heartmarshall/scanreview-backend/internal/service/messaging"
)

type messagingService interface {
	Send(ctx context.Context, input messaging.SendInput) (*domain.Message, error)
	History(ctx context.Context, input messaging.HistoryInput) ([]domain.Message, error)
}

// MessageHandler serves the per-assignment chat.
type MessageHandler struct {
	messages messagingService
	log      *slog.Logger
}

// NewMessageHandler creates a MessageHandler.
func NewMessageHandler(messages messagingService, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{messages: messages, log: logger.With("handler", "message")}
}

type sendMessageRequest struct {
	Body          string  `json:"body"`
	AttachmentRef *string `json:"attachment_ref,omitempty"`
}

// Send handles POST /api/v1/assignments/{id}/messages.
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	assignmentID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	senderID, _, ok := caller(w, r)
	if !ok {
		return
	}
	var req sendMessageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	msg, err := h.messages.Send(r.Context(), messaging.SendInput{
		AssignmentID:  assignmentID,
		SenderID:      senderID,
		Body:          req.Body,
		AttachmentRef: req.AttachmentRef,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

// History handles GET /api/v1/assignments/{id}/messages?after=seq.
func (h *MessageHandler) History(w http.ResponseWriter, r *http.Request) {
	assignmentID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	requesterID, _, ok := caller(w, r)
	if !ok {
		return
	}

	var after int64
	if v := r.URL.Query().Get("after"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "VALIDATION", "after: must be an integer")
			return
		}
		after = n
	}

	msgs, err := h.messages.History(r.Context(), messaging.HistoryInput{
		AssignmentID: assignmentID,
		RequesterID:  requesterID,
		After:        after,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	if msgs == nil {
		msgs = []domain.Message{}
	}
	writeJSON(w, http.StatusOK, msgs)
}
