package client

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanreview-backend/internal/domain"
)

// DefaultChatInterval is the history refresh period while a chat is open.
const DefaultChatInterval = 5 * time.Second

type chatAPI interface {
	SendMessage(ctx context.Context, assignmentID uuid.UUID, body string, attachmentRef *string) (*domain.Message, error)
	History(ctx context.Context, assignmentID uuid.UUID, after int64) ([]domain.Message, error)
}

// Entry is one line of a chat view. Pending entries were sent locally and
// are not yet confirmed by the server.
type Entry struct {
	domain.Message
	Pending bool
}

// ChatView is a local copy of one assignment's chat. Sends show up at once
// as pending entries and are reconciled with the server history.
type ChatView struct {
	api          chatAPI
	assignmentID uuid.UUID
	senderID     uuid.UUID
	interval     time.Duration
	log          *slog.Logger

	mu        sync.Mutex
	confirmed []domain.Message
	pending   []domain.Message
	onChange  func([]Entry)
}

// NewChatView creates a view for assignmentID as seen by senderID.
func NewChatView(api chatAPI, assignmentID, senderID uuid.UUID, interval time.Duration, logger *slog.Logger) *ChatView {
	if interval <= 0 {
		interval = DefaultChatInterval
	}
	return &ChatView{
		api:          api,
		assignmentID: assignmentID,
		senderID:     senderID,
		interval:     interval,
		log:          logger.With("view", "chat", "assignment_id", assignmentID.String()),
	}
}

// OnChange registers fn to receive a snapshot after every change.
func (v *ChatView) OnChange(fn func([]Entry)) {
	v.mu.Lock()
	v.onChange = fn
	v.mu.Unlock()
}

// Entries returns confirmed messages in order followed by pending ones.
func (v *ChatView) Entries() []Entry {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshotLocked()
}

// Send shows body as a pending entry, then posts it. On success the
// pending entry becomes the confirmed message. On failure it is retracted
// and the view re-syncs from the server.
func (v *ChatView) Send(ctx context.Context, body string, attachmentRef *string) (*domain.Message, error) {
	tentative := domain.Message{
		ID:            uuid.New(),
		AssignmentID:  v.assignmentID,
		SenderID:      v.senderID,
		Body:          body,
		AttachmentRef: attachmentRef,
		SentAt:        time.Now().UTC(),
	}
	v.update(func() { v.pending = append(v.pending, tentative) })

	msg, err := v.api.SendMessage(ctx, v.assignmentID, body, attachmentRef)
	if err != nil {
		v.update(func() { v.retractLocked(tentative.ID) })
		if syncErr := v.Sync(ctx); syncErr != nil {
			v.log.WarnContext(ctx, "resync after failed send", slog.String("error", syncErr.Error()))
		}
		return nil, fmt.Errorf("send: %w", err)
	}

	v.update(func() {
		v.retractLocked(tentative.ID)
		v.mergeLocked([]domain.Message{*msg})
	})
	return msg, nil
}

// Sync replaces the confirmed entries with the server history. Pending
// entries stay at the tail.
func (v *ChatView) Sync(ctx context.Context) error {
	msgs, err := v.api.History(ctx, v.assignmentID, 0)
	if err != nil {
		return fmt.Errorf("sync: %w", err)
	}
	v.update(func() {
		v.confirmed = nil
		v.mergeLocked(msgs)
	})
	return nil
}

// Run syncs immediately and then every interval until ctx is done. Sync
// errors are logged and retried on the next tick.
func (v *ChatView) Run(ctx context.Context) error {
	ticker := time.NewTicker(v.interval)
	defer ticker.Stop()

	for {
		if err := v.Sync(ctx); err != nil && ctx.Err() == nil {
			v.log.WarnContext(ctx, "chat sync failed", slog.String("error", err.Error()))
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (v *ChatView) update(fn func()) {
	v.mu.Lock()
	fn()
	snap, onChange := v.snapshotLocked(), v.onChange
	v.mu.Unlock()

	if onChange != nil {
		onChange(snap)
	}
}

func (v *ChatView) snapshotLocked() []Entry {
	out := make([]Entry, 0, len(v.confirmed)+len(v.pending))
	for _, m := range v.confirmed {
		out = append(out, Entry{Message: m})
	}
	for _, m := range v.pending {
		out = append(out, Entry{Message: m, Pending: true})
	}
	return out
}

func (v *ChatView) retractLocked(id uuid.UUID) {
	for i, m := range v.pending {
		if m.ID == id {
			v.pending = append(v.pending[:i], v.pending[i+1:]...)
			return
		}
	}
}

// mergeLocked adds msgs not yet present and keeps confirmed in history
// order: sent_at, then seq.
func (v *ChatView) mergeLocked(msgs []domain.Message) {
	seen := make(map[uuid.UUID]struct{}, len(v.confirmed))
	for _, m := range v.confirmed {
		seen[m.ID] = struct{}{}
	}
	for _, m := range msgs {
		if _, ok := seen[m.ID]; ok {
			continue
		}
		seen[m.ID] = struct{}{}
		v.confirmed = append(v.confirmed, m)
	}
	sort.SliceStable(v.confirmed, func(i, j int) bool {
		a, b := v.confirmed[i], v.confirmed[j]
		if !a.SentAt.Equal(b.SentAt) {
			return a.SentAt.Before(b.SentAt)
		}
		return a.Seq < b.Seq
	})
}
