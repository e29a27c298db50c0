// Package messaging implements the append-only chat between a case's
// patient and the doctor assigned to it.
package messaging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanreview-backend/internal/domain"
)

type messageRepo interface {
	Append(ctx context.Context, m *domain.Message) (*domain.Message, error)
	History(ctx context.Context, assignmentID uuid.UUID, afterSeq int64) ([]domain.Message, error)
}

type assignmentReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Assignment, error)
}

type eventEmitter interface {
	Emit(ev domain.Event)
}

const (
	MaxBodyLength       = 4000
	MaxAttachmentLength = 1024
)

// Service appends and reads per-assignment messages.
type Service struct {
	messages    messageRepo
	assignments assignmentReader
	events      eventEmitter
	log         *slog.Logger
}

// NewService creates a new messaging service.
func NewService(log *slog.Logger, messages messageRepo, assignments assignmentReader, events eventEmitter) *Service {
	return &Service{
		messages:    messages,
		assignments: assignments,
		events:      events,
		log:         log.With("service", "messaging"),
	}
}

// SendInput holds one outgoing message.
type SendInput struct {
	AssignmentID  uuid.UUID
	SenderID      uuid.UUID
	Body          string
	AttachmentRef *string
}

// Validate checks all fields and collects all errors.
func (i SendInput) Validate() error {
	var errs []domain.FieldError

	if i.AssignmentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "assignment_id", Message: "required"})
	}
	if i.SenderID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "sender_id", Message: "required"})
	}

	body := strings.TrimSpace(i.Body)
	hasAttachment := i.AttachmentRef != nil && strings.TrimSpace(*i.AttachmentRef) != ""
	if body == "" && !hasAttachment {
		errs = append(errs, domain.FieldError{Field: "body", Message: "required without attachment"})
	}
	if utf8.RuneCountInString(body) > MaxBodyLength {
		errs = append(errs, domain.FieldError{Field: "body", Message: "max 4000 characters"})
	}
	if i.AttachmentRef != nil && len(*i.AttachmentRef) > MaxAttachmentLength {
		errs = append(errs, domain.FieldError{Field: "attachment_ref", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// HistoryInput selects an assignment's log. After is an optional seq
// cursor; zero returns the full history. The cursor can skip a message
// whose transaction commits late, so it only suits incremental display.
type HistoryInput struct {
	AssignmentID uuid.UUID
	RequesterID  uuid.UUID
	After        int64
}

// Send appends a message from one of the assignment's participants.
func (s *Service) Send(ctx context.Context, input SendInput) (*domain.Message, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	a, err := s.participantAssignment(ctx, input.AssignmentID, input.SenderID)
	if err != nil {
		return nil, err
	}

	var attachment *string
	if input.AttachmentRef != nil {
		if ref := strings.TrimSpace(*input.AttachmentRef); ref != "" {
			attachment = &ref
		}
	}

	msg, err := s.messages.Append(ctx, &domain.Message{
		ID:            uuid.New(),
		AssignmentID:  a.ID,
		SenderID:      input.SenderID,
		Body:          strings.TrimSpace(input.Body),
		AttachmentRef: attachment,
	})
	if err != nil {
		return nil, fmt.Errorf("append message: %w", err)
	}

	s.log.InfoContext(ctx, "message sent",
		slog.String("assignment_id", a.ID.String()),
		slog.String("message_id", msg.ID.String()),
		slog.Int64("seq", msg.Seq),
	)

	ev := domain.NewEvent(domain.EventMessageSent, a.ScanID, a.PatientID)
	ev.AssignmentID = a.ID
	ev.DoctorID = a.DoctorID
	ev.ActorID = input.SenderID
	ev.MessageID = msg.ID
	s.events.Emit(ev)

	return msg, nil
}

// History returns the assignment's messages in send order.
func (s *Service) History(ctx context.Context, input HistoryInput) ([]domain.Message, error) {
	if input.After < 0 {
		return nil, domain.NewValidationError("after", "must not be negative")
	}
	if _, err := s.participantAssignment(ctx, input.AssignmentID, input.RequesterID); err != nil {
		return nil, err
	}

	msgs, err := s.messages.History(ctx, input.AssignmentID, input.After)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return msgs, nil
}

func (s *Service) participantAssignment(ctx context.Context, assignmentID, userID uuid.UUID) (*domain.Assignment, error) {
	a, err := s.assignments.GetByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	if !a.IsParticipant(userID) {
		return nil, domain.ErrForbidden
	}
	return a, nil
}
