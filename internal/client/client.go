// Package client is the HTTP client used by portal processes and tooling
// to observe cases, claim them and chat over an assignment.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanreview-backend/internal/domain"
	"github.com/heartmarshall/scanreview-backend/internal/service/status"
)

const defaultTimeout = 10 * time.Second

// Client talks to the scanreview API on behalf of one authenticated user.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a Client. token is sent as a bearer token when non-empty.
func New(baseURL, token string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: defaultTimeout},
		log:        logger.With("client", "scanreview"),
	}
}

// APIError is a non-2xx answer. It unwraps to the matching domain error
// so callers can use errors.Is.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d %s: %s", e.Status, e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.Code {
	case "VALIDATION":
		return domain.ErrValidation
	case "NOT_FOUND":
		return domain.ErrNotFound
	case "UNAUTHENTICATED":
		return domain.ErrUnauthorized
	case "FORBIDDEN":
		return domain.ErrForbidden
	case "NOT_READY":
		return domain.ErrNotReady
	case "NOT_CLAIMABLE":
		return domain.ErrNotClaimable
	case "INVALID_TRANSITION":
		return domain.ErrInvalidTransition
	case "CONFLICT":
		return domain.ErrConflict
	case "ALREADY_EXISTS":
		return domain.ErrAlreadyExists
	case "STORE_UNAVAILABLE":
		return domain.ErrStoreUnavailable
	}
	return nil
}

type apiErrorBody struct {
	Error        string     `json:"error"`
	Code         string     `json:"code"`
	AssignmentID *uuid.UUID `json:"assignment_id,omitempty"`
}

type createCaseBody struct {
	PatientID  uuid.UUID `json:"patient_id"`
	StorageRef string    `json:"storage_ref"`
}

// CreateCase registers a scan already placed in storage. Patients may pass
// uuid.Nil to act for themselves.
func (c *Client) CreateCase(ctx context.Context, patientID uuid.UUID, storageRef string) (*domain.Case, error) {
	var out domain.Case
	in := createCaseBody{PatientID: patientID, StorageRef: storageRef}
	if err := c.do(ctx, http.MethodPost, "/api/v1/cases", in, &out); err != nil {
		return nil, fmt.Errorf("create case: %w", err)
	}
	return &out, nil
}

// PollStatus reads the current status of a case. It satisfies status.Poller.
func (c *Client) PollStatus(ctx context.Context, caseID uuid.UUID) (*domain.StatusSnapshot, error) {
	var snap domain.StatusSnapshot
	if err := c.do(ctx, http.MethodGet, "/api/v1/cases/"+caseID.String()+"/status", nil, &snap); err != nil {
		return nil, fmt.Errorf("poll status: %w", err)
	}
	return &snap, nil
}

// Contract fetches the polling cadence the server asks clients to follow.
func (c *Client) Contract(ctx context.Context) (status.Contract, error) {
	var out status.Contract
	if err := c.do(ctx, http.MethodGet, "/api/v1/polling", nil, &out); err != nil {
		return status.Contract{}, fmt.Errorf("polling contract: %w", err)
	}
	return out, nil
}

// WaitForResult polls caseID until analysis completes, fails or maxAttempts
// polls have been made.
func (c *Client) WaitForResult(ctx context.Context, caseID uuid.UUID, interval time.Duration, maxAttempts int) (*status.WaitResult, error) {
	return status.NewWaiter(c.log, c, interval, maxAttempts).Wait(ctx, caseID)
}

// RequestAnalysis queues analysis for an uploaded case and returns at once.
func (c *Client) RequestAnalysis(ctx context.Context, caseID uuid.UUID) error {
	if err := c.do(ctx, http.MethodPost, "/api/v1/cases/"+caseID.String()+"/analysis", nil, nil); err != nil {
		return fmt.Errorf("request analysis: %w", err)
	}
	return nil
}

// Result fetches the AI findings of a completed case.
func (c *Client) Result(ctx context.Context, caseID uuid.UUID) (*domain.Result, error) {
	var res domain.Result
	if err := c.do(ctx, http.MethodGet, "/api/v1/cases/"+caseID.String()+"/result", nil, &res); err != nil {
		return nil, fmt.Errorf("get result: %w", err)
	}
	return &res, nil
}

// Claim asks to review caseID. Losing the race is reported through
// ClaimResult.Rejected, not as an error.
func (c *Client) Claim(ctx context.Context, caseID uuid.UUID) (*domain.ClaimResult, error) {
	var a domain.Assignment
	err := c.do(ctx, http.MethodPost, "/api/v1/cases/"+caseID.String()+"/claim", nil, &a)

	var rejected *rejectedError
	switch {
	case errors.As(err, &rejected):
		r := &domain.Rejected{Reason: domain.RejectAlreadyAssigned}
		if rejected.assignmentID != nil {
			r.Existing = &domain.Assignment{ID: *rejected.assignmentID, ScanID: caseID}
		}
		return &domain.ClaimResult{Rejected: r}, nil
	case err != nil:
		return nil, fmt.Errorf("claim case: %w", err)
	}
	return &domain.ClaimResult{Assignment: &a}, nil
}

type sendMessageBody struct {
	Body          string  `json:"body"`
	AttachmentRef *string `json:"attachment_ref,omitempty"`
}

// SendMessage posts a message to the assignment chat.
func (c *Client) SendMessage(ctx context.Context, assignmentID uuid.UUID, body string, attachmentRef *string) (*domain.Message, error) {
	var msg domain.Message
	in := sendMessageBody{Body: body, AttachmentRef: attachmentRef}
	if err := c.do(ctx, http.MethodPost, "/api/v1/assignments/"+assignmentID.String()+"/messages", in, &msg); err != nil {
		return nil, fmt.Errorf("send message: %w", err)
	}
	return &msg, nil
}

// History returns messages with seq greater than after, oldest first.
// Pass zero for the complete log; a positive cursor is best-effort.
func (c *Client) History(ctx context.Context, assignmentID uuid.UUID, after int64) ([]domain.Message, error) {
	path := "/api/v1/assignments/" + assignmentID.String() + "/messages"
	if after > 0 {
		path += "?after=" + strconv.FormatInt(after, 10)
	}
	var msgs []domain.Message
	if err := c.do(ctx, http.MethodGet, path, nil, &msgs); err != nil {
		return nil, fmt.Errorf("message history: %w", err)
	}
	return msgs, nil
}

// Notifications lists the caller's notifications, newest first.
func (c *Client) Notifications(ctx context.Context, limit int) ([]domain.Notification, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	path := "/api/v1/notifications"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var list []domain.Notification
	if err := c.do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return list, nil
}

// UnreadCount returns how many notifications the caller has not read.
func (c *Client) UnreadCount(ctx context.Context) (int, error) {
	var out struct {
		Unread int `json:"unread"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/notifications/unread-count", nil, &out); err != nil {
		return 0, fmt.Errorf("unread count: %w", err)
	}
	return out.Unread, nil
}

// MarkRead marks one notification read.
func (c *Client) MarkRead(ctx context.Context, notificationID uuid.UUID) error {
	if err := c.do(ctx, http.MethodPost, "/api/v1/notifications/"+notificationID.String()+"/read", nil, nil); err != nil {
		return fmt.Errorf("mark read: %w", err)
	}
	return nil
}

// WatchUnread polls the unread count every interval and calls onChange
// whenever it differs from the last value seen. Poll errors are logged and
// the loop continues. It returns ctx.Err() once ctx is done.
func (c *Client) WatchUnread(ctx context.Context, interval time.Duration, onChange func(int)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := -1
	for {
		n, err := c.UnreadCount(ctx)
		switch {
		case err != nil && ctx.Err() == nil:
			c.log.WarnContext(ctx, "unread poll failed", slog.String("error", err.Error()))
		case err == nil && n != last:
			last = n
			onChange(n)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

type rejectedError struct {
	assignmentID *uuid.UUID
}

func (e *rejectedError) Error() string { return "case already assigned" }

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var body apiErrorBody
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(data, &body); err != nil {
		body.Error = strings.TrimSpace(string(data))
	}

	if resp.StatusCode == http.StatusConflict && body.Code == string(domain.RejectAlreadyAssigned) {
		return &rejectedError{assignmentID: body.AssignmentID}
	}
	if body.Code == "" {
		body.Code = codeForStatus(resp.StatusCode)
	}
	return &APIError{Status: resp.StatusCode, Code: body.Code, Message: body.Error}
}

// codeForStatus covers plain-text answers from the middleware layer.
func codeForStatus(status int) string {
	switch {
	case status == http.StatusUnauthorized:
		return "UNAUTHENTICATED"
	case status == http.StatusForbidden:
		return "FORBIDDEN"
	case status == http.StatusNotFound:
		return "NOT_FOUND"
	case status >= 500:
		return "STORE_UNAVAILABLE"
	}
	return ""
}
