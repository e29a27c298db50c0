// Package ws pushes committed lifecycle events to connected browsers.
// Clients are subscribed to their own user topic on connect and may
// subscribe to the case topics they are allowed to observe. Push is a
// latency optimization; clients still poll for authoritative state.
package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanreview-backend/internal/domain"
)

// CaseTopic names the topic for events about one case.
func CaseTopic(caseID uuid.UUID) string { return "case:" + caseID.String() }

// UserTopic names the topic for events addressed to one user.
func UserTopic(userID uuid.UUID) string { return "user:" + userID.String() }

// Client is a single websocket connection.
type Client struct {
	ID     string
	UserID uuid.UUID
	Role   domain.Role
	Send   chan []byte

	topics map[string]struct{}
}

func newClient(id string, userID uuid.UUID, role domain.Role, buffer int) *Client {
	return &Client{
		ID:     id,
		UserID: userID,
		Role:   role,
		Send:   make(chan []byte, buffer),
		topics: make(map[string]struct{}),
	}
}

// Hub tracks clients and their topic subscriptions. It is safe for
// concurrent use.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*Client]struct{} // topic -> subscribers
	all     map[*Client]struct{}
	log     *slog.Logger
}

// NewHub creates an empty Hub.
func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[string]map[*Client]struct{}),
		all:     make(map[*Client]struct{}),
		log:     log.With("handler", "ws_hub"),
	}
}

// Register adds a client and subscribes it to its user topic.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.all[c] = struct{}{}
	h.subscribeLocked(c, UserTopic(c.UserID))
}

// Unregister removes a client from every topic and closes its Send channel.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.all[c]; !ok {
		return
	}
	for topic := range c.topics {
		h.unsubscribeLocked(c, topic)
	}
	delete(h.all, c)
	close(c.Send)
}

// Subscribe adds topics to a registered client.
func (h *Hub) Subscribe(c *Client, topics ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.all[c]; !ok {
		return
	}
	for _, t := range topics {
		h.subscribeLocked(c, t)
	}
}

// Unsubscribe removes topics from a registered client. The user topic
// cannot be dropped.
func (h *Hub) Unsubscribe(c *Client, topics ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	own := UserTopic(c.UserID)
	for _, t := range topics {
		if t != own {
			h.unsubscribeLocked(c, t)
		}
	}
}

func (h *Hub) subscribeLocked(c *Client, topic string) {
	if h.clients[topic] == nil {
		h.clients[topic] = make(map[*Client]struct{})
	}
	h.clients[topic][c] = struct{}{}
	c.topics[topic] = struct{}{}
}

func (h *Hub) unsubscribeLocked(c *Client, topic string) {
	if subs, ok := h.clients[topic]; ok {
		delete(subs, c)
		if len(subs) == 0 {
			delete(h.clients, topic)
		}
	}
	delete(c.topics, topic)
}

// Publish delivers ev to subscribers of the case topic and to the user
// topics of the patient and the assigned doctor. A client subscribed to
// several of them receives ev once. Slow clients whose buffer is full miss
// the event.
//
// Once an event names a doctor the case is claimed, and case topic
// subscribers other than the two participants and operators are dropped
// before delivery.
func (h *Hub) Publish(_ context.Context, ev domain.Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	caseTopic := CaseTopic(ev.CaseID)
	topics := []string{caseTopic, UserTopic(ev.PatientID)}
	if ev.DoctorID != uuid.Nil {
		topics = append(topics, UserTopic(ev.DoctorID))
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if ev.DoctorID != uuid.Nil {
		h.evictOutsidersLocked(caseTopic, ev)
	}

	sent := make(map[*Client]struct{})
	for _, topic := range topics {
		for c := range h.clients[topic] {
			if _, dup := sent[c]; dup {
				continue
			}
			sent[c] = struct{}{}
			select {
			case c.Send <- data:
			default:
				h.log.Warn("client buffer full, event skipped",
					slog.String("client_id", c.ID),
					slog.String("event_type", string(ev.Type)),
				)
			}
		}
	}
	return nil
}

func (h *Hub) evictOutsidersLocked(topic string, ev domain.Event) {
	for c := range h.clients[topic] {
		if c.Role == domain.RoleOperator || c.UserID == ev.PatientID || c.UserID == ev.DoctorID {
			continue
		}
		h.unsubscribeLocked(c, topic)
		h.log.Debug("case subscription revoked",
			slog.String("client_id", c.ID),
			slog.String("case_id", ev.CaseID.String()),
		)
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.all)
}

// TopicCount returns the number of clients subscribed to topic.
func (h *Hub) TopicCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[topic])
}
