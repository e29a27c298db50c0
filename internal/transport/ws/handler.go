package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/heartmarshall/scanreview-backend/internal/domain"
	"github.com/heartmarshall/scanreview-backend/pkg/ctxutil"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxMessageSize = 4096
	sendBuffer     = 64
)

// caseAccess decides whether the caller in ctx may observe a case.
type caseAccess interface {
	CanObserve(ctx context.Context, caseID uuid.UUID) error
}

// ClientMessage is an inbound subscription request, for example
// {"action":"subscribe","cases":["<uuid>"]}.
type ClientMessage struct {
	Action string      `json:"action"`
	Cases  []uuid.UUID `json:"cases"`
}

// Handler upgrades authenticated requests to websocket connections.
type Handler struct {
	hub      *Hub
	access   caseAccess
	upgrader websocket.Upgrader
	log      *slog.Logger
}

// NewHandler creates a Handler. allowedOrigins is the comma separated CORS
// allow-list; "*" accepts any origin.
func NewHandler(hub *Hub, access caseAccess, allowedOrigins string, log *slog.Logger) *Handler {
	origins := strings.Split(allowedOrigins, ",")
	return &Handler{
		hub:    hub,
		access: access,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				for _, o := range origins {
					if o = strings.TrimSpace(o); o == "*" || o == origin {
						return true
					}
				}
				return false
			},
		},
		log: log.With("handler", "ws"),
	}
}

// Connect handles GET /api/v1/ws.
func (h *Handler) Connect(w http.ResponseWriter, r *http.Request) {
	caller, ok := ctxutil.CallerFromCtx(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		h.log.WarnContext(r.Context(), "websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	c := newClient(uuid.NewString(), caller.ID, domain.Role(caller.Role), sendBuffer)
	h.hub.Register(c)

	// The request context ends when the handler returns; subscription checks
	// run on a detached copy that keeps the caller identity.
	ctx := ctxutil.WithCaller(context.Background(), caller)

	go h.writePump(c, conn)
	go h.readPump(ctx, c, conn)
}

func (h *Handler) readPump(ctx context.Context, c *Client, conn *websocket.Conn) {
	defer func() {
		h.hub.Unregister(c)
		conn.Close()
	}()

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait)) //nolint:errcheck
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			continue
		}
		h.process(ctx, c, msg)
	}
}

func (h *Handler) process(ctx context.Context, c *Client, msg ClientMessage) {
	switch msg.Action {
	case "subscribe":
		topics := make([]string, 0, len(msg.Cases))
		for _, id := range msg.Cases {
			if err := h.access.CanObserve(ctx, id); err != nil {
				h.log.DebugContext(ctx, "subscription refused",
					slog.String("client_id", c.ID),
					slog.String("case_id", id.String()),
					slog.String("reason", err.Error()),
				)
				continue
			}
			topics = append(topics, CaseTopic(id))
		}
		h.hub.Subscribe(c, topics...)

	case "unsubscribe":
		topics := make([]string, 0, len(msg.Cases))
		for _, id := range msg.Cases {
			topics = append(topics, CaseTopic(id))
		}
		h.hub.Unsubscribe(c, topics...)
	}
}

func (h *Handler) writePump(c *Client, conn *websocket.Conn) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.Send:
			conn.SetWriteDeadline(time.Now().Add(writeWait)) //nolint:errcheck
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{}) //nolint:errcheck
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait)) //nolint:errcheck
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
