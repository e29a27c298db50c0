package middleware

import (
	"bufio"
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanreview-backend/pkg/ctxutil"
)

// identity is filled by Auth further down the chain so the access log can
// name the caller even though Logger wraps Auth.
type identity struct {
	userID uuid.UUID
	role   string
}

type identityKey struct{}

func withIdentitySlot(ctx context.Context) (context.Context, *identity) {
	id := &identity{}
	return context.WithValue(ctx, identityKey{}, id), id
}

func recordIdentity(ctx context.Context, userID uuid.UUID, role string) {
	if id, ok := ctx.Value(identityKey{}).(*identity); ok {
		id.userID = userID
		id.role = role
	}
}

// Logger writes one access line per request. 5xx answers are logged at
// error level, 4xx at warn, the rest at info.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx, who := withIdentitySlot(r.Context())
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r.WithContext(ctx))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Int64("bytes", sw.written),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			}
			if userID, ok := ctxutil.UserIDFromCtx(ctx); ok {
				who.userID, who.role = userID, ctxutil.UserRoleFromCtx(ctx)
			}
			if who.userID != uuid.Nil {
				attrs = append(attrs,
					slog.String("user_id", who.userID.String()),
					slog.String("role", who.role),
				)
			}

			level := slog.LevelInfo
			switch {
			case sw.status >= 500:
				level = slog.LevelError
			case sw.status >= 400:
				level = slog.LevelWarn
			}
			logger.LogAttrs(ctx, level, "http.request", attrs...)
		})
	}
}

// statusWriter records the status code and body size of a response.
type statusWriter struct {
	http.ResponseWriter
	status      int
	written     int64
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	n, err := w.ResponseWriter.Write(b)
	w.written += int64(n)
	return n, err
}

// Hijack lets websocket upgrades pass through the logger.
func (w *statusWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	w.status = http.StatusSwitchingProtocols
	w.wroteHeader = true
	return h.Hijack()
}

func (w *statusWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
