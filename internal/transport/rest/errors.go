package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanreview-backend/internal/domain"
	"github.com/heartmarshall/scanreview-backend/internal/service/scancase"
	"github.com/heartmarshall/scanreview-backend/pkg/ctxutil"
)

const maxJSONBody = 1 << 20

// errorResponse is the body of every non-2xx API response.
type errorResponse struct {
	Error  string              `json:"error"`
	Code   string              `json:"code"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

// writeDomainError maps a service error to its HTTP status and error code.
// Only unexpected errors are logged at error level.
func writeDomainError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: ve.Error(), Code: "VALIDATION", Fields: ve.Errors})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "VALIDATION", err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "FORBIDDEN", "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "not found")
	case errors.Is(err, domain.ErrNotReady):
		writeError(w, http.StatusConflict, "NOT_READY", "analysis still in progress")
	case errors.Is(err, domain.ErrNotClaimable):
		writeError(w, http.StatusConflict, "NOT_CLAIMABLE", "case cannot be claimed")
	case errors.Is(err, domain.ErrInvalidTransition):
		writeError(w, http.StatusConflict, "INVALID_TRANSITION", err.Error())
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "CONFLICT", "concurrent update, retry")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "ALREADY_EXISTS", "already exists")
	case errors.Is(err, scancase.ErrQueueDisabled):
		writeError(w, http.StatusServiceUnavailable, "QUEUE_DISABLED", err.Error())
	case errors.Is(err, domain.ErrStoreUnavailable):
		log.WarnContext(r.Context(), "store unavailable",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeError(w, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "storage temporarily unavailable")
	default:
		log.ErrorContext(r.Context(), "unexpected error",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: message, Code: code})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// decodeJSON reads a bounded JSON body into v. On failure it writes a 400
// and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody)).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION", "invalid request body")
		return false
	}
	return true
}

// pathUUID parses the named path value. On failure it writes a 400 and
// returns false.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION", name+": invalid id")
		return uuid.Nil, false
	}
	return id, true
}

// caller returns the authenticated user. Routes are wrapped in RequireRole,
// so a missing identity is a wiring error reported as 401.
func caller(w http.ResponseWriter, r *http.Request) (uuid.UUID, domain.Role, bool) {
	id, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "unauthorized")
		return uuid.Nil, "", false
	}
	return id, domain.Role(ctxutil.UserRoleFromCtx(r.Context())), true
}
