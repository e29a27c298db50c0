package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanreview-backend/internal/domain"
	"github.com/heartmarshall/scanreview-backend/internal/service/result"
)

type resultService interface {
	Write(ctx context.Context, input result.WriteInput) (*result.WriteResult, error)
	Get(ctx context.Context, caseID uuid.UUID) (*domain.Result, error)
}

// ResultHandler serves analysis findings.
type ResultHandler struct {
	results resultService
	access  *CaseAccess
	log     *slog.Logger
}

// NewResultHandler creates a ResultHandler.
func NewResultHandler(results resultService, access *CaseAccess, logger *slog.Logger) *ResultHandler {
	return &ResultHandler{results: results, access: access, log: logger.With("handler", "result")}
}

// Put handles PUT /api/v1/cases/{id}/result. Returns 201 for the first
// write and 200 when an earlier result is replaced.
func (h *ResultHandler) Put(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var findings domain.Findings
	if !decodeJSON(w, r, &findings) {
		return
	}

	res, err := h.results.Write(r.Context(), result.WriteInput{CaseID: id, Findings: findings})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	status := http.StatusCreated
	if res.Replaced {
		status = http.StatusOK
	}
	writeJSON(w, status, res.Result)
}

// Get handles GET /api/v1/cases/{id}/result.
func (h *ResultHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := h.access.CanObserve(r.Context(), id); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	res, err := h.results.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
