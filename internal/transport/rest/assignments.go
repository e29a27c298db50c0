package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanreview-backend/internal/domain"
	"github.com/heartmarshall/scanreview-backend/internal/service/assignment"
)

type assignmentService interface {
	Claim(ctx context.Context, input assignment.ClaimInput) (*domain.ClaimResult, error)
	Complete(ctx context.Context, assignmentID, doctorID uuid.UUID) (*domain.Assignment, error)
	GetByScan(ctx context.Context, scanID uuid.UUID) (*domain.Assignment, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]domain.Assignment, error)
}

// AssignmentHandler serves claim and review endpoints.
type AssignmentHandler struct {
	assignments assignmentService
	access      *CaseAccess
	log         *slog.Logger
}

// NewAssignmentHandler creates an AssignmentHandler.
func NewAssignmentHandler(assignments assignmentService, access *CaseAccess, logger *slog.Logger) *AssignmentHandler {
	return &AssignmentHandler{assignments: assignments, access: access, log: logger.With("handler", "assignment")}
}

type rejectedResponse struct {
	Error        string     `json:"error"`
	Code         string     `json:"code"`
	AssignmentID *uuid.UUID `json:"assignment_id,omitempty"`
}

// Claim handles POST /api/v1/cases/{id}/claim. A lost race answers 409
// ALREADY_ASSIGNED; it is an expected outcome and is not logged as an
// error.
func (h *AssignmentHandler) Claim(w http.ResponseWriter, r *http.Request) {
	scanID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	doctorID, _, ok := caller(w, r)
	if !ok {
		return
	}

	res, err := h.assignments.Claim(r.Context(), assignment.ClaimInput{ScanID: scanID, DoctorID: doctorID})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	if res.Rejected != nil {
		body := rejectedResponse{Error: "case already assigned", Code: string(res.Rejected.Reason)}
		if res.Rejected.Existing != nil {
			body.AssignmentID = &res.Rejected.Existing.ID
		}
		writeJSON(w, http.StatusConflict, body)
		return
	}
	writeJSON(w, http.StatusCreated, res.Assignment)
}

// ByCase handles GET /api/v1/cases/{id}/assignment.
func (h *AssignmentHandler) ByCase(w http.ResponseWriter, r *http.Request) {
	scanID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := h.access.CanObserve(r.Context(), scanID); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	a, err := h.assignments.GetByScan(r.Context(), scanID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// Mine handles GET /api/v1/doctors/me/assignments.
func (h *AssignmentHandler) Mine(w http.ResponseWriter, r *http.Request) {
	doctorID, _, ok := caller(w, r)
	if !ok {
		return
	}

	list, err := h.assignments.ListByDoctor(r.Context(), doctorID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Complete handles POST /api/v1/assignments/{id}/complete.
func (h *AssignmentHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	doctorID, _, ok := caller(w, r)
	if !ok {
		return
	}

	a, err := h.assignments.Complete(r.Context(), id, doctorID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}
