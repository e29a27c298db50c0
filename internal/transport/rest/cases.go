package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanreview-backend/internal/domain"
	"github.com/heartmarshall/scanreview-backend/internal/service/scancase"
	"github.com/heartmarshall/scanreview-backend/internal/transport/dataloader"
)

type caseService interface {
	CreateCase(ctx context.Context, input scancase.CreateCaseInput) (*domain.Case, error)
	UploadScan(ctx context.Context, input scancase.UploadScanInput) (*domain.Case, error)
	SetStatus(ctx context.Context, caseID uuid.UUID, status domain.CaseStatus) (*scancase.SetStatusResult, error)
	CompleteAnalysis(ctx context.Context, input scancase.CompleteAnalysisInput) (*scancase.SetStatusResult, error)
	RequestAnalysis(ctx context.Context, caseID uuid.UUID) error
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]domain.Case, error)
	ListUnassigned(ctx context.Context) ([]domain.Case, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Case, error)
}

type statusPoller interface {
	PollStatus(ctx context.Context, caseID uuid.UUID) (*domain.StatusSnapshot, error)
}

// CaseHandler serves case lifecycle endpoints.
type CaseHandler struct {
	cases     caseService
	status    statusPoller
	access    *CaseAccess
	maxUpload int64
	log       *slog.Logger
}

// NewCaseHandler creates a CaseHandler. maxUpload bounds multipart bodies.
func NewCaseHandler(cases caseService, status statusPoller, access *CaseAccess, maxUpload int64, logger *slog.Logger) *CaseHandler {
	return &CaseHandler{
		cases:     cases,
		status:    status,
		access:    access,
		maxUpload: maxUpload,
		log:       logger.With("handler", "case"),
	}
}

type createCaseRequest struct {
	PatientID  uuid.UUID `json:"patient_id"`
	StorageRef string    `json:"storage_ref"`
}

type setStatusRequest struct {
	Status domain.CaseStatus `json:"status"`
}

type completeAnalysisRequest struct {
	Outcome  domain.CaseStatus `json:"outcome"`
	Findings *domain.Findings  `json:"findings,omitempty"`
}

type statusChangeResponse struct {
	Case    *domain.Case `json:"case"`
	Changed bool         `json:"changed"`
}

// OverviewItem is one row of the operator dashboard.
type OverviewItem struct {
	Case       domain.Case        `json:"case"`
	Assignment *domain.Assignment `json:"assignment,omitempty"`
	HasResult  bool               `json:"has_result"`
	LungHealth string             `json:"lung_health,omitempty"`
}

// Create handles POST /api/v1/cases.
func (h *CaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCaseRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	patientID, ok := h.resolvePatient(w, r, req.PatientID)
	if !ok {
		return
	}

	c, err := h.cases.CreateCase(r.Context(), scancase.CreateCaseInput{
		PatientID:  patientID,
		StorageRef: req.StorageRef,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// Upload handles POST /api/v1/cases/upload (multipart: file, patient_id).
func (h *CaseHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload+1<<20)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION", "invalid multipart body")
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	var requested uuid.UUID
	if v := r.FormValue("patient_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "VALIDATION", "patient_id: invalid id")
			return
		}
		requested = id
	}
	patientID, ok := h.resolvePatient(w, r, requested)
	if !ok {
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION", "file: required")
		return
	}
	defer file.Close()

	c, err := h.cases.UploadScan(r.Context(), scancase.UploadScanInput{
		PatientID:   patientID,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// Get handles GET /api/v1/cases/{id}.
func (h *CaseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	c, err := h.access.Case(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Status handles GET /api/v1/cases/{id}/status.
func (h *CaseHandler) Status(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := h.access.CanObserve(r.Context(), id); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	snap, err := h.status.PollStatus(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// SetStatus handles POST /api/v1/cases/{id}/status.
func (h *CaseHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req setStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.cases.SetStatus(r.Context(), id, req.Status)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, statusChangeResponse{Case: res.Case, Changed: res.Changed})
}

// Complete handles POST /api/v1/cases/{id}/complete.
func (h *CaseHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req completeAnalysisRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.cases.CompleteAnalysis(r.Context(), scancase.CompleteAnalysisInput{
		CaseID:   id,
		Outcome:  req.Outcome,
		Findings: req.Findings,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, statusChangeResponse{Case: res.Case, Changed: res.Changed})
}

// RequestAnalysis handles POST /api/v1/cases/{id}/analysis. The job is
// queued and 202 returned without waiting for the worker.
func (h *CaseHandler) RequestAnalysis(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := h.access.CanObserve(r.Context(), id); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	if err := h.cases.RequestAnalysis(r.Context(), id); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "queued"})
}

// ListByPatient handles GET /api/v1/patients/{id}/cases.
func (h *CaseHandler) ListByPatient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	patientID, ok := h.resolvePatient(w, r, id)
	if !ok {
		return
	}

	cases, err := h.cases.ListByPatient(r.Context(), patientID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, cases)
}

// ListUnassigned handles GET /api/v1/cases/unassigned.
func (h *CaseHandler) ListUnassigned(w http.ResponseWriter, r *http.Request) {
	cases, err := h.cases.ListUnassigned(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, cases)
}

// Overview handles GET /api/v1/cases/overview?limit=N. Assignment and
// result lookups for all listed cases are batched per request.
func (h *CaseHandler) Overview(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "VALIDATION", "limit: must be an integer")
			return
		}
		limit = n
	}

	cases, err := h.cases.ListRecent(r.Context(), limit)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	if len(cases) == 0 {
		writeJSON(w, http.StatusOK, []OverviewItem{})
		return
	}

	loaders := dataloader.FromContext(r.Context())
	ids := make([]uuid.UUID, len(cases))
	for i, c := range cases {
		ids[i] = c.ID
	}
	assignmentThunk := loaders.AssignmentByScanID.LoadMany(r.Context(), ids)
	resultThunk := loaders.ResultByScanID.LoadMany(r.Context(), ids)

	assignments, errs := assignmentThunk()
	if err := firstError(errs); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	results, errs := resultThunk()
	if err := firstError(errs); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	items := make([]OverviewItem, len(cases))
	for i, c := range cases {
		items[i] = OverviewItem{Case: c, Assignment: assignments[i]}
		if res := results[i]; res != nil {
			items[i].HasResult = true
			items[i].LungHealth = res.Findings.LungHealth
		}
	}
	writeJSON(w, http.StatusOK, items)
}

// resolvePatient returns the patient a request acts for. Patients always
// act for themselves; operators must name the patient.
func (h *CaseHandler) resolvePatient(w http.ResponseWriter, r *http.Request, requested uuid.UUID) (uuid.UUID, bool) {
	userID, role, ok := caller(w, r)
	if !ok {
		return uuid.Nil, false
	}

	switch role {
	case domain.RolePatient:
		if requested != uuid.Nil && requested != userID {
			writeError(w, http.StatusForbidden, "FORBIDDEN", "patients may only act for themselves")
			return uuid.Nil, false
		}
		return userID, true
	case domain.RoleOperator:
		return requested, true
	}
	writeError(w, http.StatusForbidden, "FORBIDDEN", "forbidden")
	return uuid.Nil, false
}

func firstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
