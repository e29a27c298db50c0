// Package scancase implements case persistence using PostgreSQL.
package scancase

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/scanreview-backend/internal/adapter/postgres"
	"github.com/heartmarshall/scanreview-backend/internal/domain"
)

const (
	table   = "cases"
	columns = "id, patient_id, storage_ref, status, uploaded_at, updated_at"
)

// Repo provides case persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new case repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a case by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Case, error) {
	query, args, err := postgres.Builder().
		Select(columns).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get case: %w", err)
	}

	var c domain.Case
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &c, query, args...); err != nil {
		return nil, postgres.MapError(err, "case", id)
	}
	return &c, nil
}

// ListByPatient returns a patient's cases, newest upload first.
func (r *Repo) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]domain.Case, error) {
	return r.list(ctx, "patient", patientID, postgres.Builder().
		Select(columns).
		From(table).
		Where(sq.Eq{"patient_id": patientID}).
		OrderBy("uploaded_at DESC", "id"))
}

// ListUnassigned returns completed cases that no doctor has claimed, oldest
// first. The pool is derived with an anti-join rather than a stored flag.
func (r *Repo) ListUnassigned(ctx context.Context) ([]domain.Case, error) {
	return r.list(ctx, "unassigned", "", postgres.Builder().
		Select(columns).
		From(table + " c").
		Where(sq.Eq{"c.status": string(domain.CaseStatusCompleted)}).
		Where("NOT EXISTS (SELECT 1 FROM assignments a WHERE a.scan_id = c.id)").
		OrderBy("c.uploaded_at", "c.id"))
}

// ListRecent returns the most recently updated cases across all patients.
func (r *Repo) ListRecent(ctx context.Context, limit int) ([]domain.Case, error) {
	return r.list(ctx, "recent", limit, postgres.Builder().
		Select(columns).
		From(table).
		OrderBy("updated_at DESC", "id").
		Limit(uint64(limit)))
}

func (r *Repo) list(ctx context.Context, what string, key any, b sq.SelectBuilder) ([]domain.Case, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list %s cases: %w", what, err)
	}

	cases := []domain.Case{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &cases, query, args...); err != nil {
		return nil, postgres.MapError(err, what+" cases", key)
	}
	return cases, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new case and returns the persisted row.
func (r *Repo) Create(ctx context.Context, c *domain.Case) (*domain.Case, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "patient_id", "storage_ref", "status", "uploaded_at", "updated_at").
		Values(c.ID, c.PatientID, c.StorageRef, string(c.Status), c.UploadedAt, c.UpdatedAt).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert case: %w", err)
	}

	var out domain.Case
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "case", c.ID)
	}
	return &out, nil
}

// CompareAndSetStatus moves a case to status `to` only if its current status
// is one of `from`. The check and the write are a single UPDATE. When the
// guard does not match, applied is false and the case is nil.
func (r *Repo) CompareAndSetStatus(ctx context.Context, id uuid.UUID, to domain.CaseStatus, from []domain.CaseStatus) (c *domain.Case, applied bool, err error) {
	allowed := make([]string, len(from))
	for i, s := range from {
		allowed[i] = string(s)
	}

	query, args, err := postgres.Builder().
		Update(table).
		Set("status", string(to)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"status": allowed}).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("build set status: %w", err)
	}

	return r.guardedUpdate(ctx, id, query, args)
}

// UpdateStorageRef replaces the blob reference while the case is still
// in the uploaded state.
func (r *Repo) UpdateStorageRef(ctx context.Context, id uuid.UUID, ref string) (c *domain.Case, applied bool, err error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("storage_ref", ref).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"status": string(domain.CaseStatusUploaded)}).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("build update storage ref: %w", err)
	}

	return r.guardedUpdate(ctx, id, query, args)
}

func (r *Repo) guardedUpdate(ctx context.Context, id uuid.UUID, query string, args []any) (*domain.Case, bool, error) {
	var out domain.Case
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, postgres.MapError(err, "case", id)
	}
	return &out, true, nil
}
