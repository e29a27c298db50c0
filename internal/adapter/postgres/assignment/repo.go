// Package assignment implements doctor-to-case bindings using PostgreSQL.
package assignment

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

const selectColumns = "a.id, a.scan_id, a.doctor_id, a.status, a.accepted_at, a.completed_at, c.patient_id"

// claimSQL inserts the binding only if the case is completed and unclaimed.
// The status guard and the unique(scan_id) check happen in one statement, so
// concurrent claims cannot both pass.
const claimSQL = `
WITH claimed AS (
    INSERT INTO assignments (id, scan_id, doctor_id, status, accepted_at)
    SELECT $1, c.id, $3, 'assigned', now()
    FROM cases c
    WHERE c.id = $2 AND c.status = 'completed'
    ON CONFLICT (scan_id) DO NOTHING
    RETURNING id, scan_id, doctor_id, status, accepted_at, completed_at
)
SELECT cl.id, cl.scan_id, cl.doctor_id, cl.status, cl.accepted_at, cl.completed_at, c.patient_id
FROM claimed cl
JOIN cases c ON c.id = cl.scan_id`

const completeSQL = `
WITH done AS (
    UPDATE assignments
    SET status = 'completed', completed_at = now()
    WHERE id = $1 AND status = 'assigned'
    RETURNING id, scan_id, doctor_id, status, accepted_at, completed_at
)
SELECT d.id, d.scan_id, d.doctor_id, d.status, d.accepted_at, d.completed_at, c.patient_id
FROM done d
JOIN cases c ON c.id = d.scan_id`

// Repo provides assignment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new assignment repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Claim / Complete
// ---------------------------------------------------------------------------

// Claim binds doctorID to the case. created is false when the guard did not
// match: the case is missing, not completed, or already claimed. Callers
// read back to tell these apart.
func (r *Repo) Claim(ctx context.Context, id, scanID, doctorID uuid.UUID) (a *domain.Assignment, created bool, err error) {
	var out domain.Assignment
	err = pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, claimSQL, id, scanID, doctorID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, postgres.MapError(err, "case", scanID)
	}
	return &out, true, nil
}

// Complete closes out the review. applied is false when the assignment is
// missing or already completed.
func (r *Repo) Complete(ctx context.Context, id uuid.UUID) (a *domain.Assignment, applied bool, err error) {
	var out domain.Assignment
	err = pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, completeSQL, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, postgres.MapError(err, "assignment", id)
	}
	return &out, true, nil
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

func selectJoined() sq.SelectBuilder {
	return postgres.Builder().
		Select(selectColumns).
		From("assignments a").
		Join("cases c ON c.id = a.scan_id")
}

// GetByID returns an assignment with its case's patient.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Assignment, error) {
	return r.getOne(ctx, "assignment", id, selectJoined().Where(sq.Eq{"a.id": id}))
}

// GetByScanID returns the assignment bound to a case.
func (r *Repo) GetByScanID(ctx context.Context, scanID uuid.UUID) (*domain.Assignment, error) {
	return r.getOne(ctx, "assignment for case", scanID, selectJoined().Where(sq.Eq{"a.scan_id": scanID}))
}

// GetByScanIDs returns the assignments bound to any of the given cases.
func (r *Repo) GetByScanIDs(ctx context.Context, scanIDs []uuid.UUID) ([]domain.Assignment, error) {
	if len(scanIDs) == 0 {
		return []domain.Assignment{}, nil
	}
	return r.list(ctx, "assignments", "batch", selectJoined().Where(sq.Eq{"a.scan_id": scanIDs}))
}

// ListByDoctor returns a doctor's assignments, most recently accepted first.
func (r *Repo) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]domain.Assignment, error) {
	return r.list(ctx, "doctor assignments", doctorID, selectJoined().
		Where(sq.Eq{"a.doctor_id": doctorID}).
		OrderBy("a.accepted_at DESC", "a.id"))
}

func (r *Repo) getOne(ctx context.Context, entity string, key any, b sq.SelectBuilder) (*domain.Assignment, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get %s: %w", entity, err)
	}

	var a domain.Assignment
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &a, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, key)
	}
	return &a, nil
}

func (r *Repo) list(ctx context.Context, entity string, key any, b sq.SelectBuilder) ([]domain.Assignment, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list %s: %w", entity, err)
	}

	out := []domain.Assignment{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, key)
	}
	return out, nil
}
