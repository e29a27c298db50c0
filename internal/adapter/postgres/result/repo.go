// Package result implements AI findings persistence using PostgreSQL.
package result

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/scanreview-backend/internal/adapter/postgres"
	"github.com/heartmarshall/scanreview-backend/internal/domain"
)

const columns = "scan_id, findings, generated_at"

// upsertSQL keeps one row per case. xmax is non-zero only when the
// conflicting row was updated, which tells a first write from a replace.
const upsertSQL = `
INSERT INTO results (scan_id, findings, generated_at)
VALUES ($1, $2, now())
ON CONFLICT (scan_id) DO UPDATE
SET findings = EXCLUDED.findings, generated_at = EXCLUDED.generated_at
RETURNING scan_id, findings, generated_at, (xmax <> 0) AS replaced`

// Repo provides result persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new result repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Upsert writes findings for a case, replacing any earlier findings.
func (r *Repo) Upsert(ctx context.Context, scanID uuid.UUID, findings domain.Findings) (*domain.Result, bool, error) {
	raw, err := json.Marshal(findings)
	if err != nil {
		return nil, false, fmt.Errorf("marshal findings: %w", err)
	}

	var replaced bool
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, upsertSQL, scanID, raw)
	res, err := scanResult(row, &replaced)
	if err != nil {
		return nil, false, postgres.MapError(err, "case", scanID)
	}
	return res, replaced, nil
}

// GetByScanID returns the findings for a case.
func (r *Repo) GetByScanID(ctx context.Context, scanID uuid.UUID) (*domain.Result, error) {
	query, args, err := postgres.Builder().
		Select(columns).
		From("results").
		Where(sq.Eq{"scan_id": scanID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get result: %w", err)
	}

	res, err := scanResult(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...), nil)
	if err != nil {
		return nil, postgres.MapError(err, "result", scanID)
	}
	return res, nil
}

// GetByScanIDs returns findings for any of the given cases. Cases without
// findings are absent from the result.
func (r *Repo) GetByScanIDs(ctx context.Context, scanIDs []uuid.UUID) ([]domain.Result, error) {
	if len(scanIDs) == 0 {
		return []domain.Result{}, nil
	}

	query, args, err := postgres.Builder().
		Select(columns).
		From("results").
		Where(sq.Eq{"scan_id": scanIDs}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get results: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "results", "batch")
	}
	defer rows.Close()

	out := make([]domain.Result, 0, len(scanIDs))
	for rows.Next() {
		res, err := scanResult(rows, nil)
		if err != nil {
			return nil, postgres.MapError(err, "results", "batch")
		}
		out = append(out, *res)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "results", "batch")
	}
	return out, nil
}

func scanResult(row pgx.Row, replaced *bool) (*domain.Result, error) {
	var (
		res domain.Result
		raw []byte
		gen time.Time
	)
	dest := []any{&res.ScanID, &raw, &gen}
	if replaced != nil {
		dest = append(dest, replaced)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &res.Findings); err != nil {
		return nil, fmt.Errorf("unmarshal findings: %w", err)
	}
	res.GeneratedAt = gen
	return &res, nil
}
