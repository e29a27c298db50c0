package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/scanreview-backend/internal/domain"
)

// Cases without an assignment or result resolve to nil, not an error.

func newAssignmentBatchFn(repo assignmentRepo) dataloader.BatchFunc[uuid.UUID, *domain.Assignment] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Assignment] {
		rows, err := repo.GetByScanIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Assignment](len(keys), err)
		}

		byScan := make(map[uuid.UUID]*domain.Assignment, len(rows))
		for i := range rows {
			byScan[rows[i].ScanID] = &rows[i]
		}
		return mapResults(keys, byScan)
	}
}

func newResultBatchFn(repo resultRepo) dataloader.BatchFunc[uuid.UUID, *domain.Result] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Result] {
		rows, err := repo.GetByScanIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Result](len(keys), err)
		}

		byScan := make(map[uuid.UUID]*domain.Result, len(rows))
		for i := range rows {
			byScan[rows[i].ScanID] = &rows[i]
		}
		return mapResults(keys, byScan)
	}
}

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps found values back to key order; missing keys get the
// zero value.
func mapResults[V any](keys []uuid.UUID, found map[uuid.UUID]V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		results[i] = &dataloader.Result[V]{Data: found[key]}
	}
	return results
}
