// Package dataloader provides per-request loaders that batch the
// per-case lookups of the operator overview into single SQL calls.
// Loaders call repositories directly, bypassing the service layer; the
// overview route is operator-only.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/scanreview-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type assignmentRepo interface {
	GetByScanIDs(ctx context.Context, scanIDs []uuid.UUID) ([]domain.Assignment, error)
}

type resultRepo interface {
	GetByScanIDs(ctx context.Context, scanIDs []uuid.UUID) ([]domain.Result, error)
}

// Repos holds the repositories required by the loaders.
type Repos struct {
	Assignment assignmentRepo
	Result     resultRepo
}

// Loaders holds the per-request loader instances.
type Loaders struct {
	AssignmentByScanID *dataloader.Loader[uuid.UUID, *domain.Assignment]
	ResultByScanID     *dataloader.Loader[uuid.UUID, *domain.Result]
}

// NewLoaders creates loaders backed by repos. Must be called per request:
// loaders cache results for their whole lifetime.
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		AssignmentByScanID: newLoader(newAssignmentBatchFn(repos.Assignment)),
		ResultByScanID:     newLoader(newResultBatchFn(repos.Result)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware configured?")
	}
	return l
}
