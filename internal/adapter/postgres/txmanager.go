package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// TxBeginner starts transactions. *pgxpool.Pool satisfies it.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxManager runs callbacks inside a Read Committed transaction carried in
// the context.
type TxManager struct {
	db TxBeginner
}

func NewTxManager(db TxBeginner) *TxManager {
	return &TxManager{db: db}
}

// RunInTx commits when fn returns nil and rolls back on error or panic.
// A call made from inside another RunInTx joins the outer transaction, so
// the outermost caller decides the outcome. Serialization failures surface
// as domain.ErrConflict.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if InTx(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return MapError(err, "transaction", "begin")
	}

	// Rollback must run even when the request context is already cancelled.
	cleanupCtx := context.WithoutCancel(ctx)
	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(cleanupCtx)
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(cleanupCtx); rbErr != nil {
			return fmt.Errorf("rollback: %w (after: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return MapError(err, "transaction", "commit")
	}
	return nil
}
