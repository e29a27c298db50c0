package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/scanreview-backend/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
// id is any printable identifier (usually a uuid.UUID).
func MapError(err error, entity string, id any) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, id, err)
	}

	// pgx.ErrNoRows → domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", entity, id, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %v: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %v: %w", entity, id, domain.ErrNotFound)
		case "23514", "22P02": // check_violation, invalid_text_representation
			return fmt.Errorf("%s %v: %w", entity, id, domain.ErrValidation)
		case "40001", "40P01": // serialization_failure, deadlock_detected
			return fmt.Errorf("%s %v: %w", entity, id, domain.ErrConflict)
		case "57P01", "57P02", "57P03", "53300": // shutdown, crash, cannot_connect_now, too_many_connections
			return fmt.Errorf("%s %v: %w: %v", entity, id, domain.ErrStoreUnavailable, err)
		}
		if len(pgErr.Code) == 5 && pgErr.Code[:2] == "08" { // connection_exception class
			return fmt.Errorf("%s %v: %w: %v", entity, id, domain.ErrStoreUnavailable, err)
		}
		return fmt.Errorf("%s %v: %w", entity, id, err)
	}

	if isUnavailable(err) {
		return fmt.Errorf("%s %v: %w: %v", entity, id, domain.ErrStoreUnavailable, err)
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %v: %w", entity, id, err)
}

// isUnavailable reports connection-level failures: the server could not be
// reached or stopped answering.
func isUnavailable(err error) bool {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	if pgconn.Timeout(err) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, net.ErrClosed)
}
