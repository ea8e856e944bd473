package repositories

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrStorage wraps every failure reported by the database.
	ErrStorage = errors.New("storage failure")
	// ErrDuplicate marks a unique constraint violation (email or username taken).
	ErrDuplicate = errors.New("duplicate entry")
)

const uniqueViolation = "23505"

// storageError wraps err so that it matches ErrStorage and the original cause.
func storageError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %w: %s: %w", ErrStorage, ErrDuplicate, op, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}
