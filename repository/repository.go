// Package repository implements Postgres persistence for every entity.
// Lifecycle transitions are single conditional updates: a statement
// that matches zero rows means the precondition no longer holds and the
// caller gets a conflict, never a partial write.
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
