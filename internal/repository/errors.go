package repository

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrConstraintViolation is returned when the store rejects a write
// because of a uniqueness constraint. Callers match it with errors.Is
// instead of inspecting PostgreSQL error codes themselves.
var ErrConstraintViolation = errors.New("constraint violation")

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
