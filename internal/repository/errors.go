package repository

import (
	"errors"
	"fmt"
	"strings"

	"nordlys_studio/internal/storage"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const uniqueViolationCode = "23505"

// wrapPgError maps driver errors onto the storage sentinel taxonomy so the
// service layer never has to look at postgres error codes.
func wrapPgError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return fmt.Errorf("%s: %w", op, storage.ErrConflict)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
