package repository

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgUndefinedTableCode = "42P01"

// ErrNotMigrated indicates the target table does not exist yet.
var ErrNotMigrated = errors.New("database schema not migrated")

// MapError translates database errors to domain errors.
// It maps sql.ErrNoRows to notFoundErr and a PostgreSQL undefined table
// error (42P01) to ErrNotMigrated. Other errors are returned unchanged.
func MapError(err error, notFoundErr error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return notFoundErr
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUndefinedTableCode {
		return errors.Join(ErrNotMigrated, err)
	}

	return err
}
