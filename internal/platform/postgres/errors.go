package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/user-api/internal/domain"
	"github.com/phrazzld/user-api/internal/redact"
)

// PostgreSQL error codes
const (
	// uniqueViolationCode is the PostgreSQL error code for unique constraint violations
	uniqueViolationCode = "23505"

	// foreignKeyViolationCode is the PostgreSQL error code for foreign key violations
	foreignKeyViolationCode = "23503"

	// checkViolationCode is the PostgreSQL error code for check constraint violations
	checkViolationCode = "23514"

	// notNullViolationCode is the PostgreSQL error code for not null violations
	notNullViolationCode = "23502"
)

// Client-safe diagnostics for failures that carry no server message.
const (
	detailTimeout     = "database operation timed out"
	detailCanceled    = "database operation canceled"
	detailUnavailable = "database unavailable"
)

// MapError converts a failed database operation into a *domain.DatabaseError.
// op names the operation ("create user") and is kept for logs.
//
// The resulting Detail never contains the connection string, credentials, host
// names or SQL text: server messages are redacted and connectivity failures are
// reduced to a fixed phrase. pgx.ErrNoRows is not special-cased here; callers
// decide what an absent row means.
func MapError(op string, err error) error {
	if err == nil {
		return nil
	}
	return domain.NewDatabaseError(op, describe(err), err)
}

// describe builds the client-facing diagnostic for err.
func describe(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return fmt.Sprintf("duplicate value violates unique constraint %q", pgErr.ConstraintName)
		case foreignKeyViolationCode:
			return fmt.Sprintf("foreign key violation on %q", pgErr.ConstraintName)
		case checkViolationCode:
			return fmt.Sprintf("check constraint violation on %q", pgErr.ConstraintName)
		case notNullViolationCode:
			return fmt.Sprintf("not null violation on column %q", pgErr.ColumnName)
		default:
			return redact.String(pgErr.Message)
		}
	}

	switch {
	case errors.Is(err, context.Canceled):
		return detailCanceled
	case errors.Is(err, context.DeadlineExceeded), pgconn.Timeout(err):
		return detailTimeout
	default:
		return detailUnavailable
	}
}

// IsUniqueViolation checks if the given error is a PostgreSQL unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// IsNoRows reports whether err means a query matched no rows.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
