// Package postgres provides the PostgreSQL implementation of the storage
// interfaces defined in the internal/store package.
//
// It owns the pgx connection pool, runs the embedded schema migrations and
// translates driver failures into domain error kinds, so that no pgx or
// pgconn type ever escapes this package.
package postgres
