package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Kind classifies every error the application can surface to a client.
// The set is closed: response mapping must handle each kind explicitly.
type Kind uint8

const (
	// KindInternal is the catch-all for unclassified failures, such as missing configuration.
	KindInternal Kind = iota

	// KindNotFound is returned when a requested entity does not exist.
	KindNotFound

	// KindInvalidInput is returned when a request fails validation.
	// Errors of this kind carry per-field messages (see ValidationError).
	KindInvalidInput

	// KindDatabase is returned when the persistence layer fails.
	// Errors of this kind carry an opaque, redacted diagnostic (see DatabaseError).
	KindDatabase
)

// Kinds returns every error kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindInternal, KindNotFound, KindInvalidInput, KindDatabase}
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindInternal:
		return "InternalServerError"
	case KindNotFound:
		return "NotFound"
	case KindInvalidInput:
		return "InvalidInput"
	case KindDatabase:
		return "DatabaseError"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Common domain errors used across the application.
var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrUserNotFound indicates that the requested user does not exist in the store.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrInvalidInput is matched by every *ValidationError via errors.Is.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDatabase is matched by every *DatabaseError via errors.Is.
	ErrDatabase = errors.New("database error")

	// ErrInternal is returned for failures that fit no other kind.
	ErrInternal = errors.New("internal server error")
)

// ValidationError collects every field violation found while validating input.
// Field names are the ones clients see (JSON names), not Go struct field names.
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError creates a ValidationError holding a single field violation.
func NewValidationError(field, message string) *ValidationError {
	e := &ValidationError{}
	e.Add(field, message)
	return e
}

// Add records another message for field. Messages keep their insertion order.
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// HasErrors reports whether any violation has been recorded.
func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

// Error implements the error interface. Fields are listed alphabetically so the
// output is stable.
func (e *ValidationError) Error() string {
	if !e.HasErrors() {
		return ErrInvalidInput.Error()
	}

	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e.Fields[field], ", ")))
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(parts, "; "))
}

// Is lets errors.Is(err, ErrInvalidInput) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// DatabaseError reports a failed storage operation.
//
// Detail is safe to show to clients: it must never contain credentials,
// connection strings or raw SQL. Err keeps the original driver error for logs
// and errors.Is/As, and is never serialized.
type DatabaseError struct {
	Op     string
	Detail string
	Err    error
}

// NewDatabaseError creates a DatabaseError for the named operation.
func NewDatabaseError(op, detail string, err error) *DatabaseError {
	return &DatabaseError{Op: op, Detail: detail, Err: err}
}

// Error implements the error interface.
func (e *DatabaseError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: %s", ErrDatabase, e.Detail)
	}
	return fmt.Sprintf("%s: %s: %s", ErrDatabase, e.Op, e.Detail)
}

// Unwrap returns the underlying driver error.
func (e *DatabaseError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrDatabase) match any DatabaseError.
func (e *DatabaseError) Is(target error) bool {
	return target == ErrDatabase
}

// KindOf classifies err. Unknown errors, and nil, are KindInternal.
func KindOf(err error) Kind {
	var validationErr *ValidationError
	var dbErr *DatabaseError

	switch {
	case errors.As(err, &validationErr):
		return KindInvalidInput
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.As(err, &dbErr):
		return KindDatabase
	default:
		return KindInternal
	}
}
