package api

import (
	"net/http"

	"github.com/phrazzld/user-api/internal/api/shared"
	"github.com/phrazzld/user-api/internal/domain"
	"github.com/phrazzld/user-api/internal/redact"
)

// Client-facing messages for each error kind.
const (
	MsgNotFound     = "User not found"
	MsgInvalidInput = "Invalid input provided"
	MsgDatabase     = "Database error occurred"
	MsgInternal     = "Internal server error"
)

// databaseErrorField is the errors key that carries a DatabaseError diagnostic.
const databaseErrorField = "database"

// statusForKind returns the HTTP status for k. ok is false for a kind with no
// explicit mapping.
func statusForKind(k domain.Kind) (status int, ok bool) {
	switch k {
	case domain.KindNotFound:
		return http.StatusNotFound, true
	case domain.KindInvalidInput:
		return http.StatusBadRequest, true
	case domain.KindDatabase:
		return http.StatusInternalServerError, true
	case domain.KindInternal:
		return http.StatusInternalServerError, true
	}
	return http.StatusInternalServerError, false
}

// messageForKind returns the client-facing message for k. ok is false for a
// kind with no explicit mapping.
func messageForKind(k domain.Kind) (message string, ok bool) {
	switch k {
	case domain.KindNotFound:
		return MsgNotFound, true
	case domain.KindInvalidInput:
		return MsgInvalidInput, true
	case domain.KindDatabase:
		return MsgDatabase, true
	case domain.KindInternal:
		return MsgInternal, true
	}
	return MsgInternal, false
}

// MapErrorToStatusCode maps an error to its HTTP status code based on its
// domain kind. Unclassified errors map to 500.
func MapErrorToStatusCode(err error) int {
	status, _ := statusForKind(domain.KindOf(err))
	return status
}

// GetSafeErrorMessage returns the client-facing message for err. It never
// includes err's own text.
func GetSafeErrorMessage(err error) string {
	message, _ := messageForKind(domain.KindOf(err))
	return message
}

// errorFields returns the errors member of the envelope for err, or nil when
// the kind carries no field-level detail.
func errorFields(err error) map[string][]string {
	switch domain.KindOf(err) {
	case domain.KindInvalidInput:
		verr := asValidationError(err)
		fields := make(map[string][]string, len(verr.Fields))
		for field, msgs := range verr.Fields {
			fields[field] = append([]string(nil), msgs...)
		}
		return fields
	case domain.KindDatabase:
		dbErr := asDatabaseError(err)
		return map[string][]string{databaseErrorField: {redact.String(dbErr.Detail)}}
	case domain.KindNotFound, domain.KindInternal:
		return nil
	}
	return nil
}

// HandleAPIError writes the error envelope for err. It is the single place
// where domain errors are translated into HTTP responses.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r,
		MapErrorToStatusCode(err),
		GetSafeErrorMessage(err),
		errorFields(err),
		err)
}
