package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/user-api/internal/domain"
)

// Field names and messages for request-shape failures.
const (
	bodyField         = "body"
	msgInvalidBody    = "Invalid request format"
	msgIDNotAnInteger = "User ID must be an integer"
	msgMissingPathID  = "User ID is required"
)

// getPathID extracts a base-10 int64 from the URL path parameter paramName.
// Any integer is accepted, including zero and negatives; whether a user has
// that ID is for the store to decide.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, msgMissingPathID)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(paramName, msgIDNotAnInteger)
	}
	return id, nil
}

// invalidBodyError is returned when a request body cannot be decoded.
func invalidBodyError() error {
	return domain.NewValidationError(bodyField, msgInvalidBody)
}

// asValidationError returns the ValidationError in err's chain, or an empty one.
func asValidationError(err error) *domain.ValidationError {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr
	}
	return &domain.ValidationError{}
}

// asDatabaseError returns the DatabaseError in err's chain, or an empty one.
func asDatabaseError(err error) *domain.DatabaseError {
	var dbErr *domain.DatabaseError
	if errors.As(err, &dbErr) {
		return dbErr
	}
	return &domain.DatabaseError{}
}
