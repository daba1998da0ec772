package api

import (
	"net/http"

	"github.com/phrazzld/user-api/internal/api/shared"
)

// Messages for requests that match no route.
const (
	MsgResourceNotFound = "Resource not found"
	MsgMethodNotAllowed = "Method not allowed"
)

// NotFound responds to requests for unknown paths with an error envelope.
func NotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, MsgResourceNotFound, nil)
}

// MethodNotAllowed responds to requests with an unsupported method with an
// error envelope.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusMethodNotAllowed, MsgMethodNotAllowed, nil)
}
