package api

import (
	"context"
	"net/http"

	"github.com/phrazzld/user-api/internal/api/shared"
)

// MsgHealthy is the message of a successful health check.
const MsgHealthy = "OK"

// HealthChecker reports whether a dependency is reachable.
type HealthChecker interface {
	Check(ctx context.Context) error
}

// HealthHandler serves the health check endpoint.
type HealthHandler struct {
	database HealthChecker
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(database HealthChecker) *HealthHandler {
	return &HealthHandler{database: database}
}

// Health handles GET /health requests
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.database.Check(r.Context()); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithSuccess(w, r, http.StatusOK, MsgHealthy, HealthResponse{Database: "up"})
}
