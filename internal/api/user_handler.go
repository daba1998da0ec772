package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/user-api/internal/api/shared"
	"github.com/phrazzld/user-api/internal/platform/logger"
	"github.com/phrazzld/user-api/internal/redact"
	"github.com/phrazzld/user-api/internal/service"
)

// Success messages.
const (
	MsgUserRetrieved = "User retrieved successfully"
	MsgUserCreated   = "User created successfully"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService service.UserService
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler.
// If logger is nil, the default logger is used.
func NewUserHandler(userService service.UserService, logger *slog.Logger) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{
		userService: userService,
		logger:      logger.With(slog.String("component", "user_handler")),
	}
}

// GetUser handles GET /users/{id} requests
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		log.Debug("invalid user id", slog.String("value", redact.String(r.URL.Path)))
		HandleAPIError(w, r, err)
		return
	}

	user, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, MsgUserRetrieved, userToResponse(user))
}

// CreateUser handles POST /users requests
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateUserRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		log.Debug("failed to decode create user request", slog.String("error", redact.Error(err)))
		HandleAPIError(w, r, invalidBodyError())
		return
	}

	if err := ValidateCreateUserRequest(req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	user, err := h.userService.CreateUser(r.Context(), req.toDomain())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusCreated, MsgUserCreated, userToResponse(user))
}
