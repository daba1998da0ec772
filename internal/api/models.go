package api

import "github.com/phrazzld/user-api/internal/domain"

// CreateUserRequest defines the payload for the user creation endpoint.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
}

// toDomain builds the not-yet-persisted user described by the request.
func (req CreateUserRequest) toDomain() *domain.User {
	return domain.NewUser(req.Username, req.Email)
}

// UserResponse is the data member of user responses.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// userToResponse converts a domain.User to a UserResponse
func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

// HealthResponse is the data member of the health check response.
type HealthResponse struct {
	Database string `json:"database"`
}
