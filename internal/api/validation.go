package api

import "github.com/phrazzld/user-api/internal/api/shared"

var createUserMessages = shared.FieldMessages{
	"username.required": "Username cannot be empty",
	"email.required":    "Email cannot be empty",
	"email.email":       "Invalid email format",
}

// ValidateCreateUserRequest checks every field of req and reports all
// violations at once as a *domain.ValidationError.
func ValidateCreateUserRequest(req CreateUserRequest) error {
	return shared.ValidateRequest(req, createUserMessages)
}
