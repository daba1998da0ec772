package store

import (
	"context"

	"github.com/phrazzld/user-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
// It is the only coupling point between the service layer and storage.
type UserStore interface {
	// GetByID retrieves a user by their ID.
	// Returns domain.ErrUserNotFound if no user has that ID.
	// Returns a *domain.DatabaseError if the lookup itself fails.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// Create saves a new user and returns it with the store-assigned ID.
	// The input is not modified.
	// Returns a *domain.DatabaseError if the insert fails for any reason,
	// including constraint violations.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
