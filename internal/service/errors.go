package service

import "errors"

// Service construction errors. Request-path errors are never defined here:
// they come from the domain package and pass through services unchanged, so
// that the API layer is the single place where they are translated.
var (
	// ErrNilUserStore is returned by NewUserService when no store is supplied.
	ErrNilUserStore = errors.New("user store cannot be nil")
)
