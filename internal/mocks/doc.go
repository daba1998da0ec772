// Package mocks provides centralized mock implementations for testing.
//
// Two flavours are offered for each interface. The Mock* types hold function
// fields and fall back to a working in-memory implementation when a field is
// nil, which suits tests that drive the whole request path. The TestifyMock*
// types are built on testify/mock for tests that assert on exact calls.
//
// Usage:
//
//	userStore := mocks.NewMockUserStore()
//	userStore.GetByIDFn = func(ctx context.Context, id int64) (*domain.User, error) {
//	    return nil, domain.NewDatabaseError("get user", "database unavailable", nil)
//	}
//
//	svc, err := service.NewUserService(userStore, nil)
package mocks
