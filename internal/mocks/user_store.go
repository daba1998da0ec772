package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/user-api/internal/domain"
	"github.com/phrazzld/user-api/internal/store"
)

// MockUserStore implements store.UserStore for testing.
// It is safe for concurrent use.
type MockUserStore struct {
	// Function fields for customizable behavior
	GetByIDFn func(ctx context.Context, id int64) (*domain.User, error)
	CreateFn  func(ctx context.Context, user *domain.User) (*domain.User, error)

	// Errors returned by the default implementation when set
	GetByIDError error
	CreateError  error

	mu           sync.Mutex
	users        map[int64]domain.User
	nextID       int64
	getByIDCalls int
	createCalls  int
}

var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates a new mock store with initialized defaults.
func NewMockUserStore(seed ...domain.User) *MockUserStore {
	m := &MockUserStore{users: make(map[int64]domain.User)}
	for _, u := range seed {
		m.users[u.ID] = u
		if u.ID > m.nextID {
			m.nextID = u.ID
		}
	}
	return m
}

// GetByID implements the UserStore interface.
func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	m.mu.Lock()
	m.getByIDCalls++
	m.mu.Unlock()

	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.GetByIDError != nil {
		return nil, m.GetByIDError
	}

	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

// Create implements the UserStore interface. IDs are assigned sequentially
// starting at 1.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	m.mu.Lock()
	m.createCalls++
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CreateError != nil {
		return nil, m.CreateError
	}

	if m.users == nil {
		m.users = make(map[int64]domain.User)
	}
	m.nextID++
	created := domain.User{ID: m.nextID, Username: user.Username, Email: user.Email}
	m.users[created.ID] = created
	return &created, nil
}

// GetByIDCalls returns how many times GetByID has been called.
func (m *MockUserStore) GetByIDCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getByIDCalls
}

// CreateCalls returns how many times Create has been called.
func (m *MockUserStore) CreateCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createCalls
}

// Len returns the number of stored users.
func (m *MockUserStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users)
}
