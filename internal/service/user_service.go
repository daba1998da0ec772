package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/user-api/internal/domain"
	"github.com/phrazzld/user-api/internal/platform/logger"
	"github.com/phrazzld/user-api/internal/redact"
	"github.com/phrazzld/user-api/internal/store"
)

// UserService provides user-related operations.
type UserService interface {
	// GetUser retrieves a user by their ID.
	// Returns domain.ErrUserNotFound if no user has that ID.
	GetUser(ctx context.Context, userID int64) (*domain.User, error)

	// CreateUser persists user and returns it with the store-assigned ID.
	// The input is expected to have been validated by the caller.
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore store.UserStore
	logger    *slog.Logger
}

var _ UserService = (*UserServiceImpl)(nil)

// NewUserService creates a new UserService.
// It returns ErrNilUserStore if userStore is nil. If logger is nil, the
// default logger is used.
func NewUserService(userStore store.UserStore, logger *slog.Logger) (UserService, error) {
	if userStore == nil {
		return nil, ErrNilUserStore
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &UserServiceImpl{
		userStore: userStore,
		logger:    logger.With(slog.String("component", "user_service")),
	}, nil
}

// GetUser retrieves a user by their ID
func (s *UserServiceImpl) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		s.logFailure(log, "failed to retrieve user", err, slog.Int64("user_id", userID))
		return nil, err
	}

	log.Debug("retrieved user successfully", slog.Int64("user_id", userID))
	return user, nil
}

// CreateUser persists a new user.
func (s *UserServiceImpl) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	created, err := s.userStore.Create(ctx, user)
	if err != nil {
		s.logFailure(log, "failed to create user", err)
		return nil, err
	}

	log.Info("user created successfully", slog.Int64("user_id", created.ID))
	return created, nil
}

// logFailure logs expected outcomes (not found, invalid input) at debug and
// everything else at error.
func (s *UserServiceImpl) logFailure(log *slog.Logger, msg string, err error, attrs ...any) {
	attrs = append(attrs,
		slog.String("error", redact.Error(err)),
		slog.String("error_kind", domain.KindOf(err).String()))

	switch domain.KindOf(err) {
	case domain.KindNotFound, domain.KindInvalidInput:
		log.Debug(msg, attrs...)
	default:
		log.Error(msg, attrs...)
	}
}
