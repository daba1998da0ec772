package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/phrazzld/user-api/internal/domain"
	"github.com/phrazzld/user-api/internal/platform/logger"
	"github.com/phrazzld/user-api/internal/redact"
	"github.com/phrazzld/user-api/internal/store"
)

// Querier is the subset of the pgx pool used by the stores.
// *pgxpool.Pool satisfies it, as does the pgxmock pool used in tests.
//
// Each QueryRow call borrows one pooled connection and the pool takes it back
// once the returned row has been scanned, whether or not Scan succeeds.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	getUserByIDQuery = `
		SELECT id, username, email
		FROM users
		WHERE id = $1
	`

	createUserQuery = `
		INSERT INTO users (username, email)
		VALUES ($1, $2)
		RETURNING id, username, email
	`
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     Querier
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
// It accepts a pool that is initialized and closed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresUserStore(db Querier, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// GetByID implements store.UserStore.GetByID.
// A missing row is domain.ErrUserNotFound; every other failure, including
// timeouts and lost connections, is a *domain.DatabaseError.
func (s *PostgresUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving user by ID", slog.Int64("user_id", id))

	var user domain.User
	err := s.db.QueryRow(ctx, getUserByIDQuery, id).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
	)
	if err != nil {
		if IsNoRows(err) {
			log.Debug("user not found", slog.Int64("user_id", id))
			return nil, domain.ErrUserNotFound
		}

		log.Error("failed to get user by ID",
			slog.String("error", redact.Error(err)),
			slog.Int64("user_id", id))
		return nil, MapError("get user", err)
	}

	log.Debug("user retrieved successfully", slog.Int64("user_id", user.ID))
	return &user, nil
}

// Create implements store.UserStore.Create.
// The returned user is a new value carrying the ID assigned by the database.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if user == nil {
		return nil, fmt.Errorf("%w: cannot create nil user", domain.ErrInternal)
	}

	var created domain.User
	err := s.db.QueryRow(ctx, createUserQuery, user.Username, user.Email).Scan(
		&created.ID,
		&created.Username,
		&created.Email,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("unique constraint violation during user creation",
				slog.String("error", redact.Error(err)))
		} else {
			log.Error("failed to create user",
				slog.String("error", redact.Error(err)))
		}
		return nil, MapError("create user", err)
	}

	log.Info("user created successfully", slog.Int64("user_id", created.ID))
	return &created, nil
}
