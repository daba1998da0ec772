package postgres_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/phrazzld/user-api/internal/domain"
	"github.com/phrazzld/user-api/internal/platform/postgres"
	"github.com/phrazzld/user-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresUserStore_Integration(t *testing.T) {
	pool := testdb.SetupTestPool(t)
	ctx := context.Background()

	t.Run("create then get", func(t *testing.T) {
		testdb.WithTx(t, pool, func(t *testing.T, tx pgx.Tx) {
			userStore := postgres.NewPostgresUserStore(tx, nil)

			created, err := userStore.Create(ctx, domain.NewUser("alice", "alice@example.com"))
			require.NoError(t, err)
			assert.Positive(t, created.ID)

			fetched, err := userStore.GetByID(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, created, fetched)
		})
	})

	t.Run("duplicate pairs are accepted", func(t *testing.T) {
		testdb.WithTx(t, pool, func(t *testing.T, tx pgx.Tx) {
			userStore := postgres.NewPostgresUserStore(tx, nil)

			first, err := userStore.Create(ctx, domain.NewUser("bob", "bob@example.com"))
			require.NoError(t, err)
			second, err := userStore.Create(ctx, domain.NewUser("bob", "bob@example.com"))
			require.NoError(t, err)

			assert.NotEqual(t, first.ID, second.ID)
		})
	})

	t.Run("unknown id", func(t *testing.T) {
		testdb.WithTx(t, pool, func(t *testing.T, tx pgx.Tx) {
			userStore := postgres.NewPostgresUserStore(tx, nil)

			_, err := userStore.GetByID(ctx, -1)
			assert.ErrorIs(t, err, domain.ErrUserNotFound)
		})
	})

	t.Run("empty username violates the check constraint", func(t *testing.T) {
		testdb.WithTx(t, pool, func(t *testing.T, tx pgx.Tx) {
			userStore := postgres.NewPostgresUserStore(tx, nil)

			_, err := userStore.Create(ctx, domain.NewUser("", "x@example.com"))

			var dbErr *domain.DatabaseError
			require.ErrorAs(t, err, &dbErr)
			assert.Equal(t, `check constraint violation on "users_username_not_empty"`, dbErr.Detail)
		})
	})

	t.Run("health check", func(t *testing.T) {
		assert.NoError(t, postgres.NewHealthChecker(pool).Check(ctx))
	})
}
