package testdb

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/phrazzld/user-api/internal/config"
	"github.com/phrazzld/user-api/internal/platform/postgres"
	"github.com/stretchr/testify/require"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 30 * time.Second

// Environment variables consulted for the test database URL, in order.
const (
	databaseURLEnv     = "DATABASE_URL"
	testDatabaseURLEnv = "USERAPI_TEST_DATABASE_URL"
)

// GetTestDatabaseURL returns the first non-empty test database URL.
func GetTestDatabaseURL() string {
	if url := os.Getenv(databaseURLEnv); url != "" {
		return url
	}
	return os.Getenv(testDatabaseURLEnv)
}

// IsIntegrationTestEnvironment reports whether a test database is configured.
func IsIntegrationTestEnvironment() bool {
	return GetTestDatabaseURL() != ""
}

// SetupTestPool connects to the test database, applies the migrations and
// returns a pool that is closed when the test ends. The test is skipped when
// no database is configured.
func SetupTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	url := GetTestDatabaseURL()
	if url == "" {
		t.Skipf("integration test skipped: set %s or %s", databaseURLEnv, testDatabaseURLEnv)
	}

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	log := slog.New(slog.NewJSONHandler(testWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))

	pool, err := postgres.NewPool(ctx, config.DatabaseConfig{URL: url, MaxConns: 5}, log)
	require.NoError(t, err, "failed to connect to test database")
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.Migrate(ctx, pool, postgres.MigrateUp, log), "failed to run migrations")
	return pool
}

// WithTx executes fn within a transaction that is always rolled back, so
// tests leave no rows behind.
func WithTx(t *testing.T, pool *pgxpool.Pool, fn func(t *testing.T, tx pgx.Tx)) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	tx, err := pool.Begin(ctx)
	require.NoError(t, err, "failed to begin transaction")

	defer func() {
		if err := tx.Rollback(context.Background()); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			t.Errorf("failed to roll back transaction: %v", err)
		}
	}()

	fn(t, tx)
}

// testWriter routes log output through t.Log so it is shown only for failing
// or verbose tests.
type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}
