package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/phrazzld/user-api/internal/config"
	"github.com/phrazzld/user-api/internal/redact"
)

// pingTimeout bounds the connectivity check performed by NewPool.
const pingTimeout = 5 * time.Second

// NewPool creates the process-wide connection pool and verifies that the
// database is reachable. The caller owns the pool and must Close it.
//
// Returned errors are redacted: they never contain the connection string.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*pgxpool.Pool, error) {
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With(slog.String("component", "database"))

	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %s", redact.Error(err))
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.MinConns = cfg.MinConns
	if cfg.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	}

	log.Info("connecting to database",
		slog.Int("max_conns", int(poolCfg.MaxConns)),
		slog.Int("min_conns", int(poolCfg.MinConns)),
		slog.Duration("max_conn_lifetime", poolCfg.MaxConnLifetime))

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %s", redact.Error(err))
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		log.Error("database ping failed", slog.String("error", redact.Error(err)))
		return nil, fmt.Errorf("failed to ping database: %s", describe(err))
	}

	log.Info("database connection established")
	return pool, nil
}

// Pinger is implemented by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthChecker reports database reachability in domain terms.
type HealthChecker struct {
	db Pinger
}

// NewHealthChecker creates a HealthChecker over db.
func NewHealthChecker(db Pinger) *HealthChecker {
	return &HealthChecker{db: db}
}

// Check pings the database. Failures are returned as *domain.DatabaseError.
func (h *HealthChecker) Check(ctx context.Context) error {
	return MapError("ping database", h.db.Ping(ctx))
}
