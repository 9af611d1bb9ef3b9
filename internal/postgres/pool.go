// Package postgres provides the shared pgx pool and query instrumentation.
//
// Query arguments are never logged: assessment rows carry symptom text and
// vitals, which are PHI.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/linnemanlabs/go-core/log"
)

// NewPool opens a pgx connection pool with tracing and query logging wired
// in, and verifies connectivity before returning.
func NewPool(ctx context.Context, dsn string, logger log.Logger) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	cfg.ConnConfig.Tracer = wrapQueryTracer(otelpgx.NewTracer())

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	logger.Info(ctx, "database pool ready",
		"max_conns", cfg.MaxConns,
	)
	return pool, nil
}
