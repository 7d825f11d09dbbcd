package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BuzzLyutic/settings-loader/internal/dbconfig"
)

const pingTimeout = 5 * time.Second

// Open creates a connection pool for a PostgreSQL configuration. Other
// engines have no driver wired in and are rejected.
func Open(ctx context.Context, cfg dbconfig.Config) (*pgxpool.Pool, error) {
	if cfg.Engine() != "postgresql" {
		return nil, fmt.Errorf("no driver for engine %q", cfg.Engine())
	}

	pool, err := pgxpool.New(ctx, cfg.ConnString())
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	return pool, nil
}

// Ping opens a short-lived pool and verifies the database is reachable.
func Ping(ctx context.Context, cfg dbconfig.Config) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	pool, err := Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	return pool.Ping(ctx)
}
