package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolConfig sizes the Postgres connection pool backing the snapshot store
type PoolConfig struct {
	ConnString      string
	MaxConns        int
	MaxConnIdleTime time.Duration
	MaxConnLifetime time.Duration
}

func (c PoolConfig) apply(cfg *pgxpool.Config) {
	maxConns := c.MaxConns
	switch {
	case maxConns <= 0:
		maxConns = DefaultMaxConnections
	case maxConns > math.MaxInt32:
		maxConns = math.MaxInt32
	}
	cfg.MaxConns = int32(maxConns)
	// Snapshot writes are the only traffic, so a couple of warm connections is plenty
	cfg.MinConns = min(DefaultMinConnections, cfg.MaxConns)

	cfg.MaxConnIdleTime = DefaultMaxConnIdleTime
	if c.MaxConnIdleTime > 0 {
		cfg.MaxConnIdleTime = c.MaxConnIdleTime
	}
	cfg.MaxConnLifetime = DefaultMaxConnLifetime
	if c.MaxConnLifetime > 0 {
		cfg.MaxConnLifetime = c.MaxConnLifetime
	}
}

// NewPool connects to Postgres and verifies the connection with a ping.
// The pool is closed again if the ping fails.
func NewPool(ctx context.Context, pc PoolConfig) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(pc.ConnString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}
	pc.apply(cfg)

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Info(LogMsgConnectedToDatabase,
		"max_conns", cfg.MaxConns,
		"min_conns", cfg.MinConns,
		"host", cfg.ConnConfig.Host,
		"database", cfg.ConnConfig.Database)
	return pool, nil
}
