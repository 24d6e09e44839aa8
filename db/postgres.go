package db

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"paper-letter/config"
)

var (
	pool     *pgxpool.Pool
	initOnce sync.Once
	initErr  error
)

// Init connects the process-wide pgx pool using DATABASE_URL and verifies
// connectivity with a ping. Safe to call multiple times.
func Init(ctx context.Context) error {
	initOnce.Do(func() {
		dsn := config.GetConfig().DatabaseURL
		if dsn == "" {
			initErr = fmt.Errorf("DATABASE_URL is not set")
			return
		}

		cfg, err := pgxpool.ParseConfig(dsn)
		if err != nil {
			initErr = fmt.Errorf("parse DATABASE_URL: %w", err)
			return
		}
		cfg.MaxConns = 10
		cfg.MaxConnLifetime = 30 * time.Minute

		p, err := pgxpool.NewWithConfig(ctx, cfg)
		if err != nil {
			initErr = fmt.Errorf("connect postgres: %w", err)
			return
		}

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := p.Ping(pingCtx); err != nil {
			p.Close()
			initErr = fmt.Errorf("ping postgres: %w", err)
			return
		}

		pool = p
	})
	return initErr
}

// Pool returns the initialized pool. Panics if Init was not called.
func Pool() *pgxpool.Pool {
	if pool == nil {
		panic("db: Init must be called before Pool")
	}
	return pool
}

// Ping checks database connectivity. Used by the status endpoint.
func Ping(ctx context.Context) error {
	if pool == nil {
		return fmt.Errorf("db: not initialized")
	}
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return pool.Ping(pingCtx)
}

// Close releases the pool. Call on shutdown.
func Close() {
	if pool != nil {
		pool.Close()
	}
}
