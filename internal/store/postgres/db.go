package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
)

// Option tunes the sql.DB pool behind the bun handle before it is pinged.
type Option func(*sql.DB)

// WithConnLimits caps open and idle connections. Zero values leave the
// driver defaults in place.
func WithConnLimits(maxOpen, maxIdle int) Option {
	return func(db *sql.DB) {
		if maxOpen > 0 {
			db.SetMaxOpenConns(maxOpen)
		}
		if maxIdle > 0 {
			db.SetMaxIdleConns(maxIdle)
		}
	}
}

// WithConnLifetimes bounds how long a connection may live and how long it
// may sit idle. Zero values leave the driver defaults in place.
func WithConnLifetimes(maxLifetime, maxIdleTime time.Duration) Option {
	return func(db *sql.DB) {
		if maxLifetime > 0 {
			db.SetConnMaxLifetime(maxLifetime)
		}
		if maxIdleTime > 0 {
			db.SetConnMaxIdleTime(maxIdleTime)
		}
	}
}

// Open dials the appointments database over the pgx stdlib driver, applies
// the pool options, and verifies the connection before returning a bun
// handle. Callers own the handle and close it with (*bun.DB).Close.
func Open(ctx context.Context, databaseURL string, opts ...Option) (*bun.DB, error) {
	sqlDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	for _, opt := range opts {
		opt(sqlDB)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return bun.NewDB(sqlDB, pgdialect.New()), nil
}
