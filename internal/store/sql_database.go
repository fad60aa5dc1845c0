// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/bliss/internal/config"
	"github.com/MKhiriev/bliss/internal/logger"
	"github.com/MKhiriev/bliss/migrations"
	"github.com/sethvargo/go-retry"
)

// DB is a connection pool bound to one SQL dialect.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	queryRetries       uint64
	logger             *logger.Logger
}

// NewConnectDB opens the database named by cfg.Driver and waits until it
// answers a ping, retrying up to cfg.ConnectRetries times.
func NewConnectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Migrate applies the embedded migrations of the connection's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.driver)
}

// Driver returns the configured driver name ("postgres" or "sqlite").
func (db *DB) Driver() string {
	return db.driver
}

// withRetry runs fn and repeats it while the dialect classifies the error
// as retryable, at most queryRetries extra times.
func (db *DB) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(db.queryRetries, retry.NewExponential(20*time.Millisecond))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).Msg("retryable database error")
			return retry.RetryableError(err)
		}
		return err
	})
}

// pingWithRetry checks the fresh pool, backing off between attempts.
func pingWithRetry(ctx context.Context, conn *sql.DB, retries uint64, log *logger.Logger) error {
	backoff := retry.WithCappedDuration(5*time.Second,
		retry.WithMaxRetries(retries, retry.NewExponential(200*time.Millisecond)))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := conn.PingContext(ctx); err != nil {
			log.Warn().Err(err).Msg("database is not reachable yet")
			return retry.RetryableError(err)
		}
		return nil
	})
}
