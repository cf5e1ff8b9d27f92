// Package store holds the gateway's optional connection to the Supabase
// Postgres database. The gateway never queries application tables; the
// connection only backs the readiness probe.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/college-organizer/internal/config"
	"github.com/MKhiriev/college-organizer/internal/logger"
)

const (
	maxOpenConns    = 4
	maxIdleConns    = 1
	connMaxIdleTime = 5 * time.Minute

	pingAttempts = 2
	pingBackoff  = 200 * time.Millisecond
)

type DB struct {
	*sql.DB
	errorClassificator *PostgresErrorClassifier
	logger             *logger.Logger
}

// NewConnectPostgres opens a pgx-backed pool for cfg.DSN. The pool is lazy:
// no connection is made until the first Ping, so an unreachable database
// never blocks startup.
func NewConnectPostgres(cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(maxOpenConns)
	conn.SetMaxIdleConns(maxIdleConns)
	conn.SetConnMaxIdleTime(connMaxIdleTime)

	return newDB(conn, log), nil
}

func newDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             log,
	}
}

// Ping checks that the database accepts a session. Transient failures are
// retried once. The returned error wraps [ErrDatabaseUnavailable] or
// [ErrDatabaseRejected].
func (db *DB) Ping(ctx context.Context) error {
	var lastErr error
	backoff := retry.WithMaxRetries(pingAttempts-1, retry.NewConstant(pingBackoff))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		lastErr = db.PingContext(ctx)
		if lastErr == nil {
			return nil
		}

		if db.errorClassificator.Classify(lastErr) == NonRetryable {
			db.logger.Err(lastErr).Str("code", pgErrorCode(lastErr)).Msg("database rejected ping")
			return fmt.Errorf("%w: %w", ErrDatabaseRejected, lastErr)
		}

		db.logger.Warn().Err(lastErr).Msg("database ping failed")
		return retry.RetryableError(lastErr)
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrDatabaseRejected):
		return err
	case ctx.Err() != nil && lastErr != nil && !errors.Is(err, lastErr):
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, errors.Join(lastErr, err))
	default:
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}
}
