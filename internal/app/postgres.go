package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/guttosm/sharedesk/config"
	"github.com/guttosm/sharedesk/internal/logger"

	_ "github.com/lib/pq" // PostgreSQL driver for database/sql
)

// pingTimeout bounds a single connectivity check.
const pingTimeout = 5 * time.Second

// sqlOpener is an indirection for unit testing; defaults to sql.Open
var sqlOpener = sql.Open

// InitPostgres opens a PostgreSQL connection pool and waits until it answers a ping.
//
// Behavior:
//   - Builds the DSN from cfg.Postgres.
//   - Pings with exponential backoff for at most cfg.Postgres.ConnectTimeout, so the
//     API can start alongside a database container that is still booting.
//     A zero timeout means a single attempt.
//   - Closes the handle and returns the last ping error when the budget runs out.
//
// Example usage:
//
//	db, err := app.InitPostgres(config.AppConfig)
//	if err != nil {
//	    log.Fatalf("❌ failed to connect: %v", err)
//	}
//	defer db.Close()
func InitPostgres(cfg config.Config) (*sql.DB, error) {
	db, err := sqlOpener("postgres", cfg.Postgres.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	ping := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		defer cancel()
		return db.PingContext(ctx)
	}
	notify := func(err error, wait time.Duration) {
		logger.L().Warn().
			Err(err).
			Str("host", cfg.Postgres.Host).
			Dur("retry_in", wait).
			Msg("postgres not ready, retrying")
	}

	if err := backoff.RetryNotify(ping, connectBackOff(cfg.Postgres.ConnectTimeout), notify); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return db, nil
}

func connectBackOff(limit time.Duration) backoff.BackOff {
	if limit <= 0 {
		return &backoff.StopBackOff{}
	}
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 250 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = limit
	return b
}

// postgresOpener is an indirection used by InitializeApp; overridden in tests to avoid real connections.
var postgresOpener = InitPostgres
