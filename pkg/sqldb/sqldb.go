// Package sqldb opens the order store connection for the configured driver.
// Only PostgreSQL and SQLite are supported.
package sqldb

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"

	// Register the PostgreSQL driver as "postgres".
	_ "github.com/lib/pq"
	// Register the pure-Go SQLite driver as "sqlite".
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config selects the driver and connection string.
type Config struct {
	Driver string
	DSN    string
}

// Open opens and pings a pooled connection.
func Open(ctx context.Context, cfg Config) (*sql.DB, error) {
	var (
		db  *sql.DB
		err error
	)

	switch cfg.Driver {
	case DriverPostgres:
		db, err = sql.Open(DriverPostgres, cfg.DSN)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open postgres database")
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(time.Hour)
		db.SetConnMaxIdleTime(15 * time.Minute)
	case DriverSQLite:
		if cfg.DSN == "" {
			return nil, errors.New("sqlite dsn is required")
		}
		db, err = sql.Open(DriverSQLite, cfg.DSN)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open sqlite database")
		}
		// SQLite allows one writer; a single connection also keeps
		// ":memory:" databases shared across calls.
		db.SetMaxOpenConns(1)
	default:
		return nil, errors.Errorf("unknown db driver %q: only %q and %q are supported", cfg.Driver, DriverPostgres, DriverSQLite)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to ping database")
	}
	return db, nil
}
