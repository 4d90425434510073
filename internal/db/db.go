// Package db opens the relational store. The same repository code runs
// against both supported backends; the driver is chosen here, from
// configuration, and nowhere else.
package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/tharatepjaiya-creator/Student-info1/internal/config"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/logger"
)

// Database wraps the sqlx handle together with the selected driver name.
type Database struct {
	DB     *sqlx.DB
	Driver string
}

// New opens a connection per the configured driver: "sqlite" for the embedded
// file-based engine, "postgres" for the networked service.
func New(cfg *config.Config) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var (
		handle *sqlx.DB
		err    error
	)

	switch cfg.Database.Driver {
	case "sqlite":
		if dir := filepath.Dir(cfg.Database.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("creating database directory: %w", err)
			}
		}
		handle, err = sqlx.Open("sqlite", cfg.Database.Path+"?_pragma=busy_timeout(5000)")
		if err != nil {
			return nil, fmt.Errorf("opening sqlite database: %w", err)
		}
		// The embedded engine serializes writers; a single connection avoids
		// SQLITE_BUSY churn under concurrent handlers.
		handle.SetMaxOpenConns(1)

	case "postgres":
		handle, err = sqlx.Open("pgx", cfg.GetPostgresConnectionString())
		if err != nil {
			return nil, fmt.Errorf("opening postgres database: %w", err)
		}
		handle.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		handle.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		if lifetime, err := time.ParseDuration(cfg.Database.ConnMaxLifetime); err == nil {
			handle.SetConnMaxLifetime(lifetime)
		}

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	if err := handle.PingContext(ctx); err != nil {
		_ = handle.Close()
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	logger.Info().Str("driver", cfg.Database.Driver).Msg("database connection established")
	return &Database{DB: handle, Driver: cfg.Database.Driver}, nil
}

// NewSQLiteMemory opens a throwaway in-memory database, used by tests.
func NewSQLiteMemory() (*Database, error) {
	handle, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory sqlite database: %w", err)
	}
	handle.SetMaxOpenConns(1)
	return &Database{DB: handle, Driver: "sqlite"}, nil
}

// Close closes the underlying pool.
func (d *Database) Close() {
	if d.DB != nil {
		_ = d.DB.Close()
	}
}
