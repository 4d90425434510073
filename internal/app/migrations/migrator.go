// Package migrations creates and evolves the schema. Statements are kept
// in-code, keyed by dialect, so the sqlite and postgres backends always end
// up with equivalent tables. Applied versions are tracked in
// schema_migrations.
//
// No FOREIGN KEY constraints are declared: deletes never cascade, and a
// deleted department leaves student and announcement references dangling.
package migrations

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/logger"
)

type migration struct {
	version    string
	statements map[string][]string // keyed by driver
}

var all = []migration{
	{
		version: "001_init",
		statements: map[string][]string{
			"sqlite": {
				`CREATE TABLE IF NOT EXISTS departments (
					department_id INTEGER PRIMARY KEY AUTOINCREMENT,
					department_name TEXT NOT NULL,
					code TEXT NOT NULL
				)`,
				`CREATE TABLE IF NOT EXISTS admin_users (
					admin_id INTEGER PRIMARY KEY AUTOINCREMENT,
					username TEXT NOT NULL UNIQUE,
					password TEXT NOT NULL,
					email TEXT,
					role TEXT DEFAULT 'admin'
				)`,
				`CREATE TABLE IF NOT EXISTS students (
					student_id INTEGER PRIMARY KEY AUTOINCREMENT,
					prefix TEXT,
					first_name TEXT NOT NULL,
					last_name TEXT NOT NULL,
					dob TEXT NOT NULL,
					phone TEXT,
					department_id INTEGER,
					student_code TEXT UNIQUE,
					password TEXT,
					level TEXT,
					blood_group TEXT,
					student_image TEXT,
					father_name TEXT,
					mother_name TEXT,
					parent_phone TEXT
				)`,
				`CREATE TABLE IF NOT EXISTS announcements (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					title TEXT NOT NULL,
					content TEXT NOT NULL,
					image TEXT,
					department_id INTEGER,
					created_at TEXT
				)`,
			},
			"postgres": {
				`CREATE TABLE IF NOT EXISTS departments (
					department_id BIGSERIAL PRIMARY KEY,
					department_name TEXT NOT NULL,
					code TEXT NOT NULL
				)`,
				`CREATE TABLE IF NOT EXISTS admin_users (
					admin_id BIGSERIAL PRIMARY KEY,
					username TEXT NOT NULL UNIQUE,
					password TEXT NOT NULL,
					email TEXT,
					role TEXT DEFAULT 'admin'
				)`,
				`CREATE TABLE IF NOT EXISTS students (
					student_id BIGSERIAL PRIMARY KEY,
					prefix TEXT,
					first_name TEXT NOT NULL,
					last_name TEXT NOT NULL,
					dob TEXT NOT NULL,
					phone TEXT,
					department_id BIGINT,
					student_code TEXT UNIQUE,
					password TEXT,
					level TEXT,
					blood_group TEXT,
					student_image TEXT,
					father_name TEXT,
					mother_name TEXT,
					parent_phone TEXT
				)`,
				`CREATE TABLE IF NOT EXISTS announcements (
					id BIGSERIAL PRIMARY KEY,
					title TEXT NOT NULL,
					content TEXT NOT NULL,
					image TEXT,
					department_id BIGINT,
					created_at TEXT
				)`,
			},
		},
	},
	{
		version: "002_sessions",
		statements: map[string][]string{
			"sqlite": {
				`CREATE TABLE IF NOT EXISTS sessions (
					sid TEXT PRIMARY KEY,
					payload TEXT NOT NULL,
					expires_at INTEGER NOT NULL
				)`,
			},
			"postgres": {
				`CREATE TABLE IF NOT EXISTS sessions (
					sid TEXT PRIMARY KEY,
					payload TEXT NOT NULL,
					expires_at BIGINT NOT NULL
				)`,
			},
		},
	},
}

// Migrator manages database migrations.
type Migrator struct {
	db     *sqlx.DB
	driver string
}

// NewMigrator creates a migrator for the given handle and driver.
func NewMigrator(db *sqlx.DB, driver string) *Migrator {
	return &Migrator{db: db, driver: driver}
}

// Run applies every pending migration in order.
func (m *Migrator) Run(ctx context.Context) error {
	if err := m.ensureMigrationTable(ctx); err != nil {
		return err
	}

	for _, mig := range all {
		applied, err := m.isApplied(ctx, mig.version)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		statements, ok := mig.statements[m.driver]
		if !ok {
			return fmt.Errorf("migration %s has no statements for driver %s", mig.version, m.driver)
		}

		for _, stmt := range statements {
			if _, err := m.db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("applying migration %s: %w", mig.version, err)
			}
		}

		if err := m.record(ctx, mig.version); err != nil {
			return err
		}
		logger.Info().Str("version", mig.version).Msg("migration applied")
	}

	return nil
}

func (m *Migrator) ensureMigrationTable(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			applied_at TEXT NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("creating migration tracking table: %w", err)
	}
	return nil
}

func (m *Migrator) isApplied(ctx context.Context, version string) (bool, error) {
	var count int64
	query := m.db.Rebind(`SELECT count(*) FROM schema_migrations WHERE version = ?`)
	if err := m.db.GetContext(ctx, &count, query, version); err != nil {
		return false, fmt.Errorf("checking migration status: %w", err)
	}
	return count > 0, nil
}

func (m *Migrator) record(ctx context.Context, version string) error {
	query := m.db.Rebind(`INSERT INTO schema_migrations (version, applied_at) VALUES (?, ?)`)
	appliedAt := time.Now().UTC().Format(time.RFC3339)
	if _, err := m.db.ExecContext(ctx, query, version, appliedAt); err != nil {
		return fmt.Errorf("recording migration: %w", err)
	}
	return nil
}
