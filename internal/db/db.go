// Package db manages the database connection
package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Import modernc.org/sqlite as a blank import to register the driver
	_ "modernc.org/sqlite"
)

// DB wraps the SQL database connection with application-specific methods.
type DB struct {
	*sql.DB
	path string
}

// New creates a new database connection and initializes the schema.
func New(path string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// Open database connection
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := sqlDB.PingContext(context.Background()); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := &DB{
		DB:   sqlDB,
		path: path,
	}

	// Configure database
	if err := db.configure(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to configure database: %w", err)
	}

	// Create schema
	if err := db.createSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return db, nil
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}

// configure sets up database pragmas for optimal performance.
func (db *DB) configure() error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
		"PRAGMA temp_store=MEMORY",
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(context.Background(), pragma); err != nil {
			return fmt.Errorf("failed to execute %s: %w", pragma, err)
		}
	}

	return nil
}

func (db *DB) createSchema() error {
	if err := db.createUsageLogTable(); err != nil {
		return err
	}
	if err := db.createAlertLogTable(); err != nil {
		return err
	}
	return db.createBalanceSnapshotsTable()
}

func (db *DB) createUsageLogTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS usage_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		profile TEXT NOT NULL,
		date TEXT NOT NULL,
		app TEXT NOT NULL,
		category TEXT NOT NULL,
		minutes INTEGER NOT NULL DEFAULT 0,
		UNIQUE(profile, date, app)
	);
	CREATE INDEX IF NOT EXISTS idx_usage_log_profile ON usage_log(profile);
	CREATE INDEX IF NOT EXISTS idx_usage_log_date ON usage_log(profile, date);
	`
	_, err := db.ExecContext(context.Background(), query)
	return err
}

func (db *DB) createAlertLogTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS alert_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		profile TEXT NOT NULL,
		scope TEXT NOT NULL,
		app TEXT NOT NULL,
		date TEXT,
		minutes INTEGER NOT NULL,
		limit_minutes INTEGER NOT NULL,
		message TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_alert_log_profile ON alert_log(profile);
	CREATE INDEX IF NOT EXISTS idx_alert_log_created ON alert_log(created_at);
	`
	_, err := db.ExecContext(context.Background(), query)
	return err
}

func (db *DB) createBalanceSnapshotsTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS balance_snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		profile TEXT NOT NULL,
		study_minutes INTEGER NOT NULL DEFAULT 0,
		distraction_minutes INTEGER NOT NULL DEFAULT 0,
		total_minutes INTEGER NOT NULL DEFAULT 0,
		balance_score INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_balance_snapshots_profile ON balance_snapshots(profile, created_at);
	`
	_, err := db.ExecContext(context.Background(), query)
	return err
}
