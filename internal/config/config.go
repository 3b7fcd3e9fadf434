// Package config contains everything related to configuration
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/avenka-dev/screenbalance-tui/internal/models"
)

// Config holds the application configuration.
type Config struct {
	DatabasePath string
	ProfilesPath string
	// WeekStart is the first day of the simulated tracking week.
	WeekStart time.Time
	// Limits are the alert thresholds in minutes.
	Limits models.Limits
	// ForecastHorizon is the number of days projected forward.
	ForecastHorizon int
}

// Default values
const (
	defaultDailyLimit      = 120
	defaultWeeklyLimit     = 600
	defaultForecastHorizon = 7
	defaultWeekStart       = "2025-12-01"
)

// Load reads configuration from .env files and environment variables.
func Load() (*Config, error) {
	// Try loading .env from multiple locations
	for _, path := range getEnvPaths() {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			break
		}
	}

	weekStart, err := getEnvDate("WEEK_START", defaultWeekStart)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DatabasePath: getEnvString("DATABASE_PATH", getDefaultDatabasePath()),
		ProfilesPath: getEnvString("PROFILES_PATH", getDefaultProfilesPath()),
		WeekStart:    weekStart,
		Limits: models.Limits{
			Daily:  getEnvInt("DAILY_LIMIT", defaultDailyLimit),
			Weekly: getEnvInt("WEEKLY_LIMIT", defaultWeeklyLimit),
		},
		ForecastHorizon: getEnvInt("FORECAST_HORIZON", defaultForecastHorizon),
	}

	// Reject degenerate thresholds at the boundary; the analytics
	// pipeline assumes validated limits.
	if err := cfg.Limits.Validate(); err != nil {
		return nil, err
	}
	if cfg.ForecastHorizon <= 0 {
		return nil, &models.InputError{Field: "FORECAST_HORIZON", Reason: "must be positive"}
	}

	// Ensure database directory exists
	if err := ensureDir(filepath.Dir(cfg.DatabasePath)); err != nil {
		return nil, err
	}

	// Ensure profiles directory exists
	if err := ensureDir(filepath.Dir(cfg.ProfilesPath)); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnvPaths returns a list of paths to check for .env files.
func getEnvPaths() []string {
	var paths []string

	// Current directory
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".env"))
	}

	// Home directory locations
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "screenbalance", ".env"),
			filepath.Join(home, ".screenbalance", ".env"),
		)
	}

	return paths
}

// getDefaultDatabasePath returns the default path for the SQLite database.
func getDefaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "usage.db"
	}
	return filepath.Join(home, ".config", "screenbalance", "usage.db")
}

// getDefaultProfilesPath returns the default path for the profiles JSON file.
func getDefaultProfilesPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "profiles.json"
	}
	return filepath.Join(home, ".config", "screenbalance", "profiles.json")
}

// getEnvString retrieves a string environment variable or returns the default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns the default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// getEnvDate retrieves a YYYY-MM-DD environment variable.
func getEnvDate(key, defaultValue string) (time.Time, error) {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return t.UTC(), nil
}

// ensureDir creates a directory and all parent directories if they don't exist.
func ensureDir(path string) error {
	if path == "" || path == "." {
		return nil
	}
	return os.MkdirAll(path, 0o750)
}
