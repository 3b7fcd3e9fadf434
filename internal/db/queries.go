package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avenka-dev/screenbalance-tui/internal/models"
)

const dateLayout = "2006-01-02"

// SaveUsageSeries upserts a generated week of usage for a profile.
// Regenerating the same profile replaces the existing rows in place.
func (db *DB) SaveUsageSeries(series models.UsageSeries) error {
	query := `
		INSERT INTO usage_log (profile, date, app, category, minutes)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(profile, date, app) DO UPDATE SET
			category = excluded.category,
			minutes = excluded.minutes
	`

	tx, err := db.BeginTx(context.Background(), nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(context.Background(), query)
	if err != nil {
		return fmt.Errorf("failed to prepare usage insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, rec := range series {
		_, err := stmt.ExecContext(context.Background(),
			rec.Profile,
			rec.Date.Format(dateLayout),
			rec.App,
			string(rec.Category),
			rec.Minutes,
		)
		if err != nil {
			return fmt.Errorf("failed to insert usage record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit usage series: %w", err)
	}
	return nil
}

// GetUsageSeries loads the stored usage rows for a profile in
// chronological order.
func (db *DB) GetUsageSeries(profile string) (models.UsageSeries, error) {
	query := `
		SELECT profile, date, app, category, minutes
		FROM usage_log
		WHERE profile = ?
		ORDER BY date ASC, app ASC
	`

	rows, err := db.QueryContext(context.Background(), query, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to query usage log: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var series models.UsageSeries
	for rows.Next() {
		var rec models.UsageRecord
		var dateStr, category string

		if err := rows.Scan(&rec.Profile, &dateStr, &rec.App, &category, &rec.Minutes); err != nil {
			return nil, fmt.Errorf("failed to scan usage record: %w", err)
		}

		date, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("malformed date %q in usage log: %w", dateStr, err)
		}
		rec.Date = date.UTC()
		rec.Category = models.Category(category)
		series = append(series, rec)
	}

	return series, rows.Err()
}

// RecordAlerts appends threshold violations to the alert log.
func (db *DB) RecordAlerts(profile string, alerts []models.Alert) error {
	if len(alerts) == 0 {
		return nil
	}

	query := `
		INSERT INTO alert_log (profile, scope, app, date, minutes, limit_minutes, message)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	tx, err := db.BeginTx(context.Background(), nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(context.Background(), query)
	if err != nil {
		return fmt.Errorf("failed to prepare alert insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, alert := range alerts {
		var date sql.NullString
		if !alert.Date.IsZero() {
			date = sql.NullString{String: alert.Date.Format(dateLayout), Valid: true}
		}

		_, err := stmt.ExecContext(context.Background(),
			profile,
			alert.Scope.String(),
			alert.App,
			date,
			alert.Minutes,
			alert.Limit,
			alert.Message,
		)
		if err != nil {
			return fmt.Errorf("failed to insert alert: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit alerts: %w", err)
	}
	return nil
}

// AlertEntry is one row from the alert log.
type AlertEntry struct {
	ID        int64
	Profile   string
	Scope     string
	App       string
	Date      string
	Minutes   int
	Limit     int
	Message   string
	CreatedAt time.Time
}

// GetRecentAlerts returns the most recent logged alerts for a profile.
func (db *DB) GetRecentAlerts(profile string, limit int) ([]AlertEntry, error) {
	query := `
		SELECT id, profile, scope, app, date, minutes, limit_minutes, message, created_at
		FROM alert_log
		WHERE profile = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := db.QueryContext(context.Background(), query, profile, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query alert log: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []AlertEntry
	for rows.Next() {
		var e AlertEntry
		var date sql.NullString

		err := rows.Scan(&e.ID, &e.Profile, &e.Scope, &e.App, &date,
			&e.Minutes, &e.Limit, &e.Message, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert entry: %w", err)
		}

		e.Date = date.String
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// CountAlerts returns the total number of logged alerts for a profile.
func (db *DB) CountAlerts(profile string) (int, error) {
	var count int
	err := db.QueryRowContext(context.Background(),
		`SELECT COUNT(*) FROM alert_log WHERE profile = ?`, profile).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count alerts: %w", err)
	}
	return count, nil
}

// InsertBalanceSnapshot records the aggregate report for trend history.
func (db *DB) InsertBalanceSnapshot(profile string, report models.Report) error {
	query := `
		INSERT INTO balance_snapshots (profile, study_minutes, distraction_minutes, total_minutes, balance_score)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := db.ExecContext(context.Background(), query,
		profile,
		report.StudyMinutes,
		report.DistractionMinutes,
		report.TotalMinutes,
		report.BalanceScore,
	)
	if err != nil {
		return fmt.Errorf("failed to insert balance snapshot: %w", err)
	}
	return nil
}

// GetBalanceHistory returns recent balance scores for a profile, oldest
// first, for sparkline rendering.
func (db *DB) GetBalanceHistory(profile string, limit int) ([]int, error) {
	query := `
		SELECT balance_score FROM (
			SELECT id, balance_score
			FROM balance_snapshots
			WHERE profile = ?
			ORDER BY id DESC
			LIMIT ?
		)
		ORDER BY id ASC
	`

	rows, err := db.QueryContext(context.Background(), query, profile, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query balance history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var scores []int
	for rows.Next() {
		var score int
		if err := rows.Scan(&score); err != nil {
			return nil, fmt.Errorf("failed to scan balance score: %w", err)
		}
		scores = append(scores, score)
	}

	return scores, rows.Err()
}
