package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/avenka-dev/screenbalance-tui/internal/models"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	return db
}

func TestNew(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	db, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	if db.Path() != dbPath {
		t.Errorf("Expected path %s, got %s", dbPath, db.Path())
	}

	// Verify file exists
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestNew_CreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "nested", "test.db")

	db, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create database with nested path: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(filepath.Dir(dbPath)); os.IsNotExist(err) {
		t.Error("Nested directories were not created")
	}
}

func TestSchema_TablesExist(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	tables := []string{
		"usage_log",
		"alert_log",
		"balance_snapshots",
	}

	for _, table := range tables {
		var name string
		err := db.QueryRowContext(context.Background(),
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("Table %s does not exist: %v", table, err)
		}
	}
}

func testSeries(profile string) models.UsageSeries {
	base := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	return models.UsageSeries{
		{Profile: profile, Date: base, App: "YouTube", Category: models.CategoryNonEducational, Minutes: 90},
		{Profile: profile, Date: base, App: "Khan Academy", Category: models.CategoryEducational, Minutes: 60},
		{Profile: profile, Date: base.AddDate(0, 0, 1), App: "YouTube", Category: models.CategoryNonEducational, Minutes: 110},
	}
}

func TestSaveUsageSeries_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	series := testSeries("Naresh")
	if err := db.SaveUsageSeries(series); err != nil {
		t.Fatalf("SaveUsageSeries() failed: %v", err)
	}

	got, err := db.GetUsageSeries("Naresh")
	if err != nil {
		t.Fatalf("GetUsageSeries() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d records, want 3", len(got))
	}

	// Chronological order, alphabetical within a day.
	if got[0].App != "Khan Academy" || got[1].App != "YouTube" {
		t.Errorf("unexpected first-day order: %s, %s", got[0].App, got[1].App)
	}
	if got[0].Category != models.CategoryEducational {
		t.Errorf("Category = %q, want %q", got[0].Category, models.CategoryEducational)
	}
	if !got[2].Date.After(got[0].Date) {
		t.Error("records not in chronological order")
	}
}

func TestSaveUsageSeries_UpsertReplaces(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	series := testSeries("Naresh")
	if err := db.SaveUsageSeries(series); err != nil {
		t.Fatal(err)
	}

	// Regenerate with different minutes for the same (profile, date, app).
	series[0].Minutes = 42
	if err := db.SaveUsageSeries(series); err != nil {
		t.Fatal(err)
	}

	got, err := db.GetUsageSeries("Naresh")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("upsert duplicated rows: got %d, want 3", len(got))
	}
	for _, rec := range got {
		if rec.App == "YouTube" && rec.Date.Day() == 1 && rec.Minutes != 42 {
			t.Errorf("minutes not updated: got %d, want 42", rec.Minutes)
		}
	}
}

func TestGetUsageSeries_IsolatesProfiles(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	if err := db.SaveUsageSeries(testSeries("Naresh")); err != nil {
		t.Fatal(err)
	}
	if err := db.SaveUsageSeries(testSeries("Mounika")); err != nil {
		t.Fatal(err)
	}

	got, err := db.GetUsageSeries("Mounika")
	if err != nil {
		t.Fatal(err)
	}
	for _, rec := range got {
		if rec.Profile != "Mounika" {
			t.Errorf("leaked record for profile %q", rec.Profile)
		}
	}
}

func TestRecordAlerts(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	alerts := []models.Alert{
		{
			Scope:   models.AlertDaily,
			App:     "YouTube",
			Date:    time.Date(2025, 12, 3, 0, 0, 0, 0, time.UTC),
			Minutes: 150,
			Limit:   120,
			Message: "YouTube exceeded 120 minutes on 2025-12-03 (used 150 mins)",
		},
		{
			Scope:   models.AlertWeekly,
			App:     "Instagram",
			Minutes: 700,
			Limit:   600,
			Message: "Instagram exceeded weekly limit of 600 minutes (used 700 mins)",
		},
	}

	if err := db.RecordAlerts("Naresh", alerts); err != nil {
		t.Fatalf("RecordAlerts() failed: %v", err)
	}

	entries, err := db.GetRecentAlerts("Naresh", 10)
	if err != nil {
		t.Fatalf("GetRecentAlerts() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	byScope := map[string]AlertEntry{}
	for _, e := range entries {
		byScope[e.Scope] = e
	}
	if e := byScope["Daily"]; e.Date != "2025-12-03" || e.Minutes != 150 {
		t.Errorf("unexpected daily entry: %+v", e)
	}
	if e := byScope["Weekly"]; e.Date != "" || e.Limit != 600 {
		t.Errorf("unexpected weekly entry: %+v", e)
	}
}

func TestRecordAlerts_EmptyIsNoop(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	if err := db.RecordAlerts("Naresh", nil); err != nil {
		t.Fatalf("RecordAlerts(nil) failed: %v", err)
	}

	count, err := db.CountAlerts("Naresh")
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("CountAlerts() = %d, want 0", count)
	}
}

func TestBalanceSnapshots(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	reports := []models.Report{
		{StudyMinutes: 300, DistractionMinutes: 300, TotalMinutes: 600, BalanceScore: 50},
		{StudyMinutes: 400, DistractionMinutes: 200, TotalMinutes: 600, BalanceScore: 67},
		{StudyMinutes: 450, DistractionMinutes: 150, TotalMinutes: 600, BalanceScore: 75},
	}
	for _, r := range reports {
		if err := db.InsertBalanceSnapshot("Naresh", r); err != nil {
			t.Fatalf("InsertBalanceSnapshot() failed: %v", err)
		}
	}

	scores, err := db.GetBalanceHistory("Naresh", 2)
	if err != nil {
		t.Fatalf("GetBalanceHistory() failed: %v", err)
	}
	// Limited to the two most recent, returned oldest first.
	if len(scores) != 2 || scores[0] != 67 || scores[1] != 75 {
		t.Errorf("GetBalanceHistory() = %v, want [67 75]", scores)
	}
}
