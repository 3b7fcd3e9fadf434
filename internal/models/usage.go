// Package models defines data structures and domain types.
package models

import (
	"sort"
	"time"
)

// Category is the fixed classification of an app.
type Category string

const (
	// CategoryEducational marks study apps.
	CategoryEducational Category = "Educational"
	// CategoryNonEducational marks distraction apps.
	CategoryNonEducational Category = "Non-Educational"
)

// Minutes bounds for a single generated usage record.
const (
	MinDailyMinutes = 20
	MaxDailyMinutes = 180
)

// WeekDays is the fixed length of a tracked usage window.
const WeekDays = 7

// App describes a tracked application and its simulation baseline.
type App struct {
	Name     string
	Category Category
	// Baseline parameters for the usage simulator: a normal
	// distribution with this mean and spread, in minutes per day.
	BaselineMean   float64
	BaselineSpread float64
}

// UsageRecord is one (profile, date, app) observation in minutes.
// Records are immutable once generated.
type UsageRecord struct {
	Profile  string
	Date     time.Time
	App      string
	Category Category
	Minutes  int
}

// UsageSeries is the full set of records for one profile over one week.
type UsageSeries []UsageRecord

// WeekDates returns the seven consecutive calendar days starting at
// start, normalized to midnight UTC.
func WeekDates(start time.Time) []time.Time {
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	dates := make([]time.Time, WeekDays)
	for i := range dates {
		dates[i] = day.AddDate(0, 0, i)
	}
	return dates
}

// AppRecords returns the records for one app ordered chronologically.
func (s UsageSeries) AppRecords(app string) []UsageRecord {
	var records []UsageRecord
	for _, r := range s {
		if r.App == app {
			records = append(records, r)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
	return records
}

// Dates returns the distinct record dates in chronological order.
func (s UsageSeries) Dates() []time.Time {
	seen := make(map[time.Time]bool, WeekDays)
	var dates []time.Time
	for _, r := range s {
		if !seen[r.Date] {
			seen[r.Date] = true
			dates = append(dates, r.Date)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// LastDate returns the latest record date, or the zero time for an
// empty series.
func (s UsageSeries) LastDate() time.Time {
	var last time.Time
	for _, r := range s {
		if r.Date.After(last) {
			last = r.Date
		}
	}
	return last
}
