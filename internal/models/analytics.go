package models

import "time"

// Report holds the aggregate figures for a filtered view. Recomputed on
// demand; never cached or persisted by the core.
type Report struct {
	StudyMinutes       int
	DistractionMinutes int
	TotalMinutes       int
	// BalanceScore is the share of tracked minutes spent on
	// Educational apps, 0-100. Zero when nothing was tracked.
	BalanceScore int
}

// AlertScope distinguishes daily from weekly threshold checks.
type AlertScope int

const (
	// AlertDaily fires when a single day's app total exceeds the daily limit.
	AlertDaily AlertScope = iota
	// AlertWeekly fires when an app's filtered-window total exceeds the
	// weekly limit. The window follows the active filter, so a
	// single-day filter compares that day's total against the weekly
	// limit as well.
	AlertWeekly
)

// String returns the display name for an alert scope.
func (s AlertScope) String() string {
	switch s {
	case AlertDaily:
		return "Daily"
	case AlertWeekly:
		return "Weekly"
	default:
		return "Unknown"
	}
}

// Alert is one threshold violation. A fresh list is produced per
// evaluation; alerts are never mutated afterwards.
type Alert struct {
	Scope   AlertScope
	App     string
	Date    time.Time // zero for weekly alerts
	Minutes int
	Limit   int
	Message string
}

// UsagePoint is one historical observation on a forecast chart.
type UsagePoint struct {
	Date    time.Time
	Minutes int
}

// ForecastPoint is one projected observation. Predicted minutes are
// not clamped and may fall outside the generated [20,180] range or
// below zero; that is the documented behavior of a linear model over a
// short series.
type ForecastPoint struct {
	Date    time.Time
	Minutes float64
}

// Forecast is the least-squares projection for one app.
type Forecast struct {
	App      string
	Category Category

	History   []UsagePoint
	Predicted []ForecastPoint

	// Slope and Intercept are the fitted line parameters over the
	// 0-based day index of History.
	Slope     float64
	Intercept float64

	// AvgPredicted is the arithmetic mean of the predicted minutes.
	AvgPredicted float64
}

// OverLimit reports whether the projected average exceeds the daily limit.
func (f *Forecast) OverLimit(dailyLimit int) bool {
	return f.AvgPredicted > float64(dailyLimit)
}

// RecommendationKind identifies which fixed rule produced an advisory.
type RecommendationKind string

const (
	RecommendationStudyBlocks   RecommendationKind = "study_blocks"
	RecommendationMaintain      RecommendationKind = "maintain"
	RecommendationSubstitution  RecommendationKind = "substitution"
	RecommendationReinforcement RecommendationKind = "reinforcement"
	RecommendationAppNudge      RecommendationKind = "app_nudge"
)

// Recommendation is one advisory produced by the rule table. App is
// empty for the balance-level advisories (rules one and two).
type Recommendation struct {
	Kind    RecommendationKind
	App     string
	Message string
}
