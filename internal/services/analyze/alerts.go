package analyze

import (
	"fmt"

	"github.com/avenka-dev/screenbalance-tui/internal/models"
)

// EvaluateAlerts compares the filtered window against the configured
// thresholds and returns a fresh alert list. An empty list means all
// clear. Comparisons are strict: a total equal to a limit never fires.
//
// Daily alerts only run when the filter selects a single day. Weekly
// alerts always run against perAppTotals, which follow the active
// filter window; with a single-day filter that means one day's total is
// held against the weekly limit. That quirk is intentional and kept.
func EvaluateAlerts(
	series models.UsageSeries,
	filter models.Filter,
	perAppTotals map[string]int,
	limits models.Limits,
) ([]models.Alert, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	if err := limits.Validate(); err != nil {
		return nil, err
	}

	alerts := make([]models.Alert, 0)

	if !filter.AllDays() {
		alerts = append(alerts, dailyAlerts(series, filter, limits.Daily)...)
	}
	alerts = append(alerts, weeklyAlerts(filter, perAppTotals, limits.Weekly)...)

	return alerts, nil
}

// dailyAlerts checks each (date, app) total in the single-day view.
func dailyAlerts(series models.UsageSeries, filter models.Filter, dailyLimit int) []models.Alert {
	totals := make(map[string]int, len(filter.Apps))
	for _, r := range filter.Apply(series) {
		totals[r.App] += r.Minutes
	}

	var alerts []models.Alert
	for _, app := range filter.Apps {
		minutes := totals[app]
		if minutes > dailyLimit {
			alerts = append(alerts, models.Alert{
				Scope:   models.AlertDaily,
				App:     app,
				Date:    *filter.Date,
				Minutes: minutes,
				Limit:   dailyLimit,
				Message: fmt.Sprintf("%s exceeded %d minutes on %s (used %d mins)",
					app, dailyLimit, filter.Date.Format("2006-01-02"), minutes),
			})
		}
	}
	return alerts
}

// weeklyAlerts checks each app's window total, iterating in filter
// order for reproducible output.
func weeklyAlerts(filter models.Filter, perAppTotals map[string]int, weeklyLimit int) []models.Alert {
	var alerts []models.Alert
	for _, app := range filter.Apps {
		minutes, ok := perAppTotals[app]
		if !ok {
			continue
		}
		if minutes > weeklyLimit {
			alerts = append(alerts, models.Alert{
				Scope:   models.AlertWeekly,
				App:     app,
				Minutes: minutes,
				Limit:   weeklyLimit,
				Message: fmt.Sprintf("%s exceeded weekly limit of %d minutes (used %d mins)",
					app, weeklyLimit, minutes),
			})
		}
	}
	return alerts
}
