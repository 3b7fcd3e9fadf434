// Package analyze reduces a usage series into aggregate figures and
// threshold alerts. Every function here is a pure computation over its
// inputs; the series is treated as immutable.
package analyze

import (
	"math"

	"github.com/avenka-dev/screenbalance-tui/internal/models"
)

// Aggregate applies the filter and computes study/distraction totals,
// the balance score and per-app totals. The totals map always carries
// one entry per app in the filter subset, zero-filled for apps with no
// matching records.
func Aggregate(series models.UsageSeries, filter models.Filter) (models.Report, map[string]int, error) {
	if err := filter.Validate(); err != nil {
		return models.Report{}, nil, err
	}

	perApp := make(map[string]int, len(filter.Apps))
	for _, app := range filter.Apps {
		perApp[app] = 0
	}

	var report models.Report
	for _, r := range filter.Apply(series) {
		switch r.Category {
		case models.CategoryEducational:
			report.StudyMinutes += r.Minutes
		case models.CategoryNonEducational:
			report.DistractionMinutes += r.Minutes
		}
		perApp[r.App] += r.Minutes
	}

	report.TotalMinutes = report.StudyMinutes + report.DistractionMinutes
	report.BalanceScore = balanceScore(report.StudyMinutes, report.TotalMinutes)

	return report, perApp, nil
}

// balanceScore is round(100*study/total) with .5 rounding up, and zero
// for an empty window.
func balanceScore(study, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(study) / float64(total)))
}
