// Package forecast fits a linear trend to one app's usage history and
// projects it forward. The fit is closed-form ordinary least squares
// over the 0-based day index, so the result is fully deterministic for
// a given series.
package forecast

import (
	"fmt"

	"github.com/avenka-dev/screenbalance-tui/internal/models"
)

// DefaultHorizon is the number of days projected past the history.
const DefaultHorizon = 7

// ForecastError reports that an app has too little history to fit a
// line. A fit over fewer than two points has no defined slope; the
// caller gets this error instead of a silently degenerate projection.
type ForecastError struct {
	App    string
	Points int
}

func (e *ForecastError) Error() string {
	return fmt.Sprintf("insufficient history for %s: %d points, need at least 2", e.App, e.Points)
}

// Project fits minutes against day index for one app and predicts the
// next horizon days, attaching calendar dates that continue one day
// past the last historical date. Predicted minutes are not clamped.
func Project(series models.UsageSeries, app string, horizon int) (*models.Forecast, error) {
	if horizon <= 0 {
		horizon = DefaultHorizon
	}

	records := series.AppRecords(app)
	if len(records) < 2 {
		return nil, &ForecastError{App: app, Points: len(records)}
	}

	history := make([]models.UsagePoint, len(records))
	for i, r := range records {
		history[i] = models.UsagePoint{Date: r.Date, Minutes: r.Minutes}
	}

	slope, intercept := fitLine(records)

	lastDate := records[len(records)-1].Date
	predicted := make([]models.ForecastPoint, horizon)
	var sum float64
	for i := 0; i < horizon; i++ {
		idx := float64(len(records) + i)
		minutes := slope*idx + intercept
		predicted[i] = models.ForecastPoint{
			Date:    lastDate.AddDate(0, 0, i+1),
			Minutes: minutes,
		}
		sum += minutes
	}

	return &models.Forecast{
		App:          app,
		Category:     records[0].Category,
		History:      history,
		Predicted:    predicted,
		Slope:        slope,
		Intercept:    intercept,
		AvgPredicted: sum / float64(horizon),
	}, nil
}

// fitLine computes the least-squares slope and intercept of minutes on
// day index. Caller guarantees at least two points.
func fitLine(records []models.UsageRecord) (slope, intercept float64) {
	n := float64(len(records))
	var sumX, sumY, sumXY, sumXX float64
	for i, r := range records {
		x := float64(i)
		y := float64(r.Minutes)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n
	return slope, intercept
}
