// Package simulate generates reproducible synthetic usage series for a
// profile. Generation is a pure function of the profile identifier and
// the fixed app baselines: the same identifier always yields the same
// series, across runs and across machines.
package simulate

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand"
	"time"

	"github.com/avenka-dev/screenbalance-tui/internal/models"
)

// Seed folds the sha256 digest of a profile identifier into a uint64.
// sha256 keeps the mapping stable across runtimes, unlike language
// default string hashes.
func Seed(profileID string) uint64 {
	sum := sha256.Sum256([]byte(profileID))
	return binary.BigEndian.Uint64(sum[:8])
}

// Generate produces one week of per-app usage records for a profile,
// starting at weekStart. Exactly len(apps)*7 records are returned, one
// per (date, app) combination.
func Generate(profileID string, apps []models.App, weekStart time.Time) models.UsageSeries {
	rng := rand.New(rand.NewSource(int64(Seed(profileID))))

	dates := models.WeekDates(weekStart)
	series := make(models.UsageSeries, 0, len(dates)*len(apps))

	for _, day := range dates {
		for _, app := range apps {
			series = append(series, models.UsageRecord{
				Profile:  profileID,
				Date:     day,
				App:      app.Name,
				Category: app.Category,
				Minutes:  drawMinutes(rng, app),
			})
		}
	}
	return series
}

// drawMinutes samples the app's baseline normal distribution, floors at
// zero and clamps into the tracked minute range.
func drawMinutes(rng *rand.Rand, app models.App) int {
	minutes := int(rng.NormFloat64()*app.BaselineSpread + app.BaselineMean)
	if minutes < 0 {
		minutes = 0
	}
	if minutes < models.MinDailyMinutes {
		minutes = models.MinDailyMinutes
	}
	if minutes > models.MaxDailyMinutes {
		minutes = models.MaxDailyMinutes
	}
	return minutes
}
