// Package advice maps aggregate balance and forecast results onto a
// small fixed rule table. Nothing here is learned or persisted: the
// same inputs always produce the same advisories in the same order.
package advice

import (
	"fmt"

	"github.com/avenka-dev/screenbalance-tui/internal/models"
)

// Weekly study minutes below this trigger the add-a-session nudge.
const lowStudyWeeklyMinutes = 300

// Recommend evaluates the rule table. The forecast may be nil (for
// example when its app had insufficient history); the forecast rules
// are then skipped. Rules are independent and may all fire together;
// emission order is fixed for reproducible output.
func Recommend(
	report models.Report,
	fc *models.Forecast,
	filter models.Filter,
	perAppTotals map[string]int,
	catalog []models.App,
	limits models.Limits,
) []models.Recommendation {
	recs := make([]models.Recommendation, 0, 2+len(filter.Apps))

	// Rule 1/2: overall balance.
	if report.DistractionMinutes > report.StudyMinutes {
		recs = append(recs, models.Recommendation{
			Kind:    models.RecommendationStudyBlocks,
			Message: "Distraction outweighs study time. Recommend fixed study blocks: 2x45 minutes daily.",
		})
	} else if report.TotalMinutes > 0 {
		recs = append(recs, models.Recommendation{
			Kind:    models.RecommendationMaintain,
			Message: "Good balance. Maintain consistency with a 90-minute focused study session daily.",
		})
	}

	// Rule 3/4: forecast for the selected app.
	if fc != nil {
		switch {
		case fc.Category == models.CategoryNonEducational && fc.AvgPredicted > float64(limits.Daily):
			alt := models.SubstitutionFor(fc.App)
			recs = append(recs, models.Recommendation{
				Kind: models.RecommendationSubstitution,
				App:  fc.App,
				Message: fmt.Sprintf("Replace 30 minutes of %s with %s next week to improve balance.",
					fc.App, alt),
			})
		case fc.Category == models.CategoryEducational && fc.AvgPredicted >= 0.8*float64(limits.Daily):
			recs = append(recs, models.Recommendation{
				Kind: models.RecommendationReinforcement,
				App:  fc.App,
				Message: fmt.Sprintf("%s study time looks solid. Encourage spaced repetition or practice quizzes.",
					fc.App),
			})
		}
	}

	// Rule 5: per-app nudges over the filtered subset.
	for _, app := range filter.Apps {
		minutes := perAppTotals[app]
		switch models.CategoryOf(catalog, app) {
		case models.CategoryNonEducational:
			if minutes > limits.Weekly {
				recs = append(recs, models.Recommendation{
					Kind: models.RecommendationAppNudge,
					App:  app,
					Message: fmt.Sprintf("%s: consider a daily cap of %d mins and shift 20-30 mins to %s.",
						app, limits.Daily, models.SubstitutionFor(app)),
				})
			}
		case models.CategoryEducational:
			if minutes < lowStudyWeeklyMinutes {
				recs = append(recs, models.Recommendation{
					Kind: models.RecommendationAppNudge,
					App:  app,
					Message: fmt.Sprintf("%s: try adding a 20-minute focused session after dinner for steady progress.",
						app),
				})
			}
		}
	}

	return recs
}
