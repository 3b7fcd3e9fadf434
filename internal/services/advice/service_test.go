package advice

import (
	"strings"
	"testing"

	"github.com/avenka-dev/screenbalance-tui/internal/models"
)

var limits = models.Limits{Daily: 120, Weekly: 600}

func kinds(recs []models.Recommendation) []models.RecommendationKind {
	out := make([]models.RecommendationKind, len(recs))
	for i, r := range recs {
		out[i] = r.Kind
	}
	return out
}

func TestStudyBlocksWhenDistracted(t *testing.T) {
	report := models.Report{StudyMinutes: 100, DistractionMinutes: 300, TotalMinutes: 400, BalanceScore: 25}
	recs := Recommend(report, nil, models.Filter{Apps: []string{}}, nil, models.DefaultApps(), limits)

	if len(recs) == 0 || recs[0].Kind != models.RecommendationStudyBlocks {
		t.Fatalf("expected study-blocks advisory first, got %v", kinds(recs))
	}
}

func TestMaintainWhenBalanced(t *testing.T) {
	report := models.Report{StudyMinutes: 300, DistractionMinutes: 200, TotalMinutes: 500, BalanceScore: 60}
	recs := Recommend(report, nil, models.Filter{Apps: []string{}}, nil, models.DefaultApps(), limits)

	if len(recs) == 0 || recs[0].Kind != models.RecommendationMaintain {
		t.Fatalf("expected maintain advisory, got %v", kinds(recs))
	}
}

func TestNoBalanceAdvisoryWhenEmpty(t *testing.T) {
	recs := Recommend(models.Report{}, nil, models.Filter{Apps: []string{}}, nil, models.DefaultApps(), limits)
	for _, r := range recs {
		if r.Kind == models.RecommendationStudyBlocks || r.Kind == models.RecommendationMaintain {
			t.Errorf("balance advisory fired on an empty window: %+v", r)
		}
	}
}

func TestSubstitutionAdvisory(t *testing.T) {
	fc := &models.Forecast{App: "YouTube", Category: models.CategoryNonEducational, AvgPredicted: 140}
	recs := Recommend(models.Report{}, fc, models.Filter{Apps: []string{}}, nil, models.DefaultApps(), limits)

	found := false
	for _, r := range recs {
		if r.Kind == models.RecommendationSubstitution {
			found = true
			if !strings.Contains(r.Message, "Khan Academy") {
				t.Errorf("YouTube substitution should name Khan Academy: %q", r.Message)
			}
		}
	}
	if !found {
		t.Fatalf("expected substitution advisory, got %v", kinds(recs))
	}
}

func TestSubstitutionFallback(t *testing.T) {
	fc := &models.Forecast{App: "TikTok", Category: models.CategoryNonEducational, AvgPredicted: 140}
	recs := Recommend(models.Report{}, fc, models.Filter{Apps: []string{}}, nil, models.DefaultApps(), limits)

	for _, r := range recs {
		if r.Kind == models.RecommendationSubstitution && !strings.Contains(r.Message, "Google Classroom") {
			t.Errorf("non-listed app should substitute Google Classroom: %q", r.Message)
		}
	}
}

func TestReinforcementAdvisory(t *testing.T) {
	// 0.8 * 120 = 96; avg of 96 qualifies (>=).
	fc := &models.Forecast{App: "Khan Academy", Category: models.CategoryEducational, AvgPredicted: 96}
	recs := Recommend(models.Report{}, fc, models.Filter{Apps: []string{}}, nil, models.DefaultApps(), limits)

	found := false
	for _, r := range recs {
		if r.Kind == models.RecommendationReinforcement {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected reinforcement advisory, got %v", kinds(recs))
	}
}

func TestPerAppNudges(t *testing.T) {
	filter := models.Filter{Apps: []string{"Instagram", "Khan Academy"}}
	perApp := map[string]int{
		"Instagram":    700, // over weekly limit
		"Khan Academy": 200, // under 300 study minutes
	}
	recs := Recommend(models.Report{}, nil, filter, perApp, models.DefaultApps(), limits)

	var nudges []models.Recommendation
	for _, r := range recs {
		if r.Kind == models.RecommendationAppNudge {
			nudges = append(nudges, r)
		}
	}
	if len(nudges) != 2 {
		t.Fatalf("expected 2 nudges, got %d: %v", len(nudges), nudges)
	}
	// Nudges follow filter order.
	if nudges[0].App != "Instagram" || nudges[1].App != "Khan Academy" {
		t.Errorf("nudges out of order: %v", nudges)
	}
	if !strings.Contains(nudges[0].Message, "daily cap") {
		t.Errorf("unexpected Instagram nudge: %q", nudges[0].Message)
	}
	if !strings.Contains(nudges[1].Message, "20-minute") {
		t.Errorf("unexpected Khan Academy nudge: %q", nudges[1].Message)
	}
}

func TestAllRulesFireTogetherInOrder(t *testing.T) {
	report := models.Report{StudyMinutes: 100, DistractionMinutes: 400, TotalMinutes: 500, BalanceScore: 20}
	fc := &models.Forecast{App: "Instagram", Category: models.CategoryNonEducational, AvgPredicted: 150}
	filter := models.Filter{Apps: []string{"Instagram", "MS Teams"}}
	perApp := map[string]int{"Instagram": 700, "MS Teams": 100}

	recs := Recommend(report, fc, filter, perApp, models.DefaultApps(), limits)

	want := []models.RecommendationKind{
		models.RecommendationStudyBlocks,
		models.RecommendationSubstitution,
		models.RecommendationAppNudge,
		models.RecommendationAppNudge,
	}
	got := kinds(recs)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("emission order %v, want %v", got, want)
		}
	}
}

func TestDeterministicOutput(t *testing.T) {
	report := models.Report{StudyMinutes: 200, DistractionMinutes: 300, TotalMinutes: 500}
	filter := models.Filter{Apps: []string{"YouTube", "WhatsApp", "Khan Academy"}}
	perApp := map[string]int{"YouTube": 650, "WhatsApp": 610, "Khan Academy": 100}

	a := Recommend(report, nil, filter, perApp, models.DefaultApps(), limits)
	b := Recommend(report, nil, filter, perApp, models.DefaultApps(), limits)

	if len(a) != len(b) {
		t.Fatal("non-deterministic length")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("recommendation %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
