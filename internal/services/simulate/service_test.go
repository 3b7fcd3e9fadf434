package simulate

import (
	"testing"
	"time"

	"github.com/avenka-dev/screenbalance-tui/internal/models"
)

var weekStart = time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)

func TestGenerateDeterministic(t *testing.T) {
	apps := models.DefaultApps()

	first := Generate("Naresh", apps, weekStart)
	second := Generate("Naresh", apps, weekStart)

	if len(first) != len(second) {
		t.Fatalf("series lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("record %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestGenerateDistinctProfiles(t *testing.T) {
	apps := models.DefaultApps()

	a := Generate("Naresh", apps, weekStart)
	b := Generate("Mounika", apps, weekStart)

	same := true
	for i := range a {
		if a[i].Minutes != b[i].Minutes {
			same = false
			break
		}
	}
	if same {
		t.Error("different profiles produced identical minutes, seeds are not differentiating")
	}
}

func TestGenerateShape(t *testing.T) {
	apps := models.DefaultApps()
	series := Generate("Varshitha", apps, weekStart)

	want := models.WeekDays * len(apps)
	if len(series) != want {
		t.Fatalf("expected %d records, got %d", want, len(series))
	}

	// One record per (date, app) combination.
	seen := make(map[string]bool, want)
	for _, r := range series {
		key := r.Date.Format("2006-01-02") + "/" + r.App
		if seen[key] {
			t.Errorf("duplicate record for %s", key)
		}
		seen[key] = true
	}
}

func TestGenerateBounds(t *testing.T) {
	apps := models.DefaultApps()
	for _, profile := range []string{"Naresh", "Mounika", "Varshitha", "x", ""} {
		for _, r := range Generate(profile, apps, weekStart) {
			if r.Minutes < models.MinDailyMinutes || r.Minutes > models.MaxDailyMinutes {
				t.Errorf("profile %q: minutes %d out of [%d,%d]",
					profile, r.Minutes, models.MinDailyMinutes, models.MaxDailyMinutes)
			}
		}
	}
}

func TestGenerateCategories(t *testing.T) {
	apps := models.DefaultApps()
	for _, r := range Generate("Naresh", apps, weekStart) {
		if got := models.CategoryOf(apps, r.App); got != r.Category {
			t.Errorf("record for %s carries category %v, catalog says %v", r.App, r.Category, got)
		}
	}
}

func TestSeedStable(t *testing.T) {
	// Pin the seed derivation: a silent change here would break the
	// reproducibility guarantee for existing profiles.
	if Seed("Naresh") != Seed("Naresh") {
		t.Error("seed not deterministic")
	}
	if Seed("Naresh") == Seed("Mounika") {
		t.Error("distinct profiles share a seed")
	}
}
