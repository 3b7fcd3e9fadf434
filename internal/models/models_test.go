package models

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleSeries() UsageSeries {
	return UsageSeries{
		{Profile: "Naresh", Date: date(2025, 12, 1), App: "YouTube", Category: CategoryNonEducational, Minutes: 90},
		{Profile: "Naresh", Date: date(2025, 12, 2), App: "YouTube", Category: CategoryNonEducational, Minutes: 60},
		{Profile: "Naresh", Date: date(2025, 12, 1), App: "Khan Academy", Category: CategoryEducational, Minutes: 45},
		{Profile: "Naresh", Date: date(2025, 12, 2), App: "Khan Academy", Category: CategoryEducational, Minutes: 70},
	}
}

func TestWeekDates(t *testing.T) {
	dates := WeekDates(date(2025, 12, 1))
	if len(dates) != WeekDays {
		t.Fatalf("expected %d dates, got %d", WeekDays, len(dates))
	}
	for i, d := range dates {
		want := date(2025, 12, 1+i)
		if !d.Equal(want) {
			t.Errorf("dates[%d] = %v, want %v", i, d, want)
		}
	}
}

func TestFilterValidate(t *testing.T) {
	f := Filter{}
	err := f.Validate()
	if err == nil {
		t.Fatal("expected error for empty app subset")
	}
	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected *InputError, got %T", err)
	}

	f = Filter{Apps: []string{"YouTube"}}
	if err := f.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestFilterApply_AllDays(t *testing.T) {
	series := sampleSeries()
	f := Filter{Apps: []string{"YouTube"}}

	view := f.Apply(series)
	if len(view) != 2 {
		t.Fatalf("expected 2 records, got %d", len(view))
	}
	for _, r := range view {
		if r.App != "YouTube" {
			t.Errorf("unexpected app %q in filtered view", r.App)
		}
	}
	// Filtering must not mutate the underlying series.
	if len(series) != 4 {
		t.Errorf("series length changed to %d", len(series))
	}
}

func TestFilterApply_SingleDay(t *testing.T) {
	series := sampleSeries()
	day := date(2025, 12, 2)
	f := Filter{Date: &day, Apps: []string{"YouTube", "Khan Academy"}}

	view := f.Apply(series)
	if len(view) != 2 {
		t.Fatalf("expected 2 records, got %d", len(view))
	}
	for _, r := range view {
		if !r.Date.Equal(day) {
			t.Errorf("record date %v outside selected day", r.Date)
		}
	}
}

func TestAppRecordsChronological(t *testing.T) {
	series := UsageSeries{
		{Date: date(2025, 12, 3), App: "YouTube", Minutes: 30},
		{Date: date(2025, 12, 1), App: "YouTube", Minutes: 50},
		{Date: date(2025, 12, 2), App: "YouTube", Minutes: 40},
	}
	records := series.AppRecords("YouTube")
	for i := 1; i < len(records); i++ {
		if !records[i-1].Date.Before(records[i].Date) {
			t.Errorf("records not chronological at %d: %v >= %v", i, records[i-1].Date, records[i].Date)
		}
	}
}

func TestCategoryOf(t *testing.T) {
	apps := DefaultApps()
	tests := []struct {
		app  string
		want Category
	}{
		{"YouTube", CategoryNonEducational},
		{"Khan Academy", CategoryEducational},
		{"Google Classroom", CategoryEducational},
		{"MS Teams", CategoryEducational},
		{"Instagram", CategoryNonEducational},
		{"WhatsApp", CategoryNonEducational},
		{"SomethingElse", CategoryNonEducational},
	}
	for _, tt := range tests {
		if got := CategoryOf(apps, tt.app); got != tt.want {
			t.Errorf("CategoryOf(%q) = %v, want %v", tt.app, got, tt.want)
		}
	}
}

func TestSubstitutionFor(t *testing.T) {
	for _, app := range []string{"Instagram", "YouTube", "WhatsApp"} {
		if got := SubstitutionFor(app); got != "Khan Academy" {
			t.Errorf("SubstitutionFor(%q) = %q, want Khan Academy", app, got)
		}
	}
	if got := SubstitutionFor("TikTok"); got != "Google Classroom" {
		t.Errorf("SubstitutionFor(TikTok) = %q, want Google Classroom", got)
	}
}

func TestLimitsValidate(t *testing.T) {
	tests := []struct {
		name    string
		limits  Limits
		wantErr bool
	}{
		{"valid", Limits{Daily: 120, Weekly: 600}, false},
		{"zero daily", Limits{Daily: 0, Weekly: 600}, true},
		{"negative weekly", Limits{Daily: 120, Weekly: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.limits.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLimitsClampToRange(t *testing.T) {
	l := Limits{Daily: 10, Weekly: 5000}.ClampToRange()
	if l.Daily != MinDailyLimit {
		t.Errorf("Daily = %d, want %d", l.Daily, MinDailyLimit)
	}
	if l.Weekly != MaxWeeklyLimit {
		t.Errorf("Weekly = %d, want %d", l.Weekly, MaxWeeklyLimit)
	}
}

func TestAlertScopeString(t *testing.T) {
	if AlertDaily.String() != "Daily" || AlertWeekly.String() != "Weekly" {
		t.Error("unexpected alert scope names")
	}
	if AlertScope(99).String() != "Unknown" {
		t.Error("expected Unknown for out-of-range scope")
	}
}

func TestForecastOverLimit(t *testing.T) {
	f := &Forecast{AvgPredicted: 130}
	if !f.OverLimit(120) {
		t.Error("expected forecast over limit")
	}
	if f.OverLimit(130) {
		t.Error("comparison must be strict")
	}
}
