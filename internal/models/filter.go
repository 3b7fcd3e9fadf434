package models

import "time"

// Filter selects a read-only view of a usage series: an optional single
// day and a non-empty app subset. Applying a filter never mutates or
// invents records.
type Filter struct {
	// Date restricts the view to a single calendar day when non-nil;
	// nil keeps all seven days.
	Date *time.Time
	// Apps is the selected app subset, in display order.
	Apps []string
}

// AllDays reports whether the filter keeps the full week.
func (f Filter) AllDays() bool {
	return f.Date == nil
}

// Validate rejects a degenerate filter before it reaches the pipeline.
func (f Filter) Validate() error {
	if len(f.Apps) == 0 {
		return &InputError{Field: "filter.apps", Reason: "app subset must not be empty"}
	}
	return nil
}

// Includes reports whether a record passes the filter.
func (f Filter) Includes(r UsageRecord) bool {
	if f.Date != nil && !sameDay(*f.Date, r.Date) {
		return false
	}
	for _, app := range f.Apps {
		if r.App == app {
			return true
		}
	}
	return false
}

// Apply returns the filtered view as a fresh series.
func (f Filter) Apply(s UsageSeries) UsageSeries {
	view := make(UsageSeries, 0, len(s))
	for _, r := range s {
		if f.Includes(r) {
			view = append(view, r)
		}
	}
	return view
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
