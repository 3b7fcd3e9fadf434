package models

// DefaultApps returns the tracked app catalog with its fixed categories
// and simulation baselines (mean, spread) in minutes per day.
func DefaultApps() []App {
	return []App{
		{Name: "YouTube", Category: CategoryNonEducational, BaselineMean: 80, BaselineSpread: 30},
		{Name: "Google Classroom", Category: CategoryEducational, BaselineMean: 70, BaselineSpread: 25},
		{Name: "WhatsApp", Category: CategoryNonEducational, BaselineMean: 60, BaselineSpread: 20},
		{Name: "Khan Academy", Category: CategoryEducational, BaselineMean: 65, BaselineSpread: 25},
		{Name: "Instagram", Category: CategoryNonEducational, BaselineMean: 75, BaselineSpread: 30},
		{Name: "MS Teams", Category: CategoryEducational, BaselineMean: 60, BaselineSpread: 20},
	}
}

// AppNames returns the catalog names in catalog order.
func AppNames(apps []App) []string {
	names := make([]string, len(apps))
	for i, a := range apps {
		names[i] = a.Name
	}
	return names
}

// CategoryOf looks up an app's fixed category in the catalog. Unknown
// apps are treated as Non-Educational.
func CategoryOf(apps []App, name string) Category {
	for _, a := range apps {
		if a.Name == name {
			return a.Category
		}
	}
	return CategoryNonEducational
}

// SubstitutionFor maps a Non-Educational app to its suggested
// educational replacement.
func SubstitutionFor(app string) string {
	switch app {
	case "Instagram", "YouTube", "WhatsApp":
		return "Khan Academy"
	default:
		return "Google Classroom"
	}
}

// Threshold slider bounds, mirrored from the dashboard controls.
const (
	MinDailyLimit  = 60
	MaxDailyLimit  = 240
	DailyLimitStep = 10

	MinWeeklyLimit  = 300
	MaxWeeklyLimit  = 1200
	WeeklyLimitStep = 50
)

// Limits holds the alert thresholds in minutes.
type Limits struct {
	Daily  int
	Weekly int
}

// Validate rejects non-positive thresholds at the boundary.
func (l Limits) Validate() error {
	if l.Daily <= 0 {
		return &InputError{Field: "limits.daily", Reason: "daily limit must be positive"}
	}
	if l.Weekly <= 0 {
		return &InputError{Field: "limits.weekly", Reason: "weekly limit must be positive"}
	}
	return nil
}

// ClampToRange snaps limits into the dashboard slider ranges.
func (l Limits) ClampToRange() Limits {
	out := l
	if out.Daily < MinDailyLimit {
		out.Daily = MinDailyLimit
	}
	if out.Daily > MaxDailyLimit {
		out.Daily = MaxDailyLimit
	}
	if out.Weekly < MinWeeklyLimit {
		out.Weekly = MinWeeklyLimit
	}
	if out.Weekly > MaxWeeklyLimit {
		out.Weekly = MaxWeeklyLimit
	}
	return out
}
