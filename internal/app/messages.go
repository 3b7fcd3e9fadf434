package app

import (
	"time"

	"github.com/avenka-dev/screenbalance-tui/internal/services"
	"github.com/avenka-dev/screenbalance-tui/internal/services/profiles"
)

// TickMsg is sent periodically to trigger state refresh.
type TickMsg struct {
	Time time.Time
}

// StartLoadingMsg signals that a resource is starting to load.
type StartLoadingMsg struct {
	Resource string
}

// StopLoadingMsg signals that a resource has finished loading.
type StopLoadingMsg struct {
	Resource string
}

// SnapshotLoadedMsg carries the latest pipeline snapshot.
type SnapshotLoadedMsg struct {
	Snapshot *services.Snapshot
}

// ProfilesLoadedMsg carries the roster and active profile name.
type ProfilesLoadedMsg struct {
	Profiles      []profiles.Profile
	ActiveProfile string
}

// SwitchProfileResultMsg contains the result of a profile switch.
type SwitchProfileResultMsg struct {
	Name    string
	Success bool
	Error   error
}

// LimitAdjustedMsg contains the result of a threshold adjustment.
type LimitAdjustedMsg struct {
	Scope string // "daily" or "weekly"
	Error error
}

// FilterAppliedMsg contains the result of a filter change.
type FilterAppliedMsg struct {
	Error error
}

// ForecastAppChangedMsg contains the result of a forecast app switch.
type ForecastAppChangedMsg struct {
	App   string
	Error error
}

// RefreshMsg requests a rerun of the analytics pipeline.
type RefreshMsg struct{}

// AddNotificationMsg requests adding a new notification.
type AddNotificationMsg struct {
	Type     NotificationType
	Message  string
	Duration time.Duration
}

// RemoveNotificationMsg requests removal of a notification.
type RemoveNotificationMsg struct {
	ID string
}

// ClearExpiredNotificationsMsg triggers clearing of expired notifications.
type ClearExpiredNotificationsMsg struct{}

// ServiceEventMsg wraps a service event from the service manager.
type ServiceEventMsg struct {
	Event services.ServiceEvent
}

// SubscriptionEventMsg is the callback wrapper for service subscription.
type SubscriptionEventMsg struct {
	Channel chan services.ServiceEvent
}

// ErrorMsg represents a general error.
type ErrorMsg struct {
	Error   error
	Context string
}

// TabSwitchMsg requests switching to a specific tab.
type TabSwitchMsg struct {
	Tab TabID
}

// ToggleHelpMsg toggles the help display.
type ToggleHelpMsg struct{}
