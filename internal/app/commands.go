package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avenka-dev/screenbalance-tui/internal/models"
	"github.com/avenka-dev/screenbalance-tui/internal/services"
)

const (
	// DefaultTickInterval is the default interval between ticks.
	DefaultTickInterval = 2 * time.Second

	// DefaultNotificationDuration is the default duration for notifications.
	DefaultNotificationDuration = 5 * time.Second

	// QuickNotificationDuration is for brief notifications.
	QuickNotificationDuration = 3 * time.Second

	// LongNotificationDuration is for important notifications.
	LongNotificationDuration = 10 * time.Second
)

// tickCmd returns a command that sends a TickMsg after the specified interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// defaultTickCmd returns a command that sends a TickMsg after the default interval.
func defaultTickCmd() tea.Cmd {
	return tickCmd(DefaultTickInterval)
}

// loadSnapshotCmd returns a command that reads the latest pipeline snapshot.
func loadSnapshotCmd(mgr *services.Manager) tea.Cmd {
	return func() tea.Msg {
		return SnapshotLoadedMsg{Snapshot: mgr.GetSnapshot()}
	}
}

// loadProfilesCmd returns a command that reads the roster.
func loadProfilesCmd(mgr *services.Manager) tea.Cmd {
	return func() tea.Msg {
		return ProfilesLoadedMsg{
			Profiles:      mgr.Profiles().GetProfiles(),
			ActiveProfile: mgr.Profiles().GetActiveProfile(),
		}
	}
}

// refreshCmd returns a command that reruns the pipeline.
func refreshCmd(mgr *services.Manager) tea.Cmd {
	return func() tea.Msg {
		if err := mgr.Refresh(); err != nil {
			return ErrorMsg{Error: err, Context: "refresh"}
		}
		return SnapshotLoadedMsg{Snapshot: mgr.GetSnapshot()}
	}
}

// switchProfileCmd returns a command that switches the active profile.
func switchProfileCmd(mgr *services.Manager, name string) tea.Cmd {
	return func() tea.Msg {
		err := mgr.SetActiveProfile(name)
		return SwitchProfileResultMsg{
			Name:    name,
			Success: err == nil,
			Error:   err,
		}
	}
}

// adjustDailyLimitCmd shifts the daily threshold by delta minutes.
func adjustDailyLimitCmd(mgr *services.Manager, delta int) tea.Cmd {
	return func() tea.Msg {
		err := mgr.AdjustDailyLimit(delta)
		return LimitAdjustedMsg{Scope: "daily", Error: err}
	}
}

// adjustWeeklyLimitCmd shifts the weekly threshold by delta minutes.
func adjustWeeklyLimitCmd(mgr *services.Manager, delta int) tea.Cmd {
	return func() tea.Msg {
		err := mgr.AdjustWeeklyLimit(delta)
		return LimitAdjustedMsg{Scope: "weekly", Error: err}
	}
}

// setFilterCmd applies a new usage filter.
func setFilterCmd(mgr *services.Manager, filter models.Filter) tea.Cmd {
	return func() tea.Msg {
		return FilterAppliedMsg{Error: mgr.SetFilter(filter)}
	}
}

// setForecastAppCmd switches the app projected on the forecast tab.
func setForecastAppCmd(mgr *services.Manager, appName string) tea.Cmd {
	return func() tea.Msg {
		err := mgr.SetForecastApp(appName)
		return ForecastAppChangedMsg{App: appName, Error: err}
	}
}

// subscribeToServicesCmd returns a command that subscribes to service events.
func subscribeToServicesCmd(mgr *services.Manager) tea.Cmd {
	ch, _ := mgr.Subscribe()
	return func() tea.Msg {
		return SubscriptionEventMsg{Channel: ch}
	}
}

// waitForServiceEventCmd returns a command that waits for the next service event.
func waitForServiceEventCmd(ch <-chan services.ServiceEvent) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return nil
		}
		return ServiceEventMsg{Event: event}
	}
}

// clearNotificationCmd returns a command that removes a notification after a delay.
func clearNotificationCmd(id string, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(_ time.Time) tea.Msg {
		return RemoveNotificationMsg{ID: id}
	})
}

// notifySuccessCmd returns a command that adds a success notification.
func notifySuccessCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationSuccess,
			Message:  message,
			Duration: DefaultNotificationDuration,
		}
	}
}

// notifyErrorCmd returns a command that adds an error notification.
func notifyErrorCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationError,
			Message:  message,
			Duration: LongNotificationDuration,
		}
	}
}

// notifyWarningCmd returns a command that adds a warning notification.
func notifyWarningCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationWarning,
			Message:  message,
			Duration: DefaultNotificationDuration,
		}
	}
}

// notifyInfoCmd returns a command that adds an info notification.
func notifyInfoCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationInfo,
			Message:  message,
			Duration: QuickNotificationDuration,
		}
	}
}

// Commands provides a public interface to the command functions.
type Commands struct {
	manager *services.Manager
}

// NewCommands creates a new Commands instance.
func NewCommands(mgr *services.Manager) *Commands {
	return &Commands{manager: mgr}
}

// Tick returns a tick command with the specified interval.
func (c *Commands) Tick(interval time.Duration) tea.Cmd {
	return tickCmd(interval)
}

// DefaultTick returns a tick command with the default interval.
func (c *Commands) DefaultTick() tea.Cmd {
	return defaultTickCmd()
}

// ClearNotification returns a command that removes a notification after a delay.
func (c *Commands) ClearNotification(id string, delay time.Duration) tea.Cmd {
	return clearNotificationCmd(id, delay)
}

// LoadSnapshot returns a command that reads the latest snapshot.
func (c *Commands) LoadSnapshot() tea.Cmd {
	return loadSnapshotCmd(c.manager)
}

// LoadProfiles returns a command that reads the roster.
func (c *Commands) LoadProfiles() tea.Cmd {
	return loadProfilesCmd(c.manager)
}

// Refresh returns a command that reruns the pipeline.
func (c *Commands) Refresh() tea.Cmd {
	return refreshCmd(c.manager)
}

// SwitchProfile returns a command that switches the active profile.
func (c *Commands) SwitchProfile(name string) tea.Cmd {
	return switchProfileCmd(c.manager, name)
}

// AdjustDailyLimit returns a command that shifts the daily threshold.
func (c *Commands) AdjustDailyLimit(delta int) tea.Cmd {
	return adjustDailyLimitCmd(c.manager, delta)
}

// AdjustWeeklyLimit returns a command that shifts the weekly threshold.
func (c *Commands) AdjustWeeklyLimit(delta int) tea.Cmd {
	return adjustWeeklyLimitCmd(c.manager, delta)
}

// SetFilter returns a command that applies a new usage filter.
func (c *Commands) SetFilter(filter models.Filter) tea.Cmd {
	return setFilterCmd(c.manager, filter)
}

// SetForecastApp returns a command that switches the projected app.
func (c *Commands) SetForecastApp(appName string) tea.Cmd {
	return setForecastAppCmd(c.manager, appName)
}

// NotifySuccess returns a command that adds a success notification.
func (c *Commands) NotifySuccess(message string) tea.Cmd {
	return notifySuccessCmd(message)
}

// NotifyError returns a command that adds an error notification.
func (c *Commands) NotifyError(message string) tea.Cmd {
	return notifyErrorCmd(message)
}

// NotifyWarning returns a command that adds a warning notification.
func (c *Commands) NotifyWarning(message string) tea.Cmd {
	return notifyWarningCmd(message)
}

// NotifyInfo returns a command that adds an info notification.
func (c *Commands) NotifyInfo(message string) tea.Cmd {
	return notifyInfoCmd(message)
}
