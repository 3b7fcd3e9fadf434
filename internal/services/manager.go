// Package services provides service orchestration for the TUI.
package services

import (
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/avenka-dev/screenbalance-tui/internal/config"
	"github.com/avenka-dev/screenbalance-tui/internal/db"
	"github.com/avenka-dev/screenbalance-tui/internal/logger"
	"github.com/avenka-dev/screenbalance-tui/internal/models"
	"github.com/avenka-dev/screenbalance-tui/internal/services/advice"
	"github.com/avenka-dev/screenbalance-tui/internal/services/analyze"
	"github.com/avenka-dev/screenbalance-tui/internal/services/forecast"
	"github.com/avenka-dev/screenbalance-tui/internal/services/profiles"
	"github.com/avenka-dev/screenbalance-tui/internal/services/simulate"
)

// Snapshot is one complete pass of the analytics pipeline for the
// active profile under the current filter and limits. Snapshots are
// immutable; every input change produces a fresh one.
type Snapshot struct {
	Profile string
	Filter  models.Filter
	Limits  models.Limits

	// Series is the full generated week; Filtered is the view the
	// aggregate and alert figures were computed over.
	Series   models.UsageSeries
	Filtered models.UsageSeries

	Report models.Report
	PerApp map[string]int
	Alerts []models.Alert

	// Forecast is the projection for the selected forecast app, nil
	// when the app had insufficient history (ForecastErr then says why).
	Forecast    *models.Forecast
	ForecastErr error

	Recommendations []models.Recommendation
}

type (
	// ProfilesChangedEvent is emitted when the roster or active profile changes.
	ProfilesChangedEvent struct {
		Profiles      []profiles.Profile
		ActiveProfile string
	}

	// AnalysisUpdatedEvent is emitted after each pipeline run.
	AnalysisUpdatedEvent struct {
		Snapshot *Snapshot
	}

	// ErrorEvent is emitted when an error occurs in any service.
	ErrorEvent struct {
		Service string
		Error   error
	}
)

// ServiceEvent is the interface implemented by all service events.
type ServiceEvent interface {
	isServiceEvent()
}

func (ProfilesChangedEvent) isServiceEvent() {}
func (AnalysisUpdatedEvent) isServiceEvent() {}
func (ErrorEvent) isServiceEvent()           {}

// Manager orchestrates the roster, the analytics pipeline and event routing.
type Manager struct {
	mu          sync.RWMutex
	cfg         *config.Config
	profiles    *profiles.Service
	database    *db.DB
	catalog     []models.App
	limits      models.Limits
	filter      models.Filter
	forecastApp string
	horizon     int

	snapshot    *Snapshot
	lastAlerted map[string]int

	eventChan chan ServiceEvent
	stopChan  chan struct{}

	// subMu guards subscribers separately so broadcast can run while
	// the pipeline holds mu.
	subMu       sync.RWMutex
	subscribers []chan<- ServiceEvent
}

// NewManager creates a new service manager and runs the first pipeline pass.
func NewManager(cfg *config.Config) (*Manager, error) {
	catalog := models.DefaultApps()

	m := &Manager{
		cfg:         cfg,
		catalog:     catalog,
		limits:      cfg.Limits,
		filter:      models.Filter{Apps: models.AppNames(catalog)},
		forecastApp: catalog[0].Name,
		horizon:     cfg.ForecastHorizon,
		lastAlerted: make(map[string]int),
		eventChan:   make(chan ServiceEvent, 100),
		stopChan:    make(chan struct{}),
	}

	var err error
	m.profiles, err = profiles.New(cfg.ProfilesPath)
	if err != nil {
		return nil, err
	}

	m.database, err = db.New(cfg.DatabasePath)
	if err != nil {
		_ = m.profiles.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := m.Refresh(); err != nil {
		_ = m.profiles.Close()
		_ = m.database.Close()
		return nil, err
	}

	go m.routeEvents()

	return m, nil
}

// routeEvents routes events from individual services to subscribers.
func (m *Manager) routeEvents() {
	for {
		select {
		case event := <-m.profiles.Events():
			m.handleProfileEvent(event)

		case <-m.stopChan:
			return
		}
	}
}

// handleProfileEvent converts and broadcasts roster events. Any roster
// change invalidates the snapshot, so the pipeline reruns.
func (m *Manager) handleProfileEvent(event profiles.Event) {
	switch event.Type {
	case profiles.EventProfilesLoaded, profiles.EventProfilesChanged,
		profiles.EventProfileAdded, profiles.EventProfileDeleted,
		profiles.EventActiveProfileChanged:

		m.broadcast(ProfilesChangedEvent{
			Profiles:      m.profiles.GetProfiles(),
			ActiveProfile: m.profiles.GetActiveProfile(),
		})

		if err := m.Refresh(); err != nil {
			m.broadcast(ErrorEvent{Service: "analysis", Error: err})
		}

	case profiles.EventError:
		m.broadcast(ErrorEvent{
			Service: "profiles",
			Error:   event.Error,
		})
	}
}

// Refresh runs the full pipeline for the active profile: generate,
// aggregate, evaluate alerts, forecast, recommend, then persist.
func (m *Manager) Refresh() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.refreshLocked()
}

func (m *Manager) refreshLocked() error {
	profile := m.profiles.GetActiveProfile()
	if profile == "" {
		return fmt.Errorf("no profile selected")
	}

	series := simulate.Generate(profile, m.catalog, m.cfg.WeekStart)

	filtered := m.filter.Apply(series)

	report, perApp, err := analyze.Aggregate(series, m.filter)
	if err != nil {
		return err
	}

	alerts, err := analyze.EvaluateAlerts(series, m.filter, perApp, m.limits)
	if err != nil {
		return err
	}

	fc, fcErr := forecast.Project(series, m.forecastApp, m.horizon)
	if fcErr != nil {
		logger.Debug("forecast unavailable", "app", m.forecastApp, "error", fcErr)
		fc = nil
	}

	recs := advice.Recommend(report, fc, m.filter, perApp, m.catalog, m.limits)

	snapshot := &Snapshot{
		Profile:         profile,
		Filter:          m.filter,
		Limits:          m.limits,
		Series:          series,
		Filtered:        filtered,
		Report:          report,
		PerApp:          perApp,
		Alerts:          alerts,
		Forecast:        fc,
		ForecastErr:     fcErr,
		Recommendations: recs,
	}
	m.snapshot = snapshot

	m.persist(snapshot)
	m.notifyOnAlerts(snapshot)

	m.broadcast(AnalysisUpdatedEvent{Snapshot: snapshot})
	return nil
}

// persist writes the generated week, alerts and aggregate figures to
// the history log. Persistence failures are logged, not fatal; the
// in-memory snapshot is already complete.
func (m *Manager) persist(s *Snapshot) {
	if m.database == nil {
		return
	}
	if err := m.database.SaveUsageSeries(s.Series); err != nil {
		logger.Error("failed to persist usage series", "error", err)
	}
	if err := m.database.RecordAlerts(s.Profile, s.Alerts); err != nil {
		logger.Error("failed to persist alerts", "error", err)
	}
	if err := m.database.InsertBalanceSnapshot(s.Profile, s.Report); err != nil {
		logger.Error("failed to persist balance snapshot", "error", err)
	}
}

// notifyOnAlerts sends a desktop notification when a profile goes from
// no violations to at least one. Repeated runs with violations stay quiet.
func (m *Manager) notifyOnAlerts(s *Snapshot) {
	previous := m.lastAlerted[s.Profile]
	m.lastAlerted[s.Profile] = len(s.Alerts)

	if previous == 0 && len(s.Alerts) > 0 {
		title := fmt.Sprintf("Screen time alert: %s", s.Profile)
		body := s.Alerts[0].Message
		if len(s.Alerts) > 1 {
			body = fmt.Sprintf("%s (and %d more)", body, len(s.Alerts)-1)
		}
		_ = beeep.Notify(title, body, "")
	}
}

// GetSnapshot returns the latest pipeline snapshot.
func (m *Manager) GetSnapshot() *Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshot
}

// GetLimits returns the active alert thresholds.
func (m *Manager) GetLimits() models.Limits {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.limits
}

// SetFilter replaces the active filter and reruns the pipeline.
func (m *Manager) SetFilter(filter models.Filter) error {
	if err := filter.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.filter = filter
	return m.refreshLocked()
}

// GetFilter returns the active filter.
func (m *Manager) GetFilter() models.Filter {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.filter
}

// SetForecastApp switches the app on the forecast tab and reruns the pipeline.
func (m *Manager) SetForecastApp(app string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.forecastApp = app
	return m.refreshLocked()
}

// GetForecastApp returns the app currently projected on the forecast tab.
func (m *Manager) GetForecastApp() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.forecastApp
}

// AdjustDailyLimit shifts the daily threshold by delta minutes, clamped
// to the permitted range, and reruns the pipeline.
func (m *Manager) AdjustDailyLimit(delta int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.limits.Daily += delta
	m.limits = m.limits.ClampToRange()
	return m.refreshLocked()
}

// AdjustWeeklyLimit shifts the weekly threshold by delta minutes,
// clamped to the permitted range, and reruns the pipeline.
func (m *Manager) AdjustWeeklyLimit(delta int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.limits.Weekly += delta
	m.limits = m.limits.ClampToRange()
	return m.refreshLocked()
}

// SetActiveProfile switches the active profile. The roster event
// triggers the pipeline rerun.
func (m *Manager) SetActiveProfile(name string) error {
	return m.profiles.SetActiveProfile(name)
}

// Catalog returns the tracked app catalog.
func (m *Manager) Catalog() []models.App {
	return m.catalog
}

// broadcast sends an event to all subscribers.
func (m *Manager) broadcast(event ServiceEvent) {
	// Send to main event channel
	select {
	case m.eventChan <- event:
	default:
	}

	// Send to subscribers
	m.subMu.RLock()
	defer m.subMu.RUnlock()

	for _, sub := range m.subscribers {
		select {
		case sub <- event:
		default:
			// Subscriber channel full, skip
		}
	}
}

// Subscribe creates a channel for receiving service events.
// Returns a tea.Cmd that can be used in Bubble Tea's Init or Update.
func (m *Manager) Subscribe() (chan ServiceEvent, tea.Cmd) {
	ch := make(chan ServiceEvent, 50)

	m.subMu.Lock()
	m.subscribers = append(m.subscribers, ch)
	m.subMu.Unlock()

	return ch, waitForEvent(ch)
}

// waitForEvent returns a tea.Cmd that waits for the next event.
func waitForEvent(ch <-chan ServiceEvent) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

// WaitForEvent returns a tea.Cmd for the next event on a channel.
func WaitForEvent(ch <-chan ServiceEvent) tea.Cmd {
	return waitForEvent(ch)
}

// Unsubscribe removes a subscriber channel.
func (m *Manager) Unsubscribe(ch chan ServiceEvent) {
	m.subMu.Lock()
	defer m.subMu.Unlock()

	for i, sub := range m.subscribers {
		if sub == ch {
			m.subscribers = append(m.subscribers[:i], m.subscribers[i+1:]...)
			close(ch)
			break
		}
	}
}

// Profiles returns the roster service.
func (m *Manager) Profiles() *profiles.Service {
	return m.profiles
}

// Database returns the database instance for direct access.
func (m *Manager) Database() *db.DB {
	return m.database
}

// Close closes the manager and all its services.
func (m *Manager) Close() error {
	close(m.stopChan)

	m.subMu.Lock()
	for _, sub := range m.subscribers {
		close(sub)
	}
	m.subscribers = nil
	m.subMu.Unlock()

	var errs []error

	if err := m.profiles.Close(); err != nil {
		errs = append(errs, err)
	}

	if m.database != nil {
		if err := m.database.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
