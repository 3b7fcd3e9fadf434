// Package dashboard provides the usage overview tab.
package dashboard

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avenka-dev/screenbalance-tui/internal/app"
	"github.com/avenka-dev/screenbalance-tui/internal/db"
	"github.com/avenka-dev/screenbalance-tui/internal/models"
	"github.com/avenka-dev/screenbalance-tui/internal/ui/components"
)

// keyMap defines the key bindings specific to the dashboard tab.
type keyMap struct {
	NextApp     key.Binding
	PrevApp     key.Binding
	ToggleApp   key.Binding
	CycleDay    key.Binding
	ResetFilter key.Binding
}

// defaultKeyMap returns the default key bindings for the dashboard tab.
func defaultKeyMap() keyMap {
	return keyMap{
		NextApp: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "next app"),
		),
		PrevApp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "prev app"),
		),
		ToggleApp: key.NewBinding(
			key.WithKeys("a", " "),
			key.WithHelp("a/space", "toggle app"),
		),
		CycleDay: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "cycle day"),
		),
		ResetFilter: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "reset filter"),
		),
	}
}

// Model represents the dashboard tab state.
type Model struct {
	state         *app.State
	commands      *app.Commands
	database      *db.DB
	catalog       []models.App
	spinner       components.LoadingSpinner
	keys          keyMap
	viewport      viewport.Model
	width         int
	height        int
	selectedIndex int
	// dayIndex selects a single day of the tracked week, -1 for all days.
	dayIndex int
}

// New creates a new dashboard model.
func New(state *app.State, commands *app.Commands, database *db.DB, catalog []models.App) *Model {
	return &Model{
		state:    state,
		commands: commands,
		database: database,
		catalog:  catalog,
		spinner:  components.NewSpinner("Running analysis..."),
		keys:     defaultKeyMap(),
		viewport: viewport.New(0, 0),
		dayIndex: -1,
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Init()
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmds = append(cmds, m.handleKeyMsg(msg))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	appCount := len(m.catalog)

	switch {
	case key.Matches(msg, m.keys.NextApp):
		if appCount > 0 {
			m.selectedIndex = (m.selectedIndex + 1) % appCount
		}
	case key.Matches(msg, m.keys.PrevApp):
		if appCount > 0 {
			m.selectedIndex = (m.selectedIndex - 1 + appCount) % appCount
		}
	case key.Matches(msg, m.keys.ToggleApp):
		return m.toggleSelectedApp()
	case key.Matches(msg, m.keys.CycleDay):
		return m.cycleDay()
	case key.Matches(msg, m.keys.ResetFilter):
		m.dayIndex = -1
		if m.commands != nil {
			return m.commands.SetFilter(models.Filter{Apps: models.AppNames(m.catalog)})
		}
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}
	return nil
}

// toggleSelectedApp flips the selected app in or out of the filter
// subset. Removing the last app is rejected by the filter, so the
// toggle is skipped in that case.
func (m *Model) toggleSelectedApp() tea.Cmd {
	snap := m.state.GetSnapshot()
	if snap == nil || m.commands == nil || m.selectedIndex >= len(m.catalog) {
		return nil
	}

	name := m.catalog[m.selectedIndex].Name
	included := make(map[string]bool, len(snap.Filter.Apps))
	for _, a := range snap.Filter.Apps {
		included[a] = true
	}

	if included[name] && len(snap.Filter.Apps) == 1 {
		return nil
	}
	included[name] = !included[name]

	// Rebuild in catalog order so display order stays stable.
	var apps []string
	for _, a := range m.catalog {
		if included[a.Name] {
			apps = append(apps, a.Name)
		}
	}

	filter := snap.Filter
	filter.Apps = apps
	return m.commands.SetFilter(filter)
}

// cycleDay steps the day filter through the tracked week and back to
// the all-days view.
func (m *Model) cycleDay() tea.Cmd {
	snap := m.state.GetSnapshot()
	if snap == nil || m.commands == nil {
		return nil
	}

	dates := snap.Series.Dates()
	if len(dates) == 0 {
		return nil
	}

	m.dayIndex++
	if m.dayIndex >= len(dates) {
		m.dayIndex = -1
	}

	filter := snap.Filter
	if m.dayIndex < 0 {
		filter.Date = nil
	} else {
		day := dates[m.dayIndex]
		filter.Date = &day
	}
	return m.commands.SetFilter(filter)
}

// SetSize sets the available size for the dashboard.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{
		m.keys.NextApp,
		m.keys.PrevApp,
		m.keys.ToggleApp,
		m.keys.CycleDay,
		m.keys.ResetFilter,
	}
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.NextApp, m.keys.PrevApp},
		{m.keys.ToggleApp, m.keys.CycleDay},
		{m.keys.ResetFilter},
	}
}
