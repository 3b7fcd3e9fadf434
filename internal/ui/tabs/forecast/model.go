// Package forecast provides the usage projection tab.
package forecast

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avenka-dev/screenbalance-tui/internal/app"
	"github.com/avenka-dev/screenbalance-tui/internal/models"
	"github.com/avenka-dev/screenbalance-tui/internal/ui/components"
)

// keyMap defines the key bindings specific to the forecast tab.
type keyMap struct {
	NextApp key.Binding
	PrevApp key.Binding
}

// defaultKeyMap returns the default key bindings for the forecast tab.
func defaultKeyMap() keyMap {
	return keyMap{
		NextApp: key.NewBinding(
			key.WithKeys("l", "n", "right"),
			key.WithHelp("l/n", "next app"),
		),
		PrevApp: key.NewBinding(
			key.WithKeys("h", "N", "left"),
			key.WithHelp("h/N", "prev app"),
		),
	}
}

// Model represents the forecast tab state.
type Model struct {
	state    *app.State
	commands *app.Commands
	catalog  []models.App
	spinner  components.LoadingSpinner
	keys     keyMap
	viewport viewport.Model
	width    int
	height   int
}

// New creates a new forecast model.
func New(state *app.State, commands *app.Commands, catalog []models.App) *Model {
	return &Model{
		state:    state,
		commands: commands,
		catalog:  catalog,
		spinner:  components.NewSpinner("Fitting projection..."),
		keys:     defaultKeyMap(),
		viewport: viewport.New(0, 0),
	}
}

// Init initializes the forecast tab.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Init()
}

// Update handles messages for the forecast tab.
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
	switch {
	case key.Matches(msg, m.keys.NextApp):
		return m.stepApp(1)
	case key.Matches(msg, m.keys.PrevApp):
		return m.stepApp(-1)
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}
}

// stepApp moves the projected app through the catalog in either
// direction.
func (m *Model) stepApp(delta int) tea.Cmd {
	if m.commands == nil || len(m.catalog) == 0 {
		return nil
	}

	current := m.currentApp()
	idx := 0
	for i, a := range m.catalog {
		if a.Name == current {
			idx = i
			break
		}
	}

	next := m.catalog[(idx+delta+len(m.catalog))%len(m.catalog)].Name
	return m.commands.SetForecastApp(next)
}

// currentApp resolves the app the visible projection belongs to,
// falling back to the catalog head before the first snapshot.
func (m *Model) currentApp() string {
	snap := m.state.GetSnapshot()
	if snap != nil && snap.Forecast != nil {
		return snap.Forecast.App
	}
	if len(m.catalog) > 0 {
		return m.catalog[0].Name
	}
	return ""
}

// SetSize sets the available size for the forecast tab.
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
	}
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.NextApp, m.keys.PrevApp},
	}
}
