package info

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/lipgloss"

	"github.com/avenka-dev/screenbalance-tui/internal/ui/components"
	"github.com/avenka-dev/screenbalance-tui/internal/ui/styles"
	"github.com/avenka-dev/screenbalance-tui/internal/version"
)

// View renders the info tab.
func (m *Model) View() string {
	var sections []string

	sections = append(sections, m.renderTitle())
	sections = append(sections, m.renderConfigCard())
	sections = append(sections, m.renderCatalogCard())
	sections = append(sections, m.renderHistoryCard())
	sections = append(sections, m.renderAboutCard())

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Info")
	subtitle := styles.HelpStyle.Render("Configuration, catalog and application details")

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) renderConfigCard() string {
	cardWidth := m.cardWidth()

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Configuration"))
	rows = append(rows, "")

	if m.config != nil {
		rows = append(rows, m.renderRow("Database", m.config.DatabasePath))
		rows = append(rows, m.renderRow("Profiles File", m.config.ProfilesPath))
		rows = append(rows, m.renderRow("Week Start", m.config.WeekStart.Format("2006-01-02")))
		rows = append(rows, m.renderRow("Forecast Horizon", fmt.Sprintf("%d days", m.config.ForecastHorizon)))
	} else {
		rows = append(rows, styles.HelpStyle.Render("Configuration not loaded"))
	}

	if snap := m.state.GetSnapshot(); snap != nil {
		rows = append(rows, m.renderRow("Daily Limit", fmt.Sprintf("%d min", snap.Limits.Daily)))
		rows = append(rows, m.renderRow("Weekly Limit", fmt.Sprintf("%d min", snap.Limits.Weekly)))
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderCatalogCard() string {
	cardWidth := m.cardWidth()

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Tracked Apps"))
	rows = append(rows, "")

	header := fmt.Sprintf("  %-18s %-16s %s", "App", "Category", "Baseline")
	rows = append(rows, styles.TableHeaderStyle.Render(header))

	for _, a := range m.catalog {
		category := styles.GetCategoryStyle(string(a.Category)).Render(fmt.Sprintf("%-16s", a.Category))
		rows = append(rows, fmt.Sprintf("  %-18s %s %.0f±%.0f min",
			a.Name, category, a.BaselineMean, a.BaselineSpread))
	}

	if len(m.catalog) > 0 {
		means := make([]float64, len(m.catalog))
		names := make([]string, len(m.catalog))
		for i, a := range m.catalog {
			means[i] = a.BaselineMean
			names[i] = a.Name
		}
		rows = append(rows, "")
		rows = append(rows, components.RenderBarChart(means, names, cardWidth-6))
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderHistoryCard shows recent balance scores as a sparkline. The
// history comes from the snapshot table, so it spans restarts.
func (m *Model) renderHistoryCard() string {
	if m.database == nil {
		return ""
	}

	profile := m.state.GetActiveProfile()
	if profile == "" {
		return ""
	}

	scores, err := m.database.GetBalanceHistory(profile, 30)
	if err != nil || len(scores) == 0 {
		return ""
	}

	data := make([]float64, len(scores))
	for i, s := range scores {
		data[i] = float64(s)
	}

	cardWidth := m.cardWidth()

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Balance History"))
	rows = append(rows, "")
	rows = append(rows, "  "+components.RenderSparkline(data, cardWidth-8))
	rows = append(rows, styles.HelpStyle.Render(fmt.Sprintf("  last %d analysis runs, latest %d/100", len(scores), scores[len(scores)-1])))

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderAboutCard() string {
	cardWidth := m.cardWidth()

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("About Screen Balance TUI"))
	rows = append(rows, "")

	rows = append(rows, m.renderRow("Version", version.GetVersion()))
	rows = append(rows, m.renderRow("Commit", version.GetCommit()))
	rows = append(rows, m.renderRow("Build Date", version.GetDate()))
	rows = append(rows, m.renderRow("Go Version", runtime.Version()))
	rows = append(rows, m.renderRow("Platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)))
	rows = append(rows, "")

	profileCount := m.state.GetProfileCount()
	rows = append(rows, fmt.Sprintf("Profiles: %s", styles.InfoTextStyle.Render(fmt.Sprintf("%d", profileCount))))

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderRow(label, value string) string {
	labelStyle := lipgloss.NewStyle().
		Width(18).
		Foreground(styles.TextMuted)

	valueStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimary)

	return labelStyle.Render(label+":") + " " + valueStyle.Render(value)
}

func (m *Model) cardWidth() int {
	cardWidth := m.width - 6
	if cardWidth < 50 {
		cardWidth = 50
	}
	if cardWidth > 80 {
		cardWidth = 80
	}
	return cardWidth
}
