package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/avenka-dev/screenbalance-tui/internal/models"
	"github.com/avenka-dev/screenbalance-tui/internal/services"
	"github.com/avenka-dev/screenbalance-tui/internal/ui/components"
	"github.com/avenka-dev/screenbalance-tui/internal/ui/styles"
)

// View renders the dashboard tab.
func (m *Model) View() string {
	snap := m.state.GetSnapshot()
	if snap == nil {
		return styles.CenterBoth(m.spinner.ViewWithLabel(), m.width, m.height)
	}

	var sections []string

	sections = append(sections, m.renderTitle(snap.Profile))
	sections = append(sections, m.renderFilterLine(snap.Filter))
	sections = append(sections, m.renderMetricsCard(snap.Report))
	sections = append(sections, m.renderAppsCard(snap))
	sections = append(sections, m.renderPatternCard(snap))
	sections = append(sections, m.renderAlertsCard(snap.Profile, snap.Alerts))
	sections = append(sections, m.renderRecordsCard(snap.Filtered))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderTitle(profile string) string {
	title := styles.TitleStyle.Render("Screen Balance")
	subtitle := styles.HelpStyle.Render(fmt.Sprintf("Usage overview for %s", profile))

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) renderFilterLine(filter models.Filter) string {
	day := "all days"
	if filter.Date != nil {
		day = filter.Date.Format("Mon Jan 2")
	}
	line := fmt.Sprintf("Window: %s   Apps: %d of %d", day, len(filter.Apps), len(m.catalog))
	return styles.HelpStyle.Render(line) + "\n"
}

func (m *Model) renderMetricsCard(report models.Report) string {
	cardWidth := m.cardWidth()

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Balance"))
	rows = append(rows, "")

	study := styles.CategoryStudyStyle.Render(fmt.Sprintf("%d min", report.StudyMinutes))
	distraction := styles.CategoryDistractionStyle.Render(fmt.Sprintf("%d min", report.DistractionMinutes))
	rows = append(rows, fmt.Sprintf("  Study        %s", study))
	rows = append(rows, fmt.Sprintf("  Distraction  %s", distraction))
	rows = append(rows, fmt.Sprintf("  Total        %d min", report.TotalMinutes))
	rows = append(rows, "")

	rows = append(rows, "  "+components.SimpleBalanceBar(report.BalanceScore, "Balance", cardWidth-6))

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderAppsCard lists the catalog with per-app usage gauges. The gauge
// limit follows the window: daily for a single-day view, weekly for the
// full week.
func (m *Model) renderAppsCard(snap *services.Snapshot) string {
	cardWidth := m.cardWidth()

	limit := snap.Limits.Weekly
	if snap.Filter.Date != nil {
		limit = snap.Limits.Daily
	}

	included := make(map[string]bool, len(snap.Filter.Apps))
	for _, a := range snap.Filter.Apps {
		included[a] = true
	}

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Apps"))
	rows = append(rows, "")

	for i, catalogApp := range m.catalog {
		cursor := "  "
		if i == m.selectedIndex {
			cursor = styles.InfoTextStyle.Render("▸ ")
		}

		marker := styles.HelpStyle.Render("○")
		if included[catalogApp.Name] {
			marker = styles.SuccessTextStyle.Render("●")
		}

		label := styles.GetCategoryStyle(string(catalogApp.Category)).Render(padRight(catalogApp.Name, 18))
		header := fmt.Sprintf("%s%s %s", cursor, marker, label)

		if !included[catalogApp.Name] {
			rows = append(rows, header+styles.HelpStyle.Render("  excluded"))
			continue
		}

		gauge := components.LimitGauge(snap.PerApp[catalogApp.Name], limit, "", cardWidth-30)
		rows = append(rows, header+gauge)
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderPatternCard shows the weekly usage shape for the full week, or
// the per-app category split when a single day is selected.
func (m *Model) renderPatternCard(snap *services.Snapshot) string {
	cardWidth := m.cardWidth()

	if snap.Filter.Date != nil {
		return m.renderDaySplitCard(snap, cardWidth)
	}

	dates := snap.Series.Dates()
	if len(dates) == 0 {
		return ""
	}

	// Daily totals over the selected apps across the whole week.
	appFilter := models.Filter{Apps: snap.Filter.Apps}
	week := appFilter.Apply(snap.Series)

	totals := make([]float64, len(dates))
	names := make([]string, len(dates))
	for i, d := range dates {
		names[i] = d.Format("Mon")
		for _, r := range week {
			if r.Date.Equal(d) {
				totals[i] += float64(r.Minutes)
			}
		}
	}

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Weekly Pattern"))
	rows = append(rows, "")
	rows = append(rows, components.RenderWeeklyPattern(totals, names))
	rows = append(rows, "")
	rows = append(rows, components.RenderLineChart(totals, cardWidth-12, 6, "total minutes per day"))

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderDaySplitCard(snap *services.Snapshot, cardWidth int) string {
	var values []float64
	var labels []string
	var categories []string
	for _, a := range m.catalog {
		minutes, ok := snap.PerApp[a.Name]
		if !ok {
			continue
		}
		values = append(values, float64(minutes))
		labels = append(labels, a.Name)
		categories = append(categories, string(a.Category))
	}

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Day Split"))
	rows = append(rows, "")
	if len(values) == 0 {
		rows = append(rows, styles.HelpStyle.Render("  No usage in this window"))
	} else {
		rows = append(rows, components.RenderCategoryBarChart(values, labels, categories, cardWidth-8))
	}
	rows = append(rows, "")
	rows = append(rows, components.RenderLegend([]components.LegendItem{
		{Label: "Educational", Color: components.ChartStudyColor},
		{Label: "Non-Educational", Color: components.ChartDistractionColor},
	}))

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderAlertsCard(profile string, alerts []models.Alert) string {
	cardWidth := m.cardWidth()

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Alerts"))
	rows = append(rows, "")

	if len(alerts) == 0 {
		rows = append(rows, styles.SuccessTextStyle.Render("  No threshold alerts"))
	} else {
		for _, a := range alerts {
			rows = append(rows, "  "+styles.AlertStyle.Render("▲ "+a.Message))
		}
	}

	if history := m.renderAlertHistory(profile); len(history) > 0 {
		rows = append(rows, "")
		rows = append(rows, history...)
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderAlertHistory summarizes the persisted alert log for the
// profile. Absent or unreadable storage just hides the section.
func (m *Model) renderAlertHistory(profile string) []string {
	if m.database == nil || profile == "" {
		return nil
	}

	count, err := m.database.CountAlerts(profile)
	if err != nil || count == 0 {
		return nil
	}

	rows := []string{styles.HelpStyle.Render(fmt.Sprintf("  %d alerts recorded for %s", count, profile))}

	recent, err := m.database.GetRecentAlerts(profile, 3)
	if err != nil {
		return rows
	}
	for _, entry := range recent {
		rows = append(rows, styles.HelpStyle.Render("    · "+entry.Message))
	}
	return rows
}

func (m *Model) renderRecordsCard(filtered models.UsageSeries) string {
	cardWidth := m.cardWidth()

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Records"))
	rows = append(rows, "")

	header := fmt.Sprintf("  %-12s %-18s %-16s %s", "Date", "App", "Category", "Minutes")
	rows = append(rows, styles.TableHeaderStyle.Render(header))

	if len(filtered) == 0 {
		rows = append(rows, styles.HelpStyle.Render("  No records in this window"))
	}
	for _, r := range filtered {
		category := styles.GetCategoryStyle(string(r.Category)).Render(fmt.Sprintf("%-16s", r.Category))
		rows = append(rows, fmt.Sprintf("  %-12s %-18s %s %d",
			r.Date.Format("2006-01-02"), r.App, category, r.Minutes))
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) cardWidth() int {
	return max(m.width-6, 40)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
