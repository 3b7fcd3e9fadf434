package forecast

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/avenka-dev/screenbalance-tui/internal/models"
	"github.com/avenka-dev/screenbalance-tui/internal/ui/components"
	"github.com/avenka-dev/screenbalance-tui/internal/ui/styles"
)

// View renders the forecast tab.
func (m *Model) View() string {
	snap := m.state.GetSnapshot()
	if snap == nil {
		return styles.CenterBoth(m.spinner.ViewWithLabel(), m.width, m.height)
	}

	var sections []string

	sections = append(sections, m.renderTitle())

	if snap.Forecast == nil {
		sections = append(sections, m.renderUnavailableCard(snap.ForecastErr))
	} else {
		sections = append(sections, m.renderChartCard(snap.Forecast))
		sections = append(sections, m.renderFitCard(snap.Forecast, snap.Limits))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Forecast")
	subtitle := styles.HelpStyle.Render("Least-squares projection of daily minutes")

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) renderUnavailableCard(err error) string {
	cardWidth := m.cardWidth()

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Projection"))
	rows = append(rows, "")

	reason := "No projection available"
	if err != nil {
		reason = err.Error()
	}
	rows = append(rows, "  "+styles.WarningTextStyle.Render(reason))
	rows = append(rows, "")
	rows = append(rows, styles.HelpStyle.Render("  Use h/l to pick another app"))

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderChartCard(fc *models.Forecast) string {
	cardWidth := m.cardWidth()

	history := make([]float64, len(fc.History))
	for i, p := range fc.History {
		history[i] = float64(p.Minutes)
	}
	predicted := make([]float64, len(fc.Predicted))
	for i, p := range fc.Predicted {
		predicted[i] = p.Minutes
	}

	label := styles.GetCategoryStyle(string(fc.Category)).Render(fc.App)

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Projection")+"  "+label)
	rows = append(rows, "")
	rows = append(rows, components.RenderForecastChart(history, predicted, cardWidth-8, 10, fc.App))
	rows = append(rows, "")
	rows = append(rows, components.RenderLegend([]components.LegendItem{
		{Label: "Observed", Color: components.ChartStudyColor},
		{Label: "Projected", Color: components.ChartForecastColor},
	}))

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderFitCard(fc *models.Forecast, limits models.Limits) string {
	cardWidth := m.cardWidth()

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Fit"))
	rows = append(rows, "")
	rows = append(rows, fmt.Sprintf("  Slope          %+.2f min/day", fc.Slope))
	rows = append(rows, fmt.Sprintf("  Intercept      %.2f min", fc.Intercept))
	rows = append(rows, fmt.Sprintf("  Avg projected  %.1f min/day", fc.AvgPredicted))
	rows = append(rows, "")

	if fc.OverLimit(limits.Daily) {
		warning := fmt.Sprintf("▲ Projected average exceeds the %d min daily limit", limits.Daily)
		rows = append(rows, "  "+styles.AlertStyle.Render(warning))
	} else {
		rows = append(rows, "  "+styles.SuccessTextStyle.Render("● Projected usage stays within the daily limit"))
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) cardWidth() int {
	return max(m.width-6, 40)
}
