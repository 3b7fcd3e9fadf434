package advice

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/avenka-dev/screenbalance-tui/internal/models"
	"github.com/avenka-dev/screenbalance-tui/internal/ui/styles"
)

// View renders the advice tab.
func (m *Model) View() string {
	snap := m.state.GetSnapshot()
	if snap == nil {
		return styles.CenterBoth(m.spinner.ViewWithLabel(), m.width, m.height)
	}

	var sections []string

	sections = append(sections, m.renderTitle(snap.Profile))
	sections = append(sections, m.renderBalanceCard(snap.Report))
	sections = append(sections, m.renderAdviceCard(snap.Recommendations))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderTitle(profile string) string {
	title := styles.TitleStyle.Render("Advice")
	subtitle := styles.HelpStyle.Render(fmt.Sprintf("Rule-based guidance for %s", profile))

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) renderBalanceCard(report models.Report) string {
	cardWidth := m.cardWidth()

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Current Balance"))
	rows = append(rows, "")

	rows = append(rows, "  "+m.balanceBar.View(report.BalanceScore, "Balance score", cardWidth-6))

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderAdviceCard(recs []models.Recommendation) string {
	cardWidth := m.cardWidth()

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Recommendations"))
	rows = append(rows, "")

	if len(recs) == 0 {
		rows = append(rows, styles.HelpStyle.Render("  Nothing to suggest for this window"))
	}

	for _, rec := range recs {
		icon, style := adviceBadge(rec.Kind)
		rows = append(rows, "  "+style.Render(icon+" "+kindLabel(rec.Kind)))
		rows = append(rows, "    "+rec.Message)
		rows = append(rows, "")
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func adviceBadge(kind models.RecommendationKind) (string, lipgloss.Style) {
	switch kind {
	case models.RecommendationMaintain, models.RecommendationReinforcement:
		return "●", styles.SuccessTextStyle
	case models.RecommendationStudyBlocks, models.RecommendationAppNudge:
		return "▲", styles.WarningTextStyle
	case models.RecommendationSubstitution:
		return "◆", styles.InfoTextStyle
	default:
		return "○", styles.HelpStyle
	}
}

func kindLabel(kind models.RecommendationKind) string {
	switch kind {
	case models.RecommendationStudyBlocks:
		return "Schedule study blocks"
	case models.RecommendationMaintain:
		return "Keep it up"
	case models.RecommendationSubstitution:
		return "Swap an app"
	case models.RecommendationReinforcement:
		return "Reinforce the habit"
	case models.RecommendationAppNudge:
		return "Trim heavy usage"
	default:
		return string(kind)
	}
}

func (m *Model) cardWidth() int {
	return max(m.width-6, 40)
}
