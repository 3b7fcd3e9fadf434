// Package components provides reusable UI components.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avenka-dev/screenbalance-tui/internal/logger"
	"github.com/avenka-dev/screenbalance-tui/internal/ui/styles"
)

// BalanceBar renders the balance score as a progress gauge.
type BalanceBar struct {
	progress progress.Model
}

// NewBalanceBar creates a balance gauge with a red-to-green gradient.
func NewBalanceBar() BalanceBar {
	p := progress.New(
		progress.WithScaledGradient("#ff6b6b", "#51cf66"),
		progress.WithWidth(30),
		progress.WithoutPercentage(),
	)

	return BalanceBar{progress: p}
}

// Init initializes the progress bar model.
func (b BalanceBar) Init() tea.Cmd {
	return nil
}

// Update handles progress bar messages.
func (b BalanceBar) Update(msg tea.Msg) (BalanceBar, tea.Cmd) {
	model, cmd := b.progress.Update(msg)
	b.progress = model.(progress.Model)
	return b, cmd
}

// SetWidth sets the progress bar width.
func (b *BalanceBar) SetWidth(width int) {
	b.progress.Width = width
}

// View renders the balance bar with score and label.
func (b BalanceBar) View(score int, label string, width int) string {
	barWidth := width - 30 // Reserve space for label and score
	if barWidth < 10 {
		barWidth = 10
	}
	b.progress.Width = barWidth

	bar := b.progress.ViewAs(float64(score) / 100)

	scoreStyle := styles.GetBalanceStyle(score)
	scoreStr := scoreStyle.Width(6).Align(lipgloss.Right).Render(fmt.Sprintf("%d/100", score))

	labelStr := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Width(15).
		Render(label)

	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		labelStr,
		bar,
		" ",
		scoreStr,
	)
}

// RenderGradientBar renders just the bar part with gradient colors.
func RenderGradientBar(percent float64, width int) string {
	if width < 1 {
		return ""
	}

	filled := int(float64(width) * percent / 100)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	var barChars []string
	for i := 0; i < width; i++ {
		if i < filled {
			t := float64(i) / float64(max(1, width-1))
			color := interpolateColor("#ff6b6b", "#51cf66", t)
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			barChars = append(barChars, style.Render("█"))
		} else {
			style := lipgloss.NewStyle().Foreground(styles.Subtle)
			barChars = append(barChars, style.Render("░"))
		}
	}

	return strings.Join(barChars, "")
}

// SimpleBalanceBar renders a simple ASCII gauge with gradient colors.
func SimpleBalanceBar(score int, label string, width int) string {
	labelWidth := len(label) + 1
	scoreWidth := 7
	barWidth := width - labelWidth - scoreWidth - 4

	if barWidth < 5 {
		barWidth = 5
	}

	bar := RenderGradientBar(float64(score), barWidth)

	labelStr := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Render(label)

	scoreStr := styles.GetBalanceStyle(score).
		Width(scoreWidth).
		Align(lipgloss.Right).
		Render(fmt.Sprintf("%d/100", score))

	return fmt.Sprintf("%s [%s] %s", labelStr, bar, scoreStr)
}

// LimitGauge renders a usage-against-limit bar. The fill saturates at
// the limit; overshoot is flagged in the value column instead.
func LimitGauge(minutes, limit int, label string, width int) string {
	labelWidth := len(label) + 1
	valueWidth := 14
	barWidth := width - labelWidth - valueWidth - 4
	if barWidth < 5 {
		barWidth = 5
	}

	percent := 0.0
	if limit > 0 {
		percent = float64(minutes) / float64(limit) * 100
	}
	if percent > 100 {
		percent = 100
	}

	// Inverted gradient: filling up toward the limit is bad.
	filled := int(float64(barWidth) * percent / 100)
	if filled > barWidth {
		filled = barWidth
	}
	var barChars []string
	for i := 0; i < barWidth; i++ {
		if i < filled {
			t := float64(i) / float64(max(1, barWidth-1))
			color := interpolateColor("#51cf66", "#ff6b6b", t)
			barChars = append(barChars, lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("█"))
		} else {
			barChars = append(barChars, lipgloss.NewStyle().Foreground(styles.Subtle).Render("░"))
		}
	}
	bar := strings.Join(barChars, "")

	labelStr := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Render(label)

	valueStyle := styles.SuccessTextStyle
	if minutes > limit {
		valueStyle = styles.AlertStyle
	}
	valueStr := valueStyle.
		Width(valueWidth).
		Align(lipgloss.Right).
		Render(fmt.Sprintf("%d/%d min", minutes, limit))

	return fmt.Sprintf("%s [%s] %s", labelStr, bar, valueStr)
}

func interpolateColor(fromHex, toHex string, t float64) string {
	from := hexToRGB(fromHex)
	to := hexToRGB(toHex)

	r := int(float64(from[0]) + t*(float64(to[0])-float64(from[0])))
	g := int(float64(from[1]) + t*(float64(to[1])-float64(from[1])))
	b := int(float64(from[2]) + t*(float64(to[2])-float64(from[2])))

	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func hexToRGB(hex string) [3]int {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b int
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		logger.Error("failed to parse hex color", "hex", hex, "error", err)
		return [3]int{0, 0, 0}
	}
	return [3]int{r, g, b}
}
