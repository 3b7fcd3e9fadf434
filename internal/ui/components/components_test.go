package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
)

func TestNewSpinner(t *testing.T) {
	s := NewSpinner("Loading")
	if s.label != "Loading" {
		t.Error("Spinner label mismatch")
	}
}

func TestSpinner_Methods(t *testing.T) {
	s := NewSpinner("Init")

	s.SetLabel("Loading")
	if s.label != "Loading" {
		t.Errorf("label = %s, want Loading", s.label)
	}

	if s.View() == "" {
		t.Error("View returned empty")
	}
	if s.ViewWithLabel() == "" {
		t.Error("ViewWithLabel returned empty")
	}
	if s.Init() == nil {
		t.Error("Init should return command")
	}

	_, cmd := s.Update(spinner.TickMsg{})
	if cmd == nil {
		t.Error("Update should return command for tick")
	}

	if s.Tick() == nil {
		t.Error("Tick should return command")
	}
}

func TestRenderLineChart(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	s := RenderLineChart(data, 20, 5, "Test")
	if s == "" {
		t.Error("RenderLineChart returned empty")
	}
}

func TestRenderLineChart_Empty(t *testing.T) {
	s := RenderLineChart(nil, 20, 5, "Test")
	if !strings.Contains(s, "No data") {
		t.Errorf("expected placeholder for empty data, got %q", s)
	}
}

func TestRenderForecastChart(t *testing.T) {
	history := []float64{60, 65, 70, 68, 72, 75, 80}
	predicted := []float64{82, 85, 88}
	s := RenderForecastChart(history, predicted, 40, 8, "YouTube")
	if s == "" {
		t.Error("RenderForecastChart returned empty")
	}
}

func TestRenderForecastChart_Empty(t *testing.T) {
	s := RenderForecastChart(nil, nil, 40, 8, "")
	if !strings.Contains(s, "No data") {
		t.Errorf("expected placeholder for empty data, got %q", s)
	}
}

func TestRenderBarChart(t *testing.T) {
	values := []float64{10, 20}
	labels := []string{"A", "B"}
	s := RenderBarChart(values, labels, 20)
	if s == "" {
		t.Error("RenderBarChart returned empty")
	}
	if len(strings.Split(s, "\n")) != 2 {
		t.Error("expected one line per value")
	}
}

func TestRenderCategoryBarChart(t *testing.T) {
	values := []float64{120, 80}
	labels := []string{"YouTube", "Khan Academy"}
	categories := []string{"Non-Educational", "Educational"}
	s := RenderCategoryBarChart(values, labels, categories, 40)
	if s == "" {
		t.Error("RenderCategoryBarChart returned empty")
	}
	if !strings.Contains(s, "min") {
		t.Error("expected minute values in output")
	}
}

func TestRenderWeeklyPattern(t *testing.T) {
	data := []float64{30, 60, 90, 120, 60, 30, 15}
	names := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	s := RenderWeeklyPattern(data, names)
	if s == "" {
		t.Error("RenderWeeklyPattern returned empty")
	}
	if !strings.Contains(s, "Mon") {
		t.Error("expected day labels in output")
	}
}

func TestRenderSparkline(t *testing.T) {
	data := []float64{1, 2, 3}
	s := RenderSparkline(data, 10)
	if s == "" {
		t.Error("RenderSparkline returned empty")
	}
	if RenderSparkline(nil, 10) != "" {
		t.Error("empty input should render empty")
	}
}

func TestSimpleBalanceBar(t *testing.T) {
	s := SimpleBalanceBar(75, "Balance", 60)
	if !strings.Contains(s, "75/100") {
		t.Errorf("expected score in output, got %q", s)
	}
}

func TestLimitGauge(t *testing.T) {
	s := LimitGauge(90, 120, "YouTube", 60)
	if !strings.Contains(s, "90/120 min") {
		t.Errorf("expected usage figures, got %q", s)
	}

	over := LimitGauge(150, 120, "YouTube", 60)
	if !strings.Contains(over, "150/120 min") {
		t.Errorf("expected overshoot figures, got %q", over)
	}
}

func TestBalanceBarView(t *testing.T) {
	b := NewBalanceBar()
	view := b.View(50, "Balance", 70)
	if view == "" {
		t.Error("View returned empty")
	}
}

func TestRenderGradientBar(t *testing.T) {
	if RenderGradientBar(50, 0) != "" {
		t.Error("zero width should render empty")
	}
	if RenderGradientBar(50, 10) == "" {
		t.Error("RenderGradientBar returned empty")
	}
}

func TestRenderLegend(t *testing.T) {
	s := RenderLegend([]LegendItem{
		{Label: "Observed", Color: ChartStudyColor},
		{Label: "Projected", Color: ChartForecastColor},
	})
	if !strings.Contains(s, "Observed") || !strings.Contains(s, "Projected") {
		t.Error("legend missing labels")
	}
}

func TestHexToRGB(t *testing.T) {
	rgb := hexToRGB("#ff0080")
	if rgb != [3]int{255, 0, 128} {
		t.Errorf("hexToRGB = %v", rgb)
	}
	if hexToRGB("bogus") != [3]int{0, 0, 0} {
		t.Error("malformed hex should map to black")
	}
}
