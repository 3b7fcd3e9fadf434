package info

import (
	"strings"
	"testing"
	"time"

	"github.com/avenka-dev/screenbalance-tui/internal/app"
	"github.com/avenka-dev/screenbalance-tui/internal/config"
	"github.com/avenka-dev/screenbalance-tui/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		DatabasePath:    "/tmp/sbt/sbt.db",
		ProfilesPath:    "/tmp/sbt/profiles.json",
		WeekStart:       time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		Limits:          models.Limits{Daily: 120, Weekly: 600},
		ForecastHorizon: 7,
	}
}

func TestNew(t *testing.T) {
	m := New(app.NewState(), testConfig(), nil, models.DefaultApps())
	if m == nil {
		t.Fatal("New returned nil")
	}
}

func TestModel_Init(t *testing.T) {
	m := New(app.NewState(), testConfig(), nil, models.DefaultApps())
	if m.Init() != nil {
		t.Error("Init should return nil")
	}
}

func TestModel_Update(t *testing.T) {
	m := New(app.NewState(), testConfig(), nil, models.DefaultApps())
	updated, _ := m.Update(nil)
	if updated == nil {
		t.Error("Update returned nil model")
	}
}

func TestModel_View(t *testing.T) {
	m := New(app.NewState(), testConfig(), nil, models.DefaultApps())
	m.SetSize(100, 40)

	view := m.View()
	if !strings.Contains(view, "Configuration") {
		t.Error("View should show configuration card")
	}
	if !strings.Contains(view, "2025-12-01") {
		t.Error("View should show the week start")
	}
	if !strings.Contains(view, "Khan Academy") {
		t.Error("View should show the app catalog")
	}
	if !strings.Contains(view, "Educational") {
		t.Error("View should show categories")
	}
}

func TestModel_View_BaselineBars(t *testing.T) {
	m := New(app.NewState(), testConfig(), nil, models.DefaultApps())
	m.SetSize(100, 60)

	view := m.View()
	if !strings.Contains(view, "│") {
		t.Error("catalog card should chart the baseline means")
	}
}

func TestModel_View_NoConfig(t *testing.T) {
	m := New(app.NewState(), nil, nil, models.DefaultApps())
	m.SetSize(100, 40)

	view := m.View()
	if !strings.Contains(view, "Configuration not loaded") {
		t.Error("View should show the missing-config placeholder")
	}
}

func TestModel_SetSize(t *testing.T) {
	m := New(app.NewState(), testConfig(), nil, models.DefaultApps())
	m.SetSize(100, 50)
	if m.width != 100 || m.height != 50 {
		t.Error("SetSize should store dimensions")
	}
}

func TestModel_Help(t *testing.T) {
	m := New(app.NewState(), testConfig(), nil, models.DefaultApps())
	if len(m.ShortHelp()) == 0 {
		t.Error("ShortHelp empty")
	}
	if len(m.FullHelp()) == 0 {
		t.Error("FullHelp empty")
	}
}
