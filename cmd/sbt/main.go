// Package main is the entry point for the Screen Balance TUI. It loads
// configuration, starts the analytics services, and runs the Bubble Tea
// program.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avenka-dev/screenbalance-tui/internal/app"
	"github.com/avenka-dev/screenbalance-tui/internal/config"
	"github.com/avenka-dev/screenbalance-tui/internal/services"
	"github.com/avenka-dev/screenbalance-tui/internal/ui/tabs/advice"
	"github.com/avenka-dev/screenbalance-tui/internal/ui/tabs/dashboard"
	"github.com/avenka-dev/screenbalance-tui/internal/ui/tabs/forecast"
	"github.com/avenka-dev/screenbalance-tui/internal/ui/tabs/info"
	"github.com/avenka-dev/screenbalance-tui/internal/version"
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "-v" || os.Args[1] == "--version") {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		printUsage()
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run contains the main application logic, separated for cleaner error handling.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Starts the roster watcher and runs the first analysis pass.
	svcManager, err := services.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	defer func() {
		if closeErr := svcManager.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: error closing services: %v\n", closeErr)
		}
	}()

	model := app.NewModel(svcManager)

	// Each tab reads the shared application state; dashboard and
	// forecast additionally issue filter and projection commands.
	state := model.GetState()
	commands := model.GetCommands()
	catalog := svcManager.Catalog()
	tabs := []app.Tab{
		dashboard.New(state, commands, svcManager.Database(), catalog),
		forecast.New(state, commands, catalog),
		advice.New(state),
		info.New(state, cfg, svcManager.Database(), catalog),
	}
	model.SetTabs(tabs)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	go func() {
		<-sigChan
		p.Send(tea.Quit())
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// printUsage prints the command-line usage information.
func printUsage() {
	fmt.Println(`Screen Balance TUI - Family screen-time analytics and forecasting

Usage:
  sbt [flags]

Flags:
  -h, --help      Show this help message
  -v, --version   Show version information

Keyboard Shortcuts:
  1-4             Switch between tabs (Dashboard, Forecast, Advice, Info)
  Tab/Shift+Tab   Navigate between tabs
  j/k, Up/Down    Navigate lists
  p               Switch to the next profile
  d               Cycle the day filter (dashboard)
  a/space         Toggle an app in the filter (dashboard)
  h/l             Pick the projected app (forecast)
  + / -           Raise or lower the daily limit
  ] / [           Raise or lower the weekly limit
  r               Refresh the analysis
  ?               Toggle help
  q, Ctrl+C       Quit

Environment Variables:
  DATABASE_PATH      SQLite database path
  PROFILES_PATH      Profiles JSON file path
  WEEK_START         First day of the tracked week (YYYY-MM-DD)
  DAILY_LIMIT        Daily alert threshold in minutes (default: 120)
  WEEKLY_LIMIT       Weekly alert threshold in minutes (default: 600)
  FORECAST_HORIZON   Days projected forward (default: 7)

Configuration:
  The application looks for .env files in the following locations:
  - Current directory
  - ~/.config/screenbalance/.env
  - ~/.screenbalance/.env

For more information, visit: https://github.com/avenka-dev/screenbalance-tui`)
}
