// Package main provides the entry point for the droplist demo.
//
// droplist is a dropdown/select overlay toolkit for Bubble Tea TUIs. The
// demo renders a small form with single-select, filterable, and
// multi-select fields sharing one overlay registry, so only one panel is
// ever open at a time.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"droplist/internal/app"
	"droplist/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	model := app.NewModel(cfg)
	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // outside-click close needs mouse events
	)

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
