// ABOUTME: Terminal entry point for TeleScout
// ABOUTME: Runs the group search in a Bubble Tea program with logs kept off the screen

package main

import (
	"context"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"telescout-api/internal/bootstrap"
	"telescout-api/internal/tui"
	"telescout-api/pkg/config"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The terminal belongs to the program; logs only go to LOG_FILE when set
	app, err := bootstrap.New(ctx, cfg, io.Discard)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer app.Close()

	p := tea.NewProgram(tui.NewModel(ctx, app.Controller, app.Catalog.Page), tea.WithAltScreen())
	tui.Forward(ctx, app.Controller, p.Send)

	if _, err := p.Run(); err != nil {
		app.Logger.Error("Terminal program failed", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Terminal program failed: %v", err)
	}
}
