package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/roshinjimmy/sales-management-system/cmd/dashboard/internal/view"
	"github.com/roshinjimmy/sales-management-system/internal/api"
	"github.com/roshinjimmy/sales-management-system/internal/config"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	client := api.New(cfg.API.BaseURL)

	p := tea.NewProgram(view.NewModel(client), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run dashboard", "error", err)
		os.Exit(1)
	}
}
