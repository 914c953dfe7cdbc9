package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/roshinjimmy/sales-management-system/internal/config"
	"github.com/roshinjimmy/sales-management-system/internal/database"
	salesHttp "github.com/roshinjimmy/sales-management-system/internal/http"
	saleHandler "github.com/roshinjimmy/sales-management-system/internal/http/sale"
	"github.com/roshinjimmy/sales-management-system/internal/sale"
	saleStore "github.com/roshinjimmy/sales-management-system/internal/sale/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	saleService := sale.NewService(saleStore.New(db))
	router := salesHttp.New(saleHandler.NewHandler(saleService))

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
