// Command import bulk-loads a sales CSV into the transactions table.
//
// It runs offline, never concurrently with the API server, and issues one
// insert per row: a failed row is logged and skipped, and the run always
// processes the whole file.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/roshinjimmy/sales-management-system/internal/config"
	"github.com/roshinjimmy/sales-management-system/internal/database"
	"github.com/roshinjimmy/sales-management-system/internal/importer/salescsv"
	"github.com/roshinjimmy/sales-management-system/internal/sale"
	saleStore "github.com/roshinjimmy/sales-management-system/internal/sale/store"
)

const progressEvery = 1000

func main() {
	path := flag.String("file", "data/sales.csv", "path to the sales CSV export")
	flag.Parse()

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

	f, err := os.Open(*path)
	if err != nil {
		slog.Error("failed to open csv", "path", *path, "error", err)
		os.Exit(1)
	}
	defer f.Close()

	run := uuid.New()
	log := slog.With("run", run)

	log.Info("csv import started", "path", *path)

	rows, err := salescsv.NewParser().Parse(f)
	if err != nil {
		log.Error("failed to parse csv", "error", err)
		os.Exit(1)
	}

	svc := sale.NewService(saleStore.New(db))
	ctx := context.Background()

	var inserted, failed int

	for _, row := range rows {
		if err := svc.Insert(ctx, row); err != nil {
			failed++

			log.Error("insert failed", "transaction_id", row.TransactionID, "error", err)

			continue
		}

		inserted++
		if inserted%progressEvery == 0 {
			log.Info("progress", "inserted", inserted)
		}
	}

	log.Info("import completed", "inserted", inserted, "failed", failed)
}
