package main

import (
	"flag"
	"log/slog"
	"os"

	"salon-booking/internal/infra/db"
	"salon-booking/internal/pkg/config"
)

func main() {
	dir := flag.String("dir", "migrations", "directory holding the migration files")
	down := flag.Int("down", 0, "revert this many steps instead of migrating up")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if *down > 0 {
		if err := db.MigrateDown(cfg.DB, *dir, *down); err != nil {
			slog.Error("migration rollback failed", "error", err)
			os.Exit(1)
		}
		slog.Info("migrations reverted", "steps", *down)
		return
	}

	if err := db.MigrateUp(cfg.DB, *dir); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
}
