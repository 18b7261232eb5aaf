package main

import (
	"log/slog"
	"os"

	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/handlers"
	"storefront/internal/views"
)

func main() {
	cfg := config.Load()

	// fail the boot on a missing template, not the request
	if err := views.Verify(cfg.ViewsGlob); err != nil {
		slog.Error("template check failed", "err", err)
		os.Exit(1)
	}

	gdb := db.MustOpen(cfg)
	sqlDB, _ := gdb.DB()
	defer sqlDB.Close()

	r := handlers.NewRouter(gdb, cfg.ViewsGlob, cfg.SessionSecret)

	slog.Info("server listening", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
