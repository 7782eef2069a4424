package main

import (
	"ReportDeskAPI/internal/adapter"
	"ReportDeskAPI/internal/bootstrap"
	"ReportDeskAPI/internal/config"
	"fmt"
	"log/slog"
	"net/http"
	"os"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.LoadAppConfig()

	db := config.InitGorm(cfg)

	redisAdapter, err := adapter.NewRedisAdapter(cfg)
	if err != nil {
		slog.Error("Failed to initialize Redis adapter", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisAdapter.Close(); err != nil {
			slog.Error("Error closing Redis connection", "error", err)
		}
	}()

	validate := config.NewValidator()
	chiMux := config.NewChi(cfg)

	bootstrap.Init(cfg, db, validate, redisAdapter, chiMux)

	addr := fmt.Sprintf(":%s", cfg.AppPort)
	slog.Info("Starting ReportDeskAPI", "port", cfg.AppPort)

	if err := http.ListenAndServe(addr, chiMux); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
