package main

import (
	"log/slog"
	"os"

	"github.com/AssoGestion/asso_gestion_app/internal/mockapi"
	"github.com/AssoGestion/asso_gestion_app/internal/platform/config"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	server, err := mockapi.NewServer(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize mock backend", slog.String("error", err.Error()))
		os.Exit(1)
	}

	addr := ":" + cfg.Port
	logger.Info("Mock backend listening", slog.String("addr", addr))
	if err := server.Router().Run(addr); err != nil {
		logger.Error("Server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
