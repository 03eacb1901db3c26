// Package main implements the entry point for the ADHDaily API server,
// a task-management backend with an ADHD-friendly daily focus selection.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/config"
	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/platform/logger"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging and wires the
// application dependencies.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(logger.Config{Level: cfg.Server.LogLevel})

	appLogger.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("database_engine", cfg.Database.Engine))

	app, err := newApplication(cfg, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to set up application: %w", err)
	}

	return app, nil
}
