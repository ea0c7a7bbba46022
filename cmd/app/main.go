package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"weatherdesk.app/internal/app"
	"weatherdesk.app/pkg/logger"
)

func main() {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found or error loading it")
	}

	logger.NewWithOptions(logger.Options{
		Level:  os.Getenv("LOG_LEVEL"),
		Format: os.Getenv("LOG_FORMAT"),
	}).SetDefault()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.NewApplication(ctx)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	cfg := application.Config()
	slog.Info("Configuration loaded successfully",
		"port", cfg.Server.Port,
		"favourites_backend", cfg.Favourites.Backend.String(),
		"timezone", cfg.Weather.Timezone)

	slog.Info("Starting weatherdesk...")
	runErr := application.Start(ctx)
	if runErr != nil {
		slog.Error("Application stopped with error", "error", runErr)
	}

	if err := application.Shutdown(); err != nil {
		slog.Error("Error during graceful shutdown", "error", err)
		os.Exit(1)
	}
	if runErr != nil {
		os.Exit(1)
	}
}
