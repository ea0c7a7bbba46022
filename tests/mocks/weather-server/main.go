package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"weatherdesk.app/tests/integration/helpers"
)

func main() {
	gin.SetMode(gin.ReleaseMode)
	r := helpers.NewOpenWeatherMapMock()
	r.Use(gin.Logger())

	addr := ":8081"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	slog.Info("Mock OpenWeatherMap server starting", "addr", addr, "api_key", helpers.TestAPIKey)
	if err := r.Run(addr); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
