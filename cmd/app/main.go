package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"dispatch/cmd"
	"dispatch/internal/core/domain/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()

	app, err := cmd.NewCompositionRoot(configs)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := app.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// Missing .env is fine; environment variables and defaults still apply.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:                  envOrDefault("HTTP_PORT", "8080"),
		GridWidth:                 envIntOrDefault("GRID_WIDTH", 100),
		GridHeight:                envIntOrDefault("GRID_HEIGHT", 100),
		DefaultK:                  envIntOrDefault("DEFAULT_K", services.DefaultK),
		DispatchStrategy:          envOrDefault("DISPATCH_STRATEGY", services.StrategyBoundedHeap.String()),
		MovementSimulationEnabled: envBoolOrDefault("MOVEMENT_SIMULATION_ENABLED", false),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Environment variable %s must be an integer, got %q", key, raw)
	}
	return value
}

func envBoolOrDefault(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		log.Fatalf("Environment variable %s must be a boolean, got %q", key, raw)
	}
	return value
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
