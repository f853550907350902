// Package main is the entry point for the multi-city itinerary planner service.
//
//	@title						Multi-City Itinerary Planner API
//	@version					1.0.0
//	@description				Finds the cheapest itineraries visiting a set of cities exactly once, built from per-route flight data.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/tripweaver/multicity-itinerary-planner/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/tripweaver/multicity-itinerary-planner/docs"

	// Application layers
	itinhttp "github.com/tripweaver/multicity-itinerary-planner/internal/adapter/http"
	"github.com/tripweaver/multicity-itinerary-planner/internal/adapter/http/middleware"
	"github.com/tripweaver/multicity-itinerary-planner/internal/adapter/provider/googleflights"
	"github.com/tripweaver/multicity-itinerary-planner/internal/config"
	"github.com/tripweaver/multicity-itinerary-planner/internal/domain"
	"github.com/tripweaver/multicity-itinerary-planner/internal/infrastructure/logger"
	"github.com/tripweaver/multicity-itinerary-planner/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("provider", cfg.Provider.Name).
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	middleware.Setup(e, log.Logger)

	// Setup routes
	if err := setupRoutes(e, cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to set up routes")
	}

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e)
}

// setupLogger configures the global zerolog logger based on config.
func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Use console writer for non-JSON format
	if cfg.Logging.Format != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	// Set log level from config
	switch cfg.Logging.Level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	// Keep the shared logger package in step with the global settings
	logger.Init(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "itinerary-planner",
	})
}

// setupRoutes configures the HTTP routes.
func setupRoutes(e *echo.Echo, cfg *config.Config) error {
	// Register available flight providers and select the configured one
	registry := domain.NewProviderRegistry()
	registry.Register(googleflights.NewAdapterWithLogger(cfg.Provider.DataDir, logger.Global))

	provider := registry.Get(cfg.Provider.Name)
	if provider == nil {
		return fmt.Errorf("provider %q: %w", cfg.Provider.Name, domain.ErrUnknownProvider)
	}

	// Initialize the planner with config
	planner := usecase.NewItineraryPlanner(provider, &usecase.Config{
		GlobalTimeout: cfg.Timeouts.GlobalSearch,
		RouteTimeout:  cfg.Timeouts.PerRoute,
	})

	// Initialize handler with server-wide search defaults
	handler := itinhttp.NewItineraryHandler(planner, itinhttp.SearchDefaults{
		MinLayoverMinutes: cfg.Search.DefaultMinLayoverMinutes,
		ResultLimit:       cfg.Search.DefaultResultLimit,
	})

	itinhttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return nil
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
