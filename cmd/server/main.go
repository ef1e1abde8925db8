// Package main is the entry point for the trip duration search service.
//
//	@title						Trip Duration Search API
//	@version					1.0.0
//	@description				A flight metasearch service that plans round trips by duration, expanding the search across departure dates until qualifying trips are found.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/trip-planner/trip-duration-search-system/issues
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
	_ "github.com/trip-planner/trip-duration-search-system/docs"

	// Application layers
	triphttp "github.com/trip-planner/trip-duration-search-system/internal/adapter/http"
	"github.com/trip-planner/trip-duration-search-system/internal/adapter/http/middleware"
	"github.com/trip-planner/trip-duration-search-system/internal/adapter/provider/amadeus"
	"github.com/trip-planner/trip-duration-search-system/internal/config"
	"github.com/trip-planner/trip-duration-search-system/internal/infrastructure/cache"
	"github.com/trip-planner/trip-duration-search-system/internal/infrastructure/logger"
	"github.com/trip-planner/trip-duration-search-system/internal/infrastructure/timeutil"
	"github.com/trip-planner/trip-duration-search-system/internal/usecase"
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
		log.Fatal().Err(err).Msg("Failed to initialize application")
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
}

// setupRoutes wires the application layers and configures the HTTP routes.
func setupRoutes(e *echo.Echo, cfg *config.Config) error {
	appLog := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	if !cfg.AmadeusConfigured() {
		return errors.New("Amadeus API credentials are required (AMADEUS_API_KEY, AMADEUS_API_SECRET)")
	}

	client, err := amadeus.NewClient(amadeus.Config{
		APIKey:    cfg.Amadeus.APIKey,
		APISecret: cfg.Amadeus.APISecret,
		BaseURL:   cfg.Amadeus.BaseURL,
		Timeout:   cfg.Amadeus.Timeout,
	}, timeutil.NewRealClock(), appLog)
	if err != nil {
		return fmt.Errorf("create amadeus client: %w", err)
	}
	provider := amadeus.NewAdapter(client, appLog)

	searchUC := usecase.NewFlightSearch(provider, appLog)
	planUC := usecase.NewTripPlanner(provider, &usecase.Config{
		DayBudget:           cfg.Trip.DayBudget,
		WindowRadiusDays:    cfg.Trip.WindowRadiusDays,
		NonstopPenaltyHours: cfg.Trip.NonstopPenaltyHours,
		MaxResults:          cfg.Trip.MaxResults,
	}, appLog)

	responseCache := cache.New(cfg.Cache.TTL)

	handler := triphttp.NewTripHandler(searchUC, planUC, responseCache, appLog)
	triphttp.RegisterRoutes(e, handler)

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
