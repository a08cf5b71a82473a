package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ClementV78/TimeReach/internal/config"
	"github.com/ClementV78/TimeReach/internal/geocoding"
	"github.com/ClementV78/TimeReach/internal/isochrone"
	"github.com/ClementV78/TimeReach/internal/metrics"
	"github.com/ClementV78/TimeReach/internal/places"
	"github.com/ClementV78/TimeReach/internal/server"
	"github.com/ClementV78/TimeReach/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	// Create a context that will be canceled when an interrupt signal is received.
	// This allows for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load application configuration.
	cfg := config.MustLoad()

	// Set up the logger based on the environment.
	logger := setupLogger(cfg.Env)

	// Both upstream keys are needed regardless of the geocoder choice.
	if cfg.ORSAPIKey == "" {
		log.Fatal("OpenRouteService API key is required")
	}
	if cfg.GoogleAPIKey == "" {
		log.Fatal("Google API key is required for the places provider")
	}

	// Create a separate registry for metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	// Create geocoding provider using factory pattern based on configuration.
	// This allows runtime selection between different providers (Google, Nominatim).
	geoProvider, err := geocoding.NewProvider(geocoding.ProviderConfig{
		Type:    geocoding.ProviderType(cfg.GeocoderType),
		APIKey:  cfg.GoogleAPIKey,
		Timeout: cfg.ProviderTimeout,
		Logger:  logger,
	})
	if err != nil {
		log.Fatalf("Failed to create geocoding provider: %v", err)
	}

	logger.InfoContext(ctx, "Geocoding provider initialized", "type", cfg.GeocoderType)

	// Assemble the search pipeline: origin resolution, reachability
	// estimation, then the places lookup.
	searchService := service.NewSearchService(
		logger,
		geocoding.NewResolver(geoProvider, logger),
		isochrone.NewEstimator(isochrone.NewORSProvider(cfg.ORSAPIKey, cfg.ProviderTimeout, logger), logger),
		places.NewGoogleProvider(cfg.GoogleAPIKey, cfg.ProviderTimeout, logger),
		appMetrics,
	)

	// The write timeout covers the worst case of three sequential provider
	// calls, each bounded by the provider timeout.
	readTimeout := 5 * time.Second
	writeTimeout := 3*cfg.ProviderTimeout + 5*time.Second
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      server.New(searchService, reg, logger),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	// Start the API server in a goroutine to allow main to listen for signals.
	go func() {
		logger.InfoContext(ctx, "Starting API server", "port", cfg.Port)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "API server failed", "error", err)
			stop()
		}
	}()

	// Log that the application has started.
	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

	// Wait for the context to be canceled (e.g., by Ctrl+C).
	<-ctx.Done()

	// Log that a shutdown signal has been received.
	logger.InfoContext(ctx, "Shutdown signal received. Stopping application...")

	shutdownTimeout := 10 * time.Second
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorContext(ctx, "Failed to shut down API server", "error", err)
	}

	// Log graceful shutdown completion.
	logger.InfoContext(ctx, "Application stopped gracefully.")
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelInfo,
				AddSource: false,
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelWarn,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelError,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)

		log.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return log
}
