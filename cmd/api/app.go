package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"assistant-webhook/internal/config"
	"assistant-webhook/internal/intent"
	"assistant-webhook/internal/legacyweather"
	"assistant-webhook/internal/weather"
	"assistant-webhook/internal/wisdom"

	"github.com/gin-gonic/gin"

	_ "assistant-webhook/docs" // Ensure docs are imported
)

// Router answers a flattened intent request; *intent.Router in production
type Router interface {
	Route(ctx context.Context, req intent.Request) intent.Reply
}

// App encapsulates application dependencies
type App struct {
	router       *gin.Engine
	logger       *slog.Logger
	intentRouter Router
	cfg          *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Initialize weather service
	weatherSvc, err := weather.NewWeatherService(cfg, logger)
	if err != nil {
		return nil, err
	}

	intentRouter := intent.NewRouter(
		legacyweather.NewLegacyWeatherService(cfg, logger),
		weatherSvc,
		wisdom.NewWisdomService(cfg, logger),
		cfg.App.Source,
		logger,
	)

	return NewAppWithRouter(cfg, logger, intentRouter), nil
}

// NewAppWithRouter creates an application around a custom intent router.
// This is useful for testing the HTTP layer in isolation.
func NewAppWithRouter(cfg *config.Config, logger *slog.Logger, intentRouter Router) *App {
	// Set Gin mode from configuration
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(requestID())

	app := &App{
		router:       router,
		logger:       logger,
		intentRouter: intentRouter,
		cfg:          cfg,
	}

	// Register routes
	app.registerRoutes()

	return app
}

const shutdownTimeout = 10 * time.Second

// Run serves HTTP on addr until ctx is cancelled, then shuts down gracefully
func (app *App) Run(ctx context.Context, addr string) error {
	// A weather.search makes two sequential upstream calls
	writeTimeout := 2*app.cfg.Providers.Timeout + 5*time.Second

	server := &http.Server{
		Addr:         addr,
		Handler:      app.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info("starting server", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
