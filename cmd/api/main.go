package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mini-pos/internal/catalog"
	"mini-pos/internal/config"
	"mini-pos/internal/database"
	"mini-pos/internal/handler"
	"mini-pos/internal/repository"
	"mini-pos/internal/router"
	"mini-pos/internal/service"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Str("menu_source", cfg.Menu.Source).Msg("starting mini-pos register server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	menuLoader, closeLoader := newMenuLoader(ctx, cfg, logger)
	defer closeLoader()

	// An unreadable menu still starts the register, with nothing to sell
	menu := catalog.LoadOrEmpty(ctx, menuLoader, cfg.Menu.Path, logger)

	// Initialize services
	menuService := service.NewMenuService(menu, logger)
	registerService := service.NewRegisterService(menu, logger)

	// Initialize HTTP handlers
	menuHandler := handler.NewMenuHandler(menuService, logger)
	orderHandler := handler.NewOrderHandler(registerService, logger)

	// Initialize router
	mux := router.New(menuHandler, orderHandler, cfg.Auth.APIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Int("menu_items", menu.Len()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// newMenuLoader builds the loader for the configured menu source. The returned
// func releases any connections the loader holds. A source that cannot be set
// up yields a loader that reports it as unavailable.
func newMenuLoader(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (catalog.Loader, func()) {
	fileLoader := catalog.NewFileLoader(logger)

	switch cfg.Menu.Source {
	case config.MenuSourcePostgres:
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Str("host", cfg.Database.Host).
				Msg("failed to initialize database, menu will be empty")
			return catalog.NewUnavailableLoader(config.MenuSourcePostgres, err), func() {}
		}
		menuRepo := repository.NewMenuRepository(pool, logger)
		return catalog.NewRepositoryLoader(menuRepo, logger), pool.Close

	case config.MenuSourceS3:
		s3Loader, err := catalog.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
			return fileLoader, func() {}
		}
		return catalog.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, cfg.S3.Enabled, logger), func() {}

	default:
		logger.Info().Str("path", cfg.Menu.Path).Msg("using local file system for menu (S3 disabled)")
		return fileLoader, func() {}
	}
}
