package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jewelstore/internal/config"
	"jewelstore/internal/database"
	"jewelstore/internal/handler"
	"jewelstore/internal/repository"
	"jewelstore/internal/router"
	"jewelstore/internal/service"
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
	logger.Info().Msg("starting jewellery store API server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect the document store. A missing or unreachable store is not
	// fatal: the API keeps serving the seeded fallback catalogue.
	db, err := database.Connect(ctx, cfg.Database, logger)
	if err != nil {
		logger.Warn().Err(err).Msg("document store unreachable, continuing in fallback mode")
		db = nil
	}
	if db != nil {
		defer func() {
			disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer disconnectCancel()
			if err := db.Client().Disconnect(disconnectCtx); err != nil {
				logger.Error().Err(err).Msg("failed to disconnect document store client")
			}
		}()
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(db, logger)
	orderRepo := repository.NewOrderRepository(db, logger)

	// Initialize services
	catalogueService := service.NewCatalogueService(productRepo, logger)
	checkoutService := service.NewCheckoutService(orderRepo, productRepo, logger)

	// Initialize HTTP handlers
	diagHandler := handler.NewDiagHandler(database.NewHealth(db), cfg.Database, logger)
	productHandler := handler.NewProductHandler(catalogueService, logger)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService, logger)

	// Initialize router
	mux := router.New(diagHandler, productHandler, checkoutHandler, logger)

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

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
