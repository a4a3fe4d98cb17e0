package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Abhinav-36/Convertcart/internal/config"
	"github.com/Abhinav-36/Convertcart/internal/database"
	"github.com/Abhinav-36/Convertcart/internal/handler"
	"github.com/Abhinav-36/Convertcart/internal/repository"
	"github.com/Abhinav-36/Convertcart/internal/router"
	"github.com/Abhinav-36/Convertcart/internal/seed"
	"github.com/Abhinav-36/Convertcart/internal/service"

	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting dish search API server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The pool is bound to the target database, so on a fresh store it
	// has to exist before the pool connects. Best effort: a failure here
	// must not keep the server from starting.
	if cfg.Seed.AutoSeed {
		if err := database.EnsureDatabase(ctx, cfg.Database, logger); err != nil {
			logger.Warn().Err(err).Msg("could not ensure database exists")
		}
	}

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	dishRepo := repository.NewDishRepository(pool, logger)

	// Seed before accepting requests when the store is empty or the
	// schema is missing. Best effort: failures are logged, never fatal.
	if cfg.Seed.AutoSeed {
		seed.EnsureSeeded(ctx, dishRepo, seed.NewSeeder(pool, logger), logger)
	}

	dishService := service.NewDishService(dishRepo, logger)
	dishHandler := handler.NewDishHandler(dishService, logger)
	mux := router.New(dishHandler, logger)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

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
