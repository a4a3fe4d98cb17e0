package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Abhinav-36/Convertcart/internal/config"
	"github.com/Abhinav-36/Convertcart/internal/database"
	"github.com/Abhinav-36/Convertcart/internal/seed"

	"github.com/joho/godotenv"
)

// One-shot seeding entry point: provisions the database and schema, then
// wipes and repopulates the sample data. Exits non-zero on any failure.
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

	ctx := context.Background()

	// The target database may not exist yet on a fresh store.
	if err := database.EnsureDatabase(ctx, cfg.Database, logger); err != nil {
		return fmt.Errorf("failed to ensure database: %w", err)
	}

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := seed.NewSeeder(pool, logger).Run(ctx); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	logger.Info().Msg("seed completed successfully")

	return nil
}
