package database

import (
	"context"
	"fmt"
	"time"

	"github.com/Abhinav-36/Convertcart/internal/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// NewPool creates a new PostgreSQL connection pool.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// Configure pool settings
	poolConfig.MaxConns = int32(cfg.MaxConnections)
	poolConfig.MinConns = int32(cfg.MinConnections)
	poolConfig.MaxConnIdleTime = time.Duration(cfg.IdleTimeout) * time.Second
	poolConfig.ConnConfig.ConnectTimeout = time.Duration(cfg.ConnectTimeout) * time.Second
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Int("max_connections", cfg.MaxConnections).
		Int("min_connections", cfg.MinConnections).
		Msg("creating database connection pool")

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Verify connectivity. A failed ping is not fatal: the pool connects
	// lazily and the service must still come up when the store is down.
	if err := pool.Ping(ctx); err != nil {
		logger.Warn().Err(err).Msg("database ping failed, proceeding anyway")
	} else {
		logger.Info().Msg("database connection pool created successfully")
	}

	return pool, nil
}

// EnsureDatabase creates the target database when it does not exist yet.
// It connects to the postgres maintenance database with the same
// credentials, so it works before the target database has ever been
// provisioned. Safe to call repeatedly.
func EnsureDatabase(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) error {
	conn, err := pgx.Connect(ctx, cfg.AdminConnectionString())
	if err != nil {
		return fmt.Errorf("failed to connect to maintenance database: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	err = conn.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)",
		cfg.Database,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check database existence: %w", err)
	}

	if exists {
		logger.Debug().Str("database", cfg.Database).Msg("database already exists")
		return nil
	}

	// CREATE DATABASE does not accept bind parameters.
	stmt := fmt.Sprintf("CREATE DATABASE %s", pgx.Identifier{cfg.Database}.Sanitize())
	if _, err := conn.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("failed to create database %s: %w", cfg.Database, err)
	}

	logger.Info().Str("database", cfg.Database).Msg("database created")

	return nil
}
