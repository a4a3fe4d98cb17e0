package seed

import (
	"context"
	"errors"

	"github.com/Abhinav-36/Convertcart/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// Postgres error codes the bootstrap guard treats as "schema missing".
const (
	pgUndefinedTable  = "42P01"
	pgInvalidCatalog  = "3D000"
	pgUndefinedSchema = "3F000"
)

// Runner runs a single seed pass. Satisfied by *Seeder.
type Runner interface {
	Run(ctx context.Context) error
}

// EnsureSeeded checks at startup whether the store already holds data and
// seeds it when empty. A missing schema is self-healing: the seeder
// creates it. Any other probe or seed failure is logged and swallowed so
// that seeding can never keep the HTTP surface from coming up.
func EnsureSeeded(ctx context.Context, repo repository.DishRepository, seeder Runner, logger zerolog.Logger) {
	count, err := repo.CountRestaurants(ctx)
	switch {
	case err == nil && count > 0:
		logger.Info().Int64("restaurants", count).Msg("database already seeded, skipping")
		return
	case err == nil:
		logger.Info().Msg("database empty, seeding")
	case isSchemaMissing(err):
		logger.Info().Msg("schema missing, seeding")
	default:
		logger.Warn().Err(err).Msg("could not check seed state, starting without seeding")
		return
	}

	if err := seeder.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("startup seeding failed")
	}
}

// isSchemaMissing reports whether a probe failure means the tables (or
// the database itself) have not been created yet.
func isSchemaMissing(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case pgUndefinedTable, pgInvalidCatalog, pgUndefinedSchema:
		return true
	}
	return false
}
