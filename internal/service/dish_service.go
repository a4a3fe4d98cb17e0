package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Abhinav-36/Convertcart/internal/model"
	"github.com/Abhinav-36/Convertcart/internal/repository"

	"github.com/rs/zerolog"
)

// dishService implements DishService.
type dishService struct {
	dishRepo repository.DishRepository
	logger   zerolog.Logger
}

// NewDishService creates a new dish service.
func NewDishService(dishRepo repository.DishRepository, logger zerolog.Logger) DishService {
	return &dishService{
		dishRepo: dishRepo,
		logger:   logger.With().Str("service", "dish").Logger(),
	}
}

// Search validates the raw filters, then delegates to the repository.
// Checks run in a fixed order so each bad input gets a distinct
// rejection: blank name, unparsable price, negative price, inverted
// range.
func (s *dishService) Search(ctx context.Context, name, minPrice, maxPrice string) ([]model.DishResult, error) {
	query, err := parseSearchQuery(name, minPrice, maxPrice)
	if err != nil {
		s.logger.Debug().Err(err).
			Str("name", name).
			Str("min_price", minPrice).
			Str("max_price", maxPrice).
			Msg("rejected search filters")
		return nil, err
	}

	results, err := s.dishRepo.SearchDishes(ctx, query)
	if err != nil {
		s.logger.Error().Err(err).
			Str("name", query.Name).
			Msg("failed to search dishes")
		return nil, fmt.Errorf("failed to search dishes: %w", err)
	}

	s.logger.Debug().
		Str("name", query.Name).
		Int("count", len(results)).
		Msg("dish search completed")

	return results, nil
}

// parseSearchQuery turns the raw filter values into a validated query.
func parseSearchQuery(name, minPrice, maxPrice string) (model.SearchQuery, error) {
	dishName := strings.TrimSpace(name)
	if dishName == "" {
		return model.SearchQuery{}, model.ErrMissingParameters
	}

	min, err := parsePrice(minPrice)
	if err != nil {
		return model.SearchQuery{}, err
	}
	max, err := parsePrice(maxPrice)
	if err != nil {
		return model.SearchQuery{}, err
	}

	if min < 0 || max < 0 {
		return model.SearchQuery{}, model.ErrPriceNegative
	}

	if min > max {
		return model.SearchQuery{}, model.ErrPriceMinExceedsMax
	}

	return model.SearchQuery{Name: dishName, MinPrice: min, MaxPrice: max}, nil
}

// parsePrice parses a price filter, rejecting anything that is not a
// finite number.
func parsePrice(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, model.ErrPriceNotNumber
	}
	return v, nil
}
