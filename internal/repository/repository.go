package repository

import (
	"context"

	"github.com/Abhinav-36/Convertcart/internal/model"
)

// DishRepository defines the interface for dish search data access.
type DishRepository interface {
	// SearchDishes returns menu items matching the validated filters,
	// ranked by descending order count and capped at the result limit.
	SearchDishes(ctx context.Context, query model.SearchQuery) ([]model.DishResult, error)

	// CountRestaurants returns the number of restaurant rows. Used by the
	// bootstrap guard to decide whether seeding is needed.
	CountRestaurants(ctx context.Context) (int64, error)
}
