package service

import (
	"context"

	"github.com/Abhinav-36/Convertcart/internal/model"
)

// DishService defines the dish search operations.
type DishService interface {
	// Search validates the raw filter values and returns matching dishes
	// ranked by popularity. Validation failures are *model.DomainError.
	Search(ctx context.Context, name, minPrice, maxPrice string) ([]model.DishResult, error)
}
