package repository

import (
	"context"
	"fmt"

	"github.com/Abhinav-36/Convertcart/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// searchLimit caps the number of rows a dish search returns.
const searchLimit = 10

// dishRepository implements the DishRepository interface using PostgreSQL.
type dishRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewDishRepository creates a new PostgreSQL-backed dish repository.
func NewDishRepository(pool *pgxpool.Pool, logger zerolog.Logger) DishRepository {
	return &dishRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "dish").Logger(),
	}
}

// SearchDishes returns menu items whose dish name contains the filter
// (case-insensitive) and whose price lies within [MinPrice, MaxPrice],
// ranked by descending order count. Menu items with no orders are kept
// with a count of zero; the LEFT JOIN must not drop them. Ties are broken
// by menu item id so repeated runs against unchanged data are stable.
func (r *dishRepository) SearchDishes(ctx context.Context, q model.SearchQuery) ([]model.DishResult, error) {
	query := `
		SELECT
			r.id,
			r.name,
			r.city,
			mi.dish_name,
			mi.price,
			COUNT(o.id) AS order_count
		FROM restaurants r
		INNER JOIN menu_items mi ON mi.restaurant_id = r.id
		LEFT JOIN orders o ON o.menu_item_id = mi.id
		WHERE mi.dish_name ILIKE '%' || $1 || '%'
			AND mi.price >= $2
			AND mi.price <= $3
		GROUP BY r.id, r.name, r.city, mi.id, mi.dish_name, mi.price
		ORDER BY order_count DESC, mi.id
		LIMIT $4
	`

	rows, err := r.pool.Query(ctx, query, q.Name, q.MinPrice, q.MaxPrice, searchLimit)
	if err != nil {
		r.logger.Error().Err(err).
			Str("name", q.Name).
			Float64("min_price", q.MinPrice).
			Float64("max_price", q.MaxPrice).
			Msg("failed to query dishes")
		return nil, fmt.Errorf("failed to query dishes: %w", err)
	}
	defer rows.Close()

	results := make([]model.DishResult, 0, searchLimit)
	for rows.Next() {
		var d model.DishResult
		err := rows.Scan(&d.RestaurantID, &d.RestaurantName, &d.City, &d.DishName, &d.DishPrice, &d.OrderCount)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan dish row")
			return nil, fmt.Errorf("failed to scan dish: %w", err)
		}
		results = append(results, d)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating dish rows")
		return nil, fmt.Errorf("error iterating dishes: %w", err)
	}

	return results, nil
}

// CountRestaurants returns the number of restaurant rows.
func (r *dishRepository) CountRestaurants(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM restaurants").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count restaurants: %w", err)
	}
	return count, nil
}
