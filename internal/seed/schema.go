package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// Execer is the subset of pgx connection behaviour the schema manager
// needs. Both *pgxpool.Pool and *pgxpool.Conn satisfy it.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Cascading foreign keys keep the stores referentially intact: removing a
// restaurant removes its menu items, removing a menu item removes its
// orders. The menu_items indexes back the search filter and join.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS restaurants (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		city TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS menu_items (
		id BIGSERIAL PRIMARY KEY,
		restaurant_id BIGINT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		dish_name TEXT NOT NULL,
		price NUMERIC(10, 2) NOT NULL CHECK (price >= 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_menu_items_restaurant_id ON menu_items(restaurant_id)`,
	`CREATE INDEX IF NOT EXISTS idx_menu_items_dish_name ON menu_items(dish_name)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id BIGSERIAL PRIMARY KEY,
		menu_item_id BIGINT NOT NULL REFERENCES menu_items(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_menu_item_id ON orders(menu_item_id)`,
}

// EnsureSchema creates the restaurants, menu_items and orders tables and
// their indexes when they do not exist. Calling it against an already
// provisioned database is a no-op.
func EnsureSchema(ctx context.Context, db Execer, logger zerolog.Logger) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}

	logger.Debug().Msg("schema ensured")

	return nil
}
