package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Seeder wipes and repopulates the restaurant tables from the static
// catalog. It holds a single dedicated connection for the whole run and
// is meant to execute at most once per process lifetime; overlapping runs
// are not guarded against.
type Seeder struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewSeeder creates a new seeder backed by the given pool.
func NewSeeder(pool *pgxpool.Pool, logger zerolog.Logger) *Seeder {
	return &Seeder{
		pool:   pool,
		logger: logger.With().Str("component", "seeder").Logger(),
	}
}

// menuRow is a re-read menu item used to resolve order specs against the
// generated ids.
type menuRow struct {
	id    int64
	price float64
}

// menuLookup maps restaurant id -> dish name -> inserted rows in id order.
type menuLookup map[int64]map[string][]menuRow

// Run resets and repopulates all three tables. Any failure aborts the
// whole seed; the dedicated connection is released on every exit path.
func (s *Seeder) Run(ctx context.Context) error {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire seed connection: %w", err)
	}
	defer conn.Release()

	if err := EnsureSchema(ctx, conn, s.logger); err != nil {
		return err
	}

	if err := s.truncateAll(ctx, conn); err != nil {
		return err
	}
	s.logger.Info().Msg("old data cleared")

	restaurantIDs, err := s.insertRestaurants(ctx, conn)
	if err != nil {
		return err
	}
	s.logger.Info().Int("count", len(restaurantIDs)).Msg("restaurants inserted")

	if err := s.insertMenuItems(ctx, conn, restaurantIDs); err != nil {
		return err
	}
	s.logger.Info().Int("count", len(menuItemCatalog)).Msg("menu items inserted")

	lookup, err := s.loadMenuItems(ctx, conn)
	if err != nil {
		return err
	}

	inserted, err := s.insertOrders(ctx, conn, buildOrderRows(restaurantIDs, lookup))
	if err != nil {
		return err
	}
	s.logger.Info().Int64("count", inserted).Msg("orders inserted")

	s.logger.Info().Msg("seeding completed")

	return nil
}

// truncateAll removes every row from all three tables. Postgres refuses
// to truncate a table that other tables reference unless every
// referencing table appears in the same statement, so all three are
// truncated in one command; listing them in dependency order sidesteps
// the foreign-key check without any enforcement toggle. RESTART IDENTITY
// resets the id sequences so a re-seed starts from a clean slate.
func (s *Seeder) truncateAll(ctx context.Context, conn *pgxpool.Conn) error {
	stmt := "TRUNCATE TABLE orders, menu_items, restaurants RESTART IDENTITY"
	if _, err := conn.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}

	return nil
}

// insertRestaurants inserts the restaurant catalog and returns the
// generated ids indexed by catalog position.
func (s *Seeder) insertRestaurants(ctx context.Context, conn *pgxpool.Conn) ([]int64, error) {
	batch := &pgx.Batch{}
	for _, r := range restaurantCatalog {
		batch.Queue("INSERT INTO restaurants (name, city) VALUES ($1, $2)", r.Name, r.City)
	}

	if err := flushBatch(ctx, conn, batch); err != nil {
		return nil, fmt.Errorf("failed to insert restaurants: %w", err)
	}

	// Generated ids are not known in advance; read them back in insertion
	// order to map catalog position to id.
	rows, err := conn.Query(ctx, "SELECT id FROM restaurants ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to read restaurant ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan restaurant id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating restaurant ids: %w", err)
	}

	if len(ids) != len(restaurantCatalog) {
		return nil, fmt.Errorf("expected %d restaurant ids, got %d", len(restaurantCatalog), len(ids))
	}

	return ids, nil
}

// insertMenuItems inserts the menu item catalog, resolving restaurant
// catalog positions to generated ids. Duplicate (restaurant, dish) pairs
// at different prices are distinct rows.
func (s *Seeder) insertMenuItems(ctx context.Context, conn *pgxpool.Conn, restaurantIDs []int64) error {
	batch := &pgx.Batch{}
	for _, mi := range menuItemCatalog {
		if mi.Restaurant < 1 || mi.Restaurant > len(restaurantIDs) {
			return fmt.Errorf("menu item %q references unknown restaurant position %d", mi.DishName, mi.Restaurant)
		}
		batch.Queue(
			"INSERT INTO menu_items (restaurant_id, dish_name, price) VALUES ($1, $2, $3)",
			restaurantIDs[mi.Restaurant-1], mi.DishName, mi.Price,
		)
	}

	if err := flushBatch(ctx, conn, batch); err != nil {
		return fmt.Errorf("failed to insert menu items: %w", err)
	}

	return nil
}

// loadMenuItems re-reads every inserted menu item and builds the
// (restaurant id, dish name) lookup used to resolve order specs.
func (s *Seeder) loadMenuItems(ctx context.Context, conn *pgxpool.Conn) (menuLookup, error) {
	rows, err := conn.Query(ctx,
		"SELECT id, restaurant_id, dish_name, price FROM menu_items ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to read menu items: %w", err)
	}
	defer rows.Close()

	lookup := make(menuLookup)
	for rows.Next() {
		var (
			row          menuRow
			restaurantID int64
			dishName     string
		)
		if err := rows.Scan(&row.id, &restaurantID, &dishName, &row.price); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		byDish, ok := lookup[restaurantID]
		if !ok {
			byDish = make(map[string][]menuRow)
			lookup[restaurantID] = byDish
		}
		byDish[dishName] = append(byDish[dishName], row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating menu items: %w", err)
	}

	return lookup, nil
}

// buildOrderRows expands the order catalog into individual order rows,
// one per counted order. Specs that resolve to no menu item are skipped.
func buildOrderRows(restaurantIDs []int64, lookup menuLookup) [][]any {
	var orders [][]any
	for _, spec := range orderCatalog {
		id, ok := resolveMenuItem(restaurantIDs, lookup, spec)
		if !ok {
			continue
		}
		for i := 0; i < spec.Count; i++ {
			orders = append(orders, []any{id})
		}
	}
	return orders
}

// resolveMenuItem finds the menu item an order spec refers to: the row
// with the exact price when one is given, the first matching row
// otherwise.
func resolveMenuItem(restaurantIDs []int64, lookup menuLookup, spec orderSpec) (int64, bool) {
	if spec.Restaurant < 1 || spec.Restaurant > len(restaurantIDs) {
		return 0, false
	}
	items := lookup[restaurantIDs[spec.Restaurant-1]][spec.DishName]
	if spec.AnyPrice {
		if len(items) > 0 {
			return items[0].id, true
		}
		return 0, false
	}
	for _, it := range items {
		if it.price == spec.Price {
			return it.id, true
		}
	}
	return 0, false
}

// insertOrders bulk-inserts the expanded order rows. An empty order list
// skips the insert entirely.
func (s *Seeder) insertOrders(ctx context.Context, conn *pgxpool.Conn, orders [][]any) (int64, error) {
	if len(orders) == 0 {
		return 0, nil
	}

	count, err := conn.CopyFrom(ctx,
		pgx.Identifier{"orders"},
		[]string{"menu_item_id"},
		pgx.CopyFromRows(orders),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert orders: %w", err)
	}

	return count, nil
}

// flushBatch sends a batch and surfaces the first statement error.
func flushBatch(ctx context.Context, conn *pgxpool.Conn, batch *pgx.Batch) error {
	results := conn.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}

	return nil
}
