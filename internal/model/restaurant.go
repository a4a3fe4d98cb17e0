package model

import "time"

// Restaurant is a seeded restaurant. Rows are only ever created by the
// seed loader and removed by a full re-seed.
type Restaurant struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	City      string    `json:"city" db:"city"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// MenuItem is a dish offered by a restaurant. A restaurant may list the
// same dish name more than once at different prices; (restaurant_id,
// dish_name) is not unique.
type MenuItem struct {
	ID           int64     `json:"id" db:"id"`
	RestaurantID int64     `json:"restaurantId" db:"restaurant_id"`
	DishName     string    `json:"dishName" db:"dish_name"`
	Price        float64   `json:"price" db:"price"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// Order is a single unit-of-popularity signal for a menu item. It carries
// no quantity or customer data; the number of order rows referencing a
// menu item is its order count.
type Order struct {
	ID         int64     `json:"id" db:"id"`
	MenuItemID int64     `json:"menuItemId" db:"menu_item_id"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
