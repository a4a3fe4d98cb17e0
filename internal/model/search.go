package model

// SearchQuery holds validated dish search filters.
type SearchQuery struct {
	Name     string
	MinPrice float64
	MaxPrice float64
}

// DishResult is a single ranked row in a dish search response.
type DishResult struct {
	RestaurantID   int64   `json:"restaurantId"`
	RestaurantName string  `json:"restaurantName"`
	City           string  `json:"city"`
	DishName       string  `json:"dishName"`
	DishPrice      float64 `json:"dishPrice"`
	OrderCount     int64   `json:"orderCount"`
}

// SearchResponse is the payload returned by GET /search/dishes.
type SearchResponse struct {
	Restaurants []DishResult `json:"restaurants"`
}

// HealthResponse is the payload returned by GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
