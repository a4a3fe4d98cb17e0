package seed

// The seed catalog is deliberately static sample data, not configuration.
// Restaurants are referenced by 1-based catalog position because their
// database ids are only known after insertion.

type seedRestaurant struct {
	Name string
	City string
}

type seedMenuItem struct {
	Restaurant int // 1-based catalog position
	DishName   string
	Price      float64
}

// orderSpec expands into Count individual order rows against one menu
// item. When AnyPrice is set the first matching (restaurant, dish) row is
// used; otherwise the price must match exactly. A spec that resolves to
// no menu item contributes nothing.
type orderSpec struct {
	Restaurant int
	DishName   string
	Price      float64
	AnyPrice   bool
	Count      int
}

var restaurantCatalog = []seedRestaurant{
	{"Hyderabadi Spice House", "Hyderabad"},
	{"Delhi Darbar", "Delhi"},
	{"Mumbai Masala", "Mumbai"},
	{"Chennai Curry Point", "Chennai"},
	{"Bangalore Biryani", "Bangalore"},
	{"Pune Palace", "Pune"},
	{"Kolkata Kitchen", "Kolkata"},
	{"Jaipur Junction", "Jaipur"},
	{"Ahmedabad Aroma", "Ahmedabad"},
	{"Lucknow Legacy", "Lucknow"},
}

var menuItemCatalog = []seedMenuItem{
	{1, "Chicken Biryani", 220},
	{1, "Mutton Biryani", 280},
	{1, "Veg Biryani", 150},
	{1, "Butter Chicken", 250},
	{1, "Paneer Tikka", 180},
	{2, "Chicken Biryani", 200},
	{2, "Chicken Biryani", 240}, // premium version
	{2, "Veg Biryani", 160},
	{2, "Dal Makhani", 180},
	{2, "Naan", 50},
	{3, "Chicken Biryani", 230},
	{3, "Fish Biryani", 260},
	{3, "Pav Bhaji", 120},
	{3, "Vada Pav", 30},
	{3, "Dosa", 80},
	{4, "Chicken Biryani", 210},
	{4, "Egg Biryani", 190},
	{4, "Idli", 60},
	{4, "Sambar", 40},
	{4, "Rasam", 35},
	{5, "Chicken Biryani", 225},
	{5, "Mutton Biryani", 290},
	{5, "Veg Biryani", 155},
	{5, "Chicken Curry", 200},
	{5, "Roti", 20},
	{6, "Chicken Biryani", 215},
	{6, "Veg Biryani", 145},
	{6, "Misal Pav", 100},
	{6, "Bhel Puri", 60},
	{6, "Puran Poli", 80},
	{7, "Chicken Biryani", 205},
	{7, "Fish Biryani", 250},
	{7, "Rasgulla", 50},
	{7, "Sandesh", 60},
	{7, "Kathi Roll", 90},
	{8, "Chicken Biryani", 235},
	{8, "Dal Baati", 180},
	{8, "Gatte Ki Sabzi", 160},
	{8, "Rajasthani Thali", 300},
	{8, "Lassi", 40},
	{9, "Chicken Biryani", 195},
	{9, "Dhokla", 70},
	{9, "Gujarati Thali", 250},
	{9, "Fafda", 50},
	{9, "Jalebi", 40},
	{10, "Chicken Biryani", 240},
	{10, "Mutton Biryani", 300},
	{10, "Kebabs", 220},
	{10, "Nihari", 180},
	{10, "Sheermal", 30},
}

var orderCatalog = []orderSpec{
	// Chicken Biryani orders across restaurants
	{Restaurant: 1, DishName: "Chicken Biryani", Price: 220, Count: 96},
	{Restaurant: 2, DishName: "Chicken Biryani", Price: 200, Count: 85},
	{Restaurant: 3, DishName: "Chicken Biryani", Price: 230, Count: 72},
	{Restaurant: 4, DishName: "Chicken Biryani", Price: 210, Count: 68},
	{Restaurant: 5, DishName: "Chicken Biryani", Price: 225, Count: 91},
	{Restaurant: 6, DishName: "Chicken Biryani", Price: 215, Count: 55},
	{Restaurant: 7, DishName: "Chicken Biryani", Price: 205, Count: 63},
	{Restaurant: 8, DishName: "Chicken Biryani", Price: 235, Count: 78},
	{Restaurant: 9, DishName: "Chicken Biryani", Price: 195, Count: 45},
	{Restaurant: 10, DishName: "Chicken Biryani", Price: 240, Count: 88},

	// Other biryani types
	{Restaurant: 1, DishName: "Mutton Biryani", Price: 280, Count: 45},
	{Restaurant: 5, DishName: "Mutton Biryani", Price: 290, Count: 52},
	{Restaurant: 10, DishName: "Mutton Biryani", Price: 300, Count: 60},
	{Restaurant: 3, DishName: "Fish Biryani", Price: 260, Count: 38},
	{Restaurant: 4, DishName: "Egg Biryani", Price: 190, Count: 42},
	{Restaurant: 1, DishName: "Veg Biryani", Price: 150, Count: 35},
	{Restaurant: 2, DishName: "Veg Biryani", Price: 160, Count: 28},
	{Restaurant: 5, DishName: "Veg Biryani", Price: 155, Count: 31},
	{Restaurant: 6, DishName: "Veg Biryani", Price: 145, Count: 22},

	// A few other popular dishes
	{Restaurant: 1, DishName: "Butter Chicken", Price: 250, Count: 15},
	{Restaurant: 1, DishName: "Paneer Tikka", Price: 180, Count: 12},
	{Restaurant: 2, DishName: "Dal Makhani", Price: 180, Count: 8},
	{Restaurant: 3, DishName: "Pav Bhaji", Price: 120, Count: 10},
}
