package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalogLookup builds the same lookup the seeder derives from the
// database, using synthetic ids, so order resolution can be checked
// without a store.
func catalogLookup() ([]int64, menuLookup) {
	ids := make([]int64, len(restaurantCatalog))
	for i := range ids {
		ids[i] = int64(i + 1)
	}

	lookup := make(menuLookup)
	for i, mi := range menuItemCatalog {
		restaurantID := ids[mi.Restaurant-1]
		byDish, ok := lookup[restaurantID]
		if !ok {
			byDish = make(map[string][]menuRow)
			lookup[restaurantID] = byDish
		}
		byDish[mi.DishName] = append(byDish[mi.DishName], menuRow{id: int64(i + 1), price: mi.Price})
	}
	return ids, lookup
}

func TestCatalogConsistency(t *testing.T) {
	assert.Len(t, restaurantCatalog, 10)
	assert.Len(t, menuItemCatalog, 50)

	for _, mi := range menuItemCatalog {
		assert.GreaterOrEqual(t, mi.Restaurant, 1)
		assert.LessOrEqual(t, mi.Restaurant, len(restaurantCatalog))
		assert.NotEmpty(t, mi.DishName)
		assert.GreaterOrEqual(t, mi.Price, 0.0)
	}

	for _, spec := range orderCatalog {
		assert.GreaterOrEqual(t, spec.Restaurant, 1)
		assert.LessOrEqual(t, spec.Restaurant, len(restaurantCatalog))
		assert.Positive(t, spec.Count)
	}
}

func TestCatalogOrderSpecsResolve(t *testing.T) {
	ids, lookup := catalogLookup()

	for _, spec := range orderCatalog {
		_, ok := resolveMenuItem(ids, lookup, spec)
		assert.True(t, ok, "order spec for restaurant %d dish %q at %.0f should resolve",
			spec.Restaurant, spec.DishName, spec.Price)
	}
}

func TestEveryRestaurantCarriesChickenBiryani(t *testing.T) {
	carrying := make(map[int]bool)
	for _, mi := range menuItemCatalog {
		if mi.DishName == "Chicken Biryani" {
			carrying[mi.Restaurant] = true
		}
	}
	assert.Len(t, carrying, len(restaurantCatalog))
}

func TestResolveMenuItem(t *testing.T) {
	ids, lookup := catalogLookup()

	t.Run("exact price match on duplicate dish", func(t *testing.T) {
		// Restaurant 2 lists Chicken Biryani at both 200 and 240.
		standard, ok := resolveMenuItem(ids, lookup, orderSpec{Restaurant: 2, DishName: "Chicken Biryani", Price: 200})
		require.True(t, ok)
		premium, ok := resolveMenuItem(ids, lookup, orderSpec{Restaurant: 2, DishName: "Chicken Biryani", Price: 240})
		require.True(t, ok)
		assert.NotEqual(t, standard, premium)
	})

	t.Run("any price takes first matching row", func(t *testing.T) {
		first, ok := resolveMenuItem(ids, lookup, orderSpec{Restaurant: 2, DishName: "Chicken Biryani", AnyPrice: true})
		require.True(t, ok)
		exact, ok := resolveMenuItem(ids, lookup, orderSpec{Restaurant: 2, DishName: "Chicken Biryani", Price: 200})
		require.True(t, ok)
		assert.Equal(t, exact, first)
	})

	t.Run("unknown dish does not resolve", func(t *testing.T) {
		_, ok := resolveMenuItem(ids, lookup, orderSpec{Restaurant: 1, DishName: "Sushi", Price: 500})
		assert.False(t, ok)
	})

	t.Run("price mismatch does not resolve", func(t *testing.T) {
		_, ok := resolveMenuItem(ids, lookup, orderSpec{Restaurant: 1, DishName: "Chicken Biryani", Price: 999})
		assert.False(t, ok)
	})

	t.Run("restaurant position out of range", func(t *testing.T) {
		_, ok := resolveMenuItem(ids, lookup, orderSpec{Restaurant: 11, DishName: "Chicken Biryani", Price: 220})
		assert.False(t, ok)
	})
}

func TestBuildOrderRows(t *testing.T) {
	ids, lookup := catalogLookup()

	rows := buildOrderRows(ids, lookup)

	total := 0
	for _, spec := range orderCatalog {
		total += spec.Count
	}
	assert.Len(t, rows, total, "every catalog order spec resolves, so every count becomes a row")

	// The top seller is restaurant 1's Chicken Biryani with 96 orders.
	topID, ok := resolveMenuItem(ids, lookup, orderSpec{Restaurant: 1, DishName: "Chicken Biryani", Price: 220})
	require.True(t, ok)
	topCount := 0
	perItem := make(map[int64]int)
	for _, row := range rows {
		require.Len(t, row, 1)
		id := row[0].(int64)
		perItem[id]++
		if id == topID {
			topCount++
		}
	}
	assert.Equal(t, 96, topCount)
	for _, count := range perItem {
		assert.LessOrEqual(t, count, topCount)
	}
}

func TestBuildOrderRows_SkipsUnresolvable(t *testing.T) {
	ids, lookup := catalogLookup()

	rows := buildOrderRows(ids, menuLookup{})
	assert.Empty(t, rows, "nothing to resolve against means no order rows")

	// A lookup that only knows one dish keeps only that dish's specs.
	partial := menuLookup{
		ids[0]: {"Chicken Biryani": lookup[ids[0]]["Chicken Biryani"]},
	}
	rows = buildOrderRows(ids, partial)
	assert.Len(t, rows, 96)
}
