package domain_test

import (
	"testing"

	"gourmet-burgers/order-svc/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	regularSize = map[string]int{"regular": 1}
	nuggetSize  = map[string]int{"small": 3, "medium": 6, "large": 9}
	friesSize   = map[string]int{"small": 100, "medium": 150, "large": 200}
	drinkSize   = map[string]int{"small": 250, "medium": 450, "large": 600}
)

func newTestSystem(t *testing.T) *domain.RestaurantSystem {
	t.Helper()
	sys := domain.NewRestaurantSystem()
	inv := sys.Inventory()

	register := func(name, price string, quantity int, typ domain.IngredientType, sizes map[string]int, unit domain.Unit) {
		err := inv.RegisterIngredient(name, decimal.RequireFromString(price), quantity, typ, sizes, unit)
		require.NoError(t, err)
	}

	for _, name := range []string{"tomato", "cheddar cheese", "lettuce", "swiss cheese"} {
		register(name, "1", 100, domain.Filling, regularSize, domain.UnitCount)
	}
	for _, name := range []string{"sesame bun", "muffin bun"} {
		register(name, "1", 100, domain.BurgerBun, regularSize, domain.UnitCount)
	}
	for _, name := range []string{"chicken", "beef"} {
		register(name, "4", 100, domain.Patty, regularSize, domain.UnitCount)
	}
	for _, name := range []string{"flatbread", "wholewheat"} {
		register(name, "1", 100, domain.Wrap, regularSize, domain.UnitCount)
	}
	register("Can Coke", "3", 100, domain.Drink, regularSize, domain.UnitCount)
	register("Orange Juice", "0.01", 10000, domain.Drink, drinkSize, domain.UnitMillilitre)
	register("chicken nugget", "1", 1000, domain.Side, nuggetSize, domain.UnitCount)
	register("fries", "0.01", 1000, domain.Side, friesSize, domain.UnitGram)
	return sys
}

func stockOf(t *testing.T, inv *domain.Inventory, name string) int {
	t.Helper()
	ingredient, err := inv.Lookup(name)
	require.NoError(t, err)
	return ingredient.Quantity
}
