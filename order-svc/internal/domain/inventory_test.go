package domain_test

import (
	"encoding/json"
	"math"
	"testing"

	"gourmet-burgers/order-svc/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventory_RegisterIngredient(t *testing.T) {
	tests := []struct {
		name     string
		ingName  string
		price    string
		quantity int
		typ      domain.IngredientType
		sizes    map[string]int
		unit     domain.Unit
		wantErr  string
	}{
		{
			name: "valid filling", ingName: "Pickles", price: "0.5", quantity: 10,
			typ: domain.Filling, sizes: regularSize, unit: domain.UnitCount,
		},
		{
			name: "empty unit defaults to unit", ingName: "Onion", price: "1", quantity: 0,
			typ: domain.Filling, sizes: regularSize,
		},
		{
			name: "valid drink in ml", ingName: "Apple Juice", price: "0.01", quantity: 5000,
			typ: domain.Drink, sizes: drinkSize, unit: domain.UnitMillilitre,
		},
		{
			name: "negative quantity", ingName: "Onion", price: "1", quantity: -1,
			typ: domain.Filling, sizes: regularSize, unit: domain.UnitCount,
			wantErr: "Please enter positive quantity for onion",
		},
		{
			name: "zero price", ingName: "Onion", price: "0", quantity: 1,
			typ: domain.Filling, sizes: regularSize, unit: domain.UnitCount,
			wantErr: "Please enter valid price for onion",
		},
		{
			name: "unknown unit", ingName: "Onion", price: "1", quantity: 1,
			typ: domain.Filling, sizes: regularSize, unit: domain.Unit("kg"),
			wantErr: "Please enter valid unit",
		},
		{
			name: "ml side", ingName: "gravy", price: "1", quantity: 1,
			typ: domain.Side, sizes: regularSize, unit: domain.UnitMillilitre,
			wantErr: "Gravy must be type drink to be stored in ml",
		},
		{
			name: "ml patty", ingName: "beef soup", price: "1", quantity: 1,
			typ: domain.Patty, sizes: regularSize, unit: domain.UnitMillilitre,
			wantErr: "Beef soup must be type drink to be stored in ml",
		},
		{
			name: "bun in grams", ingName: "brioche", price: "1", quantity: 1,
			typ: domain.BurgerBun, sizes: regularSize, unit: domain.UnitGram,
			wantErr: "Burgerbun must be stored as unit",
		},
		{
			name: "wrap in grams", ingName: "tortilla", price: "1", quantity: 1,
			typ: domain.Wrap, sizes: regularSize, unit: domain.UnitGram,
			wantErr: "Wrap must be stored as unit",
		},
		{
			name: "no serving sizes", ingName: "Onion", price: "1", quantity: 1,
			typ: domain.Filling, sizes: map[string]int{}, unit: domain.UnitCount,
			wantErr: "Please enter serving sizes for onion",
		},
		{
			name: "unknown type", ingName: "Onion", price: "1", quantity: 1,
			typ: domain.IngredientType("dessert"), sizes: regularSize, unit: domain.UnitCount,
			wantErr: "Invalid ingredient type for onion",
		},
		{
			name: "duplicate ignoring case", ingName: "TOMATO", price: "1", quantity: 1,
			typ: domain.Filling, sizes: regularSize, unit: domain.UnitCount,
			wantErr: "tomato already exists",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			sys := newTestSystem(t)
			inv := sys.Inventory()
			before := len(inv.Ingredients())

			err := inv.RegisterIngredient(testCase.ingName, decimal.RequireFromString(testCase.price),
				testCase.quantity, testCase.typ, testCase.sizes, testCase.unit)

			if testCase.wantErr != "" {
				require.Error(t, err)
				assert.True(t, domain.IsInventoryError(err))
				assert.EqualError(t, err, testCase.wantErr)
				assert.Len(t, inv.Ingredients(), before)
				return
			}
			require.NoError(t, err)
			assert.Len(t, inv.Ingredients(), before+1)
			ingredient, err := inv.Lookup(testCase.ingName)
			require.NoError(t, err)
			assert.Equal(t, testCase.quantity, ingredient.Quantity)
			assert.NotEmpty(t, ingredient.Unit)
		})
	}
}

func TestInventory_UnitRulesForEveryType(t *testing.T) {
	for _, typ := range domain.IngredientTypes {
		inv := domain.NewInventory()
		err := inv.RegisterIngredient("thing", decimal.NewFromInt(1), 1, typ, regularSize, domain.UnitMillilitre)
		if typ == domain.Drink {
			assert.NoError(t, err, typ)
		} else {
			assert.True(t, domain.IsInventoryError(err), typ)
		}

		err = domain.NewInventory().RegisterIngredient("thing", decimal.NewFromInt(1), 1, typ, regularSize, domain.UnitGram)
		switch typ {
		case domain.BurgerBun, domain.Wrap, domain.Filling, domain.Patty:
			assert.True(t, domain.IsInventoryError(err), typ)
		default:
			assert.NoError(t, err, typ)
		}
	}
}

func TestInventory_Lookup(t *testing.T) {
	inv := newTestSystem(t).Inventory()

	ingredient, err := inv.Lookup("CAN COKE")
	require.NoError(t, err)
	assert.Equal(t, "Can Coke", ingredient.Name)
	assert.Equal(t, domain.Drink, ingredient.Type)

	_, err = inv.Lookup("pineapple ring")
	assert.True(t, domain.IsInventoryError(err))
	assert.EqualError(t, err, "Pineapple ring does not exist")
}

func TestInventory_LookupReturnsCopy(t *testing.T) {
	inv := newTestSystem(t).Inventory()

	ingredient, err := inv.Lookup("fries")
	require.NoError(t, err)
	ingredient.Quantity = 0
	ingredient.ServingSizes["small"] = 1

	assert.Equal(t, 1000, stockOf(t, inv, "fries"))
	fries, _ := inv.Lookup("fries")
	assert.Equal(t, 100, fries.ServingSizes["small"])
}

func TestInventory_DecreaseStockForSide(t *testing.T) {
	tests := []struct {
		name      string
		item      string
		quantity  int
		size      string
		wantStock int
		wantErr   string
	}{
		{name: "medium fries", item: "fries", quantity: 2, size: "medium", wantStock: 700},
		{name: "large nuggets", item: "Chicken Nugget", quantity: 1, size: "large", wantStock: 991},
		{name: "whole stock", item: "fries", quantity: 5, size: "large", wantStock: 0},
		{name: "unknown size", item: "fries", quantity: 1, size: "regular", wantStock: 1000, wantErr: "Incorrect serving size for fries"},
		{name: "insufficient", item: "fries", quantity: 6, size: "large", wantStock: 1000, wantErr: "Insufficient stock for fries"},
		{name: "unknown item", item: "onion rings", quantity: 1, size: "small", wantErr: "Onion rings does not exist"},
		{name: "quantity times serving overflows", item: "fries", quantity: math.MaxInt/75 + 2, size: "small", wantStock: 1000, wantErr: "Quantity too large for fries"},
		{name: "max quantity of nuggets", item: "chicken nugget", quantity: math.MaxInt, size: "medium", wantStock: 1000, wantErr: "Quantity too large for chicken nugget"},
		{name: "negative quantity", item: "fries", quantity: -1, size: "small", wantStock: 1000, wantErr: "Invalid quantity for fries"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			inv := newTestSystem(t).Inventory()
			err := inv.DecreaseStockForSide(testCase.item, testCase.quantity, testCase.size)
			if testCase.wantErr != "" {
				assert.True(t, domain.IsInventoryError(err))
				assert.EqualError(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
			}
			if testCase.wantStock > 0 || testCase.wantErr == "" {
				assert.Equal(t, testCase.wantStock, stockOf(t, inv, testCase.item))
			}
		})
	}
}

func TestInventory_DecreaseStockForMainsIsAtomic(t *testing.T) {
	inv := newTestSystem(t).Inventory()

	err := inv.DecreaseStockForMains(map[string]int{"sesame bun": 2, "beef": 101, "tomato": 1})
	assert.True(t, domain.IsInventoryError(err))
	assert.EqualError(t, err, "Insufficient stock for beef")

	for _, name := range []string{"sesame bun", "beef", "tomato"} {
		assert.Equal(t, 100, stockOf(t, inv, name), name)
	}

	require.NoError(t, inv.DecreaseStockForMains(map[string]int{"sesame bun": 2, "beef": 100, "tomato": 1}))
	assert.Equal(t, 98, stockOf(t, inv, "sesame bun"))
	assert.Equal(t, 0, stockOf(t, inv, "beef"))
	assert.Equal(t, 99, stockOf(t, inv, "tomato"))
}

func TestInventory_DecreaseStockForMainsSumsCaseVariants(t *testing.T) {
	inv := newTestSystem(t).Inventory()

	err := inv.DecreaseStockForMains(map[string]int{"beef": 60, "BEEF": 60, "tomato": 1})
	assert.EqualError(t, err, "Insufficient stock for beef")
	assert.Equal(t, 100, stockOf(t, inv, "beef"))
	assert.Equal(t, 100, stockOf(t, inv, "tomato"))

	err = inv.DecreaseStockForMains(map[string]int{"beef": math.MaxInt, "BEEF": 2, "tomato": 1})
	assert.True(t, domain.IsInventoryError(err))
	assert.EqualError(t, err, "Quantity too large for beef")
	assert.Equal(t, 100, stockOf(t, inv, "beef"))
	assert.Equal(t, 100, stockOf(t, inv, "tomato"))

	err = inv.DecreaseStockForMains(map[string]int{"beef": 5, "Beef": -10})
	assert.EqualError(t, err, "Invalid quantity for beef")
	assert.Equal(t, 100, stockOf(t, inv, "beef"))
}

func TestInventory_CheckSufficientStock(t *testing.T) {
	inv := newTestSystem(t).Inventory()

	ok, err := inv.CheckSufficientStock("fries", 5, "large")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = inv.CheckSufficientStock("fries", 7, "medium")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = inv.CheckSufficientStock("beef", 100, domain.RegularSize)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = inv.CheckSufficientStock("fries", math.MaxInt, "small")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = inv.CheckSufficientStock("fries", 1, "jumbo")
	assert.True(t, domain.IsInventoryError(err))

	assert.Equal(t, 1000, stockOf(t, inv, "fries"))
}

func TestInventory_ApplyAdjustment(t *testing.T) {
	t.Run("restock and correct", func(t *testing.T) {
		inv := newTestSystem(t).Inventory()
		err := inv.ApplyAdjustment(map[string]int{"beef": 20, "tomato": -30, "lettuce": 0})
		require.NoError(t, err)
		assert.Equal(t, 120, stockOf(t, inv, "beef"))
		assert.Equal(t, 70, stockOf(t, inv, "tomato"))
		assert.Equal(t, 100, stockOf(t, inv, "lettuce"))
	})

	t.Run("failure keeps earlier entries", func(t *testing.T) {
		inv := newTestSystem(t).Inventory()
		// applied in name order: beef, lettuce, tomato
		err := inv.ApplyAdjustment(map[string]int{"beef": 5, "lettuce": -101, "tomato": 5})
		assert.True(t, domain.IsInventoryError(err))
		assert.EqualError(t, err, "Insufficient stock for lettuce")
		assert.Equal(t, 105, stockOf(t, inv, "beef"))
		assert.Equal(t, 100, stockOf(t, inv, "lettuce"))
		assert.Equal(t, 100, stockOf(t, inv, "tomato"))
	})

	t.Run("unknown ingredient", func(t *testing.T) {
		inv := newTestSystem(t).Inventory()
		err := inv.ApplyAdjustment(map[string]int{"avocado": 5})
		assert.EqualError(t, err, "Avocado does not exist")
	})

	limits := []struct {
		name     string
		quantity int
		wantErr  string
	}{
		{name: "smallest int removal", quantity: math.MinInt, wantErr: "Invalid quantity for beef"},
		{name: "restock past int limit", quantity: math.MaxInt, wantErr: "Stock limit exceeded for beef"},
		{name: "restock one past int limit", quantity: math.MaxInt - 99, wantErr: "Stock limit exceeded for beef"},
	}
	for _, testCase := range limits {
		t.Run(testCase.name, func(t *testing.T) {
			inv := newTestSystem(t).Inventory()
			err := inv.ApplyAdjustment(map[string]int{"beef": testCase.quantity})
			assert.True(t, domain.IsInventoryError(err))
			assert.EqualError(t, err, testCase.wantErr)
			assert.Equal(t, 100, stockOf(t, inv, "beef"))
		})
	}

	t.Run("restock up to int limit", func(t *testing.T) {
		inv := newTestSystem(t).Inventory()
		require.NoError(t, inv.ApplyAdjustment(map[string]int{"beef": math.MaxInt - 100}))
		assert.Equal(t, math.MaxInt, stockOf(t, inv, "beef"))
	})
}

func TestInventory_HasAvailable(t *testing.T) {
	inv := newTestSystem(t).Inventory()
	assert.True(t, inv.HasAvailable(domain.Patty))
	assert.True(t, inv.HasAvailable(domain.Side))

	require.NoError(t, inv.ApplyAdjustment(map[string]int{"beef": -100, "chicken": -100}))
	assert.False(t, inv.HasAvailable(domain.Patty))

	// 100 g left equals one small serving of fries, which is not enough
	require.NoError(t, inv.ApplyAdjustment(map[string]int{"fries": -900, "chicken nugget": -1000}))
	assert.False(t, inv.HasAvailable(domain.Side))

	assert.True(t, inv.HasAvailable(domain.Drink))
}

func TestInventory_JSONRoundTrip(t *testing.T) {
	inv := newTestSystem(t).Inventory()
	require.NoError(t, inv.ApplyAdjustment(map[string]int{"beef": -3}))

	data, err := json.Marshal(inv)
	require.NoError(t, err)

	restored := domain.NewInventory()
	require.NoError(t, json.Unmarshal(data, restored))

	assert.Equal(t, inv.Ingredients(), restored.Ingredients())
	assert.Equal(t, 97, stockOf(t, restored, "BEEF"))
}
