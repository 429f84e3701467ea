package domain_test

import (
	"encoding/json"
	"math"
	"testing"

	"gourmet-burgers/order-svc/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder_AddBurger(t *testing.T) {
	sys := newTestSystem(t)
	inv := sys.Inventory()
	order := sys.CreateOrder()

	ingredients := map[string]int{"sesame bun": 2, "beef": 1, "tomato": 1, "cheddar cheese": 1}
	require.NoError(t, order.AddBurger(inv, ingredients))

	require.Len(t, order.Mains(), 1)
	assert.Empty(t, order.SidesAndDrinks())
	assert.Equal(t, ingredients, order.Mains()[0].Ingredients())

	total, err := order.TotalPrice(inv)
	require.NoError(t, err)
	assert.Equal(t, "8", total.String())

	assert.Equal(t, 98, stockOf(t, inv, "sesame bun"))
	assert.Equal(t, 99, stockOf(t, inv, "beef"))
	assert.Equal(t, 99, stockOf(t, inv, "tomato"))
	assert.Equal(t, 99, stockOf(t, inv, "cheddar cheese"))
}

func TestOrder_AddBurgerSnapshotsIngredients(t *testing.T) {
	sys := newTestSystem(t)
	order := sys.CreateOrder()

	ingredients := map[string]int{"sesame bun": 2, "beef": 1}
	require.NoError(t, order.AddBurger(sys.Inventory(), ingredients))
	ingredients["beef"] = 50

	assert.Equal(t, 1, order.Mains()[0].Ingredients()["beef"])
}

func TestOrder_AddMultipleBurgers(t *testing.T) {
	sys := newTestSystem(t)
	inv := sys.Inventory()
	order := sys.CreateOrder()

	for patties := 1; patties <= 4; patties++ {
		err := order.AddBurger(inv, map[string]int{"tomato": 1, "cheddar cheese": 1, "beef": patties, "sesame bun": patties + 1})
		require.NoError(t, err)
	}

	assert.Len(t, order.Mains(), 4)
	assert.Equal(t, 90, stockOf(t, inv, "beef"))
	assert.Equal(t, 86, stockOf(t, inv, "sesame bun"))
	assert.Equal(t, 96, stockOf(t, inv, "tomato"))

	total, err := order.TotalPrice(inv)
	require.NoError(t, err)
	// 10 patties at 4, 14 buns, 4 tomato, 4 cheese
	assert.Equal(t, "62", total.String())
}

func TestOrder_AddBurgerFailuresLeaveOrderUnchanged(t *testing.T) {
	tests := []struct {
		name        string
		ingredients map[string]int
		wantErr     string
		orderErr    bool
	}{
		{name: "no buns", ingredients: map[string]int{"beef": 1, "tomato": 1}, wantErr: "Number of buns must be between 2 and 2", orderErr: true},
		{name: "too many buns", ingredients: map[string]int{"beef": 2, "sesame bun": 4}, wantErr: "Number of buns must be between 2 and 3", orderErr: true},
		{name: "insufficient stock", ingredients: map[string]int{"beef": 101, "sesame bun": 2, "tomato": 1}, wantErr: "Insufficient stock for beef"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			sys := newTestSystem(t)
			inv := sys.Inventory()
			order := sys.CreateOrder()

			err := order.AddBurger(inv, testCase.ingredients)
			assert.EqualError(t, err, testCase.wantErr)
			assert.Equal(t, testCase.orderErr, domain.IsOrderError(err))
			assert.Equal(t, !testCase.orderErr, domain.IsInventoryError(err))
			assert.Empty(t, order.Mains())
			for name := range testCase.ingredients {
				assert.Equal(t, 100, stockOf(t, inv, name), name)
			}
		})
	}
}

func TestOrder_AddStandardItems(t *testing.T) {
	sys := newTestSystem(t)
	inv := sys.Inventory()
	order := sys.CreateOrder()

	require.NoError(t, order.AddStandardBurger(inv))
	require.NoError(t, order.AddStandardWrap(inv))

	assert.Len(t, order.Mains(), 2)
	assert.Equal(t, 98, stockOf(t, inv, "cheddar cheese"))
	assert.Equal(t, 99, stockOf(t, inv, "flatbread"))
	assert.Equal(t, 99, stockOf(t, inv, "chicken"))

	total, err := order.TotalPrice(inv)
	require.NoError(t, err)
	assert.Equal(t, "15", total.String())
}

func TestOrder_AddSideAndDrink(t *testing.T) {
	sys := newTestSystem(t)
	inv := sys.Inventory()
	order := sys.CreateOrder()

	require.NoError(t, order.AddSide(inv, "fries", 1, "medium"))
	require.NoError(t, order.AddSide(inv, "chicken nugget", 2, "small"))
	require.NoError(t, order.AddDrink(inv, "Orange Juice", 1, "large"))
	require.NoError(t, order.AddDrink(inv, "can coke", 2, "regular"))

	assert.Len(t, order.SidesAndDrinks(), 4)
	assert.Equal(t, 850, stockOf(t, inv, "fries"))
	assert.Equal(t, 994, stockOf(t, inv, "chicken nugget"))
	assert.Equal(t, 9400, stockOf(t, inv, "orange juice"))
	assert.Equal(t, 98, stockOf(t, inv, "can coke"))

	total, err := order.TotalPrice(inv)
	require.NoError(t, err)
	// 1.5 fries + 6 nuggets + 6 juice + 6 coke
	assert.Equal(t, "19.5", total.String())
}

func TestOrder_AddSideFailures(t *testing.T) {
	sys := newTestSystem(t)
	inv := sys.Inventory()
	order := sys.CreateOrder()

	err := order.AddSide(inv, "fries", -1, "small")
	assert.True(t, domain.IsOrderError(err))
	assert.EqualError(t, err, "Cannot enter negative quantity")

	err = order.AddDrink(inv, "orange juice", 1, "regular")
	assert.True(t, domain.IsInventoryError(err))
	assert.EqualError(t, err, "Incorrect serving size for orange juice")

	err = order.AddSide(inv, "fries", 6, "large")
	assert.EqualError(t, err, "Insufficient stock for fries")

	assert.Empty(t, order.SidesAndDrinks())
	assert.Equal(t, 1000, stockOf(t, inv, "fries"))
}

func TestOrder_AddItemsRejectOverflowingQuantities(t *testing.T) {
	sys := newTestSystem(t)
	inv := sys.Inventory()
	order := sys.CreateOrder()
	require.NoError(t, order.AddSide(inv, "fries", 1, "small"))

	err := order.AddSide(inv, "fries", math.MaxInt/75+2, "small")
	assert.True(t, domain.IsInventoryError(err))
	assert.EqualError(t, err, "Quantity too large for fries")
	assert.Equal(t, 900, stockOf(t, inv, "fries"))
	assert.Len(t, order.SidesAndDrinks(), 1)

	err = order.AddBurger(inv, map[string]int{"sesame bun": 2, "beef": math.MaxInt, "BEEF": 2})
	assert.True(t, domain.IsOrderError(err))
	assert.EqualError(t, err, "Quantity too large")
	assert.Equal(t, 100, stockOf(t, inv, "beef"))
	assert.Equal(t, 100, stockOf(t, inv, "sesame bun"))
	assert.Empty(t, order.Mains())

	total, err := order.TotalPrice(inv)
	require.NoError(t, err)
	assert.Equal(t, "1", total.String())
}

func TestOrder_PaidOrderRejectsItems(t *testing.T) {
	sys := newTestSystem(t)
	inv := sys.Inventory()
	order := sys.CreateOrder()
	require.NoError(t, order.AddStandardBurger(inv))
	require.NoError(t, order.SubmitAndPay(true))

	attempts := map[string]func() error{
		"burger": func() error { return order.AddBurger(inv, map[string]int{"sesame bun": 2, "beef": 1}) },
		"wrap":   func() error { return order.AddWrap(inv, map[string]int{"flatbread": 1}) },
		"side":   func() error { return order.AddSide(inv, "fries", 1, "small") },
		"drink":  func() error { return order.AddDrink(inv, "can coke", 1, "regular") },
	}
	for name, attempt := range attempts {
		err := attempt()
		assert.True(t, domain.IsOrderError(err), name)
		assert.EqualError(t, err, "Order is already complete, please start new order.", name)
	}

	assert.Len(t, order.Mains(), 1)
	assert.Empty(t, order.SidesAndDrinks())
	assert.Equal(t, 98, stockOf(t, inv, "sesame bun"))
	assert.Equal(t, 1000, stockOf(t, inv, "fries"))
}

func TestOrder_SubmitAndPay(t *testing.T) {
	sys := newTestSystem(t)
	inv := sys.Inventory()
	order := sys.CreateOrder()

	err := order.SubmitAndPay(true)
	assert.True(t, domain.IsOrderError(err))
	assert.EqualError(t, err, "Must order before checkout")
	assert.False(t, order.Paid())

	require.NoError(t, order.AddSide(inv, "fries", 1, "small"))

	err = order.SubmitAndPay(false)
	assert.EqualError(t, err, "Payment unsuccessful")
	assert.False(t, order.Paid())

	require.NoError(t, order.SubmitAndPay(true))
	assert.True(t, order.Paid())
	assert.Equal(t, domain.StatusActive, order.Status())

	order.MarkPrepared()
	assert.Equal(t, domain.StatusFinished, order.Status())
}

func TestOrder_CancelRestoresStock(t *testing.T) {
	sys := newTestSystem(t)
	inv := sys.Inventory()
	order := sys.CreateOrder()

	require.NoError(t, order.AddBurger(inv, map[string]int{"sesame bun": 3, "beef": 2, "swiss cheese": 4}))
	require.NoError(t, order.AddStandardWrap(inv))
	require.NoError(t, order.AddSide(inv, "fries", 2, "large"))
	require.NoError(t, order.AddDrink(inv, "orange juice", 1, "medium"))

	require.NoError(t, order.Cancel(inv))

	for _, ingredient := range inv.Ingredients() {
		switch ingredient.Name {
		case "fries", "chicken nugget":
			assert.Equal(t, 1000, ingredient.Quantity, ingredient.Name)
		case "Orange Juice":
			assert.Equal(t, 10000, ingredient.Quantity, ingredient.Name)
		default:
			assert.Equal(t, 100, ingredient.Quantity, ingredient.Name)
		}
	}
}

func TestOrder_CancelWithMalformedMain(t *testing.T) {
	sys := newTestSystem(t)
	inv := sys.Inventory()

	var order domain.Order
	raw := `{"id":9,"mains":[{"ingredients":{"tomato":-150}}],"sides_and_drinks":[]}`
	require.NoError(t, json.Unmarshal([]byte(raw), &order))

	err := order.Cancel(inv)
	assert.True(t, domain.IsInventoryError(err))
	assert.Equal(t, 100, stockOf(t, inv, "tomato"))

	malformed := domain.NewMain(map[string]int{"tomato": -5, "beef": 1})
	cost, err := malformed.Cost(inv)
	require.NoError(t, err)
	assert.Equal(t, "4", cost.String())
	assert.Equal(t, "Main Order: Ingredients List\nbeef Qty: 1", malformed.String())
}

func TestOrder_CancelIsAllOrNothing(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(t *testing.T, inv *domain.Inventory)
		raw     string
		wantErr string
		watched []string
	}{
		{
			name: "negative entry beyond stock",
			prepare: func(t *testing.T, inv *domain.Inventory) {
				require.NoError(t, inv.ApplyAdjustment(map[string]int{"tomato": -100}))
			},
			raw:     `{"id":3,"mains":[{"ingredients":{"beef":1,"tomato":-5}}],"sides_and_drinks":[{"name":"fries","quantity":1,"serving_size":"large"}]}`,
			wantErr: "Insufficient stock for tomato",
			watched: []string{"beef", "tomato", "fries"},
		},
		{
			name: "restock past int limit",
			prepare: func(t *testing.T, inv *domain.Inventory) {
				require.NoError(t, inv.ApplyAdjustment(map[string]int{"lettuce": math.MaxInt - 100}))
			},
			raw:     `{"id":4,"mains":[{"ingredients":{"beef":2,"lettuce":1}}],"sides_and_drinks":[]}`,
			wantErr: "Stock limit exceeded for lettuce",
			watched: []string{"beef", "lettuce"},
		},
		{
			name:    "serving quantity overflows",
			raw:     `{"id":5,"mains":[{"ingredients":{"beef":1}}],"sides_and_drinks":[{"name":"chicken nugget","quantity":9223372036854775807,"serving_size":"small"}]}`,
			wantErr: "Quantity too large for chicken nugget",
			watched: []string{"beef", "chicken nugget"},
		},
		{
			name:    "unknown serving size",
			raw:     `{"id":6,"mains":[{"ingredients":{"beef":1}}],"sides_and_drinks":[{"name":"fries","quantity":1,"serving_size":"jumbo"}]}`,
			wantErr: "Incorrect serving size for fries",
			watched: []string{"beef", "fries"},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			inv := newTestSystem(t).Inventory()
			if testCase.prepare != nil {
				testCase.prepare(t, inv)
			}
			before := make(map[string]int, len(testCase.watched))
			for _, name := range testCase.watched {
				before[name] = stockOf(t, inv, name)
			}

			var order domain.Order
			require.NoError(t, json.Unmarshal([]byte(testCase.raw), &order))

			for attempt := 0; attempt < 3; attempt++ {
				err := order.Cancel(inv)
				assert.True(t, domain.IsInventoryError(err))
				assert.EqualError(t, err, testCase.wantErr)
				for _, name := range testCase.watched {
					assert.Equal(t, before[name], stockOf(t, inv, name), name)
				}
			}
		})
	}
}

func TestOrder_CancelNetsEntriesForSameIngredient(t *testing.T) {
	inv := newTestSystem(t).Inventory()
	require.NoError(t, inv.ApplyAdjustment(map[string]int{"tomato": -100}))

	var order domain.Order
	raw := `{"id":7,"mains":[{"ingredients":{"tomato":-2}},{"ingredients":{"Tomato":3,"beef":1}}],"sides_and_drinks":[]}`
	require.NoError(t, json.Unmarshal([]byte(raw), &order))

	require.NoError(t, order.Cancel(inv))
	assert.Equal(t, 1, stockOf(t, inv, "tomato"))
	assert.Equal(t, 101, stockOf(t, inv, "beef"))
}

func TestOrder_Summary(t *testing.T) {
	sys := newTestSystem(t)
	inv := sys.Inventory()
	order := sys.CreateOrder()
	require.NoError(t, order.AddStandardBurger(inv))
	require.NoError(t, order.AddSide(inv, "fries", 1, "medium"))

	want := "====================================\n" +
		"Order ID 1\n" +
		"Order status:\n" +
		"- Pending: unpaid\n" +
		"Main order\n" +
		"Main Order: Ingredients List\n" +
		"beef Qty: 1\n" +
		"cheddar cheese Qty: 1\n" +
		"sesame bun Qty: 2\n" +
		"tomato Qty: 1\n" +
		"Side order\n" +
		"fries, Qty: 1, Size: medium\n" +
		"Total Fee: $9.5\n" +
		"===================================="

	summary, err := order.Summary(inv)
	require.NoError(t, err)
	assert.Equal(t, want, summary)
	assert.Equal(t, "Your Order ID is 1", order.DisplayID())

	require.NoError(t, sys.Checkout(1, true))
	summary, err = order.Summary(inv)
	require.NoError(t, err)
	assert.Contains(t, summary, "\n- Active: in service\n")

	require.NoError(t, sys.MarkOrderPrepared(1))
	summary, err = order.Summary(inv)
	require.NoError(t, err)
	assert.Contains(t, summary, "\n- Finished: order prepared\n")
}

func TestSideOrDrink_ZeroQuantity(t *testing.T) {
	inv := newTestSystem(t).Inventory()
	item := domain.SideOrDrink{Name: "fries", Quantity: 0, ServingSize: "large"}

	cost, err := item.Cost(inv)
	require.NoError(t, err)
	assert.True(t, cost.IsZero())
	assert.Equal(t, "", item.String())
}
