package domain

import (
	"maps"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

type IngredientType string

const (
	BurgerBun IngredientType = "burger_bun"
	Wrap      IngredientType = "wrap"
	Filling   IngredientType = "filling"
	Patty     IngredientType = "patty"
	Side      IngredientType = "side"
	Drink     IngredientType = "drink"
)

var ingredientTypeLabels = map[IngredientType]string{
	BurgerBun: "Burgerbun",
	Wrap:      "Wrap",
	Filling:   "Filling",
	Patty:     "Patty",
	Side:      "Side",
	Drink:     "Drink",
}

// IngredientTypes lists every type in menu order.
var IngredientTypes = []IngredientType{BurgerBun, Wrap, Filling, Patty, Side, Drink}

func (t IngredientType) Valid() bool {
	_, ok := ingredientTypeLabels[t]
	return ok
}

func (t IngredientType) Label() string {
	return ingredientTypeLabels[t]
}

// countedInUnits reports whether the type may only be stocked as whole units.
func (t IngredientType) countedInUnits() bool {
	switch t {
	case BurgerBun, Wrap, Filling, Patty:
		return true
	}
	return false
}

type Unit string

const (
	UnitCount      Unit = "unit"
	UnitGram       Unit = "g"
	UnitMillilitre Unit = "ml"
)

func (u Unit) Valid() bool {
	switch u {
	case UnitCount, UnitGram, UnitMillilitre:
		return true
	}
	return false
}

// RegularSize is the serving size mains are counted in.
const RegularSize = "regular"

// Ingredient is a stock-keeping unit. Quantity is held in base units.
type Ingredient struct {
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	Type         IngredientType  `json:"type"`
	ServingSizes map[string]int  `json:"serving_sizes"`
	Unit         Unit            `json:"unit"`
}

func (i *Ingredient) key() string {
	return normalize(i.Name)
}

// Multiplier resolves a serving size to base units per serving. The regular
// size falls back to one base unit when the ingredient does not define it.
func (i *Ingredient) Multiplier(size string) (int, bool) {
	if m, ok := i.ServingSizes[size]; ok {
		return m, true
	}
	if size == RegularSize || size == "" {
		return 1, true
	}
	return 0, false
}

func (i *Ingredient) decrease(amount int) error {
	if amount < 0 {
		return inventoryError("Invalid quantity for " + i.key())
	}
	if amount > i.Quantity {
		return inventoryError("Insufficient stock for " + i.key())
	}
	i.Quantity -= amount
	return nil
}

func (i *Ingredient) increase(amount int) error {
	if amount < 0 {
		return inventoryError("Invalid quantity for " + i.key())
	}
	if amount > math.MaxInt-i.Quantity {
		return inventoryError("Stock limit exceeded for " + i.key())
	}
	i.Quantity += amount
	return nil
}

// servings converts a quantity of servings into base units; ok is false
// when the product does not fit in an int.
func servings(quantity, multiplier int) (int, bool) {
	if multiplier <= 0 {
		return 0, false
	}
	if quantity > math.MaxInt/multiplier || quantity < math.MinInt/multiplier {
		return 0, false
	}
	return quantity * multiplier, true
}

func addQuantity(a, b int) (int, bool) {
	if (b > 0 && a > math.MaxInt-b) || (b < 0 && a < math.MinInt-b) {
		return 0, false
	}
	return a + b, true
}

func (i *Ingredient) clone() Ingredient {
	c := *i
	c.ServingSizes = maps.Clone(i.ServingSizes)
	return c
}

func normalize(name string) string {
	return strings.ToLower(name)
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
