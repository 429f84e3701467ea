package domain

import (
	"encoding/json"
	"fmt"
	"maps"
	"strings"

	"github.com/shopspring/decimal"
)

// Main is a snapshot of a burger or wrap as it was ordered. It is not
// re-validated: Order checks the composition before a Main is built, and
// entries with a non-positive quantity are simply free and not printed.
type Main struct {
	ingredients map[string]int
}

func NewMain(ingredients map[string]int) Main {
	return Main{ingredients: maps.Clone(ingredients)}
}

func (m Main) Ingredients() map[string]int {
	return maps.Clone(m.ingredients)
}

func (m Main) Cost(inv *Inventory) (decimal.Decimal, error) {
	cost := decimal.Zero
	for _, name := range sortedNames(m.ingredients) {
		quantity := m.ingredients[name]
		if quantity <= 0 {
			continue
		}
		ingredient, err := inv.get(name)
		if err != nil {
			return decimal.Zero, err
		}
		cost = cost.Add(ingredient.Price.Mul(decimal.NewFromInt(int64(quantity))))
	}
	return cost, nil
}

func (m Main) String() string {
	parts := []string{"Main Order: Ingredients List"}
	for _, name := range sortedNames(m.ingredients) {
		if quantity := m.ingredients[name]; quantity > 0 {
			parts = append(parts, fmt.Sprintf("%s Qty: %d", name, quantity))
		}
	}
	return strings.Join(parts, "\n")
}

func (m Main) MarshalJSON() ([]byte, error) {
	ingredients := m.ingredients
	if ingredients == nil {
		ingredients = map[string]int{}
	}
	return json.Marshal(struct {
		Ingredients map[string]int `json:"ingredients"`
	}{ingredients})
}

func (m *Main) UnmarshalJSON(data []byte) error {
	var raw struct {
		Ingredients map[string]int `json:"ingredients"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.ingredients = raw.Ingredients
	return nil
}

// SideOrDrink is a single side or drink line. Both kinds share the same
// mechanics; the distinction only matters to the caller.
type SideOrDrink struct {
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	ServingSize string `json:"serving_size"`
}

func (s SideOrDrink) Cost(inv *Inventory) (decimal.Decimal, error) {
	if s.Quantity <= 0 {
		return decimal.Zero, nil
	}
	ingredient, err := inv.get(s.Name)
	if err != nil {
		return decimal.Zero, err
	}
	multiplier, ok := ingredient.Multiplier(s.ServingSize)
	if !ok {
		return decimal.Zero, inventoryError("Incorrect serving size for " + normalize(s.Name))
	}
	return ingredient.Price.Mul(decimal.NewFromInt(int64(s.Quantity))).Mul(decimal.NewFromInt(int64(multiplier))), nil
}

func (s SideOrDrink) String() string {
	if s.Quantity <= 0 {
		return ""
	}
	return fmt.Sprintf("%s, Qty: %d, Size: %s", s.Name, s.Quantity, s.ServingSize)
}
