package domain

import (
	"encoding/json"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Inventory is the registry of ingredients, keyed case-insensitively. It owns
// every stock mutation and every composition rule; nothing else changes an
// ingredient's quantity.
type Inventory struct {
	items []*Ingredient
	index map[string]*Ingredient
}

func NewInventory() *Inventory {
	return &Inventory{index: make(map[string]*Ingredient)}
}

// RegisterIngredient validates and adds a new ingredient. Nothing is changed
// when validation fails. An empty unit means UnitCount.
func (inv *Inventory) RegisterIngredient(name string, price decimal.Decimal, quantity int, typ IngredientType, servingSizes map[string]int, unit Unit) error {
	key := normalize(name)
	if unit == "" {
		unit = UnitCount
	}

	if quantity < 0 {
		return inventoryError("Please enter positive quantity for " + key)
	}
	if !price.IsPositive() {
		return inventoryError("Please enter valid price for " + key)
	}
	if !unit.Valid() {
		return inventoryError("Please enter valid unit")
	}
	if !typ.Valid() {
		return inventoryError("Invalid ingredient type for " + key)
	}
	if unit == UnitMillilitre && typ != Drink {
		return inventoryError(capitalize(name) + " must be type drink to be stored in ml")
	}
	if typ.countedInUnits() && unit != UnitCount {
		return inventoryError(typ.Label() + " must be stored as unit")
	}
	if len(servingSizes) == 0 {
		return inventoryError("Please enter serving sizes for " + key)
	}
	for _, m := range servingSizes {
		if m <= 0 {
			return inventoryError("Please enter serving sizes for " + key)
		}
	}
	if _, exists := inv.index[key]; exists {
		return inventoryError(key + " already exists")
	}

	ingredient := &Ingredient{
		Name:         name,
		Price:        price,
		Quantity:     quantity,
		Type:         typ,
		ServingSizes: maps.Clone(servingSizes),
		Unit:         unit,
	}
	inv.add(ingredient)
	return nil
}

func (inv *Inventory) add(ingredient *Ingredient) {
	if inv.index == nil {
		inv.index = make(map[string]*Ingredient)
	}
	inv.items = append(inv.items, ingredient)
	inv.index[ingredient.key()] = ingredient
}

func (inv *Inventory) get(name string) (*Ingredient, error) {
	if ingredient, ok := inv.index[normalize(name)]; ok {
		return ingredient, nil
	}
	return nil, inventoryError(capitalize(name) + " does not exist")
}

// Lookup returns a copy of the named ingredient.
func (inv *Inventory) Lookup(name string) (Ingredient, error) {
	ingredient, err := inv.get(name)
	if err != nil {
		return Ingredient{}, err
	}
	return ingredient.clone(), nil
}

// Ingredients returns copies of every ingredient in registration order.
func (inv *Inventory) Ingredients() []Ingredient {
	out := make([]Ingredient, 0, len(inv.items))
	for _, ingredient := range inv.items {
		out = append(out, ingredient.clone())
	}
	return out
}

func (inv *Inventory) DecreaseStockForSide(name string, quantity int, servingSize string) error {
	ingredient, err := inv.get(name)
	if err != nil {
		return err
	}
	if _, ok := ingredient.ServingSizes[servingSize]; !ok {
		return inventoryError("Incorrect serving size for " + normalize(name))
	}
	multiplier, _ := ingredient.Multiplier(servingSize)
	amount, ok := servings(quantity, multiplier)
	if !ok {
		return inventoryError("Quantity too large for " + ingredient.key())
	}
	return ingredient.decrease(amount)
}

// DecreaseStockForMains removes every listed quantity (base units) or nothing
// at all. Entries naming the same ingredient in different case are summed
// before the stock check.
func (inv *Inventory) DecreaseStockForMains(quantities map[string]int) error {
	needed := make(map[*Ingredient]int, len(quantities))
	var touched []*Ingredient
	for _, name := range sortedNames(quantities) {
		ingredient, err := inv.get(name)
		if err != nil {
			return err
		}
		if _, seen := needed[ingredient]; !seen {
			touched = append(touched, ingredient)
		}
		total, ok := addQuantity(needed[ingredient], quantities[name])
		if !ok {
			return inventoryError("Quantity too large for " + ingredient.key())
		}
		needed[ingredient] = total
	}

	for _, ingredient := range touched {
		if needed[ingredient] < 0 {
			return inventoryError("Invalid quantity for " + ingredient.key())
		}
		if needed[ingredient] > ingredient.Quantity {
			return inventoryError("Insufficient stock for " + ingredient.key())
		}
	}
	for _, ingredient := range touched {
		ingredient.Quantity -= needed[ingredient]
	}
	return nil
}

func (inv *Inventory) CheckSufficientStock(name string, quantity int, servingSize string) (bool, error) {
	ingredient, err := inv.get(name)
	if err != nil {
		return false, err
	}
	multiplier, ok := ingredient.Multiplier(servingSize)
	if !ok {
		return false, inventoryError("Incorrect serving size for " + normalize(name))
	}
	amount, ok := servings(quantity, multiplier)
	if !ok {
		return false, nil
	}
	return amount <= ingredient.Quantity, nil
}

// ApplyAdjustment restocks positive entries and removes negative ones, in
// base units. Entries are applied one at a time in name order; a failure
// leaves the entries before it applied.
func (inv *Inventory) ApplyAdjustment(quantities map[string]int) error {
	for _, name := range sortedNames(quantities) {
		ingredient, err := inv.get(name)
		if err != nil {
			return err
		}
		quantity := quantities[name]
		switch {
		case quantity > 0:
			if err := ingredient.increase(quantity); err != nil {
				return err
			}
		case quantity == math.MinInt:
			return inventoryError("Invalid quantity for " + ingredient.key())
		case quantity < 0:
			if err := ingredient.decrease(-quantity); err != nil {
				return err
			}
		}
	}
	return nil
}

// HasAvailable reports whether at least one ingredient of the type can be
// served right now. Sides and drinks need enough stock for their smallest
// named serving.
func (inv *Inventory) HasAvailable(typ IngredientType) bool {
	for _, ingredient := range inv.items {
		if ingredient.Type != typ {
			continue
		}
		if typ.countedInUnits() {
			if ingredient.Quantity > 0 {
				return true
			}
			continue
		}
		if _, ok := ingredient.ServingSizes[RegularSize]; ok && ingredient.Quantity > 0 {
			return true
		}
		if small, ok := ingredient.ServingSizes["small"]; ok && ingredient.Quantity > small {
			return true
		}
	}
	return false
}

// restock is quantity servings of the named ingredient at a serving size.
type restock struct {
	name        string
	quantity    int
	servingSize string
}

// restoreAll puts back every line or nothing at all. Lines naming the same
// ingredient are netted first; a negative net removes stock and fails rather
// than going below zero.
func (inv *Inventory) restoreAll(lines []restock) error {
	deltas := make(map[*Ingredient]int, len(lines))
	var touched []*Ingredient
	for _, line := range lines {
		ingredient, err := inv.get(line.name)
		if err != nil {
			return err
		}
		multiplier, ok := ingredient.Multiplier(line.servingSize)
		if !ok {
			return inventoryError("Incorrect serving size for " + normalize(line.name))
		}
		amount, ok := servings(line.quantity, multiplier)
		if !ok {
			return inventoryError("Quantity too large for " + ingredient.key())
		}
		if _, seen := deltas[ingredient]; !seen {
			touched = append(touched, ingredient)
		}
		net, ok := addQuantity(deltas[ingredient], amount)
		if !ok {
			return inventoryError("Quantity too large for " + ingredient.key())
		}
		deltas[ingredient] = net
	}

	for _, ingredient := range touched {
		delta := deltas[ingredient]
		if delta < -ingredient.Quantity {
			return inventoryError("Insufficient stock for " + ingredient.key())
		}
		if delta > 0 && delta > math.MaxInt-ingredient.Quantity {
			return inventoryError("Stock limit exceeded for " + ingredient.key())
		}
	}
	for _, ingredient := range touched {
		ingredient.Quantity += deltas[ingredient]
	}
	return nil
}

func (inv *Inventory) MarshalJSON() ([]byte, error) {
	items := inv.items
	if items == nil {
		items = []*Ingredient{}
	}
	return json.Marshal(items)
}

func (inv *Inventory) UnmarshalJSON(data []byte) error {
	var items []*Ingredient
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	inv.items = nil
	inv.index = make(map[string]*Ingredient, len(items))
	for _, ingredient := range items {
		inv.add(ingredient)
	}
	return nil
}

func sortedNames(quantities map[string]int) []string {
	names := slices.Collect(maps.Keys(quantities))
	slices.SortFunc(names, func(a, b string) int {
		if c := strings.Compare(normalize(a), normalize(b)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	return names
}
