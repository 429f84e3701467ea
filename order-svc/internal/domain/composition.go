package domain

import (
	"math"
	"strconv"
)

func (inv *Inventory) ValidateNoNegativeQuantity(ingredients map[string]int) error {
	for _, name := range sortedNames(ingredients) {
		if _, err := inv.get(name); err != nil {
			return err
		}
		if ingredients[name] < 0 {
			return orderError("Cannot enter negative quantity")
		}
	}
	return nil
}

func (inv *Inventory) ValidateBurgerOrWrapExclusive(ingredients map[string]int) error {
	totals, err := inv.totalsByType(ingredients)
	if err != nil {
		return err
	}
	if totals[BurgerBun] > 0 && totals[Wrap] > 0 {
		return orderError("Cannot choose both burger and wrap")
	}
	return nil
}

func (inv *Inventory) ValidateExactlyOneWrap(ingredients map[string]int) error {
	totals, err := inv.totalsByType(ingredients)
	if err != nil {
		return err
	}
	if totals[Wrap] != 1 {
		return orderError("Must select one wrap bread")
	}
	return nil
}

// ValidateBunCount allows two buns for a burger with no patty and one extra
// bun per patty beyond the first.
func (inv *Inventory) ValidateBunCount(ingredients map[string]int) error {
	totals, err := inv.totalsByType(ingredients)
	if err != nil {
		return err
	}
	buns, patties := totals[BurgerBun], totals[Patty]
	maximumBuns := 2
	if patties > 0 {
		maximumBuns = math.MaxInt
		if patties < math.MaxInt {
			maximumBuns = patties + 1
		}
	}
	if buns < 2 || buns > maximumBuns {
		return orderError("Number of buns must be between 2 and " + strconv.Itoa(maximumBuns))
	}
	return nil
}

func (inv *Inventory) ValidateBurgerComposition(ingredients map[string]int) error {
	if err := inv.ValidateNoNegativeQuantity(ingredients); err != nil {
		return err
	}
	if err := inv.ValidateBurgerOrWrapExclusive(ingredients); err != nil {
		return err
	}
	return inv.ValidateBunCount(ingredients)
}

func (inv *Inventory) ValidateWrapComposition(ingredients map[string]int) error {
	if err := inv.ValidateNoNegativeQuantity(ingredients); err != nil {
		return err
	}
	if err := inv.ValidateBurgerOrWrapExclusive(ingredients); err != nil {
		return err
	}
	return inv.ValidateExactlyOneWrap(ingredients)
}

func (inv *Inventory) totalsByType(ingredients map[string]int) (map[IngredientType]int, error) {
	totals := make(map[IngredientType]int)
	for _, name := range sortedNames(ingredients) {
		ingredient, err := inv.get(name)
		if err != nil {
			return nil, err
		}
		total, ok := addQuantity(totals[ingredient.Type], ingredients[name])
		if !ok {
			return nil, orderError("Quantity too large")
		}
		totals[ingredient.Type] = total
	}
	return totals, nil
}
