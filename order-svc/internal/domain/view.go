package domain

import (
	"github.com/shopspring/decimal"
)

// OrderView is the read model returned to API clients.
type OrderView struct {
	ID             int              `json:"id"`
	Paid           bool             `json:"paid"`
	Prepared       bool             `json:"prepared"`
	Status         OrderStatus      `json:"status"`
	StatusMessage  string           `json:"status_message"`
	Mains          []map[string]int `json:"mains"`
	SidesAndDrinks []SideOrDrink    `json:"sides_and_drinks"`
	Total          decimal.Decimal  `json:"total"`
	Summary        string           `json:"summary"`
	QRCode         string           `json:"qr_code,omitempty"`
}

func NewOrderView(order *Order, inv *Inventory) (OrderView, error) {
	total, err := order.TotalPrice(inv)
	if err != nil {
		return OrderView{}, err
	}
	summary, err := order.Summary(inv)
	if err != nil {
		return OrderView{}, err
	}

	mains := make([]map[string]int, 0, len(order.mains))
	for _, main := range order.mains {
		mains = append(mains, main.Ingredients())
	}
	sides := order.SidesAndDrinks()
	if sides == nil {
		sides = []SideOrDrink{}
	}

	return OrderView{
		ID:             order.id,
		Paid:           order.paid,
		Prepared:       order.prepared,
		Status:         order.Status(),
		StatusMessage:  StatusMessage(order.Status()),
		Mains:          mains,
		SidesAndDrinks: sides,
		Total:          total,
		Summary:        summary,
	}, nil
}

// Usage totals the base units the order consumed, keyed by lower-cased
// ingredient name.
func (o *Order) Usage(inv *Inventory) (map[string]int, error) {
	usage := make(map[string]int)
	for _, main := range o.mains {
		for name, quantity := range main.ingredients {
			if quantity > 0 {
				usage[normalize(name)] += quantity
			}
		}
	}
	for _, item := range o.sidesAndDrinks {
		if item.Quantity <= 0 {
			continue
		}
		ingredient, err := inv.get(item.Name)
		if err != nil {
			return nil, err
		}
		multiplier, ok := ingredient.Multiplier(item.ServingSize)
		if !ok {
			return nil, inventoryError("Incorrect serving size for " + normalize(item.Name))
		}
		amount, ok := servings(item.Quantity, multiplier)
		if !ok {
			return nil, inventoryError("Quantity too large for " + ingredient.key())
		}
		usage[ingredient.key()] += amount
	}
	return usage, nil
}
