package domain

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending  OrderStatus = "pending"
	StatusActive   OrderStatus = "active"
	StatusFinished OrderStatus = "finished"
)

const summaryBanner = "===================================="

var (
	standardBurger = map[string]int{"sesame bun": 2, "beef": 1, "tomato": 1, "cheddar cheese": 1}
	standardWrap   = map[string]int{"flatbread": 1, "chicken": 1, "lettuce": 1, "cheddar cheese": 1}
)

// Order collects line items until it is paid. Paying is one way, and a paid
// order accepts no further items.
type Order struct {
	id             int
	paid           bool
	prepared       bool
	mains          []Main
	sidesAndDrinks []SideOrDrink
}

func NewOrder(id int) *Order {
	return &Order{id: id}
}

func (o *Order) ID() int        { return o.id }
func (o *Order) Paid() bool     { return o.paid }
func (o *Order) Prepared() bool { return o.prepared }

func (o *Order) Mains() []Main {
	return slices.Clone(o.mains)
}

func (o *Order) SidesAndDrinks() []SideOrDrink {
	return slices.Clone(o.sidesAndDrinks)
}

func (o *Order) Empty() bool {
	return len(o.mains) == 0 && len(o.sidesAndDrinks) == 0
}

func (o *Order) Status() OrderStatus {
	switch {
	case !o.paid:
		return StatusPending
	case !o.prepared:
		return StatusActive
	default:
		return StatusFinished
	}
}

func (o *Order) DisplayID() string {
	return fmt.Sprintf("Your Order ID is %d", o.id)
}

func (o *Order) ensureUnpaid() error {
	if o.paid {
		return orderError("Order is already complete, please start new order.")
	}
	return nil
}

func (o *Order) AddBurger(inv *Inventory, ingredients map[string]int) error {
	if err := o.ensureUnpaid(); err != nil {
		return err
	}
	if err := inv.ValidateBurgerComposition(ingredients); err != nil {
		return err
	}
	return o.addMain(inv, ingredients)
}

func (o *Order) AddWrap(inv *Inventory, ingredients map[string]int) error {
	if err := o.ensureUnpaid(); err != nil {
		return err
	}
	if err := inv.ValidateWrapComposition(ingredients); err != nil {
		return err
	}
	return o.addMain(inv, ingredients)
}

func (o *Order) addMain(inv *Inventory, ingredients map[string]int) error {
	if err := inv.DecreaseStockForMains(ingredients); err != nil {
		return err
	}
	o.mains = append(o.mains, NewMain(ingredients))
	return nil
}

func (o *Order) AddStandardBurger(inv *Inventory) error {
	return o.AddBurger(inv, standardBurger)
}

func (o *Order) AddStandardWrap(inv *Inventory) error {
	return o.AddWrap(inv, standardWrap)
}

func (o *Order) AddSide(inv *Inventory, name string, quantity int, size string) error {
	return o.addSideOrDrink(inv, name, quantity, size)
}

func (o *Order) AddDrink(inv *Inventory, name string, quantity int, size string) error {
	return o.addSideOrDrink(inv, name, quantity, size)
}

func (o *Order) addSideOrDrink(inv *Inventory, name string, quantity int, size string) error {
	if err := o.ensureUnpaid(); err != nil {
		return err
	}
	if quantity < 0 {
		return orderError("Cannot enter negative quantity")
	}
	if err := inv.DecreaseStockForSide(name, quantity, size); err != nil {
		return err
	}
	o.sidesAndDrinks = append(o.sidesAndDrinks, SideOrDrink{Name: name, Quantity: quantity, ServingSize: size})
	return nil
}

func (o *Order) TotalPrice(inv *Inventory) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, main := range o.mains {
		cost, err := main.Cost(inv)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(cost)
	}
	for _, item := range o.sidesAndDrinks {
		cost, err := item.Cost(inv)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(cost)
	}
	return total, nil
}

// Cancel gives every ingredient back to the inventory, all of it or none. It
// does not look at the payment state; the registry only cancels pending orders.
func (o *Order) Cancel(inv *Inventory) error {
	var lines []restock
	for _, main := range o.mains {
		for _, name := range sortedNames(main.ingredients) {
			lines = append(lines, restock{name: name, quantity: main.ingredients[name], servingSize: RegularSize})
		}
	}
	for _, item := range o.sidesAndDrinks {
		lines = append(lines, restock{name: item.Name, quantity: item.Quantity, servingSize: item.ServingSize})
	}
	return inv.restoreAll(lines)
}

// SubmitAndPay records the outcome reported by the payment system.
func (o *Order) SubmitAndPay(paymentOutcome bool) error {
	if o.Empty() {
		return orderError("Must order before checkout")
	}
	if !paymentOutcome {
		return orderError("Payment unsuccessful")
	}
	o.paid = true
	return nil
}

func (o *Order) MarkPrepared() {
	o.prepared = true
}

func (o *Order) statusLine() string {
	switch o.Status() {
	case StatusPending:
		return "- Pending: unpaid"
	case StatusActive:
		return "- Active: in service"
	default:
		return "- Finished: order prepared"
	}
}

func (o *Order) Summary(inv *Inventory) (string, error) {
	total, err := o.TotalPrice(inv)
	if err != nil {
		return "", err
	}
	parts := []string{
		summaryBanner,
		fmt.Sprintf("Order ID %d", o.id),
		"Order status:",
		o.statusLine(),
	}
	for _, main := range o.mains {
		parts = append(parts, "Main order", main.String())
	}
	for _, item := range o.sidesAndDrinks {
		parts = append(parts, "Side order", item.String())
	}
	parts = append(parts, "Total Fee: $"+total.String(), summaryBanner)
	return strings.Join(parts, "\n"), nil
}

type orderJSON struct {
	ID             int           `json:"id"`
	Paid           bool          `json:"paid"`
	Prepared       bool          `json:"prepared"`
	Mains          []Main        `json:"mains"`
	SidesAndDrinks []SideOrDrink `json:"sides_and_drinks"`
}

func (o *Order) MarshalJSON() ([]byte, error) {
	return json.Marshal(orderJSON{
		ID:             o.id,
		Paid:           o.paid,
		Prepared:       o.prepared,
		Mains:          o.mains,
		SidesAndDrinks: o.sidesAndDrinks,
	})
}

func (o *Order) UnmarshalJSON(data []byte) error {
	var raw orderJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	o.id = raw.ID
	o.paid = raw.Paid
	o.prepared = raw.Prepared
	o.mains = raw.Mains
	o.sidesAndDrinks = raw.SidesAndDrinks
	return nil
}
