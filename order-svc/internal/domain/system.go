package domain

import (
	"encoding/json"
	"slices"
	"strings"
)

// RestaurantSystem is the order registry. Each known order sits in exactly
// one of the pending, active or finished collections; cancelled orders sit
// in none. Order ids start at 1 and are never reused.
type RestaurantSystem struct {
	inventory *Inventory
	nextID    int
	pending   []*Order
	active    []*Order
	finished  []*Order
}

func NewRestaurantSystem() *RestaurantSystem {
	return &RestaurantSystem{
		inventory: NewInventory(),
		nextID:    1,
	}
}

func (s *RestaurantSystem) Inventory() *Inventory { return s.inventory }

// NextOrderID is the id the next created order will receive.
func (s *RestaurantSystem) NextOrderID() int { return s.nextID }

func (s *RestaurantSystem) PendingOrders() []*Order  { return slices.Clone(s.pending) }
func (s *RestaurantSystem) ActiveOrders() []*Order   { return slices.Clone(s.active) }
func (s *RestaurantSystem) FinishedOrders() []*Order { return slices.Clone(s.finished) }

func (s *RestaurantSystem) CreateOrder() *Order {
	order := NewOrder(s.nextID)
	s.nextID++
	s.pending = append(s.pending, order)
	return order
}

func (s *RestaurantSystem) FindOrder(id int) (*Order, error) {
	for _, orders := range [][]*Order{s.pending, s.active, s.finished} {
		if order := findByID(orders, id); order != nil {
			return order, nil
		}
	}
	return nil, systemError(MsgIncorrectOrderID)
}

func (s *RestaurantSystem) FindPaidOrder(id int) (*Order, error) {
	for _, orders := range [][]*Order{s.active, s.finished} {
		if order := findByID(orders, id); order != nil {
			return order, nil
		}
	}
	return nil, systemError(MsgIncorrectOrderID)
}

// Checkout submits the order with the outcome reported by the payment system
// and moves it to the active collection when payment succeeds.
func (s *RestaurantSystem) Checkout(id int, paymentOutcome bool) error {
	order, err := s.FindOrder(id)
	if err != nil {
		return err
	}
	if !slices.Contains(s.pending, order) {
		return systemError(MsgOrderNotPending)
	}
	if err := order.SubmitAndPay(paymentOutcome); err != nil {
		return err
	}
	s.pending = remove(s.pending, order)
	s.active = append(s.active, order)
	return nil
}

func (s *RestaurantSystem) CancelOrder(id int) error {
	order, err := s.FindOrder(id)
	if err != nil {
		return err
	}
	if !slices.Contains(s.pending, order) {
		return systemError(MsgOrderNotPending)
	}
	if err := order.Cancel(s.inventory); err != nil {
		return err
	}
	s.pending = remove(s.pending, order)
	return nil
}

func (s *RestaurantSystem) MarkOrderPrepared(id int) error {
	order, err := s.FindOrder(id)
	if err != nil {
		return err
	}
	if !slices.Contains(s.active, order) {
		return systemError(MsgOrderNotActive)
	}
	order.MarkPrepared()
	s.active = remove(s.active, order)
	s.finished = append(s.finished, order)
	return nil
}

// StatusMessage describes the order's progress for the customer.
func StatusMessage(status OrderStatus) string {
	switch status {
	case StatusPending:
		return "Your order is not paid."
	case StatusActive:
		return "Your order is being prepared."
	default:
		return "Your order is ready to be collected."
	}
}

func (s *RestaurantSystem) OrderStatus(id int) (string, error) {
	order, err := s.FindOrder(id)
	if err != nil {
		return "", err
	}
	return StatusMessage(order.Status()), nil
}

func (s *RestaurantSystem) ActiveOrdersReport() (string, error) {
	parts := []string{"ACTIVE ORDERS"}
	for _, order := range s.active {
		summary, err := order.Summary(s.inventory)
		if err != nil {
			return "", err
		}
		parts = append(parts, summary)
	}
	return strings.Join(parts, "\n"), nil
}

type systemJSON struct {
	Inventory *Inventory `json:"inventory"`
	NextID    int        `json:"next_order_id"`
	Pending   []*Order   `json:"pending"`
	Active    []*Order   `json:"active"`
	Finished  []*Order   `json:"finished"`
}

func (s *RestaurantSystem) MarshalJSON() ([]byte, error) {
	return json.Marshal(systemJSON{
		Inventory: s.inventory,
		NextID:    s.nextID,
		Pending:   nonNil(s.pending),
		Active:    nonNil(s.active),
		Finished:  nonNil(s.finished),
	})
}

func (s *RestaurantSystem) UnmarshalJSON(data []byte) error {
	raw := systemJSON{Inventory: NewInventory(), NextID: 1}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Inventory == nil {
		raw.Inventory = NewInventory()
	}
	s.inventory = raw.Inventory
	s.nextID = raw.NextID
	s.pending = raw.Pending
	s.active = raw.Active
	s.finished = raw.Finished
	return nil
}

func findByID(orders []*Order, id int) *Order {
	for _, order := range orders {
		if order.id == id {
			return order
		}
	}
	return nil
}

func remove(orders []*Order, target *Order) []*Order {
	return slices.DeleteFunc(orders, func(o *Order) bool { return o == target })
}

func nonNil(orders []*Order) []*Order {
	if orders == nil {
		return []*Order{}
	}
	return orders
}
