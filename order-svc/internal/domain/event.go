package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	EventOrderCreated   = "order_created"
	EventOrderPaid      = "order_paid"
	EventOrderCancelled = "order_cancelled"
	EventOrderPrepared  = "order_prepared"
)

const (
	CancelReasonCustomer = "customer"
	CancelReasonExpired  = "expired"
)

// OrderEvent is published on every order lifecycle transition.
type OrderEvent struct {
	EventID     string          `json:"event_id"`
	Type        string          `json:"type"`
	OrderID     int             `json:"order_id"`
	Total       decimal.Decimal `json:"total"`
	Ingredients map[string]int  `json:"ingredients,omitempty"`
	Reason      string          `json:"reason,omitempty"`
	Timestamp   time.Time       `json:"timestamp"`
}

func NewOrderEvent(eventType string, order *Order, inv *Inventory) (OrderEvent, error) {
	total, err := order.TotalPrice(inv)
	if err != nil {
		return OrderEvent{}, err
	}
	event := OrderEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		OrderID:   order.id,
		Total:     total,
		Timestamp: time.Now().UTC(),
	}
	if eventType == EventOrderPaid {
		if event.Ingredients, err = order.Usage(inv); err != nil {
			return OrderEvent{}, err
		}
	}
	return event, nil
}
