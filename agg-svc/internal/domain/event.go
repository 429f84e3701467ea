package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventOrderCreated   = "order_created"
	EventOrderPaid      = "order_paid"
	EventOrderCancelled = "order_cancelled"
	EventOrderPrepared  = "order_prepared"
)

const CancelReasonExpired = "expired"

// OrderEvent mirrors the lifecycle event order-svc publishes.
type OrderEvent struct {
	EventID     string          `json:"event_id"`
	Type        string          `json:"type"`
	OrderID     int             `json:"order_id"`
	Total       decimal.Decimal `json:"total"`
	Ingredients map[string]int  `json:"ingredients,omitempty"`
	Reason      string          `json:"reason,omitempty"`
	Timestamp   time.Time       `json:"timestamp"`
}

// Day is the UTC calendar day the event is counted under.
func (e OrderEvent) Day() string {
	ts := e.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	return ts.UTC().Format("2006-01-02")
}
