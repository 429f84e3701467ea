package domain

import "github.com/shopspring/decimal"

// Daily counter fields.
const (
	CounterPaid      = "paid"
	CounterCancelled = "cancelled"
	CounterExpired   = "expired"
	CounterPrepared  = "prepared"
)

type IngredientUsage struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

// DailyStats is one day of folded order events.
type DailyStats struct {
	Day         string            `json:"day"`
	Paid        int64             `json:"paid"`
	Cancelled   int64             `json:"cancelled"`
	Expired     int64             `json:"expired"`
	Prepared    int64             `json:"prepared"`
	Revenue     decimal.Decimal   `json:"revenue"`
	Ingredients []IngredientUsage `json:"ingredients"`
}
