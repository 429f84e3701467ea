package service

import (
	"context"

	"gourmet-burgers/agg-svc/internal/domain"
	"gourmet-burgers/agg-svc/internal/storage"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

type StoreInterface interface {
	MarkProcessed(ctx context.Context, eventID string) (bool, error)
	IncrementCounter(ctx context.Context, day, field string) error
	AddRevenue(ctx context.Context, day string, amount decimal.Decimal) error
	AddIngredientUsage(ctx context.Context, day string, usage map[string]int) error
}

// StatsReader serves the folded statistics back out.
type StatsReader interface {
	DailyStats(ctx context.Context, day string) (domain.DailyStats, error)
}

// MessageReader is the part of *kafka.Reader the consumer needs.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context) error
	ProcessEvent(ctx context.Context, event domain.OrderEvent) error
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ StatsReader       = (*storage.Store)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
