package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"

	"gourmet-burgers/agg-svc/internal/domain"
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
}

func NewConsumer(reader MessageReader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

// Start reads order events until ctx is cancelled or the reader is closed.
func (c *Consumer) Start(ctx context.Context) error {
	log.Println("Starting Aggregation Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				log.Println("Aggregation Service consumer stopped")
				return nil
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		if err := c.ProcessEvent(ctx, event); err != nil {
			log.Printf("Error processing %s event for order %d: %v", event.Type, event.OrderID, err)
		}
	}
}

// ProcessEvent folds one event into the daily statistics. Events the
// statistics do not track are ignored, as are redelivered ones.
func (c *Consumer) ProcessEvent(ctx context.Context, event domain.OrderEvent) error {
	var counter string
	switch event.Type {
	case domain.EventOrderPaid:
		counter = domain.CounterPaid
	case domain.EventOrderCancelled:
		counter = domain.CounterCancelled
	case domain.EventOrderPrepared:
		counter = domain.CounterPrepared
	default:
		return nil
	}

	fresh, err := c.Store.MarkProcessed(ctx, event.EventID)
	if err != nil {
		return fmt.Errorf("mark event %s: %w", event.EventID, err)
	}
	if !fresh {
		log.Printf("Skipping duplicate event %s", event.EventID)
		return nil
	}

	day := event.Day()
	if event.Type == domain.EventOrderPaid {
		if err := c.Store.AddRevenue(ctx, day, event.Total); err != nil {
			return fmt.Errorf("add revenue: %w", err)
		}
		if err := c.Store.AddIngredientUsage(ctx, day, event.Ingredients); err != nil {
			return fmt.Errorf("add ingredient usage: %w", err)
		}
	}

	if err := c.Store.IncrementCounter(ctx, day, counter); err != nil {
		return fmt.Errorf("increment %s: %w", counter, err)
	}
	if event.Type == domain.EventOrderCancelled && event.Reason == domain.CancelReasonExpired {
		if err := c.Store.IncrementCounter(ctx, day, domain.CounterExpired); err != nil {
			return fmt.Errorf("increment %s: %w", domain.CounterExpired, err)
		}
	}

	log.Printf("Recorded %s event for order %d", event.Type, event.OrderID)
	return nil
}
