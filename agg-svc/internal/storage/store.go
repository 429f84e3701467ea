package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gourmet-burgers/agg-svc/internal/domain"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	statsTTL           = 7 * 24 * time.Hour
	maxRevenueAttempts = 5
)

type Store struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewStore(client *redis.Client) *Store {
	return &Store{
		Client: client,
		TTL:    statsTTL,
	}
}

func CountersKey(day string) string    { return "stats:daily:" + day }
func RevenueKey(day string) string     { return "stats:daily:" + day + ":revenue" }
func IngredientsKey(day string) string { return "stats:daily:" + day + ":ingredients" }
func eventKey(eventID string) string   { return "stats:event:" + eventID }

// MarkProcessed records the event id and reports whether it had not been
// seen before. Events without an id are always treated as new.
func (s *Store) MarkProcessed(ctx context.Context, eventID string) (bool, error) {
	if eventID == "" {
		return true, nil
	}
	return s.Client.SetNX(ctx, eventKey(eventID), 1, s.TTL).Result()
}

func (s *Store) IncrementCounter(ctx context.Context, day, field string) error {
	key := CountersKey(day)
	pipe := s.Client.TxPipeline()
	pipe.HIncrBy(ctx, key, field, 1)
	pipe.Expire(ctx, key, s.TTL)
	_, err := pipe.Exec(ctx)
	return err
}

// AddRevenue keeps revenue as an exact decimal string, so the read-modify-write
// runs under WATCH and is retried when another consumer got there first.
func (s *Store) AddRevenue(ctx context.Context, day string, amount decimal.Decimal) error {
	key := RevenueKey(day)
	txf := func(tx *redis.Tx) error {
		current, err := readDecimal(ctx, tx, key)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, current.Add(amount).String(), s.TTL)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxRevenueAttempts; attempt++ {
		err := s.Client.Watch(ctx, txf, key)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return fmt.Errorf("add revenue for %s: %w", day, redis.TxFailedErr)
}

func (s *Store) AddIngredientUsage(ctx context.Context, day string, usage map[string]int) error {
	if len(usage) == 0 {
		return nil
	}
	key := IngredientsKey(day)
	pipe := s.Client.TxPipeline()
	for name, quantity := range usage {
		pipe.ZIncrBy(ctx, key, float64(quantity), name)
	}
	pipe.Expire(ctx, key, s.TTL)
	_, err := pipe.Exec(ctx)
	return err
}

// DailyStats reads back everything recorded for one day. Ingredients are
// ordered by usage, highest first.
func (s *Store) DailyStats(ctx context.Context, day string) (domain.DailyStats, error) {
	stats := domain.DailyStats{Day: day, Revenue: decimal.Zero}

	counters, err := s.Client.HGetAll(ctx, CountersKey(day)).Result()
	if err != nil {
		return stats, err
	}
	for field, target := range map[string]*int64{
		domain.CounterPaid:      &stats.Paid,
		domain.CounterCancelled: &stats.Cancelled,
		domain.CounterExpired:   &stats.Expired,
		domain.CounterPrepared:  &stats.Prepared,
	} {
		if value, ok := counters[field]; ok {
			if *target, err = strconv.ParseInt(value, 10, 64); err != nil {
				return stats, fmt.Errorf("parse %s counter: %w", field, err)
			}
		}
	}

	if stats.Revenue, err = readDecimal(ctx, s.Client, RevenueKey(day)); err != nil {
		return stats, err
	}

	usage, err := s.Client.ZRevRangeWithScores(ctx, IngredientsKey(day), 0, -1).Result()
	if err != nil {
		return stats, err
	}
	stats.Ingredients = make([]domain.IngredientUsage, 0, len(usage))
	for _, z := range usage {
		name, _ := z.Member.(string)
		stats.Ingredients = append(stats.Ingredients, domain.IngredientUsage{Name: name, Quantity: int64(z.Score)})
	}
	return stats, nil
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func readDecimal(ctx context.Context, client getter, key string) (decimal.Decimal, error) {
	value, err := client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, err
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse %s: %w", key, err)
	}
	return amount, nil
}
