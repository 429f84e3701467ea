package storage

import (
	"context"
	"errors"
	"strconv"
	"time"

	"gourmet-burgers/order-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

type RedisStatusCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisStatusCache(client *redis.Client, ttl time.Duration) *RedisStatusCache {
	return &RedisStatusCache{Client: client, TTL: ttl}
}

func (c *RedisStatusCache) StatusKey(orderID int) string {
	return "order:" + strconv.Itoa(orderID) + ":status"
}

func (c *RedisStatusCache) SetStatus(ctx context.Context, orderID int, status domain.OrderStatus) error {
	return c.Client.Set(ctx, c.StatusKey(orderID), string(status), c.TTL).Err()
}

func (c *RedisStatusCache) GetStatus(ctx context.Context, orderID int) (domain.OrderStatus, bool, error) {
	value, err := c.Client.Get(ctx, c.StatusKey(orderID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return domain.OrderStatus(value), true, nil
}

func (c *RedisStatusCache) DeleteStatus(ctx context.Context, orderID int) error {
	return c.Client.Del(ctx, c.StatusKey(orderID)).Err()
}
