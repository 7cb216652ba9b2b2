// Package cache holds the redis-backed read cache for the public catalog.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"tripcart/internal/pkg/config"
	"tripcart/internal/usecase/readmodel"

	"github.com/redis/go-redis/v9"
)

const destinationsKey = "cache:destinations"

type RedisCache struct {
	client          *redis.Client
	destinationsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		destinationsTTL: cfg.DestinationsTTL,
	}
}

// GetDestinations returns the cached catalog list, or (nil, nil) on a miss.
func (c *RedisCache) GetDestinations(ctx context.Context) ([]*readmodel.DestinationRM, error) {
	data, err := c.client.Get(ctx, destinationsKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var destinations []*readmodel.DestinationRM
	if err := json.Unmarshal(data, &destinations); err != nil {
		return nil, err
	}
	return destinations, nil
}

func (c *RedisCache) SetDestinations(ctx context.Context, destinations []*readmodel.DestinationRM) error {
	payload, err := json.Marshal(destinations)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, destinationsKey, payload, c.destinationsTTL).Err()
}

// InvalidateDestinations drops the cached list after any catalog write.
func (c *RedisCache) InvalidateDestinations(ctx context.Context) error {
	return c.client.Del(ctx, destinationsKey).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
