// Package cache wraps the redis operations the API needs: fixed-window counters for rate limiting
// and short-lived markers for revoked refresh tokens.
package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"fmt"
	"jamat/infras/otel"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
)

type RedisCache interface {
	// Save stores value under key for ttlSeconds.
	Save(ctx context.Context, key, value string, ttlSeconds int) error
	Exists(ctx context.Context, key string) (bool, error)
	// Increment bumps a fixed-window counter, starting the window on the first hit.
	Increment(ctx context.Context, key string, windowSeconds int) (int64, error)
}

type redisCache struct {
	client *redis.Client
	otel   otel.Otel
}

func NewRedisCache(client *redis.Client, ot otel.Otel) RedisCache {
	return &redisCache{
		client: client,
		otel:   ot,
	}
}

// traced runs fn inside a cache span and logs failures with the operation and key.
func (c *redisCache) traced(ctx context.Context, op, key string, fn func(context.Context) error) error {
	ctx, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+"."+op)
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	err := fn(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", key).Str("RedisCache", op).Msg("cache operation failed")
	}

	return err
}

func (c *redisCache) Increment(ctx context.Context, key string, windowSeconds int) (int64, error) {
	var count int64

	err := c.traced(ctx, "Increment", key, func(ctx context.Context) error {
		pipe := c.client.TxPipeline()
		incr := pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, time.Duration(windowSeconds)*time.Second)

		if _, err := pipe.Exec(ctx); err != nil {
			return fmt.Errorf("failed to increment cache counter: %w", err)
		}

		count = incr.Val()

		return nil
	})

	return count, err
}

func (c *redisCache) Exists(ctx context.Context, key string) (bool, error) {
	var found int64

	err := c.traced(ctx, "Exists", key, func(ctx context.Context) (err error) {
		if found, err = c.client.Exists(ctx, key).Result(); err != nil {
			return fmt.Errorf("failed to check cache key: %w", err)
		}

		return nil
	})

	return found > 0, err
}

func (c *redisCache) Save(ctx context.Context, key, value string, ttlSeconds int) error {
	return c.traced(ctx, "Save", key, func(ctx context.Context) error {
		if err := c.client.Set(ctx, key, value, time.Duration(ttlSeconds)*time.Second).Err(); err != nil {
			return fmt.Errorf("failed to set cache value: %w", err)
		}

		return nil
	})
}
