package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// RedisInstallmentCache implements port.InstallmentCache on Redis.
// Installment amounts are pure functions of their cache key, so the TTL
// exists only to bound memory, not for correctness.
type RedisInstallmentCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisInstallmentCache creates a cache backed by the given Redis address.
func NewRedisInstallmentCache(addr string, logger *slog.Logger) *RedisInstallmentCache {
	return &RedisInstallmentCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    24 * time.Hour,
		logger: logger,
	}
}

// Get returns the cached amount for the key. Any Redis failure is treated
// as a miss; the caller recomputes.
func (c *RedisInstallmentCache) Get(ctx context.Context, key string) (decimal.Decimal, bool) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.WarnContext(ctx, "redis get failed", "key", key, "error", err)
		}
		return decimal.Decimal{}, false
	}

	amount, err := decimal.NewFromString(val)
	if err != nil {
		c.logger.WarnContext(ctx, "corrupt cache entry", "key", key, "value", val)
		return decimal.Decimal{}, false
	}
	return amount, true
}

// Set stores the amount under the key.
func (c *RedisInstallmentCache) Set(ctx context.Context, key string, amount decimal.Decimal) error {
	return c.client.Set(ctx, key, amount.String(), c.ttl).Err()
}

// Close releases the underlying Redis connection.
func (c *RedisInstallmentCache) Close() error {
	return c.client.Close()
}
