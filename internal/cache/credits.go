package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CreditsCache реализует domain.CreditsCache поверх Redis
type CreditsCache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

// NewCreditsCache создает новый CreditsCache
func NewCreditsCache(rdb redis.Cmdable, ttl time.Duration) *CreditsCache {
	return &CreditsCache{rdb: rdb, ttl: ttl}
}

// Get возвращает кэшированный баланс
func (c *CreditsCache) Get(ctx context.Context, userID string) (int64, bool, error) {
	credits, err := c.rdb.Get(ctx, creditsKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("cache: failed to get credits for user %s: %w", userID, err)
	}
	return credits, true, nil
}

// Set сохраняет баланс
func (c *CreditsCache) Set(ctx context.Context, userID string, credits int64) error {
	if err := c.rdb.Set(ctx, creditsKey(userID), credits, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: failed to set credits for user %s: %w", userID, err)
	}
	return nil
}

// Invalidate удаляет кэшированный баланс
func (c *CreditsCache) Invalidate(ctx context.Context, userID string) error {
	if err := c.rdb.Del(ctx, creditsKey(userID)).Err(); err != nil {
		return fmt.Errorf("cache: failed to invalidate credits for user %s: %w", userID, err)
	}
	return nil
}
