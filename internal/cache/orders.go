package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/avc/sheetmusic-backoffice/internal/domain"
	"github.com/redis/go-redis/v9"
)

// OrderListCache реализует domain.OrderListCache поверх Redis.
// Записи не изменяются на месте: после изменения заказа поколение увеличивается,
// и старые ключи истекают по TTL.
type OrderListCache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

// NewOrderListCache создает новый OrderListCache
func NewOrderListCache(rdb redis.Cmdable, ttl time.Duration) *OrderListCache {
	return &OrderListCache{rdb: rdb, ttl: ttl}
}

// Generation возвращает текущее поколение списка
func (c *OrderListCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.rdb.Get(ctx, keyOrdersGeneration).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("cache: failed to read orders generation: %w", err)
	}
	return gen, nil
}

// Load читает список для поколения и фильтра
func (c *OrderListCache) Load(ctx context.Context, generation int64, filter domain.OrderListFilter) ([]*domain.Order, bool, error) {
	data, err := c.rdb.Get(ctx, ordersListKey(generation, filter)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: failed to load orders: %w", err)
	}

	var orders []*domain.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, false, fmt.Errorf("cache: failed to decode orders: %w", err)
	}
	return orders, true, nil
}

// Store сохраняет список под поколением, прочитанным до запроса к базе
func (c *OrderListCache) Store(ctx context.Context, generation int64, filter domain.OrderListFilter, orders []*domain.Order) error {
	payload, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("cache: failed to encode orders: %w", err)
	}
	if err := c.rdb.Set(ctx, ordersListKey(generation, filter), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: failed to store orders: %w", err)
	}
	return nil
}

// Invalidate переводит кэш на новое поколение
func (c *OrderListCache) Invalidate(ctx context.Context) error {
	if err := c.rdb.Incr(ctx, keyOrdersGeneration).Err(); err != nil {
		return fmt.Errorf("cache: failed to invalidate orders: %w", err)
	}
	return nil
}
