package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/avc/sheetmusic-backoffice/internal/domain"
	"github.com/redis/go-redis/v9"
)

// SubmissionGuard реализует domain.SubmissionGuard через SETNX с TTL
type SubmissionGuard struct {
	rdb redis.Cmdable
	ttl time.Duration
}

// NewSubmissionGuard создает новый SubmissionGuard
func NewSubmissionGuard(rdb redis.Cmdable, ttl time.Duration) *SubmissionGuard {
	return &SubmissionGuard{rdb: rdb, ttl: ttl}
}

// Claim занимает ключ; если он уже занят, возвращает domain.ErrDuplicateSubmission
func (g *SubmissionGuard) Claim(ctx context.Context, key string) error {
	ok, err := g.rdb.SetNX(ctx, submissionKey(key), time.Now().UTC().Format(time.RFC3339), g.ttl).Result()
	if err != nil {
		return fmt.Errorf("cache: failed to claim submission %s: %w", key, err)
	}
	if !ok {
		return domain.ErrDuplicateSubmission
	}
	return nil
}

// Release освобождает ключ после неудачной попытки
func (g *SubmissionGuard) Release(ctx context.Context, key string) error {
	if err := g.rdb.Del(ctx, submissionKey(key)).Err(); err != nil {
		return fmt.Errorf("cache: failed to release submission %s: %w", key, err)
	}
	return nil
}
