package cache

import (
	"context"

	"github.com/avc/sheetmusic-backoffice/internal/domain"
)

// NopOrderListCache используется, когда Redis не настроен: каждый запрос идет в базу
type NopOrderListCache struct{}

func (NopOrderListCache) Generation(context.Context) (int64, error) { return 0, nil }

func (NopOrderListCache) Load(context.Context, int64, domain.OrderListFilter) ([]*domain.Order, bool, error) {
	return nil, false, nil
}

func (NopOrderListCache) Store(context.Context, int64, domain.OrderListFilter, []*domain.Order) error {
	return nil
}

func (NopOrderListCache) Invalidate(context.Context) error { return nil }

// NopCreditsCache используется, когда Redis не настроен
type NopCreditsCache struct{}

func (NopCreditsCache) Get(context.Context, string) (int64, bool, error) { return 0, false, nil }

func (NopCreditsCache) Set(context.Context, string, int64) error { return nil }

func (NopCreditsCache) Invalidate(context.Context, string) error { return nil }

// NopSubmissionGuard пропускает любые отправки
type NopSubmissionGuard struct{}

func (NopSubmissionGuard) Claim(context.Context, string) error { return nil }

func (NopSubmissionGuard) Release(context.Context, string) error { return nil }
