package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/avc/sheetmusic-backoffice/internal/domain"
	domainmocks "github.com/avc/sheetmusic-backoffice/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type orderServiceMocks struct {
	orderRepo *domainmocks.OrderRepositoryMock
	cache     *domainmocks.OrderListCacheMock
	audit     *domainmocks.AuditPublisherMock
}

func newTestOrderService(t *testing.T) (*OrderService, orderServiceMocks) {
	m := orderServiceMocks{
		orderRepo: domainmocks.NewOrderRepositoryMock(t),
		cache:     domainmocks.NewOrderListCacheMock(t),
		audit:     domainmocks.NewAuditPublisherMock(t),
	}
	return NewOrderService(m.orderRepo, m.cache, m.audit, zap.NewNop()), m
}

func TestOrderService_ListOrders(t *testing.T) {
	ctx := context.Background()

	t.Run("Cache hit", func(t *testing.T) {
		svc, m := newTestOrderService(t)
		cached := []*domain.Order{{ID: "o-1"}}
		filter := domain.OrderListFilter{Limit: defaultOrderListLimit}

		m.cache.EXPECT().Generation(mock.Anything).Return(int64(3), nil).Once()
		m.cache.EXPECT().Load(mock.Anything, int64(3), filter).Return(cached, true, nil).Once()

		orders, err := svc.ListOrders(ctx, domain.OrderListFilter{})
		require.NoError(t, err)
		assert.Equal(t, cached, orders)
	})

	t.Run("Cache miss reads store and stores under the same generation", func(t *testing.T) {
		svc, m := newTestOrderService(t)
		filter := domain.OrderListFilter{UserID: "u-1", Limit: 20}
		stored := []*domain.Order{{ID: "o-1"}, {ID: "o-2"}}

		m.cache.EXPECT().Generation(mock.Anything).Return(int64(5), nil).Once()
		m.cache.EXPECT().Load(mock.Anything, int64(5), filter).Return(nil, false, nil).Once()
		m.orderRepo.EXPECT().ListOrders(mock.Anything, filter).Return(stored, nil).Once()
		m.cache.EXPECT().Store(mock.Anything, int64(5), filter, stored).Return(nil).Once()

		orders, err := svc.ListOrders(ctx, domain.OrderListFilter{UserID: " u-1 ", Limit: 20})
		require.NoError(t, err)
		assert.Len(t, orders, 2)
	})

	t.Run("Cache unavailable falls back to store", func(t *testing.T) {
		svc, m := newTestOrderService(t)

		m.cache.EXPECT().Generation(mock.Anything).Return(int64(0), errors.New("connection refused")).Once()
		m.orderRepo.EXPECT().ListOrders(mock.Anything, mock.Anything).Return([]*domain.Order{}, nil).Once()

		orders, err := svc.ListOrders(ctx, domain.OrderListFilter{})
		require.NoError(t, err)
		assert.Empty(t, orders)
		m.cache.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Canonical status filter pages after normalization", func(t *testing.T) {
		svc, m := newTestOrderService(t)
		var all []*domain.Order
		for i := 0; i < 6; i++ {
			status := domain.OrderStatusPending
			if i%2 == 0 {
				status = domain.OrderStatusPaymentConfirmed
			}
			all = append(all, &domain.Order{ID: fmt.Sprintf("o-%d", i), Status: status})
		}

		m.cache.EXPECT().Generation(mock.Anything).Return(int64(0), nil).Once()
		m.cache.EXPECT().Load(mock.Anything, int64(0), mock.Anything).Return(nil, false, nil).Once()
		m.orderRepo.EXPECT().ListOrders(mock.Anything, domain.OrderListFilter{}).Return(all, nil).Once()
		m.cache.EXPECT().Store(mock.Anything, int64(0), mock.Anything, mock.Anything).Return(nil).Once()

		orders, err := svc.ListOrders(ctx, domain.OrderListFilter{Status: "Payment Confirmed", Limit: 2, Offset: 1})
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, "o-2", orders[0].ID)
		assert.Equal(t, "o-4", orders[1].ID)
	})

	t.Run("Unknown status filter", func(t *testing.T) {
		svc, _ := newTestOrderService(t)

		_, err := svc.ListOrders(ctx, domain.OrderListFilter{Status: "shipped"})

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("Limit is capped", func(t *testing.T) {
		svc, m := newTestOrderService(t)
		expected := domain.OrderListFilter{Limit: maxOrderListLimit}

		m.cache.EXPECT().Generation(mock.Anything).Return(int64(0), nil).Once()
		m.cache.EXPECT().Load(mock.Anything, int64(0), expected).Return(nil, false, nil).Once()
		m.orderRepo.EXPECT().ListOrders(mock.Anything, expected).Return(nil, nil).Once()
		m.cache.EXPECT().Store(mock.Anything, int64(0), expected, mock.Anything).Return(nil).Once()

		_, err := svc.ListOrders(ctx, domain.OrderListFilter{Limit: 10000})
		require.NoError(t, err)
	})

	t.Run("Database error", func(t *testing.T) {
		svc, m := newTestOrderService(t)

		m.cache.EXPECT().Generation(mock.Anything).Return(int64(0), nil).Once()
		m.cache.EXPECT().Load(mock.Anything, int64(0), mock.Anything).Return(nil, false, nil).Once()
		m.orderRepo.EXPECT().ListOrders(mock.Anything, mock.Anything).Return(nil, errors.New("db error")).Once()

		_, err := svc.ListOrders(ctx, domain.OrderListFilter{})
		assert.Error(t, err)
	})
}

func TestOrderService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("Invalidates then reads the store", func(t *testing.T) {
		svc, m := newTestOrderService(t)
		order := &domain.Order{ID: "o-1", Status: domain.OrderStatusCompleted}

		var invalidated bool
		m.cache.EXPECT().Invalidate(mock.Anything).Run(func(ctx context.Context) { invalidated = true }).Return(nil).Once()
		m.orderRepo.EXPECT().GetOrder(mock.Anything, "o-1").Run(func(ctx context.Context, orderID string) {
			assert.True(t, invalidated)
		}).Return(order, nil).Once()

		result, err := svc.Refresh(ctx, "o-1")
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCompleted, result.Status)
	})

	t.Run("Invalidation failure still reads the store", func(t *testing.T) {
		svc, m := newTestOrderService(t)

		m.cache.EXPECT().Invalidate(mock.Anything).Return(errors.New("redis down")).Once()
		m.orderRepo.EXPECT().GetOrder(mock.Anything, "o-1").Return(&domain.Order{ID: "o-1"}, nil).Once()

		_, err := svc.Refresh(ctx, "o-1")
		assert.NoError(t, err)
	})

	t.Run("Not found", func(t *testing.T) {
		svc, m := newTestOrderService(t)

		m.cache.EXPECT().Invalidate(mock.Anything).Return(nil).Once()
		m.orderRepo.EXPECT().GetOrder(mock.Anything, "missing").Return(nil, domain.ErrOrderNotFound).Once()

		_, err := svc.Refresh(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})
}

func TestOrderService_DeleteOrders(t *testing.T) {
	ctx := context.Background()
	operator := domain.Operator{ID: "op-1"}

	t.Run("Success with duplicates collapsed", func(t *testing.T) {
		svc, m := newTestOrderService(t)

		m.orderRepo.EXPECT().DeleteOrders(mock.Anything, []string{"o-1", "o-2"}).Return(int64(2), nil).Once()
		m.cache.EXPECT().Invalidate(mock.Anything).Return(nil).Once()
		m.audit.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e domain.AuditEvent) bool {
			return e.EventType == domain.AuditOrdersDeleted && e.OperatorID == "op-1"
		})).Return(nil).Once()

		deleted, err := svc.DeleteOrders(ctx, operator, []string{"o-1", " o-2", "o-1"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), deleted)
	})

	t.Run("Empty list", func(t *testing.T) {
		svc, _ := newTestOrderService(t)

		_, err := svc.DeleteOrders(ctx, operator, nil)

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("Blank id", func(t *testing.T) {
		svc, _ := newTestOrderService(t)

		_, err := svc.DeleteOrders(ctx, operator, []string{"o-1", ""})

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("Too many ids", func(t *testing.T) {
		svc, _ := newTestOrderService(t)
		ids := make([]string, maxBulkDelete+1)
		for i := range ids {
			ids[i] = fmt.Sprintf("o-%d", i)
		}

		_, err := svc.DeleteOrders(ctx, operator, ids)

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("Store failure is an external call error", func(t *testing.T) {
		svc, m := newTestOrderService(t)

		m.orderRepo.EXPECT().DeleteOrders(mock.Anything, []string{"o-1"}).Return(int64(0), errors.New("lock timeout")).Once()

		_, err := svc.DeleteOrders(ctx, operator, []string{"o-1"})

		var callErr *ExternalCallError
		require.ErrorAs(t, err, &callErr)
		assert.Equal(t, "lock timeout", callErr.Message)
	})

	t.Run("Audit failure does not fail the deletion", func(t *testing.T) {
		svc, m := newTestOrderService(t)

		m.orderRepo.EXPECT().DeleteOrders(mock.Anything, []string{"o-1"}).Return(int64(1), nil).Once()
		m.cache.EXPECT().Invalidate(mock.Anything).Return(nil).Once()
		m.audit.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

		deleted, err := svc.DeleteOrders(ctx, operator, []string{"o-1"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)
	})
}
