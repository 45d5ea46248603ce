package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avc/sheetmusic-backoffice/internal/domain"
	"go.uber.org/zap"
)

const (
	defaultOrderListLimit = 50
	maxOrderListLimit     = 200
	maxBulkDelete         = 500
)

// OrderService читает заказы через кэш списка и перечитывает их после каждого изменения.
// Закэшированные заказы никогда не изменяются на месте.
type OrderService struct {
	orderRepo domain.OrderRepository
	cache     domain.OrderListCache
	audit     domain.AuditPublisher
	logger    *zap.Logger
}

// NewOrderService создает новый OrderService
func NewOrderService(orderRepo domain.OrderRepository, cache domain.OrderListCache, audit domain.AuditPublisher, logger *zap.Logger) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		cache:     cache,
		audit:     audit,
		logger:    logger,
	}
}

// ListOrders возвращает страницу заказов, новые первыми
func (s *OrderService) ListOrders(ctx context.Context, filter domain.OrderListFilter) ([]*domain.Order, error) {
	filter, err := normalizeListFilter(filter)
	if err != nil {
		return nil, err
	}

	useCache := true
	generation, err := s.cache.Generation(ctx)
	if err != nil {
		s.logger.Warn("order cache unavailable", zap.Error(err))
		useCache = false
	}

	if useCache {
		orders, hit, err := s.cache.Load(ctx, generation, filter)
		if err != nil {
			s.logger.Warn("failed to load orders from cache", zap.Error(err))
		} else if hit {
			return orders, nil
		}
	}

	orders, err := s.loadOrders(ctx, filter)
	if err != nil {
		return nil, err
	}

	if useCache {
		if err := s.cache.Store(ctx, generation, filter, orders); err != nil {
			s.logger.Warn("failed to store orders in cache", zap.Error(err))
		}
	}

	return orders, nil
}

// loadOrders читает заказы из базы. Канонический статус вычисляется после чтения,
// поэтому при фильтре по статусу пагинация применяется здесь.
func (s *OrderService) loadOrders(ctx context.Context, filter domain.OrderListFilter) ([]*domain.Order, error) {
	if filter.Status == "" {
		orders, err := s.orderRepo.ListOrders(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("order service: failed to list orders: %w", err)
		}
		return orders, nil
	}

	query := filter
	query.Status = ""
	query.Limit = 0
	query.Offset = 0

	all, err := s.orderRepo.ListOrders(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("order service: failed to list orders: %w", err)
	}

	matched := make([]*domain.Order, 0, filter.Limit)
	skipped := 0
	for _, order := range all {
		if order.Status != filter.Status {
			continue
		}
		if skipped < filter.Offset {
			skipped++
			continue
		}
		matched = append(matched, order)
		if len(matched) == filter.Limit {
			break
		}
	}

	return matched, nil
}

// GetOrder читает заказ с позициями напрямую из базы
func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.orderRepo.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("order service: failed to get order %s: %w", orderID, err)
	}
	return order, nil
}

// Refresh сбрасывает кэш списка и перечитывает заказ из базы
func (s *OrderService) Refresh(ctx context.Context, orderID string) (*domain.Order, error) {
	s.invalidate(ctx)
	return s.GetOrder(ctx, orderID)
}

// DeleteOrders удаляет заказы вместе с позициями. Журнал кэша не затрагивается, отмены нет.
func (s *OrderService) DeleteOrders(ctx context.Context, operator domain.Operator, orderIDs []string) (int64, error) {
	ids, err := uniqueOrderIDs(orderIDs)
	if err != nil {
		return 0, err
	}

	deleted, err := s.orderRepo.DeleteOrders(ctx, ids)
	if err != nil {
		return 0, &ExternalCallError{Op: "delete orders", Message: err.Error(), Err: err}
	}

	s.invalidate(ctx)

	s.logger.Info("orders deleted",
		zap.String("operator_id", operator.ID),
		zap.Int("requested", len(ids)),
		zap.Int64("deleted", deleted),
	)

	publishAudit(ctx, s.audit, s.logger, domain.AuditEvent{
		EventType:  domain.AuditOrdersDeleted,
		OperatorID: operator.ID,
		Payload: map[string]any{
			"order_ids": ids,
			"deleted":   deleted,
		},
	})

	return deleted, nil
}

func (s *OrderService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("failed to invalidate order cache", zap.Error(err))
	}
}

func normalizeListFilter(filter domain.OrderListFilter) (domain.OrderListFilter, error) {
	if filter.Status != "" {
		status, ok := domain.ParseOrderStatus(string(filter.Status))
		if !ok {
			return filter, newValidationError("status", fmt.Sprintf("unknown status %q", filter.Status))
		}
		filter.Status = status
	}
	if filter.Limit < 0 || filter.Offset < 0 {
		return filter, newValidationError("limit", "limit and offset must not be negative")
	}
	if filter.Limit == 0 {
		filter.Limit = defaultOrderListLimit
	}
	if filter.Limit > maxOrderListLimit {
		filter.Limit = maxOrderListLimit
	}
	filter.Search = strings.TrimSpace(filter.Search)
	filter.UserID = strings.TrimSpace(filter.UserID)
	return filter, nil
}

func uniqueOrderIDs(orderIDs []string) ([]string, error) {
	seen := make(map[string]bool, len(orderIDs))
	ids := make([]string, 0, len(orderIDs))
	for _, id := range orderIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, newValidationError("order_ids", "must not contain empty ids")
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}

	if len(ids) == 0 {
		return nil, newValidationError("order_ids", "at least one order id is required")
	}
	if len(ids) > maxBulkDelete {
		return nil, newValidationError("order_ids", fmt.Sprintf("at most %d orders can be deleted at once", maxBulkDelete))
	}
	return ids, nil
}
