package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avc/sheetmusic-backoffice/internal/domain"
	"go.uber.org/zap"
)

// OrderActionGuard проверяет допустимость изменяющего действия по состоянию,
// перечитанному из базы непосредственно перед действием.
type OrderActionGuard struct {
	orderRepo domain.OrderRepository
	logger    *zap.Logger
}

// NewOrderActionGuard создает новый OrderActionGuard
func NewOrderActionGuard(orderRepo domain.OrderRepository, logger *zap.Logger) *OrderActionGuard {
	return &OrderActionGuard{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// Authorize возвращает свежий снимок заказа, если действие допустимо.
// Подтверждение оператора для confirm_deposit проверяется до чтения из базы.
// При отказе никаких записей не выполняется.
func (g *OrderActionGuard) Authorize(ctx context.Context, orderID string, action domain.OrderAction, acknowledged bool) (*domain.OrderSnapshot, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, newValidationError("order_id", "is required")
	}
	if action == domain.ActionConfirmDeposit && !acknowledged {
		return nil, newValidationError("acknowledged", "deposit confirmation must be acknowledged by the operator")
	}

	snap, err := g.orderRepo.GetOrderSnapshot(ctx, orderID)
	if err != nil {
		// Не оборачиваем sentinel errors
		if errors.Is(err, domain.ErrOrderNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("order guard: failed to read order %s: %w", orderID, err)
	}

	if reason := domain.CheckPrecondition(action, snap); reason != "" {
		g.logger.Info("order action rejected",
			zap.String("order_id", orderID),
			zap.String("action", string(action)),
			zap.String("status", string(snap.Status)),
			zap.String("raw_status", snap.RawStatus),
			zap.String("reason", reason),
		)
		return nil, &StaleStateError{
			OrderID: orderID,
			Action:  action,
			Status:  snap.Status,
			Reason:  reason,
		}
	}

	return snap, nil
}
