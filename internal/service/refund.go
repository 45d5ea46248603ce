package service

import (
	"context"
	"fmt"

	"github.com/avc/sheetmusic-backoffice/internal/domain"
	"go.uber.org/zap"
)

// RefundPreview - данные для окна подтверждения возврата
type RefundPreview struct {
	OrderID                        string             `json:"order_id"`
	OrderNumber                    string             `json:"order_number"`
	Status                         domain.OrderStatus `json:"status"`
	RefundAmount                   int64              `json:"refund_amount"`
	RequiresZeroAmountConfirmation bool               `json:"requires_zero_amount_confirmation"`
}

// OrderActionInput - параметры возврата, отмены и принудительного завершения
type OrderActionInput struct {
	OrderID  string
	Operator domain.Operator
	// ConfirmZeroAmount - дополнительное подтверждение возврата нулевой суммы
	ConfirmZeroAmount bool
}

// OrderActionResult - итог действия над заказом
type OrderActionResult struct {
	Order        *domain.Order      `json:"order"`
	Status       domain.OrderStatus `json:"status"`
	RefundAmount *int64             `json:"refund_amount,omitempty"`
}

// RefundCancelCoordinator выполняет возврат, отмену без возврата и принудительное завершение.
// Каждое действие - один вызов внешней функции без повторов.
type RefundCancelCoordinator struct {
	guard     *OrderActionGuard
	functions domain.OrderFunctions
	orders    orderReloader
	balances  balanceRefresher
	audit     domain.AuditPublisher
	logger    *zap.Logger
}

// NewRefundCancelCoordinator создает новый RefundCancelCoordinator
func NewRefundCancelCoordinator(
	guard *OrderActionGuard,
	functions domain.OrderFunctions,
	orders orderReloader,
	balances balanceRefresher,
	audit domain.AuditPublisher,
	logger *zap.Logger,
) *RefundCancelCoordinator {
	return &RefundCancelCoordinator{
		guard:     guard,
		functions: functions,
		orders:    orders,
		balances:  balances,
		audit:     audit,
		logger:    logger,
	}
}

// PreviewRefund проверяет возможность возврата и считает сумму
func (c *RefundCancelCoordinator) PreviewRefund(ctx context.Context, orderID string) (*RefundPreview, error) {
	snap, err := c.guard.Authorize(ctx, orderID, domain.ActionRefund, false)
	if err != nil {
		return nil, err
	}

	amount := domain.RefundAmount(snap.TotalAmount)
	return &RefundPreview{
		OrderID:                        snap.ID,
		OrderNumber:                    snap.OrderNumber,
		Status:                         snap.Status,
		RefundAmount:                   amount,
		RequiresZeroAmountConfirmation: amount == 0,
	}, nil
}

// Refund отменяет заказ с возвратом средств
func (c *RefundCancelCoordinator) Refund(ctx context.Context, in OrderActionInput) (*OrderActionResult, error) {
	if in.Operator.ID == "" {
		return nil, newValidationError("operator", "operator identity is required")
	}

	snap, err := c.guard.Authorize(ctx, in.OrderID, domain.ActionRefund, false)
	if err != nil {
		return nil, err
	}

	amount := domain.RefundAmount(snap.TotalAmount)
	if amount == 0 && !in.ConfirmZeroAmount {
		return nil, newValidationError("confirm_zero_amount", "refund amount is 0, explicit confirmation is required")
	}

	resp, err := c.functions.CancelOrder(ctx, domain.CancelOrderRequest{
		OrderID:        snap.ID,
		DoRefund:       true,
		ExpectedStatus: snap.Status,
	})
	if err != nil {
		return nil, mapFunctionError(err, snap, domain.ActionRefund)
	}

	status, err := terminalStatus(domain.ActionRefund, resp)
	if err != nil {
		return nil, err
	}

	c.logger.Info("order refunded",
		zap.String("order_id", snap.ID),
		zap.String("order_number", snap.OrderNumber),
		zap.String("operator_id", in.Operator.ID),
		zap.Int64("refund_amount", amount),
		zap.String("status", string(status)),
	)

	if snap.IsCashCharge() {
		if _, err := c.balances.RefreshBalance(ctx, snap.UserID); err != nil {
			c.logger.Error("failed to refresh balance after refund", zap.String("user_id", snap.UserID), zap.Error(err))
		}
	}

	publishAudit(ctx, c.audit, c.logger, domain.AuditEvent{
		EventType:  domain.AuditOrderRefunded,
		OperatorID: in.Operator.ID,
		OrderID:    snap.ID,
		UserID:     snap.UserID,
		Payload: map[string]any{
			"order_number":  snap.OrderNumber,
			"refund_amount": amount,
			"from_status":   snap.Status,
			"status":        status,
		},
	})

	result := c.reload(ctx, snap.ID, status)
	result.RefundAmount = &amount
	return result, nil
}

// Cancel отменяет заказ без возврата средств
func (c *RefundCancelCoordinator) Cancel(ctx context.Context, in OrderActionInput) (*OrderActionResult, error) {
	if in.Operator.ID == "" {
		return nil, newValidationError("operator", "operator identity is required")
	}

	snap, err := c.guard.Authorize(ctx, in.OrderID, domain.ActionCancel, false)
	if err != nil {
		return nil, err
	}

	resp, err := c.functions.CancelOrder(ctx, domain.CancelOrderRequest{
		OrderID:        snap.ID,
		DoRefund:       false,
		ExpectedStatus: snap.Status,
	})
	if err != nil {
		return nil, mapFunctionError(err, snap, domain.ActionCancel)
	}

	status, err := terminalStatus(domain.ActionCancel, resp)
	if err != nil {
		return nil, err
	}

	c.logger.Info("order cancelled",
		zap.String("order_id", snap.ID),
		zap.String("order_number", snap.OrderNumber),
		zap.String("operator_id", in.Operator.ID),
		zap.String("status", string(status)),
	)

	publishAudit(ctx, c.audit, c.logger, domain.AuditEvent{
		EventType:  domain.AuditOrderCancelled,
		OperatorID: in.Operator.ID,
		OrderID:    snap.ID,
		UserID:     snap.UserID,
		Payload: map[string]any{
			"order_number": snap.OrderNumber,
			"from_status":  snap.Status,
			"status":       status,
		},
	})

	return c.reload(ctx, snap.ID, status), nil
}

// ForceComplete принудительно завершает заказ. Предназначено только для ручной обработки исключений.
func (c *RefundCancelCoordinator) ForceComplete(ctx context.Context, in OrderActionInput) (*OrderActionResult, error) {
	if in.Operator.ID == "" {
		return nil, newValidationError("operator", "operator identity is required")
	}

	snap, err := c.guard.Authorize(ctx, in.OrderID, domain.ActionForceComplete, false)
	if err != nil {
		return nil, err
	}

	resp, err := c.functions.CompleteOrder(ctx, domain.CompleteOrderRequest{
		OrderID:        snap.ID,
		ExpectedStatus: snap.Status,
	})
	if err != nil {
		return nil, mapFunctionError(err, snap, domain.ActionForceComplete)
	}

	status := domain.OrderStatusCompleted
	if resp != nil && resp.Status != "" {
		status = domain.NormalizeStatus(resp.Status)
	}

	c.logger.Warn("order force-completed",
		zap.String("order_id", snap.ID),
		zap.String("order_number", snap.OrderNumber),
		zap.String("operator_id", in.Operator.ID),
		zap.String("from_status", string(snap.Status)),
		zap.String("status", string(status)),
	)

	publishAudit(ctx, c.audit, c.logger, domain.AuditEvent{
		EventType:  domain.AuditOrderForceCompleted,
		OperatorID: in.Operator.ID,
		OrderID:    snap.ID,
		UserID:     snap.UserID,
		Payload: map[string]any{
			"order_number": snap.OrderNumber,
			"from_status":  snap.Status,
			"status":       status,
		},
	})

	return c.reload(ctx, snap.ID, status), nil
}

// reload перечитывает заказ после завершенного внешнего вызова
func (c *RefundCancelCoordinator) reload(ctx context.Context, orderID string, status domain.OrderStatus) *OrderActionResult {
	order, err := c.orders.Refresh(ctx, orderID)
	if err != nil {
		c.logger.Error("failed to reload order after action", zap.String("order_id", orderID), zap.Error(err))
	}
	return &OrderActionResult{Order: order, Status: status}
}

// terminalStatus проверяет, что функция отмены сообщила конечный статус
func terminalStatus(action domain.OrderAction, resp *domain.OrderStatusResponse) (domain.OrderStatus, error) {
	if resp == nil {
		return "", &ExternalCallError{Op: opCancelOrder, Message: "empty response"}
	}
	status := domain.NormalizeStatus(resp.Status)
	if !status.IsTerminal() {
		return "", &ExternalCallError{
			Op:      opCancelOrder,
			Message: fmt.Sprintf("%s returned non-terminal status %q", action, resp.Status),
		}
	}
	return status, nil
}
