package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/avc/sheetmusic-backoffice/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	manualPaymentProvider = "manual"
	manualDepositSource   = "admin_manual_deposit"
)

// manualDepositNamespace - пространство имен UUIDv5 для токенов ручного подтверждения
var manualDepositNamespace = uuid.MustParse("5d0c8a9e-3f4b-5c61-9a7e-2b8d4f6e1c30")

// ManualDepositToken возвращает детерминированный идентификатор транзакции для заказа:
// повторные подтверждения одного заказа получают один и тот же токен.
func ManualDepositToken(orderID string) string {
	return "manual-" + uuid.NewSHA1(manualDepositNamespace, []byte(orderID)).String()
}

// orderReloader перечитывает заказ после изменения
type orderReloader interface {
	Refresh(ctx context.Context, orderID string) (*domain.Order, error)
}

// balanceRefresher перечитывает баланс пользователя
type balanceRefresher interface {
	RefreshBalance(ctx context.Context, userID string) (int64, error)
}

// ConfirmDepositInput - параметры ручного подтверждения депозита
type ConfirmDepositInput struct {
	OrderID       string
	Operator      domain.Operator
	TransactionID string
	Acknowledged  bool
}

// DepositConfirmation - результат подтверждения
type DepositConfirmation struct {
	Order         *domain.Order `json:"order"`
	TransactionID string        `json:"transaction_id"`
	Credits       *int64        `json:"credits,omitempty"`
}

// PaymentConfirmationService подтверждает банковские переводы вручную
type PaymentConfirmationService struct {
	guard     *OrderActionGuard
	functions domain.OrderFunctions
	orders    orderReloader
	balances  balanceRefresher
	claims    domain.SubmissionGuard
	audit     domain.AuditPublisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewPaymentConfirmationService создает новый PaymentConfirmationService
func NewPaymentConfirmationService(
	guard *OrderActionGuard,
	functions domain.OrderFunctions,
	orders orderReloader,
	balances balanceRefresher,
	claims domain.SubmissionGuard,
	audit domain.AuditPublisher,
	logger *zap.Logger,
) *PaymentConfirmationService {
	return &PaymentConfirmationService{
		guard:     guard,
		functions: functions,
		orders:    orders,
		balances:  balances,
		claims:    claims,
		audit:     audit,
		logger:    logger,
		now:       time.Now,
	}
}

// ConfirmDeposit отмечает заказ оплаченным через внешнюю функцию завершения оплаты.
// После успеха заказ перечитывается из базы; при ошибке локальное состояние не меняется.
func (s *PaymentConfirmationService) ConfirmDeposit(ctx context.Context, in ConfirmDepositInput) (*DepositConfirmation, error) {
	if in.Operator.ID == "" {
		return nil, newValidationError("operator", "operator identity is required")
	}

	snap, err := s.guard.Authorize(ctx, in.OrderID, domain.ActionConfirmDeposit, in.Acknowledged)
	if err != nil {
		return nil, err
	}

	token := strings.TrimSpace(in.TransactionID)
	if token == "" {
		token = ManualDepositToken(snap.ID)
	}

	claimKey := "deposit:" + token
	claimed := true
	if err := s.claims.Claim(ctx, claimKey); err != nil {
		if errors.Is(err, domain.ErrDuplicateSubmission) {
			return nil, err
		}
		// Токен детерминирован, повторную отправку отсекает и внешняя функция
		s.logger.Warn("submission guard unavailable, confirming without claim",
			zap.String("order_id", snap.ID), zap.Error(err))
		claimed = false
	}

	req := domain.CompletePaymentRequest{
		OrderID:            snap.ID,
		PaymentMethod:      string(domain.NormalizePaymentMethod(snap.PaymentMethod)),
		TransactionID:      token,
		PaymentConfirmedAt: s.now().UTC(),
		DepositorName:      snap.DepositorName,
		PaymentProvider:    manualPaymentProvider,
		ExpectedStatus:     snap.Status,
		Metadata: domain.CompletionAuditMetadata{
			OperatorID:    in.Operator.ID,
			OperatorEmail: in.Operator.Email,
			Source:        manualDepositSource,
		},
	}

	if err := s.functions.CompleteOrderPayment(ctx, req); err != nil {
		if claimed {
			if releaseErr := s.claims.Release(ctx, claimKey); releaseErr != nil {
				s.logger.Warn("failed to release deposit claim", zap.String("order_id", snap.ID), zap.Error(releaseErr))
			}
		}
		return nil, mapFunctionError(err, snap, domain.ActionConfirmDeposit)
	}

	s.logger.Info("deposit confirmed",
		zap.String("order_id", snap.ID),
		zap.String("order_number", snap.OrderNumber),
		zap.String("user_id", snap.UserID),
		zap.String("operator_id", in.Operator.ID),
		zap.String("transaction_id", token),
		zap.Int64("total_amount", snap.TotalAmount),
	)

	result := &DepositConfirmation{TransactionID: token}

	if snap.IsCashCharge() {
		credits, err := s.balances.RefreshBalance(ctx, snap.UserID)
		if err != nil {
			s.logger.Error("failed to refresh balance after cash charge",
				zap.String("order_id", snap.ID),
				zap.String("user_id", snap.UserID),
				zap.Error(err),
			)
		} else {
			result.Credits = &credits
		}
	}

	publishAudit(ctx, s.audit, s.logger, domain.AuditEvent{
		EventType:  domain.AuditDepositConfirmed,
		OperatorID: in.Operator.ID,
		OrderID:    snap.ID,
		UserID:     snap.UserID,
		Payload: map[string]any{
			"order_number":   snap.OrderNumber,
			"transaction_id": token,
			"total_amount":   snap.TotalAmount,
			"cash_charge":    snap.IsCashCharge(),
		},
	})

	// Оплата уже завершена, поэтому ошибка перечитывания не превращает ответ в ошибку
	order, err := s.orders.Refresh(ctx, snap.ID)
	if err != nil {
		s.logger.Error("failed to reload order after deposit confirmation", zap.String("order_id", snap.ID), zap.Error(err))
	}
	result.Order = order

	return result, nil
}
