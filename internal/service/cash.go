package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avc/sheetmusic-backoffice/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// maxAdjustmentAmount ограничивает одну корректировку
var maxAdjustmentAmount = decimal.NewFromInt(1_000_000_000)

// AdjustInput - ручная корректировка баланса оператором
type AdjustInput struct {
	UserID         string
	Type           domain.CashTransactionType
	Amount         decimal.Decimal
	Description    string
	Operator       domain.Operator
	IdempotencyKey string
}

// CashAdjustmentService изменяет баланс пользователей вручную.
// Изменение баланса и запись в журнал выполняются одной транзакцией в репозитории.
type CashAdjustmentService struct {
	ledger  domain.CashLedgerRepository
	credits domain.CreditsCache
	claims  domain.SubmissionGuard
	audit   domain.AuditPublisher
	logger  *zap.Logger
}

// NewCashAdjustmentService создает новый CashAdjustmentService
func NewCashAdjustmentService(
	ledger domain.CashLedgerRepository,
	credits domain.CreditsCache,
	claims domain.SubmissionGuard,
	audit domain.AuditPublisher,
	logger *zap.Logger,
) *CashAdjustmentService {
	return &CashAdjustmentService{
		ledger:  ledger,
		credits: credits,
		claims:  claims,
		audit:   audit,
		logger:  logger,
	}
}

// Adjust начисляет или списывает кэш. Списание сверх баланса отклоняется без записи.
func (s *CashAdjustmentService) Adjust(ctx context.Context, in AdjustInput) (*domain.CashTransaction, error) {
	adj, err := validateAdjustment(in)
	if err != nil {
		return nil, err
	}

	claimKey := ""
	if key := strings.TrimSpace(in.IdempotencyKey); key != "" {
		claimKey = fmt.Sprintf("adjust:%s:%s", adj.UserID, key)
		if err := s.claims.Claim(ctx, claimKey); err != nil {
			if errors.Is(err, domain.ErrDuplicateSubmission) {
				return nil, err
			}
			// Недоступный Redis не блокирует корректировку, как и при отключенных кэшах
			s.logger.Warn("submission guard unavailable, adjusting without claim",
				zap.String("key", claimKey), zap.Error(err))
			claimKey = ""
		}
	}

	entry, err := s.ledger.AdjustCredits(ctx, adj)
	if err != nil {
		s.release(ctx, claimKey)

		// Не оборачиваем sentinel errors
		if errors.Is(err, domain.ErrInsufficientFunds) || errors.Is(err, domain.ErrProfileNotFound) {
			return nil, err
		}
		return nil, &ExternalCallError{Op: "adjust credits", Message: err.Error(), Err: err}
	}

	// Баланс перечитывается из базы при следующем запросе
	if err := s.credits.Invalidate(ctx, adj.UserID); err != nil {
		s.logger.Warn("failed to invalidate credits cache", zap.String("user_id", adj.UserID), zap.Error(err))
	}

	s.logger.Info("cash adjusted",
		zap.String("user_id", adj.UserID),
		zap.String("operator_id", adj.OperatorID),
		zap.String("type", string(adj.Type)),
		zap.Int64("amount", adj.Amount),
		zap.Int64("balance_after", entry.BalanceAfter),
		zap.String("transaction_id", entry.ID),
	)

	publishAudit(ctx, s.audit, s.logger, domain.AuditEvent{
		EventType:  domain.AuditCashAdjusted,
		OperatorID: adj.OperatorID,
		UserID:     adj.UserID,
		Payload: map[string]any{
			"transaction_id":   entry.ID,
			"transaction_type": adj.Type,
			"amount":           adj.Amount,
			"balance_after":    entry.BalanceAfter,
			"description":      adj.Description,
		},
	})

	return entry, nil
}

// GetBalance возвращает баланс пользователя, сначала из кэша
func (s *CashAdjustmentService) GetBalance(ctx context.Context, userID string) (int64, error) {
	if strings.TrimSpace(userID) == "" {
		return 0, newValidationError("user_id", "is required")
	}

	credits, hit, err := s.credits.Get(ctx, userID)
	if err != nil {
		s.logger.Warn("credits cache unavailable", zap.String("user_id", userID), zap.Error(err))
	} else if hit {
		return credits, nil
	}

	profile, err := s.ledger.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return 0, domain.ErrProfileNotFound
		}
		return 0, fmt.Errorf("cash service: failed to get balance for user %s: %w", userID, err)
	}

	if err := s.credits.Set(ctx, userID, profile.Credits); err != nil {
		s.logger.Warn("failed to update credits cache", zap.String("user_id", userID), zap.Error(err))
	}

	return profile.Credits, nil
}

// RefreshBalance сбрасывает кэш и перечитывает баланс из базы
func (s *CashAdjustmentService) RefreshBalance(ctx context.Context, userID string) (int64, error) {
	if err := s.credits.Invalidate(ctx, userID); err != nil {
		s.logger.Warn("failed to invalidate credits cache", zap.String("user_id", userID), zap.Error(err))
	}
	return s.GetBalance(ctx, userID)
}

// CheckLedger сравнивает profiles.credits с суммой журнала. Расхождение только сообщается, но не исправляется.
func (s *CashAdjustmentService) CheckLedger(ctx context.Context, userID string) (*domain.LedgerCheck, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, newValidationError("user_id", "is required")
	}

	profile, err := s.ledger.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("cash service: failed to get profile %s: %w", userID, err)
	}

	sum, err := s.ledger.GetLedgerSum(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("cash service: failed to sum ledger for user %s: %w", userID, err)
	}

	check := &domain.LedgerCheck{
		UserID:    userID,
		Credits:   profile.Credits,
		LedgerSum: sum,
		Drift:     profile.Credits - sum,
		InSync:    profile.Credits == sum,
	}

	if !check.InSync {
		s.logger.Warn("balance drifted from ledger",
			zap.String("user_id", userID),
			zap.Int64("credits", check.Credits),
			zap.Int64("ledger_sum", check.LedgerSum),
			zap.Int64("drift", check.Drift),
		)
	}

	return check, nil
}

func (s *CashAdjustmentService) release(ctx context.Context, claimKey string) {
	if claimKey == "" {
		return
	}
	if err := s.claims.Release(ctx, claimKey); err != nil {
		s.logger.Warn("failed to release adjustment claim", zap.String("key", claimKey), zap.Error(err))
	}
}

// validateAdjustment проверяет ввод до любых записей: сумма - положительное целое
func validateAdjustment(in AdjustInput) (domain.CashAdjustment, error) {
	userID := strings.TrimSpace(in.UserID)
	if userID == "" {
		return domain.CashAdjustment{}, newValidationError("user_id", "is required")
	}
	if !in.Type.IsAdmin() {
		return domain.CashAdjustment{}, newValidationError("type", fmt.Sprintf("must be %s or %s", domain.CashTransactionAdminAdd, domain.CashTransactionAdminDeduct))
	}
	if in.Operator.ID == "" {
		return domain.CashAdjustment{}, newValidationError("operator", "operator identity is required")
	}
	if !in.Amount.IsPositive() {
		return domain.CashAdjustment{}, newValidationError("amount", "must be a positive integer")
	}
	if !in.Amount.IsInteger() {
		return domain.CashAdjustment{}, newValidationError("amount", "must be a whole number")
	}
	if in.Amount.GreaterThan(maxAdjustmentAmount) {
		return domain.CashAdjustment{}, newValidationError("amount", fmt.Sprintf("must not exceed %s", maxAdjustmentAmount))
	}

	amount := in.Amount.IntPart()
	if in.Type == domain.CashTransactionAdminDeduct {
		amount = -amount
	}

	return domain.CashAdjustment{
		UserID:      userID,
		Type:        in.Type,
		Amount:      amount,
		Description: strings.TrimSpace(in.Description),
		OperatorID:  in.Operator.ID,
	}, nil
}
