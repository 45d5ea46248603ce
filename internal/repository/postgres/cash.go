package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avc/sheetmusic-backoffice/internal/domain"
	"github.com/jackc/pgx/v5"
)

// CashLedgerRepository реализует domain.CashLedgerRepository
type CashLedgerRepository struct {
	db DBTX
}

// NewCashLedgerRepository создает новый CashLedgerRepository
func NewCashLedgerRepository(db DBTX) *CashLedgerRepository {
	return &CashLedgerRepository{db: db}
}

// GetProfile получает профиль с денормализованным балансом
func (r *CashLedgerRepository) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	profile := &domain.Profile{}

	err := r.db.QueryRow(ctx,
		`SELECT id, COALESCE(email, ''), credits FROM profiles WHERE id = $1`,
		userID,
	).Scan(&profile.ID, &profile.Email, &profile.Credits)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("repository: failed to get profile %s: %w", userID, err)
	}

	return profile, nil
}

// GetLedgerSum считает баланс пользователя по журналу
func (r *CashLedgerRepository) GetLedgerSum(ctx context.Context, userID string) (int64, error) {
	var sum int64

	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount + bonus_amount), 0)::bigint
		 FROM cash_transactions
		 WHERE user_id = $1`,
		userID,
	).Scan(&sum)

	if err != nil {
		return 0, fmt.Errorf("repository: failed to sum ledger for user %s: %w", userID, err)
	}

	return sum, nil
}

// AdjustCredits изменяет баланс и добавляет запись в журнал в одной транзакции.
// Строка профиля блокируется до коммита, отрицательный итог отклоняется без записи.
func (r *CashLedgerRepository) AdjustCredits(ctx context.Context, adj domain.CashAdjustment) (*domain.CashTransaction, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to begin transaction for user %s: %w", adj.UserID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	var credits int64
	err = tx.QueryRow(ctx,
		`SELECT credits FROM profiles WHERE id = $1 FOR UPDATE`,
		adj.UserID,
	).Scan(&credits)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("repository: failed to lock profile %s: %w", adj.UserID, err)
	}

	balanceAfter := credits + adj.Amount
	if balanceAfter < 0 {
		return nil, domain.ErrInsufficientFunds
	}

	_, err = tx.Exec(ctx,
		`UPDATE profiles SET credits = $1, updated_at = NOW() WHERE id = $2`,
		balanceAfter, adj.UserID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to update credits for user %s: %w", adj.UserID, err)
	}

	record := &domain.CashTransaction{
		UserID:       adj.UserID,
		Type:         adj.Type,
		Amount:       adj.Amount,
		BalanceAfter: balanceAfter,
		Description:  adj.Description,
		CreatedBy:    nullableString(adj.OperatorID),
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO cash_transactions (user_id, transaction_type, amount, bonus_amount, balance_after, description, created_by)
		 VALUES ($1, $2, $3, 0, $4, $5, $6)
		 RETURNING id, created_at`,
		adj.UserID, string(adj.Type), adj.Amount, balanceAfter, adj.Description, record.CreatedBy,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to insert ledger entry for user %s: %w", adj.UserID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository: failed to commit adjustment for user %s: %w", adj.UserID, err)
	}

	return record, nil
}

// ListTransactions получает страницу журнала и общее количество записей по фильтру
func (r *CashLedgerRepository) ListTransactions(ctx context.Context, filter domain.CashHistoryFilter, limit, offset int) ([]*domain.CashTransaction, int64, error) {
	where, args := historyConditions(filter)

	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM cash_transactions`+where,
		args...,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("repository: failed to count ledger entries: %w", err)
	}

	pageArgs := append(args, limit, offset)
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, transaction_type, amount, bonus_amount, balance_after, description,
			sheet_id, order_id, created_by, created_at
		 FROM cash_transactions`+where+
			fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2),
		pageArgs...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("repository: failed to list ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.CashTransaction
	for rows.Next() {
		entry := &domain.CashTransaction{}
		var txType string
		err := rows.Scan(&entry.ID, &entry.UserID, &txType, &entry.Amount, &entry.BonusAmount,
			&entry.BalanceAfter, &entry.Description, &entry.SheetID, &entry.OrderID, &entry.CreatedBy,
			&entry.CreatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("repository: failed to scan ledger entry: %w", err)
		}
		entry.Type = domain.CashTransactionType(txType)
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repository: error iterating ledger entries: %w", err)
	}

	return entries, total, nil
}

// Summarize группирует журнал за период [from, to) по типу операции
func (r *CashLedgerRepository) Summarize(ctx context.Context, userID string, from, to time.Time) ([]domain.CashSummaryRow, error) {
	where, args := historyConditions(domain.CashHistoryFilter{UserID: userID, From: &from, To: &to})

	rows, err := r.db.Query(ctx,
		`SELECT transaction_type, COUNT(*), COALESCE(SUM(amount), 0)::bigint, COALESCE(SUM(bonus_amount), 0)::bigint
		 FROM cash_transactions`+where+`
		 GROUP BY transaction_type
		 ORDER BY transaction_type`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to summarize ledger: %w", err)
	}
	defer rows.Close()

	var summary []domain.CashSummaryRow
	for rows.Next() {
		var (
			row    domain.CashSummaryRow
			txType string
		)
		if err := rows.Scan(&txType, &row.Count, &row.Amount, &row.BonusAmount); err != nil {
			return nil, fmt.Errorf("repository: failed to scan summary row: %w", err)
		}
		row.Type = domain.CashTransactionType(txType)
		summary = append(summary, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating summary rows: %w", err)
	}

	return summary, nil
}

// historyConditions строит WHERE для выборок журнала
func historyConditions(filter domain.CashHistoryFilter) (string, []any) {
	var (
		conditions []string
		args       []any
	)

	if filter.UserID != "" {
		args = append(args, filter.UserID)
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if filter.Type != "" {
		args = append(args, string(filter.Type))
		conditions = append(conditions, fmt.Sprintf("transaction_type = $%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conditions = append(conditions, fmt.Sprintf("created_at < $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
