package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avc/sheetmusic-backoffice/internal/domain"
)

const (
	defaultHistoryPageSize = 20
	maxHistoryPageSize     = 100
)

// HistoryPage - страница журнала кэша
type HistoryPage struct {
	Items      []*domain.CashTransaction `json:"items"`
	Page       int                       `json:"page"`
	PageSize   int                       `json:"page_size"`
	Total      int64                     `json:"total"`
	TotalPages int                       `json:"total_pages"`
}

// SummaryRow - агрегат журнала по типу операции
type SummaryRow struct {
	Type        domain.CashTransactionType `json:"transaction_type"`
	Count       int64                      `json:"count"`
	Amount      int64                      `json:"amount"`
	BonusAmount int64                      `json:"bonus_amount"`
}

// PeriodSummary - сводка журнала за период [From, To)
type PeriodSummary struct {
	UserID    string       `json:"user_id,omitempty"`
	From      time.Time    `json:"from"`
	To        time.Time    `json:"to"`
	Rows      []SummaryRow `json:"rows"`
	NetAmount int64        `json:"net_amount"`
}

// CashHistoryPager - постраничный просмотр журнала только для чтения
type CashHistoryPager struct {
	ledger domain.CashLedgerRepository
}

// NewCashHistoryPager создает новый CashHistoryPager
func NewCashHistoryPager(ledger domain.CashLedgerRepository) *CashHistoryPager {
	return &CashHistoryPager{ledger: ledger}
}

// Page возвращает страницу журнала, новые записи первыми. Страницы нумеруются с 1.
func (p *CashHistoryPager) Page(ctx context.Context, filter domain.CashHistoryFilter, page, pageSize int) (*HistoryPage, error) {
	if filter.Type != "" && !filter.Type.IsValid() {
		return nil, newValidationError("type", fmt.Sprintf("unknown transaction type %q", filter.Type))
	}
	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return nil, newValidationError("from", "must be before to")
	}

	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultHistoryPageSize
	}
	if pageSize > maxHistoryPageSize {
		pageSize = maxHistoryPageSize
	}

	items, total, err := p.ledger.ListTransactions(ctx, filter, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("cash history: failed to list transactions: %w", err)
	}
	if items == nil {
		items = []*domain.CashTransaction{}
	}

	return &HistoryPage{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: int((total + int64(pageSize) - 1) / int64(pageSize)),
	}, nil
}

// Summary группирует журнал за период, начало включается, конец нет
func (p *CashHistoryPager) Summary(ctx context.Context, userID string, from, to time.Time) (*PeriodSummary, error) {
	if !from.Before(to) {
		return nil, newValidationError("from", "must be before to")
	}

	rows, err := p.ledger.Summarize(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("cash history: failed to summarize transactions: %w", err)
	}

	summary := &PeriodSummary{
		UserID: userID,
		From:   from,
		To:     to,
		Rows:   make([]SummaryRow, 0, len(rows)),
	}
	for _, row := range rows {
		summary.Rows = append(summary.Rows, SummaryRow(row))
		summary.NetAmount += row.Amount + row.BonusAmount
	}

	return summary, nil
}

// MonthRange возвращает границы календарного месяца [начало, начало следующего)
func MonthRange(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return from, from.AddDate(0, 1, 0)
}
