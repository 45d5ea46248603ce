package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/sheetmusic-backoffice/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCashLedgerRepository_GetProfile(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCashLedgerRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "email", "credits"}).
			AddRow("u-1", "kim@example.com", int64(3000))

		mock.ExpectQuery(`SELECT id, COALESCE\(email, ''\), credits FROM profiles WHERE id = \$1`).
			WithArgs("u-1").
			WillReturnRows(rows)

		profile, err := repo.GetProfile(ctx, "u-1")
		require.NoError(t, err)
		assert.Equal(t, int64(3000), profile.Credits)
		assert.Equal(t, "kim@example.com", profile.Email)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(`FROM profiles WHERE id = \$1`).
			WithArgs("missing").
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetProfile(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrProfileNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCashLedgerRepository_GetLedgerSum(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCashLedgerRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount \+ bonus_amount\), 0\)::bigint FROM cash_transactions WHERE user_id = \$1`).
			WithArgs("u-1").
			WillReturnRows(pgxmock.NewRows([]string{"sum"}).AddRow(int64(5500)))

		sum, err := repo.GetLedgerSum(ctx, "u-1")
		require.NoError(t, err)
		assert.Equal(t, int64(5500), sum)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`FROM cash_transactions`).
			WithArgs("u-1").
			WillReturnError(errors.New("database error"))

		_, err := repo.GetLedgerSum(ctx, "u-1")
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCashLedgerRepository_AdjustCredits(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCashLedgerRepository(mock)
	ctx := context.Background()
	now := time.Now()
	operator := "op-1"

	t.Run("Deduct within balance", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT credits FROM profiles WHERE id = \$1 FOR UPDATE`).
			WithArgs("u-1").
			WillReturnRows(pgxmock.NewRows([]string{"credits"}).AddRow(int64(3000)))
		mock.ExpectExec(`UPDATE profiles SET credits = \$1`).
			WithArgs(int64(1000), "u-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery(`INSERT INTO cash_transactions`).
			WithArgs("u-1", "admin_deduct", int64(-2000), int64(1000), "correction", &operator).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow("tx-1", now))
		mock.ExpectCommit()

		record, err := repo.AdjustCredits(ctx, domain.CashAdjustment{
			UserID:      "u-1",
			Type:        domain.CashTransactionAdminDeduct,
			Amount:      -2000,
			Description: "correction",
			OperatorID:  operator,
		})
		require.NoError(t, err)
		assert.Equal(t, "tx-1", record.ID)
		assert.Equal(t, int64(1000), record.BalanceAfter)
		assert.Equal(t, int64(-2000), record.Amount)
		assert.Equal(t, int64(0), record.BonusAmount)
		require.NotNil(t, record.CreatedBy)
		assert.Equal(t, operator, *record.CreatedBy)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Deduct beyond balance writes nothing", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT credits FROM profiles WHERE id = \$1 FOR UPDATE`).
			WithArgs("u-1").
			WillReturnRows(pgxmock.NewRows([]string{"credits"}).AddRow(int64(1000)))
		mock.ExpectRollback()

		record, err := repo.AdjustCredits(ctx, domain.CashAdjustment{
			UserID:      "u-1",
			Type:        domain.CashTransactionAdminDeduct,
			Amount:      -5000,
			Description: "correction",
			OperatorID:  operator,
		})
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		assert.Nil(t, record)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Add", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`FOR UPDATE`).
			WithArgs("u-2").
			WillReturnRows(pgxmock.NewRows([]string{"credits"}).AddRow(int64(0)))
		mock.ExpectExec(`UPDATE profiles`).
			WithArgs(int64(5000), "u-2").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery(`INSERT INTO cash_transactions`).
			WithArgs("u-2", "admin_add", int64(5000), int64(5000), "event bonus", &operator).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow("tx-2", now))
		mock.ExpectCommit()

		record, err := repo.AdjustCredits(ctx, domain.CashAdjustment{
			UserID:      "u-2",
			Type:        domain.CashTransactionAdminAdd,
			Amount:      5000,
			Description: "event bonus",
			OperatorID:  operator,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(5000), record.BalanceAfter)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown profile", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`FOR UPDATE`).
			WithArgs("missing").
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectRollback()

		_, err := repo.AdjustCredits(ctx, domain.CashAdjustment{
			UserID: "missing",
			Type:   domain.CashTransactionAdminAdd,
			Amount: 100,
		})
		assert.ErrorIs(t, err, domain.ErrProfileNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Insert failure rolls back balance", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`FOR UPDATE`).
			WithArgs("u-1").
			WillReturnRows(pgxmock.NewRows([]string{"credits"}).AddRow(int64(100)))
		mock.ExpectExec(`UPDATE profiles`).
			WithArgs(int64(200), "u-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery(`INSERT INTO cash_transactions`).
			WithArgs("u-1", "admin_add", int64(100), int64(200), "", &operator).
			WillReturnError(errors.New("check violation"))
		mock.ExpectRollback()

		_, err := repo.AdjustCredits(ctx, domain.CashAdjustment{
			UserID:     "u-1",
			Type:       domain.CashTransactionAdminAdd,
			Amount:     100,
			OperatorID: operator,
		})
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCashLedgerRepository_ListTransactions(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCashLedgerRepository(mock)
	ctx := context.Background()
	now := time.Now()
	from := now.Add(-24 * time.Hour)

	t.Run("Filtered page", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM cash_transactions WHERE user_id = \$1 AND transaction_type = \$2 AND created_at >= \$3`).
			WithArgs("u-1", "charge", from).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(42)))

		rows := pgxmock.NewRows([]string{"id", "user_id", "transaction_type", "amount", "bonus_amount", "balance_after",
			"description", "sheet_id", "order_id", "created_by", "created_at"}).
			AddRow("tx-1", "u-1", "charge", int64(10000), int64(1000), int64(11000), "charge", nil, strPtr("o-1"), nil, now)

		mock.ExpectQuery(`ORDER BY created_at DESC LIMIT \$4 OFFSET \$5`).
			WithArgs("u-1", "charge", from, 20, 20).
			WillReturnRows(rows)

		entries, total, err := repo.ListTransactions(ctx, domain.CashHistoryFilter{
			UserID: "u-1",
			Type:   domain.CashTransactionCharge,
			From:   &from,
		}, 20, 20)
		require.NoError(t, err)
		assert.Equal(t, int64(42), total)
		require.Len(t, entries, 1)
		assert.Equal(t, domain.CashTransactionCharge, entries[0].Type)
		assert.Equal(t, int64(1000), entries[0].BonusAmount)
		require.NotNil(t, entries[0].OrderID)
		assert.Equal(t, "o-1", *entries[0].OrderID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Count error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM cash_transactions`).
			WillReturnError(errors.New("database error"))

		_, _, err := repo.ListTransactions(ctx, domain.CashHistoryFilter{}, 20, 0)
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCashLedgerRepository_Summarize(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCashLedgerRepository(mock)
	ctx := context.Background()
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{"transaction_type", "count", "amount", "bonus_amount"}).
		AddRow("admin_add", int64(2), int64(7000), int64(0)).
		AddRow("charge", int64(5), int64(50000), int64(5000))

	mock.ExpectQuery(`WHERE created_at >= \$1 AND created_at < \$2 GROUP BY transaction_type`).
		WithArgs(from, to).
		WillReturnRows(rows)

	summary, err := repo.Summarize(ctx, "", from, to)
	require.NoError(t, err)
	require.Len(t, summary, 2)
	assert.Equal(t, domain.CashTransactionAdminAdd, summary[0].Type)
	assert.Equal(t, int64(5000), summary[1].BonusAmount)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryConditions(t *testing.T) {
	where, args := historyConditions(domain.CashHistoryFilter{})
	assert.Empty(t, where)
	assert.Empty(t, args)
}
