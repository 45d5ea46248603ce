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
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func strPtr(s string) *string { return &s }

var snapshotColumns = []string{"id", "order_number", "user_id", "status", "payment_method", "payment_status",
	"depositor_name", "total_amount", "order_type", "updated_at", "item_count"}

var orderRowColumns = []string{"id", "order_number", "user_id", "total_amount", "status", "payment_method",
	"payment_status", "payment_note", "transaction_id", "depositor_name", "payment_confirmed_at",
	"virtual_account_info", "metadata", "order_type", "created_at", "updated_at", "item_count"}

func TestOrderRepository_GetOrderSnapshot(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock, zap.NewNop())
	ctx := context.Background()
	now := time.Now()

	t.Run("Legacy status is normalized", func(t *testing.T) {
		rows := pgxmock.NewRows(snapshotColumns).
			AddRow("o-1", "ORD-1", "u-1", strPtr("processing"), strPtr("Bank Transfer"), strPtr("awaiting_deposit"),
				strPtr("Kim"), int64(15000), strPtr("product"), now, int64(2))

		mock.ExpectQuery(`SELECT o\.id, o\.order_number, o\.user_id, o\.status`).
			WithArgs("o-1").
			WillReturnRows(rows)

		snap, err := repo.GetOrderSnapshot(ctx, "o-1")
		require.NoError(t, err)
		assert.Equal(t, "processing", snap.RawStatus)
		assert.Equal(t, domain.OrderStatusPaymentConfirmed, snap.Status)
		assert.Equal(t, "Bank Transfer", snap.PaymentMethod)
		assert.Equal(t, "Kim", snap.DepositorName)
		assert.Equal(t, int64(15000), snap.TotalAmount)
		assert.Equal(t, domain.OrderTypeProduct, snap.OrderType)
		assert.Equal(t, 2, snap.ItemCount)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Null status becomes pending", func(t *testing.T) {
		rows := pgxmock.NewRows(snapshotColumns).
			AddRow("o-2", "ORD-2", "u-1", nil, nil, nil, nil, int64(0), strPtr("cash"), now, int64(0))

		mock.ExpectQuery(`SELECT o\.id, o\.order_number, o\.user_id, o\.status`).
			WithArgs("o-2").
			WillReturnRows(rows)

		snap, err := repo.GetOrderSnapshot(ctx, "o-2")
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusPending, snap.Status)
		assert.Empty(t, snap.PaymentStatus)
		assert.True(t, snap.IsCashCharge())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT o\.id, o\.order_number, o\.user_id, o\.status`).
			WithArgs("missing").
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetOrderSnapshot(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT o\.id, o\.order_number, o\.user_id, o\.status`).
			WithArgs("o-1").
			WillReturnError(errors.New("connection reset"))

		_, err := repo.GetOrderSnapshot(ctx, "o-1")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrOrderNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_GetOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock, zap.NewNop())
	ctx := context.Background()
	now := time.Now()

	t.Run("Success with items", func(t *testing.T) {
		orderRows := pgxmock.NewRows(orderRowColumns).
			AddRow("o-1", "ORD-1", "u-1", int64(15000), strPtr("Awaiting Deposit"), strPtr("bank_transfer"),
				strPtr("awaiting_deposit"), nil, nil, strPtr("Kim"), nil,
				[]byte(`{"bank_name":"KB","account_number":"123"}`), []byte(`{"source":"web"}`),
				strPtr("product"), now, now, int64(2))

		mock.ExpectQuery(`FROM orders o WHERE o\.id = \$1`).
			WithArgs("o-1").
			WillReturnRows(orderRows)

		itemRows := pgxmock.NewRows([]string{"id", "sheet_ref", "sheet_title", "price", "download_attempt_count", "last_downloaded_at", "created_at"}).
			AddRow("i-1", strPtr("s-1"), "Nocturne", int64(10000), 3, &now, now).
			AddRow("i-2", nil, "", int64(5000), 0, nil, now)

		mock.ExpectQuery(`FROM order_items WHERE order_id = \$1`).
			WithArgs("o-1").
			WillReturnRows(itemRows)

		order, err := repo.GetOrder(ctx, "o-1")
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusAwaitingDeposit, order.Status)
		assert.Equal(t, "Awaiting Deposit", order.RawStatus)
		require.NotNil(t, order.VirtualAccount)
		assert.Equal(t, "KB", order.VirtualAccount.BankName)
		source, ok := order.Metadata.String("source")
		assert.True(t, ok)
		assert.Equal(t, "web", source)

		require.Len(t, order.Items, 2)
		assert.Equal(t, 3, order.Items[0].DownloadAttemptCount)
		require.NotNil(t, order.Items[0].SheetID)
		assert.Nil(t, order.Items[1].SheetID)
		assert.Nil(t, order.Items[1].LastDownloadedAt)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(`FROM orders o WHERE o\.id = \$1`).
			WithArgs("missing").
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetOrder(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_ListOrders(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock, zap.NewNop())
	ctx := context.Background()
	now := time.Now()

	t.Run("With filters", func(t *testing.T) {
		rows := pgxmock.NewRows(orderRowColumns).
			AddRow("o-1", "ORD-1", "u-1", int64(15000), strPtr("paid"), strPtr("card"),
				strPtr("completed"), nil, strPtr("tx-1"), nil, &now, nil, nil,
				strPtr("product"), now, now, int64(1))

		mock.ExpectQuery(`WHERE LOWER\(o\.order_type\) = \$1 AND o\.user_id = \$2 AND \(o\.order_number ILIKE \$3 OR o\.depositor_name ILIKE \$3\) ORDER BY o\.created_at DESC LIMIT \$4 OFFSET \$5`).
			WithArgs("product", "u-1", "%ORD%", 20, 40).
			WillReturnRows(rows)

		orders, err := repo.ListOrders(ctx, domain.OrderListFilter{
			OrderType: domain.OrderTypeProduct,
			UserID:    "u-1",
			Search:    " ORD ",
			Limit:     20,
			Offset:    40,
		})
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, domain.OrderStatusPaymentConfirmed, orders[0].Status)
		assert.Nil(t, orders[0].VirtualAccount)
		assert.Equal(t, 0, orders[0].Metadata.Len())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No filters", func(t *testing.T) {
		mock.ExpectQuery(`FROM orders o ORDER BY o\.created_at DESC$`).
			WillReturnRows(pgxmock.NewRows(orderRowColumns))

		orders, err := repo.ListOrders(ctx, domain.OrderListFilter{})
		require.NoError(t, err)
		assert.Empty(t, orders)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Malformed JSON fields do not break the list", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		repo := NewOrderRepository(mock, zap.New(core))

		rows := pgxmock.NewRows(orderRowColumns).
			AddRow("o-1", "ORD-1", "u-1", int64(100), nil, nil, nil, nil, nil, nil, nil,
				[]byte(`{"account_number":1234567}`), []byte(`["legacy"]`), nil, now, now, int64(0)).
			AddRow("o-2", "ORD-2", "u-1", int64(200), strPtr("pending"), nil, nil, nil, nil, nil, nil,
				[]byte(`{"bank_name":"KB"}`), []byte(`{"source":"web"}`), nil, now, now, int64(1))

		mock.ExpectQuery(`FROM orders o`).
			WillReturnRows(rows)

		orders, err := repo.ListOrders(ctx, domain.OrderListFilter{})
		require.NoError(t, err)
		require.Len(t, orders, 2)

		assert.Nil(t, orders[0].VirtualAccount)
		assert.Equal(t, 0, orders[0].Metadata.Len())
		require.NotNil(t, orders[1].VirtualAccount)
		assert.Equal(t, "KB", orders[1].VirtualAccount.BankName)
		assert.Equal(t, 1, orders[1].Metadata.Len())

		assert.Equal(t, 2, logs.FilterField(zap.String("order_id", "o-1")).Len())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Malformed virtual account in order details", func(t *testing.T) {
		rows := pgxmock.NewRows(orderRowColumns).
			AddRow("o-3", "ORD-3", "u-1", int64(100), strPtr("awaiting_deposit"), strPtr("bank_transfer"),
				strPtr("awaiting_deposit"), nil, nil, nil, nil,
				[]byte(`{"expires_at":"tomorrow"}`), nil, nil, now, now, int64(0))

		mock.ExpectQuery(`FROM orders o WHERE o\.id = \$1`).
			WithArgs("o-3").
			WillReturnRows(rows)
		mock.ExpectQuery(`FROM order_items WHERE order_id = \$1`).
			WithArgs("o-3").
			WillReturnRows(pgxmock.NewRows([]string{"id", "sheet_ref", "sheet_title", "price", "download_attempt_count", "last_downloaded_at", "created_at"}))

		order, err := repo.GetOrder(ctx, "o-3")
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusAwaitingDeposit, order.Status)
		assert.Nil(t, order.VirtualAccount)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_DeleteOrders(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock, zap.NewNop())
	ctx := context.Background()
	ids := []string{"o-1", "o-2"}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM order_items WHERE order_id = ANY\(\$1\)`).
			WithArgs(ids).
			WillReturnResult(pgxmock.NewResult("DELETE", 3))
		mock.ExpectExec(`DELETE FROM orders WHERE id = ANY\(\$1\)`).
			WithArgs(ids).
			WillReturnResult(pgxmock.NewResult("DELETE", 2))
		mock.ExpectCommit()

		deleted, err := repo.DeleteOrders(ctx, ids)
		require.NoError(t, err)
		assert.Equal(t, int64(2), deleted)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Items delete fails", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM order_items`).
			WithArgs(ids).
			WillReturnError(errors.New("lock timeout"))
		mock.ExpectRollback()

		_, err := repo.DeleteOrders(ctx, ids)
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
