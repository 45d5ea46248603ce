package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avc/sheetmusic-backoffice/internal/domain"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const orderColumns = `o.id, o.order_number, o.user_id, o.total_amount, o.status, o.payment_method,
	o.payment_status, o.payment_note, o.transaction_id, o.depositor_name, o.payment_confirmed_at,
	o.virtual_account_info, o.metadata, o.order_type, o.created_at, o.updated_at,
	(SELECT COUNT(*) FROM order_items oi WHERE oi.order_id = o.id) AS item_count`

// OrderRepository реализует domain.OrderRepository
type OrderRepository struct {
	db     DBTX
	logger *zap.Logger
}

// NewOrderRepository создает новый OrderRepository
func NewOrderRepository(db DBTX, logger *zap.Logger) *OrderRepository {
	return &OrderRepository{db: db, logger: logger}
}

// GetOrderSnapshot перечитывает из базы поля, от которых зависят изменяющие действия
func (r *OrderRepository) GetOrderSnapshot(ctx context.Context, orderID string) (*domain.OrderSnapshot, error) {
	var (
		status, paymentMethod, paymentStatus *string
		depositorName, orderType             *string
		itemCount                            int64
	)
	snap := &domain.OrderSnapshot{}

	err := r.db.QueryRow(ctx,
		`SELECT o.id, o.order_number, o.user_id, o.status, o.payment_method, o.payment_status,
			o.depositor_name, o.total_amount, o.order_type, o.updated_at,
			(SELECT COUNT(*) FROM order_items oi WHERE oi.order_id = o.id) AS item_count
		 FROM orders o
		 WHERE o.id = $1`,
		orderID,
	).Scan(&snap.ID, &snap.OrderNumber, &snap.UserID, &status, &paymentMethod, &paymentStatus,
		&depositorName, &snap.TotalAmount, &orderType, &snap.UpdatedAt, &itemCount)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to get order snapshot %s: %w", orderID, err)
	}

	snap.RawStatus = deref(status)
	snap.Status = domain.NormalizeStatusPtr(status)
	snap.PaymentMethod = deref(paymentMethod)
	snap.PaymentStatus = deref(paymentStatus)
	snap.DepositorName = deref(depositorName)
	snap.OrderType = domain.ParseOrderType(deref(orderType))
	snap.ItemCount = int(itemCount)

	return snap, nil
}

// GetOrder получает заказ вместе с позициями
func (r *OrderRepository) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := r.scanOrder(r.db.QueryRow(ctx,
		`SELECT `+orderColumns+`
		 FROM orders o
		 WHERE o.id = $1`,
		orderID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to get order %s: %w", orderID, err)
	}

	items, err := r.getOrderItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

func (r *OrderRepository) getOrderItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, sheet_ref, COALESCE(sheet_title, ''), price, download_attempt_count, last_downloaded_at, created_at
		 FROM order_items
		 WHERE order_id = $1
		 ORDER BY created_at ASC`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get items for order %s: %w", orderID, err)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		err := rows.Scan(&item.ID, &item.SheetID, &item.Title, &item.Price,
			&item.DownloadAttemptCount, &item.LastDownloadedAt, &item.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan order item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating order items: %w", err)
	}

	return items, nil
}

// ListOrders получает заказы без позиций, новые первыми.
// Фильтр по каноническому статусу применяется в сервисе, так как в базе хранятся сырые значения.
func (r *OrderRepository) ListOrders(ctx context.Context, filter domain.OrderListFilter) ([]*domain.Order, error) {
	var (
		conditions []string
		args       []any
	)

	if filter.OrderType != domain.OrderTypeNone {
		args = append(args, string(filter.OrderType))
		conditions = append(conditions, fmt.Sprintf("LOWER(o.order_type) = $%d", len(args)))
	}
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		conditions = append(conditions, fmt.Sprintf("o.user_id = $%d", len(args)))
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		args = append(args, "%"+search+"%")
		conditions = append(conditions, fmt.Sprintf("(o.order_number ILIKE $%d OR o.depositor_name ILIKE $%d)", len(args), len(args)))
	}

	query := `SELECT ` + orderColumns + ` FROM orders o`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY o.created_at DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		order, err := r.scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating orders: %w", err)
	}

	return orders, nil
}

// DeleteOrders удаляет заказы вместе с позициями в одной транзакции.
// Журнал кэша не затрагивается.
func (r *OrderRepository) DeleteOrders(ctx context.Context, orderIDs []string) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to begin delete transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_id = ANY($1)`, orderIDs); err != nil {
		return 0, fmt.Errorf("repository: failed to delete order items: %w", err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM orders WHERE id = ANY($1)`, orderIDs)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to delete orders: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("repository: failed to commit order deletion: %w", err)
	}

	return result.RowsAffected(), nil
}

// scanOrder читает строку с колонками orderColumns.
// Нечитаемые JSON поля считаются отсутствующими, чтобы заказ оставался доступным оператору.
func (r *OrderRepository) scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		status, paymentMethod, paymentStatus, orderType *string
		virtualAccount, metadata                        []byte
		itemCount                                       int64
	)
	order := &domain.Order{}

	err := row.Scan(&order.ID, &order.OrderNumber, &order.UserID, &order.TotalAmount, &status,
		&paymentMethod, &paymentStatus, &order.PaymentNote, &order.TransactionID, &order.DepositorName,
		&order.PaymentConfirmedAt, &virtualAccount, &metadata, &orderType, &order.CreatedAt,
		&order.UpdatedAt, &itemCount)
	if err != nil {
		return nil, err
	}

	order.RawStatus = deref(status)
	order.Status = domain.NormalizeStatusPtr(status)
	order.PaymentMethod = deref(paymentMethod)
	order.PaymentStatus = deref(paymentStatus)
	order.OrderType = domain.ParseOrderType(deref(orderType))
	order.ItemCount = int(itemCount)

	if order.VirtualAccount, err = domain.ParseVirtualAccountInfo(virtualAccount); err != nil {
		r.logger.Warn("malformed virtual account info, treated as absent",
			zap.String("order_id", order.ID), zap.Error(err))
		order.VirtualAccount = nil
	}
	if order.Metadata, err = domain.ParseOrderMetadata(metadata); err != nil {
		r.logger.Warn("malformed order metadata, treated as absent",
			zap.String("order_id", order.ID), zap.Error(err))
		order.Metadata = domain.OrderMetadata{}
	}

	return order, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

