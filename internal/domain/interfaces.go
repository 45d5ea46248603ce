package domain

import (
	"context"
	"time"
)

// OrderRepository определяет методы для работы с заказами
type OrderRepository interface {
	GetOrderSnapshot(ctx context.Context, orderID string) (*OrderSnapshot, error)
	GetOrder(ctx context.Context, orderID string) (*Order, error)
	ListOrders(ctx context.Context, filter OrderListFilter) ([]*Order, error)
	DeleteOrders(ctx context.Context, orderIDs []string) (int64, error)
}

// CashLedgerRepository определяет методы для работы с журналом кэша
type CashLedgerRepository interface {
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	GetLedgerSum(ctx context.Context, userID string) (int64, error)
	AdjustCredits(ctx context.Context, adj CashAdjustment) (*CashTransaction, error)
	ListTransactions(ctx context.Context, filter CashHistoryFilter, limit, offset int) ([]*CashTransaction, int64, error)
	Summarize(ctx context.Context, userID string, from, to time.Time) ([]CashSummaryRow, error)
}

// CompletePaymentRequest - запрос к внешней функции завершения оплаты
type CompletePaymentRequest struct {
	OrderID            string                  `json:"orderId"`
	PaymentMethod      string                  `json:"paymentMethod"`
	TransactionID      string                  `json:"transactionId"`
	PaymentConfirmedAt time.Time               `json:"paymentConfirmedAt"`
	DepositorName      string                  `json:"depositorName,omitempty"`
	PaymentProvider    string                  `json:"paymentProvider"`
	ExpectedStatus     OrderStatus             `json:"expectedStatus,omitempty"`
	Metadata           CompletionAuditMetadata `json:"metadata"`
}

// CompletionAuditMetadata - аудит ручного подтверждения
type CompletionAuditMetadata struct {
	OperatorID    string `json:"operatorId"`
	OperatorEmail string `json:"operatorEmail,omitempty"`
	Source        string `json:"source"`
}

// CancelOrderRequest - запрос к внешней функции отмены заказа
type CancelOrderRequest struct {
	OrderID        string      `json:"orderId"`
	DoRefund       bool        `json:"doRefund"`
	ExpectedStatus OrderStatus `json:"expectedStatus,omitempty"`
}

// CompleteOrderRequest - запрос к внешней функции принудительного завершения
type CompleteOrderRequest struct {
	OrderID        string      `json:"orderId"`
	ExpectedStatus OrderStatus `json:"expectedStatus,omitempty"`
}

// OrderStatusResponse - ответ внешних функций со статусом заказа
type OrderStatusResponse struct {
	Status string `json:"status"`
}

// OrderFunctions определяет внешние функции бэкенда, изменяющие заказы
type OrderFunctions interface {
	CompleteOrderPayment(ctx context.Context, req CompletePaymentRequest) error
	CancelOrder(ctx context.Context, req CancelOrderRequest) (*OrderStatusResponse, error)
	CompleteOrder(ctx context.Context, req CompleteOrderRequest) (*OrderStatusResponse, error)
}

// OrderListCache определяет кэш списка заказов.
// Записи привязаны к поколению, Invalidate переводит кэш на новое поколение.
type OrderListCache interface {
	Generation(ctx context.Context) (int64, error)
	Load(ctx context.Context, generation int64, filter OrderListFilter) ([]*Order, bool, error)
	Store(ctx context.Context, generation int64, filter OrderListFilter, orders []*Order) error
	Invalidate(ctx context.Context) error
}

// CreditsCache определяет кэш баланса пользователей
type CreditsCache interface {
	Get(ctx context.Context, userID string) (int64, bool, error)
	Set(ctx context.Context, userID string, credits int64) error
	Invalidate(ctx context.Context, userID string) error
}

// SubmissionGuard отсекает повторную отправку одного и того же действия
type SubmissionGuard interface {
	Claim(ctx context.Context, key string) error
	Release(ctx context.Context, key string) error
}

// AuditPublisher публикует события аудита финансовых действий
type AuditPublisher interface {
	Publish(ctx context.Context, event AuditEvent) error
}
