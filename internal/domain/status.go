package domain

import (
	"regexp"
	"strings"
)

// OrderStatus - каноническое состояние заказа, на котором строится вся логика
type OrderStatus string

const (
	OrderStatusPending          OrderStatus = "pending"
	OrderStatusAwaitingDeposit  OrderStatus = "awaiting_deposit"
	OrderStatusPaymentConfirmed OrderStatus = "payment_confirmed"
	OrderStatusCompleted        OrderStatus = "completed"
	OrderStatusCancelled        OrderStatus = "cancelled"
	OrderStatusRefunded         OrderStatus = "refunded"
)

// OrderStatuses перечисляет все канонические статусы
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusAwaitingDeposit,
	OrderStatusPaymentConfirmed,
	OrderStatusCompleted,
	OrderStatusCancelled,
	OrderStatusRefunded,
}

var canonicalStatuses = map[string]OrderStatus{
	string(OrderStatusPending):          OrderStatusPending,
	string(OrderStatusAwaitingDeposit):  OrderStatusAwaitingDeposit,
	string(OrderStatusPaymentConfirmed): OrderStatusPaymentConfirmed,
	string(OrderStatusCompleted):        OrderStatusCompleted,
	string(OrderStatusCancelled):        OrderStatusCancelled,
	string(OrderStatusRefunded):         OrderStatusRefunded,
}

// LegacyStatusTableVersion увеличивается при каждом изменении таблицы legacyStatuses
const LegacyStatusTableVersion = 2

// legacyStatuses сопоставляет исторические значения колонки status каноническим.
// Перечень собран по данным продакшена и может быть неполным.
var legacyStatuses = map[string]OrderStatus{
	// v1
	"in_progress": OrderStatusPaymentConfirmed,
	"processing":  OrderStatusPaymentConfirmed,
	"paid":        OrderStatusPaymentConfirmed,
	"confirmed":   OrderStatusPaymentConfirmed,
	"complete":    OrderStatusCompleted,
	"done":        OrderStatusCompleted,
	"canceled":    OrderStatusCancelled,
	"refund":      OrderStatusRefunded,

	// v2
	"waiting_deposit":   OrderStatusAwaitingDeposit,
	"awaiting_payment":  OrderStatusAwaitingDeposit,
	"deposit_waiting":   OrderStatusAwaitingDeposit,
	"payment_completed": OrderStatusPaymentConfirmed,
	"delivered":         OrderStatusCompleted,
	"cancel":            OrderStatusCancelled,
	"refund_completed":  OrderStatusRefunded,
	"new":               OrderStatusPending,
	"created":           OrderStatusPending,
}

var separators = regexp.MustCompile(`[\s\-]+`)

// canonicalKey приводит строку к нижнему регистру и заменяет пробелы и дефисы на "_"
func canonicalKey(raw string) string {
	return separators.ReplaceAllString(strings.ToLower(strings.TrimSpace(raw)), "_")
}

// NormalizeStatus приводит сырое значение статуса к одному из шести канонических.
// Неизвестные и пустые значения трактуются как pending.
func NormalizeStatus(raw string) OrderStatus {
	key := canonicalKey(raw)
	if status, ok := canonicalStatuses[key]; ok {
		return status
	}
	if status, ok := legacyStatuses[key]; ok {
		return status
	}
	return OrderStatusPending
}

// NormalizeStatusPtr - вариант NormalizeStatus для nullable колонки
func NormalizeStatusPtr(raw *string) OrderStatus {
	if raw == nil {
		return OrderStatusPending
	}
	return NormalizeStatus(*raw)
}

// ParseOrderStatus возвращает канонический статус без fallback на pending
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	status, ok := canonicalStatuses[canonicalKey(raw)]
	return status, ok
}

// IsTerminal сообщает, является ли статус конечным
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCancelled || s == OrderStatusRefunded
}
