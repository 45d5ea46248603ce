package domain

import "time"

// AuditEventType - тип события аудита
type AuditEventType string

const (
	AuditDepositConfirmed    AuditEventType = "deposit_confirmed"
	AuditOrderRefunded       AuditEventType = "order_refunded"
	AuditOrderCancelled      AuditEventType = "order_cancelled"
	AuditOrderForceCompleted AuditEventType = "order_force_completed"
	AuditCashAdjusted        AuditEventType = "cash_adjusted"
	AuditOrdersDeleted       AuditEventType = "orders_deleted"
)

// AuditEventVersion - версия формата конверта
const AuditEventVersion = 1

// AuditEvent - конверт события аудита.
// EventID, Producer и EventVersion заполняет публикатор, если они пустые.
type AuditEvent struct {
	EventID      string         `json:"event_id"`
	EventType    AuditEventType `json:"event_type"`
	EventVersion int            `json:"event_version"`
	OccurredAt   time.Time      `json:"occurred_at"`
	Producer     string         `json:"producer"`
	OperatorID   string         `json:"operator_id"`
	OrderID      string         `json:"order_id,omitempty"`
	UserID       string         `json:"user_id,omitempty"`
	Payload      any            `json:"payload,omitempty"`
}

// Key возвращает ключ партиционирования: заказ, затем пользователь
func (e AuditEvent) Key() string {
	if e.OrderID != "" {
		return e.OrderID
	}
	if e.UserID != "" {
		return e.UserID
	}
	return e.OperatorID
}
