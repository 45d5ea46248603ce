package domain

import "fmt"

// OrderAction - изменяющее действие оператора над заказом
type OrderAction string

const (
	ActionConfirmDeposit OrderAction = "confirm_deposit"
	ActionRefund         OrderAction = "refund"
	ActionCancel         OrderAction = "cancel"
	ActionForceComplete  OrderAction = "force_complete"
)

// OrderActions перечисляет все действия
var OrderActions = []OrderAction{ActionConfirmDeposit, ActionRefund, ActionCancel, ActionForceComplete}

// allowedFrom - матрица допустимых статусов заказа для каждого действия
var allowedFrom = map[OrderAction]map[OrderStatus]bool{
	ActionConfirmDeposit: {
		OrderStatusPending:         true,
		OrderStatusAwaitingDeposit: true,
	},
	ActionRefund: {
		OrderStatusPaymentConfirmed: true,
		OrderStatusCompleted:        true,
	},
	ActionCancel: {
		OrderStatusPending:          true,
		OrderStatusAwaitingDeposit:  true,
		OrderStatusPaymentConfirmed: true,
		OrderStatusCompleted:        true,
	},
	ActionForceComplete: {
		OrderStatusPending:          true,
		OrderStatusAwaitingDeposit:  true,
		OrderStatusPaymentConfirmed: true,
		OrderStatusCancelled:        true,
	},
}

// AllowedFrom сообщает, допускает ли матрица действие из данного статуса.
// Для confirm_deposit дополнительно проверяются способ и статус оплаты, см. CheckPrecondition.
func AllowedFrom(action OrderAction, status OrderStatus) bool {
	return allowedFrom[action][status]
}

// CheckPrecondition применяет матрицу переходов к свежему состоянию заказа.
// Возвращает пустую строку, если действие допустимо, иначе причину отказа.
func CheckPrecondition(action OrderAction, snap *OrderSnapshot) string {
	switch action {
	case ActionConfirmDeposit:
		// payment_status может отставать от статуса заказа после отмены
		if !AllowedFrom(action, snap.Status) {
			return fmt.Sprintf("action %s is not allowed from status %s", action, snap.Status)
		}
		method := NormalizePaymentMethod(snap.PaymentMethod)
		if !method.IsManualDeposit() {
			return fmt.Sprintf("payment method %q is not confirmed manually", snap.PaymentMethod)
		}
		if !snap.IsAwaitingDeposit() {
			return fmt.Sprintf("payment status %q is not awaiting deposit", paymentStatusOf(snap))
		}
		return ""
	case ActionRefund, ActionCancel, ActionForceComplete:
		if !AllowedFrom(action, snap.Status) {
			return fmt.Sprintf("action %s is not allowed from status %s", action, snap.Status)
		}
		return ""
	default:
		return fmt.Sprintf("unknown action %q", action)
	}
}

func paymentStatusOf(snap *OrderSnapshot) string {
	if snap.PaymentStatus == "" {
		return string(snap.Status)
	}
	return snap.PaymentStatus
}

// RefundAmount возвращает сумму возврата, которая никогда не бывает отрицательной
func RefundAmount(totalAmount int64) int64 {
	if totalAmount < 0 {
		return 0
	}
	return totalAmount
}
