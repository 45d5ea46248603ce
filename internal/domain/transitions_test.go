package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedFrom_Matrix(t *testing.T) {
	expected := map[OrderAction]map[OrderStatus]bool{
		ActionConfirmDeposit: {
			OrderStatusPending:          true,
			OrderStatusAwaitingDeposit:  true,
			OrderStatusPaymentConfirmed: false,
			OrderStatusCompleted:        false,
			OrderStatusCancelled:        false,
			OrderStatusRefunded:         false,
		},
		ActionRefund: {
			OrderStatusPending:          false,
			OrderStatusAwaitingDeposit:  false,
			OrderStatusPaymentConfirmed: true,
			OrderStatusCompleted:        true,
			OrderStatusCancelled:        false,
			OrderStatusRefunded:         false,
		},
		ActionCancel: {
			OrderStatusPending:          true,
			OrderStatusAwaitingDeposit:  true,
			OrderStatusPaymentConfirmed: true,
			OrderStatusCompleted:        true,
			OrderStatusCancelled:        false,
			OrderStatusRefunded:         false,
		},
		ActionForceComplete: {
			OrderStatusPending:          true,
			OrderStatusAwaitingDeposit:  true,
			OrderStatusPaymentConfirmed: true,
			OrderStatusCompleted:        false,
			OrderStatusCancelled:        true,
			OrderStatusRefunded:         false,
		},
	}

	// Повторные вызовы не влияют на результат
	for round := 0; round < 2; round++ {
		for action, row := range expected {
			for status, allowed := range row {
				assert.Equal(t, allowed, AllowedFrom(action, status), "%s from %s", action, status)

				snap := &OrderSnapshot{Status: status, PaymentMethod: "bank_transfer", PaymentStatus: "awaiting_deposit"}
				reason := CheckPrecondition(action, snap)
				assert.Equal(t, allowed, reason == "", "%s from %s: %s", action, status, reason)
			}
		}
	}
}

func TestCheckPrecondition_ConfirmDeposit(t *testing.T) {
	tests := []struct {
		name    string
		snap    OrderSnapshot
		allowed bool
	}{
		{
			name:    "Bank transfer awaiting deposit",
			snap:    OrderSnapshot{Status: OrderStatusAwaitingDeposit, PaymentMethod: "bank_transfer", PaymentStatus: "awaiting_deposit"},
			allowed: true,
		},
		{
			name:    "Virtual account pending",
			snap:    OrderSnapshot{Status: OrderStatusPending, PaymentMethod: "virtual-account", PaymentStatus: "Pending"},
			allowed: true,
		},
		{
			name:    "Empty payment status falls back to order status",
			snap:    OrderSnapshot{Status: OrderStatusAwaitingDeposit, PaymentMethod: "bank_transfer"},
			allowed: true,
		},
		{
			name:    "Empty payment status with confirmed order",
			snap:    OrderSnapshot{Status: OrderStatusPaymentConfirmed, PaymentMethod: "bank_transfer"},
			allowed: false,
		},
		{
			name:    "Card payment",
			snap:    OrderSnapshot{Status: OrderStatusAwaitingDeposit, PaymentMethod: "card", PaymentStatus: "pending"},
			allowed: false,
		},
		{
			name:    "Already completed payment",
			snap:    OrderSnapshot{Status: OrderStatusCompleted, PaymentMethod: "bank_transfer", PaymentStatus: "completed"},
			allowed: false,
		},
		{
			name:    "Cancelled order with stale payment status",
			snap:    OrderSnapshot{Status: OrderStatusCancelled, PaymentMethod: "bank_transfer", PaymentStatus: "awaiting_deposit"},
			allowed: false,
		},
		{
			name:    "Refunded order with stale payment status",
			snap:    OrderSnapshot{Status: OrderStatusRefunded, PaymentMethod: "bank_transfer", PaymentStatus: "awaiting_deposit"},
			allowed: false,
		},
		{
			name:    "Completed order with stale payment status",
			snap:    OrderSnapshot{Status: OrderStatusCompleted, PaymentMethod: "bank_transfer", PaymentStatus: "awaiting_deposit"},
			allowed: false,
		},
		{
			name:    "Failed payment",
			snap:    OrderSnapshot{Status: OrderStatusPending, PaymentMethod: "bank_transfer", PaymentStatus: "failed"},
			allowed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason := CheckPrecondition(ActionConfirmDeposit, &tt.snap)
			assert.Equal(t, tt.allowed, reason == "", reason)
		})
	}
}

func TestCheckPrecondition_UnknownAction(t *testing.T) {
	reason := CheckPrecondition(OrderAction("ship"), &OrderSnapshot{Status: OrderStatusPending})
	assert.NotEmpty(t, reason)
}

func TestRefundAmount(t *testing.T) {
	assert.Equal(t, int64(15000), RefundAmount(15000))
	assert.Equal(t, int64(0), RefundAmount(0))
	assert.Equal(t, int64(0), RefundAmount(-500))
	assert.Equal(t, int64(0), RefundAmount(-9223372036854775808))
}

func TestOrderSnapshot_IsCashCharge(t *testing.T) {
	assert.True(t, (&OrderSnapshot{OrderType: OrderTypeCash}).IsCashCharge())
	assert.False(t, (&OrderSnapshot{OrderType: OrderTypeCash, ItemCount: 1}).IsCashCharge())
	assert.False(t, (&OrderSnapshot{OrderType: OrderTypeProduct}).IsCashCharge())
}
