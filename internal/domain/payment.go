package domain

// PaymentMethod - нормализованный способ оплаты
type PaymentMethod string

const (
	PaymentMethodBankTransfer   PaymentMethod = "bank_transfer"
	PaymentMethodVirtualAccount PaymentMethod = "virtual_account"
	PaymentMethodCard           PaymentMethod = "card"
	PaymentMethodCash           PaymentMethod = "cash"
	PaymentMethodKakaoPay       PaymentMethod = "kakaopay"
	PaymentMethodPayPal         PaymentMethod = "paypal"
	PaymentMethodOther          PaymentMethod = "other"
)

var paymentMethodAliases = map[string]PaymentMethod{
	"bank_transfer":   PaymentMethodBankTransfer,
	"bank":            PaymentMethodBankTransfer,
	"transfer":        PaymentMethodBankTransfer,
	"bank_deposit":    PaymentMethodBankTransfer,
	"deposit":         PaymentMethodBankTransfer,
	"무통장입금":           PaymentMethodBankTransfer,
	"virtual_account": PaymentMethodVirtualAccount,
	"vbank":           PaymentMethodVirtualAccount,
	"va":              PaymentMethodVirtualAccount,
	"가상계좌":            PaymentMethodVirtualAccount,
	"card":            PaymentMethodCard,
	"credit_card":     PaymentMethodCard,
	"cash":            PaymentMethodCash,
	"credits":         PaymentMethodCash,
	"point":           PaymentMethodCash,
	"kakaopay":        PaymentMethodKakaoPay,
	"kakao_pay":       PaymentMethodKakaoPay,
	"paypal":          PaymentMethodPayPal,
}

// NormalizePaymentMethod приводит сырое значение payment_method к известному способу
func NormalizePaymentMethod(raw string) PaymentMethod {
	if method, ok := paymentMethodAliases[canonicalKey(raw)]; ok {
		return method
	}
	return PaymentMethodOther
}

// IsManualDeposit сообщает, подтверждается ли оплата вручную по выписке банка
func (m PaymentMethod) IsManualDeposit() bool {
	return m == PaymentMethodBankTransfer || m == PaymentMethodVirtualAccount
}

// awaitingPaymentStatuses - значения payment_status, при которых депозит еще не подтвержден
var awaitingPaymentStatuses = map[string]bool{
	"awaiting_deposit": true,
	"pending":          true,
}

// IsAwaitingDeposit проверяет payment_status заказа.
// Пустой payment_status (старые заказы) заменяется каноническим статусом заказа.
func (s *OrderSnapshot) IsAwaitingDeposit() bool {
	key := canonicalKey(s.PaymentStatus)
	if key == "" {
		key = string(s.Status)
	}
	return awaitingPaymentStatuses[key]
}
