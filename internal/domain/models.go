package domain

import "time"

// OrderType различает заказ нот и пополнение кэша
type OrderType string

const (
	OrderTypeNone    OrderType = ""
	OrderTypeProduct OrderType = "product"
	OrderTypeCash    OrderType = "cash"
)

// ParseOrderType приводит значение колонки order_type к известному типу
func ParseOrderType(raw string) OrderType {
	switch canonicalKey(raw) {
	case string(OrderTypeProduct):
		return OrderTypeProduct
	case string(OrderTypeCash):
		return OrderTypeCash
	default:
		return OrderTypeNone
	}
}

// CashTransactionType представляет тип записи в журнале кэша
type CashTransactionType string

const (
	CashTransactionCharge      CashTransactionType = "charge"
	CashTransactionUse         CashTransactionType = "use"
	CashTransactionAdminAdd    CashTransactionType = "admin_add"
	CashTransactionAdminDeduct CashTransactionType = "admin_deduct"
)

// IsValid проверяет, что тип входит в известный набор
func (t CashTransactionType) IsValid() bool {
	switch t {
	case CashTransactionCharge, CashTransactionUse, CashTransactionAdminAdd, CashTransactionAdminDeduct:
		return true
	}
	return false
}

// IsAdmin сообщает, создается ли запись оператором
func (t CashTransactionType) IsAdmin() bool {
	return t == CashTransactionAdminAdd || t == CashTransactionAdminDeduct
}

// Operator представляет администратора, выполняющего действие
type Operator struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
}

// Order представляет заказ магазина
type Order struct {
	ID                 string              `json:"id"`
	OrderNumber        string              `json:"order_number"`
	UserID             string              `json:"user_id"`
	TotalAmount        int64               `json:"total_amount"`
	Status             OrderStatus         `json:"status"`
	RawStatus          string              `json:"raw_status"`
	PaymentMethod      string              `json:"payment_method,omitempty"`
	PaymentStatus      string              `json:"payment_status,omitempty"`
	PaymentNote        *string             `json:"payment_note,omitempty"`
	TransactionID      *string             `json:"transaction_id,omitempty"`
	DepositorName      *string             `json:"depositor_name,omitempty"`
	PaymentConfirmedAt *time.Time          `json:"payment_confirmed_at,omitempty"`
	VirtualAccount     *VirtualAccountInfo `json:"virtual_account_info,omitempty"`
	Metadata           OrderMetadata       `json:"metadata"`
	OrderType          OrderType           `json:"order_type,omitempty"`
	ItemCount          int                 `json:"item_count"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
	Items              []OrderItem         `json:"items,omitempty"`
}

// OrderItem представляет позицию заказа, зафиксированную на момент покупки
type OrderItem struct {
	ID                   string     `json:"id"`
	SheetID              *string    `json:"sheet_id"` // nil, если нота удалена из каталога
	Title                string     `json:"title"`
	Price                int64      `json:"price"`
	DownloadAttemptCount int        `json:"download_attempt_count"`
	LastDownloadedAt     *time.Time `json:"last_downloaded_at,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
}

// OrderSnapshot - свежее состояние заказа, перечитанное перед изменяющим действием
type OrderSnapshot struct {
	ID            string
	OrderNumber   string
	UserID        string
	RawStatus     string
	Status        OrderStatus
	PaymentMethod string
	PaymentStatus string
	DepositorName string
	TotalAmount   int64
	OrderType     OrderType
	ItemCount     int
	UpdatedAt     time.Time
}

// IsCashCharge сообщает, является ли заказ пополнением кэша без позиций
func (s *OrderSnapshot) IsCashCharge() bool {
	return s.OrderType == OrderTypeCash && s.ItemCount == 0
}

// OrderListFilter задает выборку списка заказов
type OrderListFilter struct {
	Status    OrderStatus `json:"status,omitempty"`
	OrderType OrderType   `json:"order_type,omitempty"`
	UserID    string      `json:"user_id,omitempty"`
	Search    string      `json:"search,omitempty"`
	Limit     int         `json:"limit"`
	Offset    int         `json:"offset"`
}

// CashTransaction - неизменяемая запись журнала кэша
type CashTransaction struct {
	ID           string              `json:"id"`
	UserID       string              `json:"user_id"`
	Type         CashTransactionType `json:"transaction_type"`
	Amount       int64               `json:"amount"`
	BonusAmount  int64               `json:"bonus_amount"`
	BalanceAfter int64               `json:"balance_after"`
	Description  string              `json:"description"`
	SheetID      *string             `json:"sheet_id,omitempty"`
	OrderID      *string             `json:"order_id,omitempty"`
	CreatedBy    *string             `json:"created_by,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
}

// CashAdjustment описывает ручное изменение баланса оператором
type CashAdjustment struct {
	UserID      string
	Type        CashTransactionType
	Amount      int64 // со знаком: положительное для admin_add, отрицательное для admin_deduct
	Description string
	OperatorID  string
}

// Profile содержит денормализованный баланс пользователя
type Profile struct {
	ID      string `json:"id"`
	Email   string `json:"email,omitempty"`
	Credits int64  `json:"credits"`
}

// LedgerCheck сравнивает profiles.credits с суммой журнала
type LedgerCheck struct {
	UserID    string `json:"user_id"`
	Credits   int64  `json:"credits"`
	LedgerSum int64  `json:"ledger_sum"`
	Drift     int64  `json:"drift"`
	InSync    bool   `json:"in_sync"`
}

// CashHistoryFilter задает выборку журнала кэша
type CashHistoryFilter struct {
	UserID string
	Type   CashTransactionType
	From   *time.Time
	To     *time.Time
}

// CashSummaryRow - агрегат журнала по одному типу операции
type CashSummaryRow struct {
	Type        CashTransactionType
	Count       int64
	Amount      int64
	BonusAmount int64
}
