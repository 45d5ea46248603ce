package domain

import "errors"

// Ошибки заказов
var (
	ErrOrderNotFound = errors.New("order not found")
)

// Ошибки журнала кэша и баланса
var (
	ErrProfileNotFound   = errors.New("profile not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Ошибки повторной отправки
var (
	ErrDuplicateSubmission = errors.New("duplicate submission")
)
