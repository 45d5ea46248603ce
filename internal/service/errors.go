package service

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/avc/sheetmusic-backoffice/internal/domain"
)

// ValidationError - некорректный ввод оператора. Возвращается до любых обращений к базе или функциям.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Message
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Message)
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// StaleStateError - свежее состояние заказа не удовлетворяет условию действия
type StaleStateError struct {
	OrderID string
	Action  domain.OrderAction
	Status  domain.OrderStatus
	Reason  string
}

func (e *StaleStateError) Error() string {
	return fmt.Sprintf("order %s: %s not allowed: %s", e.OrderID, e.Action, e.Reason)
}

// ExternalCallError - ошибка записи в базу или вызова внешней функции.
// Message передается оператору без изменений.
type ExternalCallError struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *ExternalCallError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s failed (%d): %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s failed: %s", e.Op, e.Message)
}

func (e *ExternalCallError) Unwrap() error {
	return e.Err
}

// mapFunctionError переводит конфликт внешней функции в StaleStateError:
// заказ изменился между проверкой и вызовом
func mapFunctionError(err error, snap *domain.OrderSnapshot, action domain.OrderAction) error {
	var callErr *ExternalCallError
	if errors.As(err, &callErr) && callErr.StatusCode == http.StatusConflict {
		return &StaleStateError{
			OrderID: snap.ID,
			Action:  action,
			Status:  snap.Status,
			Reason:  callErr.Message,
		}
	}
	return err
}
