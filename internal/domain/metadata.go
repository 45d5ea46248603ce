package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// FieldState различает отсутствующее поле, явный null и заданное значение
type FieldState int

const (
	FieldAbsent FieldState = iota
	FieldNull
	FieldSet
)

var jsonNull = []byte("null")

// OrderMetadata - свободные метаданные заказа с типизированным доступом
type OrderMetadata struct {
	fields map[string]json.RawMessage
}

// ParseOrderMetadata разбирает JSON колонку metadata.
// SQL NULL, пустое значение и JSON null дают пустые метаданные.
func ParseOrderMetadata(raw []byte) (OrderMetadata, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, jsonNull) {
		return OrderMetadata{}, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return OrderMetadata{}, fmt.Errorf("failed to decode order metadata: %w", err)
	}
	return OrderMetadata{fields: fields}, nil
}

// Lookup возвращает сырое значение поля и его состояние
func (m OrderMetadata) Lookup(key string) (json.RawMessage, FieldState) {
	value, ok := m.fields[key]
	if !ok {
		return nil, FieldAbsent
	}
	if bytes.Equal(bytes.TrimSpace(value), jsonNull) {
		return nil, FieldNull
	}
	return value, FieldSet
}

// String возвращает строковое поле; false, если поле отсутствует, null или не строка
func (m OrderMetadata) String(key string) (string, bool) {
	value, state := m.Lookup(key)
	if state != FieldSet {
		return "", false
	}
	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return "", false
	}
	return s, true
}

// Len возвращает количество полей
func (m OrderMetadata) Len() int {
	return len(m.fields)
}

func (m OrderMetadata) MarshalJSON() ([]byte, error) {
	if m.fields == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m.fields)
}

func (m *OrderMetadata) UnmarshalJSON(data []byte) error {
	parsed, err := ParseOrderMetadata(data)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// VirtualAccountInfo - реквизиты виртуального счета платежного провайдера
type VirtualAccountInfo struct {
	BankName      string     `json:"bank_name,omitempty"`
	AccountNumber string     `json:"account_number,omitempty"`
	AccountHolder string     `json:"account_holder,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
}

// ParseVirtualAccountInfo разбирает JSON колонку virtual_account_info.
// Отсутствие значения и JSON null возвращают nil.
func ParseVirtualAccountInfo(raw []byte) (*VirtualAccountInfo, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, jsonNull) {
		return nil, nil
	}

	var info VirtualAccountInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, fmt.Errorf("failed to decode virtual account info: %w", err)
	}
	return &info, nil
}
