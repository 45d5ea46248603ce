package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/avc/sheetmusic-backoffice/internal/domain"
)

const (
	opCompleteOrderPayment = "complete-order-payment"
	opCancelOrder          = "cancel-order"
	opCompleteOrder        = "complete-order"
)

// maxErrorBody ограничивает чтение тела ответа с ошибкой
const maxErrorBody = 64 << 10

// HTTPFunctionsClient реализует domain.OrderFunctions поверх HTTP функций бэкенда.
// Повторные попытки не выполняются.
type HTTPFunctionsClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewFunctionsClient создает новый HTTPFunctionsClient
func NewFunctionsClient(baseURL, apiKey string, timeout time.Duration) *HTTPFunctionsClient {
	return &HTTPFunctionsClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// CompleteOrderPayment вызывает функцию завершения оплаты
func (c *HTTPFunctionsClient) CompleteOrderPayment(ctx context.Context, req domain.CompletePaymentRequest) error {
	return c.invoke(ctx, opCompleteOrderPayment, req, nil)
}

// CancelOrder вызывает функцию отмены заказа, с возвратом или без
func (c *HTTPFunctionsClient) CancelOrder(ctx context.Context, req domain.CancelOrderRequest) (*domain.OrderStatusResponse, error) {
	var resp domain.OrderStatusResponse
	if err := c.invoke(ctx, opCancelOrder, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CompleteOrder вызывает функцию принудительного завершения заказа
func (c *HTTPFunctionsClient) CompleteOrder(ctx context.Context, req domain.CompleteOrderRequest) (*domain.OrderStatusResponse, error) {
	var resp domain.OrderStatusResponse
	if err := c.invoke(ctx, opCompleteOrder, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPFunctionsClient) invoke(ctx context.Context, op string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("functions client: failed to encode %s request: %w", op, err)
	}

	url := fmt.Sprintf("%s/functions/v1/%s", c.baseURL, op)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("functions client: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &ExternalCallError{Op: op, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &ExternalCallError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(raw, resp.Status),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ExternalCallError{Op: op, StatusCode: resp.StatusCode, Message: "invalid response body: " + err.Error(), Err: err}
	}

	return nil
}

// errorMessage извлекает текст ошибки из {"error": ...} или {"message": ...}, иначе возвращает тело как есть
func errorMessage(raw []byte, fallback string) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	if text := strings.TrimSpace(string(raw)); text != "" {
		return text
	}
	return fallback
}
