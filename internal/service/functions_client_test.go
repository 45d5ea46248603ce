package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avc/sheetmusic-backoffice/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFunctionsClient_CompleteOrderPayment(t *testing.T) {
	ctx := context.Background()
	confirmedAt := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		var received domain.CompletePaymentRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/functions/v1/complete-order-payment", r.URL.Path)
			assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewFunctionsClient(server.URL+"/", "secret", time.Second)
		err := client.CompleteOrderPayment(ctx, domain.CompletePaymentRequest{
			OrderID:            "o-1",
			PaymentMethod:      "bank_transfer",
			TransactionID:      "manual-1",
			PaymentConfirmedAt: confirmedAt,
			PaymentProvider:    "manual",
			ExpectedStatus:     domain.OrderStatusAwaitingDeposit,
			Metadata:           domain.CompletionAuditMetadata{OperatorID: "op-1", Source: "admin"},
		})
		require.NoError(t, err)
		assert.Equal(t, "o-1", received.OrderID)
		assert.Equal(t, "manual", received.PaymentProvider)
		assert.Equal(t, "op-1", received.Metadata.OperatorID)
		assert.True(t, confirmedAt.Equal(received.PaymentConfirmedAt))
	})

	t.Run("Error message is passed verbatim", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"order already paid"}`))
		}))
		defer server.Close()

		client := NewFunctionsClient(server.URL, "", time.Second)
		err := client.CompleteOrderPayment(ctx, domain.CompletePaymentRequest{OrderID: "o-1"})

		var callErr *ExternalCallError
		require.ErrorAs(t, err, &callErr)
		assert.Equal(t, opCompleteOrderPayment, callErr.Op)
		assert.Equal(t, http.StatusBadRequest, callErr.StatusCode)
		assert.Equal(t, "order already paid", callErr.Message)
	})

	t.Run("Plain text error body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("boom\n"))
		}))
		defer server.Close()

		client := NewFunctionsClient(server.URL, "", time.Second)
		err := client.CompleteOrderPayment(ctx, domain.CompletePaymentRequest{OrderID: "o-1"})

		var callErr *ExternalCallError
		require.ErrorAs(t, err, &callErr)
		assert.Equal(t, "boom", callErr.Message)
	})

	t.Run("Empty error body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := NewFunctionsClient(server.URL, "", time.Second)
		err := client.CompleteOrderPayment(ctx, domain.CompletePaymentRequest{OrderID: "o-1"})

		var callErr *ExternalCallError
		require.ErrorAs(t, err, &callErr)
		assert.Equal(t, "502 Bad Gateway", callErr.Message)
	})

	t.Run("Unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		client := NewFunctionsClient(url, "", time.Second)
		err := client.CompleteOrderPayment(ctx, domain.CompletePaymentRequest{OrderID: "o-1"})

		var callErr *ExternalCallError
		require.ErrorAs(t, err, &callErr)
		assert.Equal(t, 0, callErr.StatusCode)
		assert.NotNil(t, errors.Unwrap(callErr))
	})
}

func TestFunctionsClient_CancelOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Refund", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/functions/v1/cancel-order", r.URL.Path)
			var req domain.CancelOrderRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.True(t, req.DoRefund)
			assert.Equal(t, domain.OrderStatusCompleted, req.ExpectedStatus)
			_ = json.NewEncoder(w).Encode(domain.OrderStatusResponse{Status: "refunded"})
		}))
		defer server.Close()

		client := NewFunctionsClient(server.URL, "", time.Second)
		resp, err := client.CancelOrder(ctx, domain.CancelOrderRequest{
			OrderID:        "o-1",
			DoRefund:       true,
			ExpectedStatus: domain.OrderStatusCompleted,
		})
		require.NoError(t, err)
		assert.Equal(t, "refunded", resp.Status)
	})

	t.Run("Conflict", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"message":"status changed"}`))
		}))
		defer server.Close()

		client := NewFunctionsClient(server.URL, "", time.Second)
		resp, err := client.CancelOrder(ctx, domain.CancelOrderRequest{OrderID: "o-1"})
		assert.Nil(t, resp)

		var callErr *ExternalCallError
		require.ErrorAs(t, err, &callErr)
		assert.Equal(t, http.StatusConflict, callErr.StatusCode)
		assert.Equal(t, "status changed", callErr.Message)
	})

	t.Run("Invalid response body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer server.Close()

		client := NewFunctionsClient(server.URL, "", time.Second)
		_, err := client.CancelOrder(ctx, domain.CancelOrderRequest{OrderID: "o-1"})

		var callErr *ExternalCallError
		assert.ErrorAs(t, err, &callErr)
	})
}

func TestFunctionsClient_CompleteOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/functions/v1/complete-order", r.URL.Path)
		_ = json.NewEncoder(w).Encode(domain.OrderStatusResponse{Status: "completed"})
	}))
	defer server.Close()

	client := NewFunctionsClient(server.URL, "", time.Second)
	resp, err := client.CompleteOrder(context.Background(), domain.CompleteOrderRequest{OrderID: "o-1"})
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)
}

func TestMapFunctionError(t *testing.T) {
	snap := &domain.OrderSnapshot{ID: "o-1", Status: domain.OrderStatusCompleted}

	conflict := &ExternalCallError{Op: opCancelOrder, StatusCode: http.StatusConflict, Message: "status changed"}
	var stale *StaleStateError
	require.ErrorAs(t, mapFunctionError(conflict, snap, domain.ActionRefund), &stale)
	assert.Equal(t, "status changed", stale.Reason)
	assert.Equal(t, domain.OrderStatusCompleted, stale.Status)

	other := &ExternalCallError{Op: opCancelOrder, StatusCode: http.StatusInternalServerError, Message: "boom"}
	assert.Same(t, other, mapFunctionError(other, snap, domain.ActionRefund))
}
