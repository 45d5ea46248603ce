package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/avc/sheetmusic-backoffice/internal/domain"
	"github.com/avc/sheetmusic-backoffice/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// OrderService определяет чтение и удаление заказов.
type OrderService interface {
	ListOrders(ctx context.Context, filter domain.OrderListFilter) ([]*domain.Order, error)
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	DeleteOrders(ctx context.Context, operator domain.Operator, orderIDs []string) (int64, error)
}

// DepositConfirmer подтверждает банковские переводы.
type DepositConfirmer interface {
	ConfirmDeposit(ctx context.Context, in service.ConfirmDepositInput) (*service.DepositConfirmation, error)
}

// OrderActions выполняет возврат, отмену и принудительное завершение.
type OrderActions interface {
	PreviewRefund(ctx context.Context, orderID string) (*service.RefundPreview, error)
	Refund(ctx context.Context, in service.OrderActionInput) (*service.OrderActionResult, error)
	Cancel(ctx context.Context, in service.OrderActionInput) (*service.OrderActionResult, error)
	ForceComplete(ctx context.Context, in service.OrderActionInput) (*service.OrderActionResult, error)
}

type OrdersHandler struct {
	orders   OrderService
	deposits DepositConfirmer
	actions  OrderActions
	logger   *zap.Logger
}

func NewOrdersHandler(orders OrderService, deposits DepositConfirmer, actions OrderActions, logger *zap.Logger) *OrdersHandler {
	return &OrdersHandler{
		orders:   orders,
		deposits: deposits,
		actions:  actions,
		logger:   logger,
	}
}

func (h *OrdersHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.OrderListFilter{
		Status:    domain.OrderStatus(q.Get("status")),
		OrderType: domain.ParseOrderType(q.Get("order_type")),
		UserID:    q.Get("user_id"),
		Search:    strings.TrimSpace(q.Get("search")),
	}

	var err error
	if filter.Limit, err = intParam(q.Get("limit")); err != nil {
		badRequest(w, h.logger, "limit", "must be a non-negative integer")
		return
	}
	if filter.Offset, err = intParam(q.Get("offset")); err != nil {
		badRequest(w, h.logger, "offset", "must be a non-negative integer")
		return
	}

	orders, err := h.orders.ListOrders(r.Context(), filter)
	if err != nil {
		writeError(w, h.logger, "failed to list orders", err)
		return
	}
	if orders == nil {
		orders = []*domain.Order{}
	}

	writeJSON(w, h.logger, http.StatusOK, orders)
}

func (h *OrdersHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, "failed to get order", err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, order)
}

type bulkDeleteRequest struct {
	OrderIDs []string `json:"order_ids"`
}

type bulkDeleteResponse struct {
	Deleted int64 `json:"deleted"`
}

func (h *OrdersHandler) DeleteOrders(w http.ResponseWriter, r *http.Request) {
	operator, ok := GetOperator(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req bulkDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, h.logger, "body", "invalid JSON")
		return
	}

	deleted, err := h.orders.DeleteOrders(r.Context(), operator, req.OrderIDs)
	if err != nil {
		writeError(w, h.logger, "failed to delete orders", err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, bulkDeleteResponse{Deleted: deleted})
}

type confirmDepositRequest struct {
	TransactionID string `json:"transaction_id"`
	Acknowledged  bool   `json:"acknowledged"`
}

func (h *OrdersHandler) ConfirmDeposit(w http.ResponseWriter, r *http.Request) {
	operator, ok := GetOperator(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req confirmDepositRequest
	if !decodeOptionalBody(w, r, h.logger, &req) {
		return
	}

	result, err := h.deposits.ConfirmDeposit(r.Context(), service.ConfirmDepositInput{
		OrderID:       chi.URLParam(r, "id"),
		Operator:      operator,
		TransactionID: req.TransactionID,
		Acknowledged:  req.Acknowledged,
	})
	if err != nil {
		writeError(w, h.logger, "failed to confirm deposit", err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}

func (h *OrdersHandler) PreviewRefund(w http.ResponseWriter, r *http.Request) {
	preview, err := h.actions.PreviewRefund(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, "failed to preview refund", err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, preview)
}

type refundRequest struct {
	ConfirmZeroAmount bool `json:"confirm_zero_amount"`
}

func (h *OrdersHandler) Refund(w http.ResponseWriter, r *http.Request) {
	operator, ok := GetOperator(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req refundRequest
	if !decodeOptionalBody(w, r, h.logger, &req) {
		return
	}

	result, err := h.actions.Refund(r.Context(), service.OrderActionInput{
		OrderID:           chi.URLParam(r, "id"),
		Operator:          operator,
		ConfirmZeroAmount: req.ConfirmZeroAmount,
	})
	if err != nil {
		writeError(w, h.logger, "failed to refund order", err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}

func (h *OrdersHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.runAction(w, r, "failed to cancel order", h.actions.Cancel)
}

func (h *OrdersHandler) ForceComplete(w http.ResponseWriter, r *http.Request) {
	h.runAction(w, r, "failed to force-complete order", h.actions.ForceComplete)
}

func (h *OrdersHandler) runAction(
	w http.ResponseWriter,
	r *http.Request,
	msg string,
	action func(context.Context, service.OrderActionInput) (*service.OrderActionResult, error),
) {
	operator, ok := GetOperator(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	result, err := action(r.Context(), service.OrderActionInput{
		OrderID:  chi.URLParam(r, "id"),
		Operator: operator,
	})
	if err != nil {
		writeError(w, h.logger, msg, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}

// decodeOptionalBody разбирает JSON тело, пустое тело допустимо
func decodeOptionalBody(w http.ResponseWriter, r *http.Request, logger *zap.Logger, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		badRequest(w, logger, "body", "invalid JSON")
		return false
	}
	return true
}

// intParam разбирает неотрицательное целое из query, пустое значение - 0
func intParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, errors.New("invalid integer")
	}
	return v, nil
}
