package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/avc/sheetmusic-backoffice/internal/domain"
	"github.com/avc/sheetmusic-backoffice/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CashService определяет операции с балансом пользователя.
type CashService interface {
	GetBalance(ctx context.Context, userID string) (int64, error)
	CheckLedger(ctx context.Context, userID string) (*domain.LedgerCheck, error)
	Adjust(ctx context.Context, in service.AdjustInput) (*domain.CashTransaction, error)
}

// CashHistory определяет чтение журнала кэша.
type CashHistory interface {
	Page(ctx context.Context, filter domain.CashHistoryFilter, page, pageSize int) (*service.HistoryPage, error)
	Summary(ctx context.Context, userID string, from, to time.Time) (*service.PeriodSummary, error)
}

type CashHandler struct {
	cash    CashService
	history CashHistory
	logger  *zap.Logger
}

func NewCashHandler(cash CashService, history CashHistory, logger *zap.Logger) *CashHandler {
	return &CashHandler{
		cash:    cash,
		history: history,
		logger:  logger,
	}
}

type balanceResponse struct {
	UserID  string `json:"user_id"`
	Credits int64  `json:"credits"`
}

func (h *CashHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	credits, err := h.cash.GetBalance(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, "failed to get balance", err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, balanceResponse{UserID: userID, Credits: credits})
}

func (h *CashHandler) CheckLedger(w http.ResponseWriter, r *http.Request) {
	check, err := h.cash.CheckLedger(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, h.logger, "failed to check ledger", err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, check)
}

type adjustRequest struct {
	Type        domain.CashTransactionType `json:"transaction_type"`
	Amount      decimal.Decimal            `json:"amount"`
	Description string                     `json:"description"`
}

func (h *CashHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	operator, ok := GetOperator(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req adjustRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, h.logger, "body", "invalid JSON")
		return
	}

	entry, err := h.cash.Adjust(r.Context(), service.AdjustInput{
		UserID:         chi.URLParam(r, "userID"),
		Type:           req.Type,
		Amount:         req.Amount,
		Description:    req.Description,
		Operator:       operator,
		IdempotencyKey: strings.TrimSpace(r.Header.Get("Idempotency-Key")),
	})
	if err != nil {
		writeError(w, h.logger, "failed to adjust credits", err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, entry)
}

func (h *CashHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.CashHistoryFilter{
		UserID: q.Get("user_id"),
		Type:   domain.CashTransactionType(q.Get("type")),
	}

	from, ok := h.timeParam(w, q.Get("from"), "from")
	if !ok {
		return
	}
	to, ok := h.timeParam(w, q.Get("to"), "to")
	if !ok {
		return
	}
	filter.From, filter.To = from, to

	page, err := intParam(q.Get("page"))
	if err != nil {
		badRequest(w, h.logger, "page", "must be a non-negative integer")
		return
	}
	pageSize, err := intParam(q.Get("page_size"))
	if err != nil {
		badRequest(w, h.logger, "page_size", "must be a non-negative integer")
		return
	}

	result, err := h.history.Page(r.Context(), filter, page, pageSize)
	if err != nil {
		writeError(w, h.logger, "failed to list cash transactions", err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}

// Summary принимает month=YYYY-MM либо пару from/to
func (h *CashHandler) Summary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var from, to time.Time
	if month := q.Get("month"); month != "" {
		m, err := time.Parse("2006-01", month)
		if err != nil {
			badRequest(w, h.logger, "month", "must be YYYY-MM")
			return
		}
		from, to = service.MonthRange(m.Year(), m.Month(), time.UTC)
	} else {
		fromPtr, ok := h.timeParam(w, q.Get("from"), "from")
		if !ok {
			return
		}
		toPtr, ok := h.timeParam(w, q.Get("to"), "to")
		if !ok {
			return
		}
		if fromPtr == nil || toPtr == nil {
			badRequest(w, h.logger, "month", "month or from and to are required")
			return
		}
		from, to = *fromPtr, *toPtr
	}

	summary, err := h.history.Summary(r.Context(), q.Get("user_id"), from, to)
	if err != nil {
		writeError(w, h.logger, "failed to summarize cash transactions", err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, summary)
}

func (h *CashHandler) timeParam(w http.ResponseWriter, raw, field string) (*time.Time, bool) {
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		badRequest(w, h.logger, field, "must be an RFC 3339 timestamp")
		return nil, false
	}
	return &t, true
}
