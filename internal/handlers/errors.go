package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc/sheetmusic-backoffice/internal/domain"
	"github.com/avc/sheetmusic-backoffice/internal/service"
	"go.uber.org/zap"
)

// errorResponse - тело ответа с ошибкой
type errorResponse struct {
	Error  string `json:"error"`
	Field  string `json:"field,omitempty"`
	Status string `json:"status,omitempty"`
}

// writeError переводит ошибку сервиса в HTTP ответ
func writeError(w http.ResponseWriter, logger *zap.Logger, msg string, err error) {
	var (
		validationErr *service.ValidationError
		staleErr      *service.StaleStateError
		callErr       *service.ExternalCallError
	)

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, logger, http.StatusBadRequest, errorResponse{Error: validationErr.Message, Field: validationErr.Field})
	case errors.Is(err, domain.ErrOrderNotFound), errors.Is(err, domain.ErrProfileNotFound):
		writeJSON(w, logger, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.As(err, &staleErr):
		writeJSON(w, logger, http.StatusConflict, errorResponse{Error: staleErr.Reason, Status: string(staleErr.Status)})
	case errors.Is(err, domain.ErrDuplicateSubmission):
		writeJSON(w, logger, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInsufficientFunds):
		writeJSON(w, logger, http.StatusPaymentRequired, errorResponse{Error: err.Error()})
	case errors.As(err, &callErr):
		logger.Error(msg, zap.String("op", callErr.Op), zap.Int("status_code", callErr.StatusCode), zap.Error(err))
		writeJSON(w, logger, http.StatusBadGateway, errorResponse{Error: callErr.Message})
	default:
		logger.Error(msg, zap.Error(err))
		writeJSON(w, logger, http.StatusInternalServerError, errorResponse{Error: "Internal Server Error"})
	}
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

func badRequest(w http.ResponseWriter, logger *zap.Logger, field, message string) {
	writeJSON(w, logger, http.StatusBadRequest, errorResponse{Error: message, Field: field})
}
