package app

import (
	"net/http"

	"github.com/avc/sheetmusic-backoffice/internal/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// setupRouter создает и настраивает роутер
func setupRouter(deps *dependencies, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Глобальные middleware
	setupMiddleware(r, deps.corsOrigins, logger)

	// Маршруты
	setupRoutes(r, deps)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, corsOrigins []string, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	if len(corsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Authorization", "Content-Type", "Idempotency-Key", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}
	r.Use(middleware.Compress(5))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, deps *dependencies) {
	// Health check эндпоинты
	r.Get("/health", deps.handlers.health.Health)
	r.Get("/ready", deps.handlers.health.Ready)

	// Эндпоинты оператора
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(deps.jwtManager))

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", deps.handlers.orders.ListOrders)
			r.Post("/bulk-delete", deps.handlers.orders.DeleteOrders)
			r.Get("/{id}", deps.handlers.orders.GetOrder)
			r.Post("/{id}/confirm-deposit", deps.handlers.orders.ConfirmDeposit)
			r.Get("/{id}/refund-preview", deps.handlers.orders.PreviewRefund)
			r.Post("/{id}/refund", deps.handlers.orders.Refund)
			r.Post("/{id}/cancel", deps.handlers.orders.Cancel)
			r.Post("/{id}/force-complete", deps.handlers.orders.ForceComplete)
		})

		r.Route("/cash", func(r chi.Router) {
			r.Get("/users/{userID}/balance", deps.handlers.cash.GetBalance)
			r.Get("/users/{userID}/ledger-check", deps.handlers.cash.CheckLedger)
			r.Post("/users/{userID}/adjust", deps.handlers.cash.Adjust)
			r.Get("/transactions", deps.handlers.cash.ListTransactions)
			r.Get("/summary", deps.handlers.cash.Summary)
		})
	})
}
