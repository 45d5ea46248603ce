// Package cache содержит кэши Redis: список заказов, баланс пользователей и защиту от повторной отправки.
package cache

import (
	"fmt"
	"time"

	"github.com/avc/sheetmusic-backoffice/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix           = "backoffice:"
	keyOrdersGeneration = keyPrefix + "orders:gen"
	keyOrdersList       = keyPrefix + "orders:v%d:%s"
	keyCredits          = keyPrefix + "credits:%s"
	keySubmission       = keyPrefix + "submission:%s"
)

// DefaultCreditsTTL - время жизни кэшированного баланса
const DefaultCreditsTTL = time.Minute

// New создает клиент Redis
func New(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
}

func ordersListKey(generation int64, filter domain.OrderListFilter) string {
	return fmt.Sprintf(keyOrdersList, generation, fmt.Sprintf("%s|%s|%s|%s|%d|%d",
		filter.Status, filter.OrderType, filter.UserID, filter.Search, filter.Limit, filter.Offset))
}

func creditsKey(userID string) string {
	return fmt.Sprintf(keyCredits, userID)
}

func submissionKey(key string) string {
	return fmt.Sprintf(keySubmission, key)
}
