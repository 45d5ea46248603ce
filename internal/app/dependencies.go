package app

import (
	"context"
	"time"

	"github.com/avc/sheetmusic-backoffice/internal/audit"
	"github.com/avc/sheetmusic-backoffice/internal/cache"
	"github.com/avc/sheetmusic-backoffice/internal/config"
	"github.com/avc/sheetmusic-backoffice/internal/domain"
	"github.com/avc/sheetmusic-backoffice/internal/handlers"
	"github.com/avc/sheetmusic-backoffice/internal/repository/postgres"
	"github.com/avc/sheetmusic-backoffice/internal/service"
	"github.com/avc/sheetmusic-backoffice/internal/utils/jwt"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// operatorTokenTTL используется только при выпуске служебных токенов
const operatorTokenTTL = 12 * time.Hour

// repositories содержит все репозитории приложения
type repositories struct {
	order domain.OrderRepository
	cash  domain.CashLedgerRepository
}

// caches содержит кэши Redis либо их заглушки
type caches struct {
	orders      domain.OrderListCache
	credits     domain.CreditsCache
	submissions domain.SubmissionGuard
}

// services содержит все сервисы приложения
type services struct {
	orders   *service.OrderService
	deposits *service.PaymentConfirmationService
	actions  *service.RefundCancelCoordinator
	cash     *service.CashAdjustmentService
	history  *service.CashHistoryPager
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	orders *handlers.OrdersHandler
	cash   *handlers.CashHandler
	health *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	repos       *repositories
	services    *services
	handlers    *handlerSet
	jwtManager  *jwt.Manager
	corsOrigins []string
}

// infrastructure - внешние ресурсы, созданные при старте
type infrastructure struct {
	db     postgres.DBTX
	dbPing handlers.Pinger
	redis  *redis.Client // nil, если Redis не настроен
	audit  domain.AuditPublisher
}

// newCaches выбирает кэши Redis или заглушки
func newCaches(cfg *config.Config, rdb *redis.Client) *caches {
	if rdb == nil {
		return &caches{
			orders:      cache.NopOrderListCache{},
			credits:     cache.NopCreditsCache{},
			submissions: cache.NopSubmissionGuard{},
		}
	}
	return &caches{
		orders:      cache.NewOrderListCache(rdb, cfg.OrderCacheTTL),
		credits:     cache.NewCreditsCache(rdb, cache.DefaultCreditsTTL),
		submissions: cache.NewSubmissionGuard(rdb, cfg.SubmissionTTL),
	}
}

// initDependencies создает все зависимости приложения
func initDependencies(cfg *config.Config, infra infrastructure, logger *zap.Logger) *dependencies {
	// Создание репозиториев
	repos := &repositories{
		order: postgres.NewOrderRepository(infra.db, logger),
		cash:  postgres.NewCashLedgerRepository(infra.db),
	}

	c := newCaches(cfg, infra.redis)
	functions := service.NewFunctionsClient(cfg.FunctionsURL, cfg.FunctionsKey, cfg.FunctionsTimeout)
	guard := service.NewOrderActionGuard(repos.order, logger)

	// Создание сервисов
	orders := service.NewOrderService(repos.order, c.orders, infra.audit, logger)
	cash := service.NewCashAdjustmentService(repos.cash, c.credits, c.submissions, infra.audit, logger)
	svcs := &services{
		orders:   orders,
		deposits: service.NewPaymentConfirmationService(guard, functions, orders, cash, c.submissions, infra.audit, logger),
		actions:  service.NewRefundCancelCoordinator(guard, functions, orders, cash, infra.audit, logger),
		cash:     cash,
		history:  service.NewCashHistoryPager(repos.cash),
	}

	// Без Redis проверка кэша в health отключена
	var cachePing handlers.Pinger
	if infra.redis != nil {
		rdb := infra.redis
		cachePing = handlers.PingFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
	}

	// Создание handlers
	hdlrs := &handlerSet{
		orders: handlers.NewOrdersHandler(svcs.orders, svcs.deposits, svcs.actions, logger),
		cash:   handlers.NewCashHandler(svcs.cash, svcs.history, logger),
		health: handlers.NewHealthHandler(infra.dbPing, cachePing, logger),
	}

	return &dependencies{
		repos:       repos,
		services:    svcs,
		handlers:    hdlrs,
		jwtManager:  jwt.NewManager(cfg.JWTSecret, operatorTokenTTL),
		corsOrigins: cfg.CORSAllowedOrigins,
	}
}

// initAudit создает публикатор аудита, без брокеров события отбрасываются
func initAudit(cfg *config.Config, logger *zap.Logger) (domain.AuditPublisher, func() error) {
	if len(cfg.KafkaBrokers) == 0 {
		logger.Info("audit stream disabled: KAFKA_BROKERS is empty")
		return audit.NopPublisher{}, func() error { return nil }
	}

	publisher := audit.NewKafkaPublisher(audit.NewKafkaWriter(cfg.KafkaBrokers, cfg.AuditTopic), logger)
	logger.Info("audit stream enabled", zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", cfg.AuditTopic))
	return publisher, publisher.Close
}

// initRedis создает клиент Redis. Недоступный при старте Redis не мешает запуску: кэши деградируют до БД.
func initRedis(ctx context.Context, addr string, logger *zap.Logger) *redis.Client {
	if addr == "" {
		logger.Info("caches disabled: REDIS_ADDR is empty")
		return nil
	}

	rdb := cache.New(addr)
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable at startup", zap.String("addr", addr), zap.Error(err))
	} else {
		logger.Info("connected to redis", zap.String("addr", addr))
	}
	return rdb
}
