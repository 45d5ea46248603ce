package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avc/sheetmusic-backoffice/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App представляет приложение
type App struct {
	config     *config.Config
	logger     *zap.Logger
	db         *pgxpool.Pool
	redis      *redis.Client
	closeAudit func() error
	router     *chi.Mux
	server     *http.Server
}

// NewApp создает новое приложение
func NewApp() (*App, error) {
	ctx := context.Background()

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализация логгера
	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	// Инициализация базы данных и миграции
	dbPool, err := initDatabase(ctx, cfg.DatabaseURI, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to database")

	rdb := initRedis(ctx, cfg.RedisAddr, logger)
	auditPublisher, closeAudit := initAudit(cfg, logger)

	// Инициализация зависимостей
	deps := initDependencies(cfg, infrastructure{
		db:     dbPool,
		dbPing: dbPool,
		redis:  rdb,
		audit:  auditPublisher,
	}, logger)

	// Настройка роутера
	router := setupRouter(deps, logger)

	// Создание HTTP сервера
	server := createServer(cfg.RunAddress, router)

	return &App{
		config:     cfg,
		logger:     logger,
		db:         dbPool,
		redis:      rdb,
		closeAudit: closeAudit,
		router:     router,
		server:     server,
	}, nil
}

// Run запускает приложение
func (a *App) Run() error {
	// Запуск HTTP сервера и ожидание сигнала завершения
	if err := a.runServer(); err != nil {
		a.shutdown()
		return err
	}

	// Graceful shutdown
	a.shutdown()

	return nil
}
