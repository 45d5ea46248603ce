package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress  string // Адрес и порт запуска сервиса
	DatabaseURI string // URI подключения к БД
	JWTSecret   string // Секрет для проверки токенов операторов
	LogLevel    string // Уровень логирования

	// Внешние функции бэкенда
	FunctionsURL     string        // Базовый адрес функций
	FunctionsKey     string        // Service key для функций
	FunctionsTimeout time.Duration // Таймаут одного вызова

	// Redis, пустой адрес отключает кэши
	RedisAddr     string
	OrderCacheTTL time.Duration // Время жизни списка заказов в кэше
	SubmissionTTL time.Duration // Время удержания claim от повторной отправки

	// Kafka, пустой список брокеров отключает аудит
	KafkaBrokers []string
	AuditTopic   string

	CORSAllowedOrigins []string
}

// Load загружает конфигурацию из .env, флагов командной строки и переменных окружения
func Load() (*Config, error) {
	return LoadArgs(os.Args[1:])
}

// LoadArgs загружает конфигурацию с заданными аргументами командной строки.
// Приоритет: env переменные > флаги > дефолтные значения
func LoadArgs(args []string) (*Config, error) {
	// .env не перезаписывает уже заданные переменные окружения
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{
		LogLevel:         "info",
		FunctionsTimeout: 30 * time.Second,
		OrderCacheTTL:    2 * time.Minute,
		SubmissionTTL:    10 * time.Minute,
		AuditTopic:       "backoffice.audit",
	}

	// Определяем флаги
	flags := flag.NewFlagSet("backoffice", flag.ContinueOnError)
	flags.StringVar(&cfg.RunAddress, "a", ":8080", "address and port to run server")
	flags.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	flags.StringVar(&cfg.FunctionsURL, "f", "", "backend functions base URL")
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	// Переменные окружения имеют приоритет над флагами
	lookupString("RUN_ADDRESS", &cfg.RunAddress)
	lookupString("DATABASE_URI", &cfg.DatabaseURI)
	lookupString("FUNCTIONS_URL", &cfg.FunctionsURL)
	lookupString("FUNCTIONS_KEY", &cfg.FunctionsKey)
	lookupString("JWT_SECRET", &cfg.JWTSecret)
	lookupString("LOG_LEVEL", &cfg.LogLevel)
	lookupString("REDIS_ADDR", &cfg.RedisAddr)
	lookupString("AUDIT_TOPIC", &cfg.AuditTopic)

	for key, dst := range map[string]*time.Duration{
		"FUNCTIONS_TIMEOUT": &cfg.FunctionsTimeout,
		"ORDER_CACHE_TTL":   &cfg.OrderCacheTTL,
		"SUBMISSION_TTL":    &cfg.SubmissionTTL,
	} {
		if err := lookupDuration(key, dst); err != nil {
			return nil, err
		}
	}

	if env, ok := os.LookupEnv("KAFKA_BROKERS"); ok {
		cfg.KafkaBrokers = splitList(env)
	}
	if env, ok := os.LookupEnv("CORS_ALLOWED_ORIGINS"); ok {
		cfg.CORSAllowedOrigins = splitList(env)
	}

	// Валидация обязательных параметров
	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI is required (use -d flag or DATABASE_URI env)")
	}

	if cfg.FunctionsURL == "" {
		return nil, fmt.Errorf("functions URL is required (use -f flag or FUNCTIONS_URL env)")
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET env is required")
	}

	return cfg, nil
}

func lookupString(key string, dst *string) {
	if env, ok := os.LookupEnv(key); ok {
		*dst = env
	}
}

func lookupDuration(key string, dst *time.Duration) error {
	env, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	d, err := time.ParseDuration(env)
	if err != nil || d <= 0 {
		return fmt.Errorf("%s must be a positive duration, got %q", key, env)
	}
	*dst = d
	return nil
}

// splitList разбирает список через запятую, пустые элементы отбрасываются
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
