package app

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initLogger создает и настраивает логгер.
// "production" и "development" выбирают готовые конфигурации zap,
// имя уровня (debug, info, warn, error) дает JSON вывод с этим уровнем.
func initLogger(logLevel string) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	switch logLevel {
	case "production":
		logger, err = zap.NewProduction()
	case "development":
		logger, err = zap.NewDevelopment()
	default:
		level, parseErr := zapcore.ParseLevel(logLevel)
		if parseErr != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", logLevel, parseErr)
		}
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
		logger, err = cfg.Build()
	}

	if err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}

	return logger, nil
}
