package utils

import (
	"log"
	"sync"

	"meditrip/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// GetLogger returns the process-wide zap logger, building it on first use.
// Production gets the JSON encoder at info level, development a colored
// console encoder at debug level.
func GetLogger() *zap.Logger {
	loggerOnce.Do(func() {
		var cfg zap.Config
		if config.IsProduction() {
			cfg = zap.NewProductionConfig()
			cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
			cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		} else {
			cfg = zap.NewDevelopmentConfig()
			cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
			cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}

		l, err := cfg.Build()
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		logger = l
	})
	return logger
}
