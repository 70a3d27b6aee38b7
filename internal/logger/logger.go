// Package logger holds the process-wide zap logger.
package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	sugar *zap.SugaredLogger
	once  sync.Once
)

// Init builds the logger once per process. Production logs JSON, "test"
// discards everything, anything else logs to the console. LOG_LEVEL
// (debug, info, warn, error) overrides the environment's default level.
func Init(env string) {
	once.Do(func() {
		sugar = build(env, os.Getenv("LOG_LEVEL")).Sugar().Named("autoledger")
	})
}

func build(env, level string) *zap.Logger {
	var cfg zap.Config
	switch env {
	case "test":
		return zap.NewNop()
	case "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if level != "" {
		if lvl, err := zap.ParseAtomicLevel(level); err == nil {
			cfg.Level = lvl
		}
	}

	base, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return base
}

// Get returns the logger, falling back to a development logger when Init
// was never called.
func Get() *zap.SugaredLogger {
	if sugar == nil {
		Init("development")
	}
	return sugar
}

// Sync flushes buffered entries.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
