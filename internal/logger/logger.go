// Package logger provides process-wide leveled logging backed by zap.
package logger

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu  sync.RWMutex
	log = zap.Must(zap.NewDevelopment(zap.AddCallerSkip(1))).Sugar()
)

// Init replaces the default development logger with one configured from
// level ("debug", "info", "warn", "error") and format ("console" or "json").
func Init(level, format string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	built, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	mu.Lock()
	log = built.Sugar()
	mu.Unlock()
	return nil
}

// Sync flushes buffered entries. Safe to call on shutdown.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = log.Sync()
}

func Debug(format string, args ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	log.Debugf(format, args...)
}

func Info(format string, args ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	log.Infof(format, args...)
}

func Warn(format string, args ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	log.Warnf(format, args...)
}

func Error(format string, args ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	log.Errorf(format, args...)
}
