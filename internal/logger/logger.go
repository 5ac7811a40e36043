// Package logger builds the application's zerolog logger and bridges GORM onto it.
package logger

import (
	"os"
	"time"

	"go-farmpet-api/internal/config"

	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"
)

// New returns a console logger for local runs and a JSON logger elsewhere.
func New(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var log zerolog.Logger
	if cfg.IsLocal() {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		log = zerolog.New(os.Stdout)
	}

	return log.Level(level).With().
		Timestamp().
		Str("service", "farmpet-api").
		Str("env", cfg.Primary.Env).
		Logger()
}

// NewGormLogger sends GORM's output through log. SQL statements are only traced locally.
func NewGormLogger(log zerolog.Logger, cfg *config.Config) gormlogger.Interface {
	level := gormlogger.Warn
	if cfg.IsLocal() {
		level = gormlogger.Info
	}

	gormLog := log.With().Str("component", "gorm").Logger()
	return gormlogger.New(&gormLog, gormlogger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
