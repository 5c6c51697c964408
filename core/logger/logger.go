package logger

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a new zap logger based on the configuration.
func New(cfg *Config) (*zap.Logger, error) {
	var config zap.Config

	if cfg.Level == "debug" {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
		if cfg.Level != "" {
			level, err := zapcore.ParseLevel(cfg.Level)
			if err != nil {
				return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
			}
			config.Level = zap.NewAtomicLevelAt(level)
		}
	}

	// Set format based on configuration
	if cfg.Format == "console" {
		config.Encoding = "console"
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		config.DisableStacktrace = true
	} else {
		config.Encoding = "json"
	}

	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.MessageKey = "message"

	return config.Build()
}

// WithRunID returns a logger tagged with the reconciliation run id.
func WithRunID(l *zap.Logger, runID string) *zap.Logger {
	if runID == "" {
		return l
	}
	return l.With(zap.String("run_id", runID))
}

// WithRayID returns a logger with the ray_id field set from the Fiber context.
func WithRayID(l *zap.Logger, c *fiber.Ctx) *zap.Logger {
	rid := c.Locals("ray_id")
	if str, ok := rid.(string); ok && str != "" {
		return l.With(zap.String("ray_id", str))
	}
	return l
}
