// Package logger builds the zap logger shared by the server and its middleware.
package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logger configuration
type Config struct {
	Level  string // debug, info, warn, error
	Format string // json, console
}

// New creates a zap logger writing to stdout.
func New(cfg Config) (*zap.Logger, error) {
	var zc zap.Config
	if strings.EqualFold(cfg.Format, "json") {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zc.Level = zap.NewAtomicLevelAt(ParseLevel(cfg.Level))
	zc.EncoderConfig.TimeKey = "ts"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.OutputPaths = []string{"stdout"}
	zc.ErrorOutputPaths = []string{"stderr"}
	return zc.Build(zap.AddStacktrace(zapcore.ErrorLevel))
}

// ForEnvironment returns the defaults for env: JSON in production, console
// output everywhere else.
func ForEnvironment(env string) Config {
	if env == "production" || env == "prod" {
		return Config{Level: "info", Format: "json"}
	}
	return Config{Level: "info", Format: "console"}
}

// Option adjusts the environment defaults.  Empty values leave them alone.
type Option func(*Config)

func WithLevel(level string) Option {
	return func(c *Config) {
		if level != "" {
			c.Level = level
		}
	}
}

func WithFormat(format string) Option {
	return func(c *Config) {
		if format != "" {
			c.Format = format
		}
	}
}

// NewForEnvironment creates a logger appropriate for the given environment.
func NewForEnvironment(env string, opts ...Option) (*zap.Logger, error) {
	cfg := ForEnvironment(env)
	for _, opt := range opts {
		opt(&cfg)
	}
	return New(cfg)
}

// ParseLevel converts a string level to zapcore.Level, defaulting to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
