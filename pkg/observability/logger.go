// Package observability provides structured logging, correlation ids and
// health checks for FitSmart.
package observability

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// LogFormat selects the slog handler.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// LogLevel is a level name accepted by slog ("debug", "info", "warn", "error").
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogConfig configures NewLogger.
type LogConfig struct {
	Level  LogLevel
	Format LogFormat
	// Output defaults to os.Stderr so command output stays clean.
	Output         io.Writer
	AddSource      bool
	ServiceName    string
	ServiceVersion string
}

// NewLogger builds a logger that stamps every record with the service and
// with the ids carried by the context.
func NewLogger(cfg LogConfig) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{
		Level:     cfg.Level.slogLevel(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.Format == LogFormatJSON {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	var attrs []slog.Attr
	if cfg.ServiceName != "" {
		attrs = append(attrs, slog.String("service", cfg.ServiceName))
	}
	if cfg.ServiceVersion != "" {
		attrs = append(attrs, slog.String("version", cfg.ServiceVersion))
	}
	return slog.New(contextHandler{Handler: handler.WithAttrs(attrs)})
}

// LoggerFromEnv is NewLogger(LogConfigFromEnv()).
func LoggerFromEnv() *slog.Logger {
	return NewLogger(LogConfigFromEnv())
}

// LogConfigFromEnv reads:
//
//	APP_ENV                production switches to JSON on stdout with sources
//	FITSMART_LOG_LEVEL     debug, info, warn or error
//	FITSMART_LOG_FORMAT    text or json
//	FITSMART_SERVICE_NAME  defaults to fitsmart
//	FITSMART_VERSION       defaults to dev
func LogConfigFromEnv() LogConfig {
	cfg := LogConfig{
		Level:          LogLevelInfo,
		Format:         LogFormatText,
		ServiceName:    "fitsmart",
		ServiceVersion: "dev",
	}
	if os.Getenv("APP_ENV") == "production" {
		cfg.Format = LogFormatJSON
		cfg.Output = os.Stdout
		cfg.AddSource = true
	}
	if v := os.Getenv("FITSMART_LOG_LEVEL"); v != "" {
		cfg.Level = LogLevel(strings.ToLower(v))
	}
	if v := os.Getenv("FITSMART_LOG_FORMAT"); v != "" {
		cfg.Format = LogFormat(strings.ToLower(v))
	}
	if v := os.Getenv("FITSMART_SERVICE_NAME"); v != "" {
		cfg.ServiceName = v
	}
	if v := os.Getenv("FITSMART_VERSION"); v != "" {
		cfg.ServiceVersion = v
	}
	return cfg
}

// slogLevel falls back to info for unknown names.
func (l LogLevel) slogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// contextHandler copies correlation, account and operation ids from the
// context onto each record.
type contextHandler struct {
	slog.Handler
}

func (h contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := CorrelationIDFromContext(ctx); id != "" {
		r.AddAttrs(slog.String(CorrelationIDKey, id))
	}
	if id := AccountIDFromContext(ctx); id != "" {
		r.AddAttrs(slog.String(AccountIDKey, id))
	}
	if op := OperationFromContext(ctx); op != "" {
		r.AddAttrs(slog.String(OperationKey, op))
	}
	return h.Handler.Handle(ctx, r)
}

func (h contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return contextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h contextHandler) WithGroup(name string) slog.Handler {
	return contextHandler{Handler: h.Handler.WithGroup(name)}
}

// LogDuration logs how long a command took at debug level.
func LogDuration(ctx context.Context, logger *slog.Logger, operation string, start time.Time) {
	logger.DebugContext(ctx, "command finished",
		"command", operation,
		DurationKey, time.Since(start).Milliseconds(),
	)
}
