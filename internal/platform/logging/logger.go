// Package logging provides the process-wide zap logger, request-scoped
// loggers and HTTP logging middleware. Output uses Cloud Logging field names.
package logging

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ServiceName is attached to every log entry.
const ServiceName = "budget-shop-api"

// timestampLayout is RFC 3339 UTC with fixed microsecond precision.
const timestampLayout = "2006-01-02T15:04:05.000000Z"

// Options configures the logger built by New.
type Options struct {
	// Level is a zap level name; empty means info.
	Level string
}

var (
	mu         sync.RWMutex
	baseLogger *zap.Logger
)

// New builds a JSON logger writing to stdout.
func New(opts Options) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if opts.Level != "" {
		parsed, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stdout"}
	cfg.InitialFields = map[string]any{"service": ServiceName}
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = encodeTimestamp
	cfg.EncoderConfig.LevelKey = "severity"
	cfg.EncoderConfig.EncodeLevel = encodeSeverity
	cfg.EncoderConfig.MessageKey = "message"
	cfg.EncoderConfig.CallerKey = "caller"

	return cfg.Build(zap.AddCaller())
}

// Init replaces the process-wide logger with one built from opts.
func Init(opts Options) error {
	logger, err := New(opts)
	if err != nil {
		return err
	}
	mu.Lock()
	baseLogger = logger
	mu.Unlock()
	return nil
}

// Logger returns the process-wide logger, building a default one on first use.
func Logger() *zap.Logger {
	mu.RLock()
	logger := baseLogger
	mu.RUnlock()
	if logger != nil {
		return logger
	}

	mu.Lock()
	defer mu.Unlock()
	if baseLogger == nil {
		l, err := New(Options{})
		if err != nil {
			l = zap.NewNop()
		}
		baseLogger = l
	}
	return baseLogger
}

// Sync flushes buffered log entries. Call during shutdown.
func Sync() error {
	return Logger().Sync()
}

func encodeTimestamp(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.UTC().Format(timestampLayout))
}

// encodeSeverity maps zap levels to Cloud Logging severity names.
func encodeSeverity(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var severity string
	switch level {
	case zapcore.DebugLevel:
		severity = "DEBUG"
	case zapcore.InfoLevel:
		severity = "INFO"
	case zapcore.WarnLevel:
		severity = "WARNING"
	case zapcore.ErrorLevel:
		severity = "ERROR"
	case zapcore.DPanicLevel:
		severity = "CRITICAL"
	case zapcore.PanicLevel:
		severity = "ALERT"
	case zapcore.FatalLevel:
		severity = "EMERGENCY"
	default:
		severity = "DEFAULT"
	}
	enc.AppendString(severity)
}
