// Package logging provides the structured loggers of the client and the binaries.
package logging

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a wrapper of zap.SugaredLogger.
type Logger = *zap.SugaredLogger

// Field is a wrapper of zap.Field.
type Field = zap.Field

var (
	defaultLogger Logger
	loggerOnce    sync.Once
	logLevel      = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

// SetLogLevel sets the level of all loggers with one of debug, info, warn, error, panic or fatal.
func SetLogLevel(level string) error {
	switch strings.ToLower(level) {
	case "debug":
		logLevel.SetLevel(zapcore.DebugLevel)
	case "info", "":
		logLevel.SetLevel(zapcore.InfoLevel)
	case "warn":
		logLevel.SetLevel(zapcore.WarnLevel)
	case "error":
		logLevel.SetLevel(zapcore.ErrorLevel)
	case "panic":
		logLevel.SetLevel(zapcore.PanicLevel)
	case "fatal":
		logLevel.SetLevel(zapcore.FatalLevel)
	default:
		return fmt.Errorf("invalid log level: %s", level)
	}
	return nil
}

// Enabled reports whether the given level is enabled.
func Enabled(level zapcore.Level) bool {
	return logLevel.Enabled(level)
}

// New creates a named logger carrying fields.
func New(name string, fields ...Field) Logger {
	logger := newLogger(name)
	if len(fields) > 0 {
		args := make([]interface{}, len(fields))
		for i, field := range fields {
			args[i] = field
		}
		logger = logger.With(args...)
	}
	return logger
}

// NewField creates a string field.
func NewField(key string, value string) Field {
	return zap.String(key, value)
}

// DefaultLogger returns the logger used when none is configured.
func DefaultLogger() Logger {
	loggerOnce.Do(func() {
		defaultLogger = newLogger("default")
	})
	return defaultLogger
}

// Nop returns a logger discarding everything.
func Nop() Logger {
	return zap.NewNop().Sugar()
}

func newLogger(name string) Logger {
	return zap.New(
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(humanEncoderConfig()),
			zapcore.AddSync(os.Stdout),
			logLevel,
		),
		zap.AddStacktrace(zap.ErrorLevel),
	).Named(name).Sugar()
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "T",
		LevelKey:       "L",
		NameKey:        "N",
		CallerKey:      "C",
		MessageKey:     "M",
		StacktraceKey:  "S",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.EpochTimeEncoder,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

func humanEncoderConfig() zapcore.EncoderConfig {
	cfg := encoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncodeDuration = zapcore.StringDurationEncoder
	return cfg
}
