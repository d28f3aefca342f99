package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "CDTERM_LOG_LEVEL"

// Initialize creates a new logger with the specified level.
// If level is empty, it checks CDTERM_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
func Initialize(level string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// InitializeFromEnv initializes the logger from the CDTERM_LOG_LEVEL
// environment variable.
func InitializeFromEnv() error {
	return Initialize("")
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		// Explicitly set to something unknown
		return zapcore.InfoLevel
	}
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogTransition logs a terminal state change
func LogTransition(from, to string) {
	Debug("Terminal state transition",
		zap.String("from", from),
		zap.String("to", to),
	)
}

// LogSession logs a terminal session lifecycle event
func LogSession(remoteAddr string, event string) {
	Info("Session event",
		zap.String("remote_addr", remoteAddr),
		zap.String("event", event),
	)
}

// LogFrame logs a WebSocket frame exchanged with a page
func LogFrame(remoteAddr string, direction string, frameType string, data []byte) {
	fields := []zap.Field{
		zap.String("remote_addr", remoteAddr),
		zap.String("direction", direction),
		zap.String("frame_type", frameType),
		zap.Int("length", len(data)),
	}

	if GetLogger().Core().Enabled(zapcore.DebugLevel) {
		fields = append(fields, zap.String("content", truncate(data, 256)))
	}

	Debug("WebSocket frame", fields...)
}

// LogHTTPRequest logs an HTTP request for a site resource
func LogHTTPRequest(remoteAddr string, method string, path string, status int) {
	Info("HTTP request",
		zap.String("remote_addr", remoteAddr),
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status_code", status),
	)
}

func truncate(data []byte, limit int) string {
	if len(data) > limit {
		return string(data[:limit]) + "..."
	}
	return string(data)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
