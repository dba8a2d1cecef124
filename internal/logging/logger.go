package logging

import (
	"crypto/tls"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "COLORPICK_LOG_LEVEL"

// LogFileEnvVar names a file to append logs to. Defaults to stderr.
const LogFileEnvVar = "COLORPICK_LOG_FILE"

// Initialize creates a new logger with the specified level.
// If level is empty, it checks COLORPICK_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
func Initialize(level string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	output := os.Getenv(LogFileEnvVar)
	if output == "" {
		output = "stderr"
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	if output == "stderr" {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// parseLevel maps a level name such as "debug" or "WARN" to a zap level.
// Unknown names map to info.
func parseLevel(level string) zapcore.Level {
	l, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return l
}

// InitializeFromEnv initializes the logger from COLORPICK_LOG_LEVEL.
func InitializeFromEnv() error {
	return Initialize("")
}

// SetLogger replaces the global logger. Intended for tests.
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Silent until initialized so nothing leaks into the TUI
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

// debugEnabled guards the per-keystroke helpers below so field
// construction is skipped when debug output is off.
func debugEnabled() bool {
	return GetLogger().Core().Enabled(zapcore.DebugLevel)
}

// LogColorChange logs a model update and what caused it
func LogColorChange(source string, space string, components [3]float64) {
	if !debugEnabled() {
		return
	}
	Debug("Color changed",
		zap.String("source", source),
		zap.String("space", space),
		zap.Float64s("components", components[:]),
	)
}

// LogFieldSync logs one synchronizer decision
func LogFieldSync(field string, displayed string, value float64, overwritten bool) {
	if !debugEnabled() {
		return
	}
	Debug("Field sync",
		zap.String("field", field),
		zap.String("displayed", displayed),
		zap.Float64("value", value),
		zap.Bool("overwritten", overwritten),
	)
}

// LogConnection logs a connection event
func LogConnection(remoteAddr string, event string) {
	Info("Connection event",
		zap.String("remote_addr", remoteAddr),
		zap.String("event", event),
	)
}

// LogTLSHandshake logs a completed TLS handshake
func LogTLSHandshake(serverName string, version uint16, cipherSuite uint16) {
	if !debugEnabled() {
		return
	}
	Debug("TLS handshake completed",
		zap.String("server_name", serverName),
		zap.String("tls_version", tls.VersionName(version)),
		zap.String("cipher_suite", tls.CipherSuiteName(cipherSuite)),
	)
}

// maxLoggedPayload caps the text payload included in message logs.
const maxLoggedPayload = 512

// LogWebSocketMessage logs a WebSocket message
func LogWebSocketMessage(remoteAddr string, direction string, messageType int, data []byte) {
	fields := []zap.Field{
		zap.String("remote_addr", remoteAddr),
		zap.String("direction", direction),
		zap.String("message_type", wsMessageTypeName(messageType)),
		zap.Int("length", len(data)),
	}

	if wsMessageTypeName(messageType) == "text" {
		fields = append(fields, zap.String("content", truncate(string(data), maxLoggedPayload)))
	}

	Debug("WebSocket message", fields...)
}

// WebSocket opcodes as defined by RFC 6455.
var wsMessageTypes = map[int]string{
	1:  "text",
	2:  "binary",
	8:  "close",
	9:  "ping",
	10: "pong",
}

func wsMessageTypeName(msgType int) string {
	if name, ok := wsMessageTypes[msgType]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", msgType)
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
