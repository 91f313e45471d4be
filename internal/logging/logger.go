// Package logging provides structured JSON logging for the playground client.
//
// The TUI owns the terminal, so logs are written to a size-rotated file
// (debug.log) in a log directory instead of stderr. Child loggers created
// with With, WithScenario and WithRequest share the underlying writer and are
// safe for concurrent use.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Log levels supported by the logger
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// LogFileName is the name of the active log file inside the log directory.
const LogFileName = "debug.log"

// Logger wraps slog with the attribute helpers used across the client.
type Logger struct {
	logger *slog.Logger
	closer io.Closer // nil for stderr and nop loggers
}

// NewLogger creates a Logger writing JSON lines to {dir}/debug.log with the
// default rotation settings. If dir is empty, logs go to stderr.
func NewLogger(dir string, level string) (*Logger, error) {
	return NewLoggerWithRotation(dir, level, DefaultRotationConfig())
}

// NewLoggerWithRotation is NewLogger with explicit rotation settings.
func NewLoggerWithRotation(dir string, level string, rc RotationConfig) (*Logger, error) {
	if dir == "" {
		return newLogger(os.Stderr, nil, level), nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	rw, err := NewRotatingWriter(filepath.Join(dir, LogFileName), rc)
	if err != nil {
		return nil, err
	}
	return newLogger(rw, rw, level), nil
}

// NewWriterLogger creates a Logger writing JSON lines to w. The caller owns w.
func NewWriterLogger(w io.Writer, level string) *Logger {
	return newLogger(w, nil, level)
}

func newLogger(w io.Writer, closer io.Closer, level string) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
	return &Logger{logger: slog.New(handler), closer: closer}
}

// parseLevel converts a string log level to slog.Level, defaulting to INFO.
func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// With returns a child Logger with the given key-value pairs attached.
func (l *Logger) With(args ...any) *Logger {
	if len(args) == 0 {
		return l
	}
	return &Logger{logger: l.logger.With(args...), closer: l.closer}
}

// WithScenario attaches the scenario id to every entry.
func (l *Logger) WithScenario(scenarioID string) *Logger {
	return l.With("scenario_id", scenarioID)
}

// WithRequest attaches an HTTP request id to every entry.
func (l *Logger) WithRequest(requestID string) *Logger {
	return l.With("request_id", requestID)
}

// Debug logs at DEBUG level. Keys and values alternate.
func (l *Logger) Debug(msg string, args ...any) { l.log(slog.LevelDebug, msg, args...) }

// Info logs at INFO level. Keys and values alternate.
func (l *Logger) Info(msg string, args ...any) { l.log(slog.LevelInfo, msg, args...) }

// Warn logs at WARN level. Keys and values alternate.
func (l *Logger) Warn(msg string, args ...any) { l.log(slog.LevelWarn, msg, args...) }

// Error logs at ERROR level. Keys and values alternate.
func (l *Logger) Error(msg string, args ...any) { l.log(slog.LevelError, msg, args...) }

func (l *Logger) log(level slog.Level, msg string, args ...any) {
	l.logger.Log(context.Background(), level, msg, args...)
}

// Close flushes and closes the log file. It is a no-op for stderr and nop
// loggers. Child loggers share the file, so only the root should be closed.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// NopLogger returns a Logger that discards all output.
func NopLogger() *Logger {
	return newLogger(io.Discard, nil, LevelError)
}

// ParseLevel normalizes a user-provided level, returning LevelInfo for
// anything unrecognized.
func ParseLevel(level string) string {
	switch up := strings.ToUpper(level); up {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		return up
	default:
		return LevelInfo
	}
}

// ValidLevels returns the list of valid log level strings.
func ValidLevels() []string {
	return []string{LevelDebug, LevelInfo, LevelWarn, LevelError}
}
