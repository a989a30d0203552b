// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package logutil

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Level represents the logging level.
type Level int

const (
	// LevelDebug is for debug messages.
	LevelDebug Level = iota
	// LevelInfo is for informational messages.
	LevelInfo
	// LevelWarn is for warnings.
	LevelWarn
	// LevelError is for errors.
	LevelError
)

// EnvDebug enables debug logging when set to "true".
const EnvDebug = "AZD_ATTACH_DEBUG"

var (
	mu           sync.RWMutex
	globalLogger *slog.Logger
	currentLevel           = LevelInfo
	isStructured           = false
	outputWriter io.Writer = os.Stderr
)

func init() {
	SetupLogger(false, false)
}

// SetupLogger configures the global logger to write to stderr.
//
// Parameters:
//   - debug: When true, enables debug-level logging
//   - structured: When true, outputs JSON-formatted logs; otherwise uses text format
//
// This function is safe for concurrent use.
func SetupLogger(debug, structured bool) {
	SetupLoggerWithWriter(os.Stderr, debug, structured)
}

// SetupLoggerWithWriter configures the logger with a custom writer.
// This is useful for testing or redirecting logs.
// This function is safe for concurrent use.
func SetupLoggerWithWriter(w io.Writer, debug, structured bool) {
	mu.Lock()
	defer mu.Unlock()

	outputWriter = w
	isStructured = structured
	if debug || os.Getenv(EnvDebug) == "true" {
		currentLevel = LevelDebug
	} else {
		currentLevel = LevelInfo
	}
	rebuild()
}

// SetOutput sets the output writer for the logger, keeping level and format.
// This function is safe for concurrent use.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	outputWriter = w
	rebuild()
}

// SetLevel sets the logging level programmatically.
// This function is safe for concurrent use.
func SetLevel(level Level) {
	mu.Lock()
	defer mu.Unlock()

	currentLevel = level
	rebuild()
}

// rebuild replaces the global logger from the current settings.
// Caller must hold mu.Lock().
func rebuild() {
	opts := &slog.HandlerOptions{Level: currentLevel.slogLevel()}

	var handler slog.Handler
	if isStructured {
		handler = slog.NewJSONHandler(outputWriter, opts)
	} else {
		handler = slog.NewTextHandler(outputWriter, opts)
	}

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

func (l Level) slogLevel() slog.Level {
	switch l {
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

// String returns the lower-case level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// IsDebugEnabled returns true if debug logging is enabled.
// This function is safe for concurrent use.
func IsDebugEnabled() bool {
	return GetLevel() == LevelDebug
}

// Debug logs a debug message with optional key-value pairs.
//
// Example:
//
//	logutil.Debug("parsed process list", "count", len(items))
func Debug(msg string, args ...any) {
	Logger().Debug(msg, args...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) {
	Logger().Info(msg, args...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) {
	Logger().Warn(msg, args...)
}

// Error logs an error message with optional key-value pairs.
//
// Example:
//
//	logutil.Error("failed to list processes", "error", err)
func Error(msg string, args ...any) {
	Logger().Error(msg, args...)
}

// ParseLevel parses a string into a Level.
// Valid values are: "debug", "info", "warn", "warning", "error".
// Returns LevelInfo for unrecognized values.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// GetLevel returns the current logging level.
// This function is safe for concurrent use.
func GetLevel() Level {
	mu.RLock()
	defer mu.RUnlock()
	return currentLevel
}

// Logger returns the underlying slog.Logger for advanced usage.
// This function is safe for concurrent use.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}
