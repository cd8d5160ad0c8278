// Package logging is a small slog facade. Everything goes to stderr:
// stdout belongs to the MCP stdio transport and must stay clean.
package logging

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	logger *slog.Logger
	once   sync.Once
)

// get lazily builds the logger. The level comes from LOG_LEVEL
// (debug, info, warn, error); anything unset or unrecognized is info.
func get() *slog.Logger {
	once.Do(func() {
		var level slog.Level
		switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		default:
			level = slog.LevelInfo
		}
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		logger = slog.New(handler)
	})
	return logger
}

// Debug logs a message at debug level.
func Debug(msg string, args ...any) {
	get().Debug(msg, args...)
}

// Info logs a message at info level.
func Info(msg string, args ...any) {
	get().Info(msg, args...)
}

// Warn logs a message at warn level.
func Warn(msg string, args ...any) {
	get().Warn(msg, args...)
}

// Error logs a message at error level.
func Error(msg string, args ...any) {
	get().Error(msg, args...)
}
