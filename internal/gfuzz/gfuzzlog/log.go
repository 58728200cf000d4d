// Package gfuzzlog provides the leveled logging used across gfuzz to
// implement the "never fail hard" error policy of spec.md §7: most error
// conditions are logged as a warning and the affected component degrades
// to a no-op instead of aborting the host fuzzing session.
package gfuzzlog

import (
	"log/slog"
	"os"
	"sync"
)

var (
	once    sync.Once
	handler *slog.Logger
)

// Logger returns the process-wide gfuzz logger, configured from
// GFUZZ_LOG_LEVEL ("debug", "info", "warn", "error"; default "info") on
// first use.
func Logger() *slog.Logger {
	once.Do(func() {
		level := parseLevel(os.Getenv("GFUZZ_LOG_LEVEL"))
		handler = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	})
	return handler
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Warn logs a warning, the level used for every "degrade, don't die"
// condition in spec.md §7 (configuration absent, shm attach failure,
// malformed manifest line).
func Warn(msg string, args ...any) {
	Logger().Warn(msg, args...)
}

// Debug logs a debug-level diagnostic.
func Debug(msg string, args ...any) {
	Logger().Debug(msg, args...)
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	Logger().Info(msg, args...)
}
