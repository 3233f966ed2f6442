// Package logging configures colored structured logging with tint.
// Copy this file to any Go project that uses log/slog.
//
// Usage:
//
//	logging.Setup()                          // INFO level, from LOG_LEVEL env
//	logging.SetupWithLevel(slog.LevelDebug)  // explicit level override
//	logging.SetupWriter(f, slog.LevelInfo)   // log somewhere other than stderr
//
// Environment variables:
//
//	LOG_LEVEL: debug, info, warn, error (default: info)
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup configures colored logging at the level specified by LOG_LEVEL env var
// (default: INFO).
func Setup() {
	SetupWithLevel(levelFromEnv())
}

// SetupWithLevel configures colored logging at the given level.
func SetupWithLevel(level slog.Level) {
	SetupWriter(os.Stderr, level)
}

// SetupWriter configures logging to w at the given level.
// Color is only used when w is stderr.
func SetupWriter(w io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			AddSource:  true,
			NoColor:    w != os.Stderr,
		}),
	))
}

// LevelFromEnv returns the level named by LOG_LEVEL (default: INFO).
func LevelFromEnv() slog.Level {
	return levelFromEnv()
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
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
