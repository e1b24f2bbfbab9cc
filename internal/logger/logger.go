// Package logger configures the slog logger used by the service and provides the
// request-scoped logger that handlers retrieve with ContextRequestLogger.
package logger

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// LevelNone is above every level used in the code, so nothing is logged.
const LevelNone = slog.Level(16)

// ParseLogLevel converts a LOG_LEVEL value (debug, info, warn, error, none) to a slog.Level.
// Values produced by slog.Level.String (e.g. "ERROR+8") are also accepted.
// Unknown values default to info.
func ParseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "none", "off":
		return LevelNone
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err == nil {
		return level
	}
	return slog.LevelInfo
}

// InitLogger creates the application logger and installs it as the slog default.
//
// dev and test environments get human readable colored output (tint),
// staging and prod get JSON lines.
func InitLogger(level slog.Level, environment string) *slog.Logger {
	var handler slog.Handler

	switch environment {
	case "prod", "staging":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	default:
		handler = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.DateTime,
		})
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
