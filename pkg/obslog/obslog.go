// Package obslog resolves the structured logger streamed generations log
// through, the way the rest of this repo resolves its OpenTelemetry tracer
// via pkg/telemetry: a caller-supplied *slog.Logger if there is one, a
// sensible environment-driven default otherwise.
package obslog

import (
	"log/slog"
	"os"
	"strings"
)

// LevelFromEnv returns the log level configured via environment variables.
// LLMSTREAM_LOG_LEVEL is checked first, then LOG_LEVEL, for agreement with
// whatever level the rest of a caller's process already runs at.
func LevelFromEnv() slog.Level {
	level := os.Getenv("LLMSTREAM_LOG_LEVEL")
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	return ParseLevel(level)
}

// ParseLevel parses a level string (case-insensitive; DEBUG, INFO, WARN,
// WARNING, ERROR). Unknown or empty values default to INFO.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds the default logger: text-handler, stderr, level from the
// environment. Used whenever a caller never supplies its own *slog.Logger.
func New() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: LevelFromEnv(),
	}))
}

// Default returns logger if it is non-nil, otherwise New(). Every component
// in this repo that accepts an optional *slog.Logger resolves it this way,
// so a nil Logger field on a Config never has to be special-cased at every
// call site.
func Default(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return New()
}
