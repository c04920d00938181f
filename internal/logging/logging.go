// Package logging provides structured logging using Go's slog package.
//
// The package logger is private to xliffkit: configuring it never touches
// slog.Default, which belongs to the host program.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

var (
	// defaultLogger is the global logger instance.
	defaultLogger *slog.Logger
)

func init() {
	// Initialize with a default logger (JSON format, Warn level)
	InitLogger(LevelWarn, FormatJSON)
}

// Level represents a log level.
type Level int

const (
	// LevelDebug is for debug messages.
	LevelDebug Level = iota
	// LevelInfo is for informational messages.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
)

// Format represents a log output format.
type Format int

const (
	// FormatJSON outputs logs in JSON format.
	FormatJSON Format = iota
	// FormatText outputs logs in human-readable text format.
	FormatText
)

// InitLogger initializes the global logger with the specified level and format.
// Output goes to stderr.
func InitLogger(level Level, format Format) {
	InitLoggerTo(os.Stderr, level, format)
}

// InitLoggerTo initializes the global logger writing to w.
func InitLoggerTo(w io.Writer, level Level, format Format) {
	opts := &slog.HandlerOptions{
		Level: toSlog(level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Customize timestamp format
			if a.Key == slog.TimeKey {
				return slog.String(slog.TimeKey, a.Value.Time().Format(time.RFC3339))
			}
			return a
		},
	}

	var handler slog.Handler
	if format == FormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	defaultLogger = slog.New(handler)
}

// SetLogger replaces the package logger, e.g. with the host's own logger.
// A nil logger is ignored.
func SetLogger(l *slog.Logger) {
	if l != nil {
		defaultLogger = l
	}
}

func toSlog(level Level) slog.Level {
	switch level {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// GetLogger returns the global logger instance.
func GetLogger() *slog.Logger {
	return defaultLogger
}

// Enabled reports whether the global logger emits records at level.
func Enabled(level Level) bool {
	return defaultLogger.Enabled(context.Background(), toSlog(level))
}

// EntityBuilt logs the construction of an entity.
func EntityBuilt(tag string, fromNode bool, explicit int, args ...any) {
	allArgs := []any{
		"tag", tag,
		"from_node", fromNode,
		"explicit_values", explicit,
	}
	allArgs = append(allArgs, args...)
	defaultLogger.Debug("entity_built", allArgs...)
}

// ValueDeferred logs a markup value that could not be converted while
// building and is left for validation to report.
func ValueDeferred(tag, field, raw string, err error, args ...any) {
	allArgs := []any{
		"tag", tag,
		"field", field,
		"raw", raw,
		"error", err.Error(),
	}
	allArgs = append(allArgs, args...)
	defaultLogger.Debug("value_deferred", allArgs...)
}

// ValidationFailed logs the outcome of a failed validation pass.
func ValidationFailed(tag string, failures int, gatherAll bool, args ...any) {
	allArgs := []any{
		"tag", tag,
		"failures", failures,
		"gather_all", gatherAll,
	}
	allArgs = append(allArgs, args...)
	defaultLogger.Debug("validation_failed", allArgs...)
}
