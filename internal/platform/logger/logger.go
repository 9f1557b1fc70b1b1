// Package logger builds the structured logger shared by every qa2md command.
package logger

import (
	"context"
	"io"
	"log/slog"
)

type contextKey struct{}

var loggerKey = contextKey{}

// New creates a structured logger writing to w.
// Progress and diagnostics go to w (stderr in the CLI) so they never mix with
// generated Markdown. Verbose enables Debug; json selects the JSON handler.
func New(w io.Writer, verbose, json bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// WithContext returns a new context with the given logger attached.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger from the context.
// If no logger is found, it returns the default logger.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
