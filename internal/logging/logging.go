// Package logging provides the zerolog-based structured logging used across
// the pets CLI: logger construction, per-component child loggers, and
// context propagation of the logger plus a per-invocation trace ID.
package logging

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// Config controls logger construction.
type Config struct {
	// Level is a zerolog level name ("debug", "info", "warn", "error").
	// Unparseable values fall back to info.
	Level string

	// Format is "console" for human-readable output or "json" for
	// machine-readable output. Defaults to console.
	Format string

	// File is an optional path to append logs to in addition to stderr.
	File string
}

// New builds a logger from cfg. When cfg.File is set but cannot be opened,
// the logger falls back to stderr only and the error is reported on it.
func New(cfg Config) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	var out io.Writer
	if strings.EqualFold(cfg.Format, "json") {
		out = os.Stderr
	} else {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}

	if cfg.File != "" {
		f, fileErr := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if fileErr == nil {
			out = zerolog.MultiLevelWriter(out, f)
		} else {
			logger := zerolog.New(out).Level(lvl).With().Timestamp().Logger()
			logger.Warn().Err(fileErr).Str("file", cfg.File).Msg("could not open log file, logging to stderr only")
			return logger
		}
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// ComponentLogger returns a child logger tagged with a component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// FromContext returns the logger stored in ctx, or a disabled logger when
// none has been attached.
func FromContext(ctx context.Context) zerolog.Logger {
	return *zerolog.Ctx(ctx)
}

type traceIDKey struct{}

// NewTraceID generates a ULID trace identifier for one load cycle. ULIDs are
// lexically sortable, so interleaved responses from overlapping loads can be
// ordered in the logs after the fact.
func NewTraceID() string {
	return ulid.Make().String()
}

// ContextWithTraceID stores a trace ID in ctx.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace ID stored in ctx, or "" when absent.
func TraceIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(traceIDKey{}).(string); ok {
		return id
	}
	return ""
}
