// Package logging builds slog loggers for configmaster. Verbosity is
// chosen per call instead of by mutating process-wide logger state, so a
// debug request only affects the call that asked for it.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// DefaultLevel is used when no log level is configured.
const DefaultLevel = slog.LevelInfo

// Supported handler formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Provider hands out loggers with a per-call verbosity.
type Provider interface {
	// Logger returns a logger at the provider's base level, or at debug
	// level when debug is true.
	Logger(debug bool) *slog.Logger
}

// Factory is the default Provider. It writes every logger it creates to
// the same writer with the same format.
type Factory struct {
	w      io.Writer
	format string
	level  slog.Level
}

// NewFactory creates a Factory. Unknown formats fall back to text.
func NewFactory(w io.Writer, format string, level slog.Level) *Factory {
	if w == nil {
		w = io.Discard
	}
	return &Factory{w: w, format: strings.ToLower(format), level: level}
}

// Logger implements Provider.
func (f *Factory) Logger(debug bool) *slog.Logger {
	level := f.level
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if f.format == FormatJSON {
		return slog.New(slog.NewJSONHandler(f.w, opts))
	}
	return slog.New(slog.NewTextHandler(f.w, opts))
}

// Level returns the factory's base level.
func (f *Factory) Level() slog.Level {
	return f.level
}

// Discard returns a Provider whose loggers drop every record.
func Discard() Provider {
	return NewFactory(io.Discard, FormatText, slog.LevelError)
}

// ParseLevel converts a configuration log level name into a slog.Level.
// It accepts DEBUG, INFO, WARN, WARNING, ERROR and CRITICAL in any case;
// CRITICAL maps to slog.LevelError+4.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO", "":
		return DefaultLevel, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	case "CRITICAL":
		return slog.LevelError + 4, nil
	}
	return DefaultLevel, fmt.Errorf("unknown log level %q", name)
}
