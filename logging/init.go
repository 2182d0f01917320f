// Package logging builds the slog logger shared by the commands.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds a logger from cfg merged over the defaults and the environment.
// The returned function closes the file sink, if any.
func New(cfg Config, stderr io.Writer) (*slog.Logger, func() error, error) {
	return NewWithOverrides(cfg, Config{}, stderr)
}

// NewWithOverrides is New with a last layer applied after the environment.
// Command line flags go there: defaults, then cfg, then env, then overrides.
func NewWithOverrides(cfg, overrides Config, stderr io.Writer) (*slog.Logger, func() error, error) {
	cfg = DefaultConfig().Merge(cfg).WithEnv().Merge(overrides)
	normalized, err := cfg.Normalize()
	if err != nil {
		return nil, nil, err
	}

	writer, closeFn, err := resolveWriter(normalized, stderr)
	if err != nil {
		return nil, nil, err
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     parseLevel(normalized.Level),
		AddSource: normalized.AddSource != nil && *normalized.AddSource,
	}
	var handler slog.Handler
	switch Format(deref(normalized.Format, string(FormatText))) {
	case FormatJSON:
		handler = slog.NewJSONHandler(writer, handlerOpts)
	default:
		handler = slog.NewTextHandler(writer, handlerOpts)
	}

	return slog.New(handler).With(slog.String("app", "anchorgui")), closeFn, nil
}

// Init builds a logger and installs it as the slog default.
func Init(cfg Config) (func() error, error) {
	logger, closeFn, err := New(cfg, os.Stderr)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return closeFn, nil
}

func parseLevel(value *string) slog.Leveler {
	switch strings.ToLower(deref(value, "")) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func resolveWriter(cfg Config, stderr io.Writer) (io.Writer, func() error, error) {
	noop := func() error { return nil }

	switch Sink(deref(cfg.Sink, string(SinkStderr))) {
	case SinkNone:
		return io.Discard, noop, nil
	case SinkStderr:
		return stderr, noop, nil
	case SinkFile:
		path := strings.TrimSpace(deref(cfg.File, ""))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("creating log directory: %w", err)
		}
		rot := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    derefInt(cfg.MaxSizeMB, 10),
			MaxBackups: derefInt(cfg.MaxBackups, 3),
		}
		return rot, rot.Close, nil
	default:
		return nil, nil, fmt.Errorf("logging: unknown sink %q", deref(cfg.Sink, ""))
	}
}

func deref(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}

func derefInt(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}
