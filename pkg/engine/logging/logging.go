// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

// Config selects where log lines go and how verbose they are
type Config struct {
	Debug  bool
	Output io.Writer // nil means stderr
}

var (
	mu     sync.RWMutex
	global = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// Setup installs a text logger as both L() and slog's default, and returns it
func Setup(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	l := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.Debug,
	}))

	mu.Lock()
	global = l
	mu.Unlock()
	slog.SetDefault(l)

	l.Debug("logger initialized", "debug", cfg.Debug)
	return l
}

// L returns the configured logger; it discards everything until Setup runs
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}
