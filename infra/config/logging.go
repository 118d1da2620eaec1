package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// ParseLogLevel maps a level name to slog. Unknown names default to info.
func ParseLogLevel(level string) (slog.Level, bool) {
	switch level {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// NewLogger opens cfg.LogPath for appending and returns a text logger on it.
// The caller closes the returned io.Closer on exit.
func NewLogger(cfg Config) (*slog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.LogPath), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	level, ok := ParseLogLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	if !ok {
		logger.Warn("unknown log level, defaulting to info", "level", cfg.LogLevel)
	}
	return logger, f, nil
}
