// Package logging builds the slog loggers used by the binaries.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ganot/daylog/internal/config"
)

// ParseLevel maps a config level name to a slog level. Unknown names are info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// New returns a text logger writing to cfg.Path through a rotating file, or
// to console when no path is set. A nil console with no path discards.
// The returned closer releases the file and is never nil.
func New(cfg config.LogConfig, console io.Writer) (*slog.Logger, io.Closer, error) {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	if cfg.Path == "" {
		if console == nil {
			return slog.New(slog.DiscardHandler), nopCloser{}, nil
		}
		return slog.New(slog.NewTextHandler(console, opts)), nopCloser{}, nil
	}

	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	file := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	}
	return slog.New(slog.NewTextHandler(file, opts)), file, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
