// Package logging builds the shared diagnostic logger. Output goes to a
// file so the TUI and table output are never interleaved with log lines.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a file-backed logger at path. Callers own the returned
// logger's Sync.
func New(path string, debug bool) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("creating log dir: %w", err)
	}

	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}

// NewOrNop returns a file logger, falling back to a no-op logger when the
// file cannot be opened. Diagnostics are best-effort; the app still runs.
func NewOrNop(path string, debug bool) *zap.Logger {
	logger, err := New(path, debug)
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
