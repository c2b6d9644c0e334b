package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// discardLogger returns a logger that drops everything. The local TUI owns
// the terminal, so it can't log to it.
func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

// OpenLogFile returns a logger writing to path, creating parent
// directories as needed. An empty path returns a discarding logger and a
// no-op closer.
func OpenLogFile(path, prefix string) (*log.Logger, func() error, error) {
	if path == "" {
		return discardLogger(), func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	return logger, f.Close, nil
}
