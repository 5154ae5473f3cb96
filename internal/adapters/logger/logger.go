// Package logger implements the logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/ports"
)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	mu     sync.RWMutex
	out    io.Writer
	level  slog.Level
	logger *slog.Logger
}

var _ ports.Logger = (*Logger)(nil)

// New creates a Logger writing human-readable output to stderr.
func New() *Logger {
	l := &Logger{out: os.Stderr, level: slog.LevelInfo}
	l.rebuild()
	return l
}

// SetOutput updates the logger's output destination.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
	l.rebuild()
}

// SetQuiet raises the level so only errors surface, matching the silent mode
// of the CLI. Passing false restores info-level output.
func (l *Logger) SetQuiet(quiet bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if quiet {
		l.level = slog.LevelError
	} else {
		l.level = slog.LevelInfo
	}
	l.rebuild()
}

// rebuild recreates the slog handler; callers hold the write lock.
func (l *Logger) rebuild() {
	handler := slog.NewTextHandler(l.out, &slog.HandlerOptions{Level: l.level})
	l.logger = slog.New(handler)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error("operation failed", "error", err)
}
