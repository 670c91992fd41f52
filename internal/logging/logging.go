// Package logging provides leveled logging for the timer.
//
// The TUI owns the terminal, so interactive runs log to a file while
// headless runs log to stderr.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

const flags = log.Ldate | log.Ltime | log.Lmicroseconds

// Logger writes leveled, prefixed lines.
type Logger struct {
	info  *log.Logger
	warn  *log.Logger
	error *log.Logger
}

// New creates a logger writing every level to w.
func New(w io.Writer) *Logger {
	return &Logger{
		info:  log.New(w, "[ROUNDS-INFO] ", flags),
		warn:  log.New(w, "[ROUNDS-WARN] ", flags),
		error: log.New(w, "[ROUNDS-ERROR] ", flags),
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard)
}

// OpenFile creates the parent directory and opens path for appending.
// The caller closes the returned file.
func OpenFile(path string) (*Logger, *os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f), f, nil
}

// Infof logs an informational message.
func (l *Logger) Infof(format string, args ...any) {
	l.info.Printf(format, args...)
}

// Warnf logs a warning.
func (l *Logger) Warnf(format string, args ...any) {
	l.warn.Printf(format, args...)
}

// Errorf logs an error.
func (l *Logger) Errorf(format string, args ...any) {
	l.error.Printf(format, args...)
}

// Event logs a timer event with a fixed layout so log files stay greppable.
func (l *Logger) Event(kind, details string) {
	l.info.Printf("[EVENT:%s] %s", kind, details)
}
