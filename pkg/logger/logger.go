// Package logger provides logging functionality for the release-manager application.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})

	// Warnf logs a formatted warning message.
	Warnf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// Warnf does nothing for noop logger.
func (n *noopLogger) Warnf(_ string, _ ...interface{}) {}

// defaultLogger is a thread-safe logger that writes to stdout and stderr.
type defaultLogger struct {
	mu  sync.Mutex
	out io.Writer
	err io.Writer
}

// NewDefaultLogger creates a new default logger writing to stdout/stderr.
func NewDefaultLogger() Logger {
	return &defaultLogger{
		out: os.Stdout,
		err: os.Stderr,
	}
}

// NewWriterLogger creates a logger writing both messages and warnings to w.
func NewWriterLogger(w io.Writer) Logger {
	return &defaultLogger{
		out: w,
		err: w,
	}
}

// Logf writes a formatted message with thread safety.
func (d *defaultLogger) Logf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.out, format+"\n", args...)
}

// Warnf writes a formatted warning message with thread safety.
func (d *defaultLogger) Warnf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.err, "Warning: "+format+"\n", args...)
}
