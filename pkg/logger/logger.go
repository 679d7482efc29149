// Package logger provides leveled logging for the task notifier.
//
// Channel warnings are part of the user-visible contract: they go to the
// error stream in real time as each channel completes, so the default
// logger writes to stderr rather than a log file.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Logger provides the structured logging interface.
type Logger interface {
	// Debug logs debug-level messages with optional key-value pairs.
	Debug(msg string, keysAndValues ...any)

	// Info logs info-level messages with optional key-value pairs.
	Info(msg string, keysAndValues ...any)

	// Warn logs warning-level messages with optional key-value pairs.
	Warn(msg string, keysAndValues ...any)

	// Error logs error-level messages with optional key-value pairs.
	Error(msg string, keysAndValues ...any)

	// With returns a new logger with additional key-value pairs.
	With(keysAndValues ...any) Logger
}

// Level represents the log level.
type Level string

const (
	// LevelDebug represents debug-level logging.
	LevelDebug Level = "DEBUG"

	// LevelInfo represents info-level logging.
	LevelInfo Level = "INFO"

	// LevelWarn represents warning-level logging.
	LevelWarn Level = "WARN"

	// LevelError represents error-level logging.
	LevelError Level = "ERROR"
)

// tag returns the bracketed, column-aligned level tag.
func tag(level Level) string {
	return fmt.Sprintf("%-8s", "["+string(level)+"]")
}

// ConsoleLogger implements Logger with line-oriented output to a writer.
type ConsoleLogger struct {
	mu      *sync.Mutex
	out     io.Writer
	baseKVs []any
	verbose bool
}

// NewConsoleLogger creates a ConsoleLogger writing to stderr. Debug and info
// messages are suppressed unless verbose is set; warnings and errors are
// always emitted.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return NewConsoleLoggerWithWriter(os.Stderr, verbose)
}

// NewConsoleLoggerWithWriter creates a ConsoleLogger with a custom writer.
func NewConsoleLoggerWithWriter(out io.Writer, verbose bool) *ConsoleLogger {
	return &ConsoleLogger{
		mu:      &sync.Mutex{},
		out:     out,
		verbose: verbose,
	}
}

// Debug logs debug-level messages.
func (l *ConsoleLogger) Debug(msg string, keysAndValues ...any) {
	if !l.verbose {
		return
	}

	l.log(LevelDebug, msg, keysAndValues...)
}

// Info logs info-level messages.
func (l *ConsoleLogger) Info(msg string, keysAndValues ...any) {
	if !l.verbose {
		return
	}

	l.log(LevelInfo, msg, keysAndValues...)
}

// Warn logs warning-level messages.
func (l *ConsoleLogger) Warn(msg string, keysAndValues ...any) {
	l.log(LevelWarn, msg, keysAndValues...)
}

// Error logs error-level messages.
func (l *ConsoleLogger) Error(msg string, keysAndValues ...any) {
	l.log(LevelError, msg, keysAndValues...)
}

// With returns a new logger with additional base key-value pairs.
//
//nolint:ireturn // With is intended to return an interface for chaining
func (l *ConsoleLogger) With(keysAndValues ...any) Logger {
	newKVs := make([]any, len(l.baseKVs)+len(keysAndValues))
	copy(newKVs, l.baseKVs)
	copy(newKVs[len(l.baseKVs):], keysAndValues)

	return &ConsoleLogger{
		mu:      l.mu,
		out:     l.out,
		baseKVs: newKVs,
		verbose: l.verbose,
	}
}

// log writes one formatted line to the writer.
func (l *ConsoleLogger) log(level Level, msg string, keysAndValues ...any) {
	var builder strings.Builder

	builder.WriteString(tag(level))
	builder.WriteString(msg)

	if len(l.baseKVs) > 0 {
		writeKeyValues(&builder, l.baseKVs)
	}

	if len(keysAndValues) > 0 {
		writeKeyValues(&builder, keysAndValues)
	}

	builder.WriteString("\n")

	l.mu.Lock()
	defer l.mu.Unlock()

	_, _ = io.WriteString(l.out, builder.String())
}

// writeKeyValues formats key-value pairs and appends them to the builder.
func writeKeyValues(builder *strings.Builder, kvs []any) {
	for i := 0; i < len(kvs); i += 2 {
		if i+1 >= len(kvs) {
			// Odd number of arguments, skip the last one
			break
		}

		key := fmt.Sprintf("%v", kvs[i])
		value := fmt.Sprintf("%v", kvs[i+1])

		builder.WriteString(" ")
		builder.WriteString(key)
		builder.WriteString("=")

		if strings.ContainsAny(value, " \t\n\"") {
			builder.WriteString(quote(value))
		} else {
			builder.WriteString(value)
		}
	}
}

// quote escapes and quotes a string value.
func quote(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")

	return "\"" + s + "\""
}

// NoOpLogger is a logger that does nothing.
type NoOpLogger struct{}

// NewNoOpLogger creates a new NoOpLogger.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

// Debug does nothing.
func (*NoOpLogger) Debug(string, ...any) {}

// Info does nothing.
func (*NoOpLogger) Info(string, ...any) {}

// Warn does nothing.
func (*NoOpLogger) Warn(string, ...any) {}

// Error does nothing.
func (*NoOpLogger) Error(string, ...any) {}

// With returns the same NoOpLogger.
//
//nolint:ireturn // With is intended to return an interface for chaining
func (n *NoOpLogger) With(...any) Logger {
	return n
}
