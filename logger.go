// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Allen Robel

package nd

import (
	"fmt"
	"log"
	"strings"

	"github.com/rs/zerolog"
)

// MaxLogValueLength limits the length of log values. Values longer than
// this are truncated to keep diagnostic output bounded.
const MaxLogValueLength = 1024

// Logger interface for pluggable logging support
//
// Implementations should use structured logging with key-value pairs.
// The library provides three implementations:
//   - NoOpLogger: discards everything (default)
//   - DefaultLogger: wraps Go's standard log package with a level threshold
//   - ZerologLogger: adapts a zerolog.Logger (used by the CLI entry points)
//
// Example custom logger integration:
//
//	type SlogAdapter struct {
//	    logger *slog.Logger
//	}
//
//	func (s *SlogAdapter) Debug(msg string, keysAndValues ...any) {
//	    s.logger.Debug(msg, keysAndValues...)
//	}
//	// ... implement Info, Warn, Error
//
//	client, _ := nd.NewClient(
//	    nd.Host("192.168.1.1"),
//	    nd.WithLogger(&SlogAdapter{logger: slog.Default()}))
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// LogLevel represents the severity threshold for logging
type LogLevel int

const (
	// LogLevelDebug enables all log levels (most verbose)
	LogLevelDebug LogLevel = iota

	// LogLevelInfo enables Info, Warn, and Error logs
	LogLevelInfo

	// LogLevelWarn enables Warn and Error logs
	LogLevelWarn

	// LogLevelError enables only Error logs
	LogLevelError

	// LogLevelNone disables all logging
	LogLevelNone
)

// String returns the string representation of a LogLevel
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	case LogLevelNone:
		return "NONE"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", l)
	}
}

// DefaultLogger wraps Go's standard log package with a configurable level
//
// Log output format: [LEVEL] message key1=value1 key2=value2
//
// Example:
//
//	logger := nd.NewDefaultLogger(nd.LogLevelDebug)
//	client, _ := nd.NewClient(
//	    nd.Host("192.168.1.1"),
//	    nd.WithLogger(logger))
type DefaultLogger struct {
	level LogLevel
}

// NewDefaultLogger creates a DefaultLogger with the specified log level
func NewDefaultLogger(level LogLevel) *DefaultLogger {
	return &DefaultLogger{level: level}
}

// Debug logs a debug message with structured key-value pairs
func (l *DefaultLogger) Debug(msg string, keysAndValues ...any) {
	if l.level <= LogLevelDebug {
		l.log("DEBUG", msg, keysAndValues...)
	}
}

// Info logs an informational message with structured key-value pairs
func (l *DefaultLogger) Info(msg string, keysAndValues ...any) {
	if l.level <= LogLevelInfo {
		l.log("INFO", msg, keysAndValues...)
	}
}

// Warn logs a warning message with structured key-value pairs
func (l *DefaultLogger) Warn(msg string, keysAndValues ...any) {
	if l.level <= LogLevelWarn {
		l.log("WARN", msg, keysAndValues...)
	}
}

// Error logs an error message with structured key-value pairs
func (l *DefaultLogger) Error(msg string, keysAndValues ...any) {
	if l.level <= LogLevelError {
		l.log("ERROR", msg, keysAndValues...)
	}
}

// sanitizeLogValue flattens a log value to a single printable line and
// truncates it to MaxLogValueLength. Newlines and other control characters
// are replaced so a value cannot fake additional log entries.
func sanitizeLogValue(val any) string {
	str := fmt.Sprintf("%v", val)

	if len(str) > MaxLogValueLength {
		str = str[:MaxLogValueLength] + "...[TRUNCATED]"
	}

	var builder strings.Builder
	builder.Grow(len(str))
	for _, r := range str {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			builder.WriteRune(' ')
		case r < 32 || r == 127:
			builder.WriteRune('.')
		default:
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

// log formats and outputs a log message with structured key-value pairs
func (l *DefaultLogger) log(level, msg string, keysAndValues ...any) {
	var builder strings.Builder
	builder.Grow(len(level) + len(msg) + 10 + len(keysAndValues)*25)

	builder.WriteString("[")
	builder.WriteString(level)
	builder.WriteString("] ")
	builder.WriteString(msg)

	for i := 0; i < len(keysAndValues); i += 2 {
		builder.WriteString(" ")
		builder.WriteString(sanitizeLogValue(keysAndValues[i]))
		if i+1 < len(keysAndValues) {
			builder.WriteString("=")
			builder.WriteString(sanitizeLogValue(keysAndValues[i+1]))
		} else {
			// Odd-length array - mark missing value explicitly
			builder.WriteString("=<MISSING>")
		}
	}

	log.Println(builder.String())
}

// NoOpLogger is a no-operation logger that discards all log messages
//
// This is the default logger used when no custom logger is configured.
type NoOpLogger struct{}

// Debug discards the log message
func (n *NoOpLogger) Debug(_ string, _ ...any) {}

// Info discards the log message
func (n *NoOpLogger) Info(_ string, _ ...any) {}

// Warn discards the log message
func (n *NoOpLogger) Warn(_ string, _ ...any) {}

// Error discards the log message
func (n *NoOpLogger) Error(_ string, _ ...any) {}

// ZerologLogger adapts a zerolog.Logger to the Logger interface
//
// Example:
//
//	zl := zerolog.New(os.Stderr).With().Timestamp().Logger()
//	client, _ := nd.NewClient(
//	    nd.Host("192.168.1.1"),
//	    nd.WithLogger(nd.NewZerologLogger(zl)))
type ZerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger creates a ZerologLogger wrapping the given zerolog.Logger
func NewZerologLogger(logger zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{logger: logger}
}

// Debug logs a debug message with structured key-value pairs
func (z *ZerologLogger) Debug(msg string, keysAndValues ...any) {
	z.emit(z.logger.Debug(), msg, keysAndValues)
}

// Info logs an informational message with structured key-value pairs
func (z *ZerologLogger) Info(msg string, keysAndValues ...any) {
	z.emit(z.logger.Info(), msg, keysAndValues)
}

// Warn logs a warning message with structured key-value pairs
func (z *ZerologLogger) Warn(msg string, keysAndValues ...any) {
	z.emit(z.logger.Warn(), msg, keysAndValues)
}

// Error logs an error message with structured key-value pairs
func (z *ZerologLogger) Error(msg string, keysAndValues ...any) {
	z.emit(z.logger.Error(), msg, keysAndValues)
}

// emit attaches key-value pairs to a zerolog event and sends it
func (z *ZerologLogger) emit(event *zerolog.Event, msg string, keysAndValues []any) {
	for i := 0; i < len(keysAndValues); i += 2 {
		key := sanitizeLogValue(keysAndValues[i])
		if i+1 < len(keysAndValues) {
			event = event.Str(key, sanitizeLogValue(keysAndValues[i+1]))
		} else {
			event = event.Str(key, "<MISSING>")
		}
	}
	event.Msg(msg)
}
