// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Allen Robel

package nd

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevelNone, "NONE"},
		{LogLevel(42), "UNKNOWN(42)"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("LogLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestDefaultLogger_LevelThreshold(t *testing.T) {
	var buf bytes.Buffer
	orig := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(orig)

	logger := NewDefaultLogger(LogLevelWarn)
	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("output %q contains messages below the WARN threshold", out)
	}
	if !strings.Contains(out, "[WARN] warn message") {
		t.Errorf("output %q missing warn message", out)
	}
	if !strings.Contains(out, "[ERROR] error message") {
		t.Errorf("output %q missing error message", out)
	}
}

func TestDefaultLogger_KeyValueFormat(t *testing.T) {
	var buf bytes.Buffer
	orig := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(orig)

	logger := NewDefaultLogger(LogLevelDebug)
	logger.Info("sending request", "verb", "GET", "status", 200)

	out := buf.String()
	if !strings.Contains(out, "verb=GET") || !strings.Contains(out, "status=200") {
		t.Errorf("output %q missing key=value pairs", out)
	}
}

func TestDefaultLogger_OddKeyValueCount(t *testing.T) {
	var buf bytes.Buffer
	orig := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(orig)

	logger := NewDefaultLogger(LogLevelDebug)
	logger.Info("oops", "dangling")

	if !strings.Contains(buf.String(), "dangling=<MISSING>") {
		t.Errorf("output %q should mark the missing value", buf.String())
	}
}

func TestSanitizeLogValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "plain string", in: "hello", want: "hello"},
		{name: "integer", in: 404, want: "404"},
		{name: "newlines flattened", in: "line1\nline2\r\tend", want: "line1 line2  end"},
		{name: "control chars replaced", in: "a\x01b", want: "a.b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeLogValue(tt.in); got != tt.want {
				t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeLogValue_Truncates(t *testing.T) {
	long := strings.Repeat("x", MaxLogValueLength+100)
	got := sanitizeLogValue(long)
	if !strings.HasSuffix(got, "...[TRUNCATED]") {
		t.Errorf("sanitizeLogValue long value should end with truncation marker, got suffix %q", got[len(got)-20:])
	}
	if len(got) > MaxLogValueLength+len("...[TRUNCATED]") {
		t.Errorf("sanitized length = %d, want at most %d", len(got), MaxLogValueLength+len("...[TRUNCATED]"))
	}
}

func TestZerologLogger_Emits(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf)
	logger := NewZerologLogger(zl)

	logger.Info("logged in to controller", "username", "admin", "domain", "local")

	out := buf.String()
	if !gjson.Valid(out) {
		t.Fatalf("zerolog output %q is not JSON", out)
	}
	if got := gjson.Get(out, "message").String(); got != "logged in to controller" {
		t.Errorf("message = %q, want logged in to controller", got)
	}
	if got := gjson.Get(out, "username").String(); got != "admin" {
		t.Errorf("username = %q, want admin", got)
	}
	if got := gjson.Get(out, "level").String(); got != "info" {
		t.Errorf("level = %q, want info", got)
	}
}

func TestNoOpLogger_ImplementsLogger(t *testing.T) {
	var _ Logger = &NoOpLogger{}
	var _ Logger = &DefaultLogger{}
	var _ Logger = &ZerologLogger{}

	// Must not panic with any argument shapes.
	logger := &NoOpLogger{}
	logger.Debug("msg")
	logger.Info("msg", "k", "v")
	logger.Warn("msg", "dangling")
	logger.Error("msg", nil, nil)
}
