package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"invalid", zerolog.InfoLevel}, // Default
		{"", zerolog.InfoLevel},        // Default
	}

	for _, tt := range tests {
		got := parseLevel(tt.input)
		if got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func bufferLogger(buf *bytes.Buffer) *Logger {
	return &Logger{zlog: zerolog.New(buf).With().Timestamp().Logger()}
}

func parseEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output %q: %v", buf.String(), err)
	}
	return entry
}

func TestLoggerMethods(t *testing.T) {
	var buf bytes.Buffer
	log := bufferLogger(&buf)

	tests := []struct {
		name      string
		logFunc   func(string)
		wantLevel string
	}{
		{"debug", log.Debug, "debug"},
		{"info", log.Info, "info"},
		{"warn", log.Warn, "warn"},
		{"error", log.Error, "error"},
	}

	for _, tt := range tests {
		buf.Reset()
		tt.logFunc(tt.name + " message")

		entry := parseEntry(t, &buf)
		if entry["level"] != tt.wantLevel {
			t.Errorf("%s: expected level %q, got %q", tt.name, tt.wantLevel, entry["level"])
		}
		if entry["message"] != tt.name+" message" {
			t.Errorf("%s: unexpected message %q", tt.name, entry["message"])
		}
	}
}

func TestLoggerFormattedMethods(t *testing.T) {
	var buf bytes.Buffer
	log := bufferLogger(&buf)

	log.Infof("count: %d", 42)
	entry := parseEntry(t, &buf)
	if entry["message"] != "count: 42" {
		t.Errorf("expected message 'count: 42', got %q", entry["message"])
	}

	buf.Reset()
	log.Errorf("failed to connect: %s", "timeout")
	entry = parseEntry(t, &buf)
	if entry["level"] != "error" || entry["message"] != "failed to connect: timeout" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestWithField(t *testing.T) {
	var buf bytes.Buffer
	log := bufferLogger(&buf)

	log.WithField("ticker", "ACME").Info("fetched statements")

	entry := parseEntry(t, &buf)
	if entry["ticker"] != "ACME" {
		t.Errorf("expected ticker ACME, got %v", entry["ticker"])
	}
	if entry["message"] != "fetched statements" {
		t.Errorf("unexpected message %v", entry["message"])
	}
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	log := bufferLogger(&buf)

	log.WithError(errors.New("connection refused")).Error("fetch failed")

	entry := parseEntry(t, &buf)
	if entry["error"] != "connection refused" {
		t.Errorf("expected error field, got %v", entry["error"])
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	log := bufferLogger(&buf)

	log.WithComponent("fetch").Info("ready")

	entry := parseEntry(t, &buf)
	if entry["component"] != "fetch" {
		t.Errorf("expected component fetch, got %v", entry["component"])
	}
}

func TestNewAndNop(t *testing.T) {
	for _, format := range []string{"json", "console", "pretty", "text"} {
		if New("info", format) == nil {
			t.Fatalf("New returned nil for format %q", format)
		}
	}

	// Nop swallows everything without panicking.
	nop := Nop()
	nop.Debug("dropped")
	nop.WithField("k", "v").Info("dropped")
}
