package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap/zapcore"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		if err := jsoniter.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("decode log line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestNewJSON_FieldsAndLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSON(LevelInfo, WithOutput(zapcore.AddSync(&buf)), WithService("turf-matchmaking-api", "v1", "dev"))

	logger.Debug("dropped")
	logger.Named("anubis").Warn("introspection failed", "status", 503, "error", errors.New("upstream"))

	lines := decodeLines(t, &buf)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line above debug level, got %d", len(lines))
	}
	line := lines[0]
	want := map[string]any{
		"level":   "WARN",
		"msg":     "introspection failed",
		"logger":  "anubis",
		"service": "turf-matchmaking-api",
		"version": "v1",
		"env":     "dev",
		"error":   "upstream",
	}
	for k, v := range want {
		if line[k] != v {
			t.Fatalf("field %s: got %v want %v", k, line[k], v)
		}
	}
	if line["status"] != float64(503) {
		t.Fatalf("unexpected status field: %v", line["status"])
	}
	if caller, _ := line["caller"].(string); !strings.HasPrefix(caller, "logging/logger_test.go") {
		t.Fatalf("expected caller to point at the test, got %q", caller)
	}
}

func TestLogContext_AddsTraceFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSON(LevelDebug, WithOutput(zapcore.AddSync(&buf)))

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.InfoContext(ctx, "ranked", "operation", "find_best_match")
	logger.InfoContext(context.Background(), "no span")

	lines := decodeLines(t, &buf)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0]["trace_id"] != traceID.String() || lines[0]["span_id"] != spanID.String() {
		t.Fatalf("missing trace fields: %v", lines[0])
	}
	if _, ok := lines[1]["trace_id"]; ok {
		t.Fatalf("unexpected trace field without span: %v", lines[1])
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		" WARN ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"info":    LevelInfo,
		"verbose": LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *Logger
	l.Info("no panic")
	l.With("k", "v").Info("still fine")
	l.Named("x").Warn("fine")
	if err := l.Sync(); err != nil {
		t.Fatalf("sync nil logger: %v", err)
	}
}
