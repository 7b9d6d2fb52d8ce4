package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer

	config := Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: "test",
		AddSource:   false,
	}

	InitLoggerWithWriter(config, &buf)

	Info("test message", "key", "value", "number", 42)

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}

	if logEntry["service"] != "test-service" {
		t.Errorf("Expected service=test-service, got %v", logEntry["service"])
	}
	if logEntry["version"] != "1.0.0" {
		t.Errorf("Expected version=1.0.0, got %v", logEntry["version"])
	}
	if logEntry["environment"] != "test" {
		t.Errorf("Expected environment=test, got %v", logEntry["environment"])
	}
	if logEntry["msg"] != "test message" {
		t.Errorf("Expected msg='test message', got %v", logEntry["msg"])
	}
	if logEntry["level"] != "INFO" {
		t.Errorf("Expected level=INFO, got %v", logEntry["level"])
	}
	if logEntry["key"] != "value" {
		t.Errorf("Expected key=value, got %v", logEntry["key"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	config := DefaultConfig()
	config.Level = "warn"
	InitLoggerWithWriter(config, &buf)

	Info("should be filtered")
	Warn("should appear")

	out := buf.String()
	if strings.Contains(out, "should be filtered") {
		t.Error("info message was not filtered at warn level")
	}
	if !strings.Contains(out, "should appear") {
		t.Error("warn message missing from output")
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()

	if _, ok := RequestIDFromContext(ctx); ok {
		t.Error("expected no request ID on a fresh context")
	}

	id := GenerateRequestID()
	if id == "" {
		t.Fatal("expected a non-empty request ID")
	}

	ctx = WithRequestID(ctx, id)
	got, ok := RequestIDFromContext(ctx)
	if !ok || got != id {
		t.Errorf("expected request ID %q, got %q (ok=%v)", id, got, ok)
	}
}

func TestFromContextIncludesRequestID(t *testing.T) {
	var buf bytes.Buffer

	config := DefaultConfig()
	config.Format = "json"
	InitLoggerWithWriter(config, &buf)

	ctx := WithRequestID(context.Background(), "req-123")
	FromContext(ctx).Info("hello")

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	if logEntry["request_id"] != "req-123" {
		t.Errorf("Expected request_id=req-123, got %v", logEntry["request_id"])
	}
}
