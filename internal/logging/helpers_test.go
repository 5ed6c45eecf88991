package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestHelpersToleratesNilLogger(t *testing.T) {
	Debug(nil, "debug")
	Info(nil, "info")
	Warn(nil, "warn")
	Error(nil, "error", errors.New("boom"))
}

func TestErrorAttachesErrorField(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	Debug(logger, "stage", FieldCount, 2)
	Error(logger, "fetch failed", errors.New("boom"), FieldURL, "http://example.com")

	out := buf.String()
	if !strings.Contains(out, "count=2") {
		t.Fatalf("expected debug record with count, got %q", out)
	}
	if !strings.Contains(out, "error=boom") || !strings.Contains(out, "url=http://example.com") {
		t.Fatalf("expected error and url fields, got %q", out)
	}
}
