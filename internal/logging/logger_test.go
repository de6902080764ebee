package logging

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func newBufferLogger(t *testing.T) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelDebug)
	return slog.New(newConsoleHandler(io.Writer(&buf), levelVar)), &buf
}

func TestConsoleHandlerOutput(t *testing.T) {
	logger, buf := newBufferLogger(t)

	logger = NewComponentLogger(logger, "importer")
	logger.Info("archived file",
		String("dest", "photos/Pixel/2020/01/a.jpg"),
		String("camera", "unknown camera"),
		Int("size", 42))

	line := buf.String()
	if !strings.Contains(line, "INFO importer: archived file") {
		t.Fatalf("unexpected line: %q", line)
	}
	// Slash-only values need no quoting; values with spaces do.
	if !strings.Contains(line, "dest=photos/Pixel/2020/01/a.jpg") {
		t.Fatalf("missing dest attr: %q", line)
	}
	if !strings.Contains(line, `camera="unknown camera"`) {
		t.Fatalf("missing quoted attr: %q", line)
	}
	if !strings.Contains(line, "size=42") {
		t.Fatalf("missing int attr: %q", line)
	}
}

func TestConsoleHandlerErrorAttr(t *testing.T) {
	logger, buf := newBufferLogger(t)
	logger.Error("move failed", Error(errors.New("boom")))
	if !strings.Contains(buf.String(), "error=boom") {
		t.Fatalf("missing error attr: %q", buf.String())
	}
}

func TestWithContextAddsRunFields(t *testing.T) {
	logger, buf := newBufferLogger(t)

	ctx := WithRunID(context.Background(), "run-1")
	ctx = WithSource(ctx, "/intake/a.jpg")
	WithContext(ctx, logger).Info("processing")

	line := buf.String()
	if !strings.Contains(line, "run_id=run-1") {
		t.Fatalf("missing run_id: %q", line)
	}
	if !strings.Contains(line, "source=/intake/a.jpg") {
		t.Fatalf("missing source: %q", line)
	}
}

func TestWithContextNilLogger(t *testing.T) {
	logger := WithContext(context.Background(), nil)
	// Must not panic and must discard records.
	logger.Info("ignored")
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
		" info  ": slog.LevelInfo,
	}
	for input, want := range cases {
		if got := parseLevel(input); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}
