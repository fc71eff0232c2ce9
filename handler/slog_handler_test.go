package handler

import (
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestSlogHandler_Enabled(t *testing.T) {
	sh := NewSlogHandler(NewRouter(RouterConfig{Output: &fakeStream{}}), slog.LevelInfo)

	if sh.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Debug should not be enabled when level is Info")
	}
	if !sh.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Info should be enabled when level is Info")
	}
	if !sh.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("Warn should be enabled when level is Info")
	}
	if !sh.Enabled(context.Background(), slog.LevelError) {
		t.Error("Error should be enabled when level is Info")
	}
}

func TestSlogHandler_Handle(t *testing.T) {
	out := &fakeStream{}
	sh := NewSlogHandler(NewRouter(RouterConfig{Output: out, ErrorOutput: &fakeStream{}}), slog.LevelDebug)
	logger := slog.New(sh)

	logger.Info("test message", "key", "value", "count", 42)

	output := out.String()
	if output != "test message key=value count=42\n" {
		t.Errorf("unexpected output: %q", output)
	}
}

func TestSlogHandler_ErrorRouting(t *testing.T) {
	out, errOut := &fakeStream{}, &fakeStream{}
	logger := slog.New(NewSlogHandler(NewRouter(RouterConfig{Output: out, ErrorOutput: errOut}), nil))

	logger.Warn("careful")
	logger.Error("broken", "code", 7)

	if !strings.Contains(out.String(), "careful") {
		t.Errorf("Expected warning on output stream, got: %q", out.String())
	}
	if errOut.String() != "broken code=7\n" {
		t.Errorf("Expected error on error stream, got: %q", errOut.String())
	}
}

func TestSlogHandler_WithAttrs(t *testing.T) {
	out := &fakeStream{}
	sh := NewSlogHandler(NewRouter(RouterConfig{Output: out}), slog.LevelDebug)
	logger := slog.New(sh).With("request_id", "req-123")

	logger.Info("test message")

	if !strings.Contains(out.String(), "request_id=req-123") {
		t.Errorf("Expected 'request_id=req-123' in output, got: %s", out.String())
	}
}

func TestSlogHandler_WithGroup(t *testing.T) {
	out := &fakeStream{}
	sh := NewSlogHandler(NewRouter(RouterConfig{Output: out}), slog.LevelDebug)
	logger := slog.New(sh).WithGroup("job").With("id", 3)

	logger.Info("started", slog.Group("io", slog.Int("depth", 8)))

	output := out.String()
	if !strings.Contains(output, "job.id=3") {
		t.Errorf("Expected 'job.id=3' in output, got: %s", output)
	}
	if !strings.Contains(output, "job.io.depth=8") {
		t.Errorf("Expected 'job.io.depth=8' in output, got: %s", output)
	}
}
