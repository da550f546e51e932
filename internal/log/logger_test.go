package log

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"daybook/internal/trace"
)

func newBufferLogger(buf *bytes.Buffer, level slog.Level) *Logger {
	return New(Config{Level: level, Component: ComponentApp, Output: buf})
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelWarn,
		"":        slog.LevelWarn,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLogger_Component(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf, slog.LevelDebug).WithComponent(ComponentTasks)

	if logger.Component() != ComponentTasks {
		t.Errorf("Component() = %q", logger.Component())
	}

	logger.Info("task added", FieldTaskID, 3)
	out := buf.String()
	if !strings.Contains(out, "component=tasks") || !strings.Contains(out, "task_id=3") {
		t.Errorf("unexpected output %q", out)
	}
	if strings.Count(out, "component=") != 1 {
		t.Errorf("component should appear once, got %q", out)
	}
}

func TestLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf, slog.LevelWarn)

	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")

	out := buf.String()
	if strings.Contains(out, "msg=debug") || strings.Contains(out, "msg=info") {
		t.Errorf("records below warn should be dropped: %q", out)
	}
	if !strings.Contains(out, "msg=warn") || !strings.Contains(out, "msg=error") {
		t.Errorf("warn and error should be kept: %q", out)
	}
}

func TestLogger_WithKeepsComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf, slog.LevelInfo).WithComponent(ComponentAuth).With(FieldUsername, "alice")

	logger.InfoContext(context.Background(), "login")
	out := buf.String()
	if !strings.Contains(out, "component=auth") || !strings.Contains(out, "username=alice") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestLogger_SessionID(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf, slog.LevelInfo)

	ctx := trace.WithSessionID(context.Background(), "ses_abc")
	logger.WarnContext(ctx, "tagged")

	if !strings.Contains(buf.String(), "session_id=ses_abc") {
		t.Errorf("expected session id, got %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error("nothing to see")
	if logger.Component() != ComponentApp {
		t.Errorf("Component() = %q", logger.Component())
	}
}

func TestLogFields(t *testing.T) {
	err := errors.New("boom")
	fields := NewFields().
		WithOperation(OpComplete).
		WithUsername("alice").
		WithTaskID(2).
		WithError(err, ErrorTypeNotFound)

	got := map[string]any{}
	slice := fields.ToSlice()
	if len(slice)%2 != 0 {
		t.Fatalf("ToSlice should return key/value pairs, got %v", slice)
	}
	for i := 0; i < len(slice); i += 2 {
		got[slice[i].(string)] = slice[i+1]
	}

	want := map[string]any{
		FieldOperation: OpComplete,
		FieldUsername:  "alice",
		FieldTaskID:    2,
		FieldError:     "boom",
		FieldErrorType: ErrorTypeNotFound,
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("field %s = %v, want %v", k, got[k], v)
		}
	}
}
