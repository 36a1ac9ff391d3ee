package chariot

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
)

func TestLoggerDefaultIsSilent(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled at every level")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	Logger().Warn("hello", "k", 1)
	if !bytes.Contains(buf.Bytes(), []byte("msg=hello k=1")) {
		t.Errorf("log output = %q", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore the silent logger")
	}
}
