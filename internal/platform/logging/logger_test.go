package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"go.uber.org/zap/zapcore"
)

func newBufferLogger(level Level) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return New(level, zapcore.AddSync(buf)), buf
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{in: "debug", want: LevelDebug},
		{in: " WARN ", want: LevelWarn},
		{in: "warning", want: LevelWarn},
		{in: "error", want: LevelError},
		{in: "", want: LevelInfo},
		{in: "verbose", want: LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Fatalf("ParseLevel(%q)=%s want=%s", tt.in, got, tt.want)
		}
	}
}

func TestLogger_WritesKeyValueFields(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo)

	logger.Named("leagues").Error("fetch failed", "view", "leagues", "error", errors.New("boom"))

	var line map[string]any
	if err := sonic.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("unmarshal log line %q: %v", buf.String(), err)
	}
	if line["msg"] != "fetch failed" {
		t.Fatalf("unexpected msg: %v", line["msg"])
	}
	if line["logger"] != "leagues" {
		t.Fatalf("unexpected logger name: %v", line["logger"])
	}
	if line["view"] != "leagues" {
		t.Fatalf("unexpected view field: %v", line["view"])
	}
	if line["error"] != "boom" {
		t.Fatalf("unexpected error field: %v", line["error"])
	}
}

func TestLogger_RespectsLevel(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn)

	logger.InfoContext(context.Background(), "ignored")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered, got %q", buf.String())
	}

	logger.Warn("kept", "dangling")
	if !strings.Contains(buf.String(), `"dangling":null`) {
		t.Fatalf("expected dangling key to be logged with null value, got %q", buf.String())
	}
}

func TestLogger_NilReceiverFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.Info("no panic")
	if logger.Sync() != nil {
		t.Fatalf("expected nil sync error for nil logger")
	}
}
