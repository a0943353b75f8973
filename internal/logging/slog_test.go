package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels_WriteExpectedOutput(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()

	tests := []struct {
		level string
		msg   string
		key   string
		val   string
	}{
		{"DEBUG", "dbg", "a", "1"},
		{"INFO", "inf", "b", "2"},
		{"WARN", "wrn", "c", "3"},
		{"ERROR", "err", "d", "4"},
	}

	for _, tc := range tests {
		assert.Contains(t, out, "level="+tc.level)
		assert.Contains(t, out, "msg="+tc.msg)
		assert.Contains(t, out, tc.key+"="+tc.val)
	}
}

func TestSlogLogger_With_AddsAttributes(t *testing.T) {
	log, buf := newTestLogger(t)

	log.With("request_id", "123", "path", "/login").Info(context.Background(), "hello", "k", "v")

	out := buf.String()
	for _, s := range []string{"level=INFO", "msg=hello", "request_id=123", "path=/login", "k=v"} {
		assert.Contains(t, out, s)
	}
}

func TestNew_SelectsFormatAndLevel(t *testing.T) {
	ctx := context.Background()

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New(FormatJSON, "debug", &buf)
		require.NoError(t, err)
		l.Debug(ctx, "traced", "status", 200)
		assert.Contains(t, buf.String(), `"msg":"traced"`)
		assert.Contains(t, buf.String(), `"status":200`)
	})

	t.Run("text filters below level", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New(FormatText, "warn", &buf)
		require.NoError(t, err)
		l.Info(ctx, "hidden")
		l.Warn(ctx, "shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("console", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New(FormatConsole, "info", &buf)
		require.NoError(t, err)
		l.With("user", "alice").Info(ctx, "logged in", "points", 100)
		out := buf.String()
		assert.Contains(t, out, "logged in")
		assert.Contains(t, out, "user=alice")
		assert.Contains(t, out, "points=100")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := New("xml", "info", &bytes.Buffer{})
		require.Error(t, err)
	})

	t.Run("unknown level", func(t *testing.T) {
		_, err := New(FormatText, "loud", &bytes.Buffer{})
		require.Error(t, err)
	})
}

func TestDiscard_DoesNotPanic(t *testing.T) {
	l := Discard()
	ctx := context.TODO()
	l.Debug(ctx, "x")
	l.With("a", 1).Error(ctx, "y")
}

func TestConsoleLogger_DebugSuppressedAtInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLogger(&buf, slog.LevelInfo)
	l.Debug(context.Background(), "noise")
	require.False(t, strings.Contains(buf.String(), "noise"))
}
