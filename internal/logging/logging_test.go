package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextHandler_AddsContextAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, slog.LevelInfo)

	ctx := WithAttrs(context.Background(), slog.String("command", "set log"))
	ctx = WithAttrs(ctx, slog.String("day", "A"))
	logger.InfoContext(ctx, "logged")

	out := buf.String()
	assert.Contains(t, out, "msg=logged")
	assert.Contains(t, out, `command="set log"`)
	assert.Contains(t, out, "day=A")
}

func TestWithAttrs_DoesNotLeakBetweenSiblings(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, slog.LevelInfo)

	parent := WithAttrs(context.Background(), slog.String("command", "today"))
	_ = WithAttrs(parent, slog.String("exercise", "Bench"))
	logger.InfoContext(parent, "parent")

	assert.NotContains(t, buf.String(), "exercise")
}

func TestNewWriterLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, slog.LevelWarn)

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_WritesRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "repcoach.log")
	logger, closer := New(Options{Path: path, Level: slog.LevelInfo})
	logger.Info("hello", "k", "v")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hello k=v")
}

func TestNew_EmptyPathDiscards(t *testing.T) {
	logger, closer := New(Options{})
	logger.Error("nowhere")
	assert.NoError(t, closer.Close())
}
