package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingCloser struct{}

func (failingCloser) Close() error { return errors.New("close failed") }

func TestNewLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "warn")

	logger.Info("info message")
	logger.Warn("warning message", slog.String("component", "test"))

	output := buf.String()
	assert.NotContains(t, output, "info message")
	assert.Contains(t, output, "warning message")
	assert.Contains(t, output, "component=test")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseLevel(tc.input))
		})
	}
}

func TestLogOperationSkipsZeroDuration(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "info")

	LogOperation(logger, "trips_loaded",
		slog.String("city", "chicago"),
		slog.Duration("duration", 0))

	output := buf.String()
	assert.Contains(t, output, "trips_loaded")
	assert.Contains(t, output, "city=chicago")
	assert.NotContains(t, output, "duration=")
}

func TestTimed(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "info")

	require.NoError(t, Timed(logger, "import", func() error { return nil }))
	assert.Contains(t, buf.String(), "msg=import")

	buf.Reset()
	err := Timed(logger, "import", func() error { return assert.AnError })
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, buf.String(), "import failed")
}

func TestNilLoggerIsSafe(t *testing.T) {
	assert.NotPanics(t, func() {
		LogError(nil, "x", assert.AnError)
		LogOperation(nil, "x")
	})
}

func TestSafeCloseWithLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "info")

	SafeCloseWithLogging(failingCloser{}, logger, "close_db")

	output := buf.String()
	assert.Contains(t, output, "failed to close resource")
	assert.Contains(t, output, "operation=close_db")
	assert.Contains(t, output, "close failed")
}

func TestHandleDeferredError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "info")

	var err error
	HandleDeferredError(&err, func() error { return errors.New("commit failed") }, logger, "commit")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "commit failed")

	original := errors.New("original")
	err = original
	HandleDeferredError(&err, func() error { return errors.New("later") }, logger, "commit")
	assert.Equal(t, original, err)
}
