package xlog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xjournal/pkg/observability/xlog"
)

// testCleanup 在测试结束时执行 cleanup
func testCleanup(t *testing.T, cleanup func() error) {
	t.Helper()
	t.Cleanup(func() {
		if err := cleanup(); err != nil {
			t.Errorf("cleanup error: %v", err)
		}
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestLogger_BasicLogging(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().
		SetOutput(&buf).
		SetLevel(xlog.LevelDebug).
		Build()
	require.NoError(t, err)
	testCleanup(t, cleanup)

	ctx := context.Background()
	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	logger.Warn(ctx, "warn message")
	logger.Error(ctx, "error message", xlog.Err(errors.New("boom")))

	output := buf.String()
	for _, want := range []string{"debug message", "info message", "warn message", "error message", "error=boom"} {
		assert.Contains(t, output, want)
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().SetOutput(&buf).SetLevelString("warning").Build()
	require.NoError(t, err)
	testCleanup(t, cleanup)

	ctx := context.Background()
	logger.Info(ctx, "hidden")
	logger.Warn(ctx, "shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	assert.False(t, logger.Enabled(ctx, xlog.LevelInfo))
	logger.SetLevel(xlog.LevelDebug)
	assert.Equal(t, xlog.LevelDebug, logger.GetLevel())
	logger.Info(ctx, "now visible")
	assert.Contains(t, buf.String(), "now visible")
}

func TestLogger_WithSharesLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().SetOutput(&buf).SetFormat("json").Build()
	require.NoError(t, err)
	testCleanup(t, cleanup)

	child := logger.With(xlog.Component("xlogger"), xlog.Sink("json:/tmp/a.json"))
	child.Debug(context.Background(), "dropped")
	logger.SetLevel(xlog.LevelDebug)
	child.Debug(context.Background(), "kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, `"component":"xlogger"`)
	assert.Contains(t, out, `"sink":"json:/tmp/a.json"`)
}

func TestBuilder_FirstErrorWins(t *testing.T) {
	_, _, err := xlog.New().SetFormat("xml").SetLevelString("nope").Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")

	_, _, err = xlog.New().SetLevelString("verbose").Build()
	assert.Error(t, err)

	_, _, err = xlog.New().SetOutput(nil).Build()
	assert.Error(t, err)
}

func TestBuilder_Rotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diag", "xjournal.log")
	logger, cleanup, err := xlog.New().SetRotation(path).SetAttrs(slog.String("app", "xjournal")).Build()
	require.NoError(t, err)

	logger.Warn(context.Background(), "rotated output")
	require.NoError(t, cleanup())
	// cleanup 可重复调用
	require.NoError(t, cleanup())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "rotated output")
	assert.Contains(t, string(data), "app=xjournal")
}

func TestLogger_OnError(t *testing.T) {
	var got []error
	logger, cleanup, err := xlog.New().
		SetOutput(failingWriter{}).
		SetOnError(func(err error) { got = append(got, err) }).
		Build()
	require.NoError(t, err)
	testCleanup(t, cleanup)

	logger.Error(context.Background(), "lost")
	require.Len(t, got, 1)
	assert.Equal(t, uint64(1), xlog.ErrorCount(logger))
}

func TestLogger_OnErrorPanicIsolated(t *testing.T) {
	logger, cleanup, err := xlog.New().
		SetOutput(failingWriter{}).
		SetOnError(func(error) { panic("callback") }).
		Build()
	require.NoError(t, err)
	testCleanup(t, cleanup)

	assert.NotPanics(t, func() { logger.Error(context.Background(), "lost") })
	assert.Equal(t, uint64(2), xlog.ErrorCount(logger))
}

func TestParseLevel(t *testing.T) {
	tests := map[string]xlog.Level{
		"debug":   xlog.LevelDebug,
		" INFO ":  xlog.LevelInfo,
		"Warning": xlog.LevelWarn,
		"warn":    xlog.LevelWarn,
		"ERROR":   xlog.LevelError,
	}
	for in, want := range tests {
		got, err := xlog.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := xlog.ParseLevel("loud")
	assert.Error(t, err)
	assert.Equal(t, "WARN", xlog.LevelWarn.String())
	assert.Equal(t, "ERROR", xlog.LevelError.String())
}

func TestGlobal_DefaultAndSet(t *testing.T) {
	t.Cleanup(xlog.ResetDefault)

	require.NotNil(t, xlog.Default())

	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().SetOutput(&buf).Build()
	require.NoError(t, err)
	testCleanup(t, cleanup)

	xlog.SetDefault(logger)
	xlog.SetDefault(nil)
	xlog.Info(context.Background(), "global info")
	xlog.Warn(context.Background(), "global warn")
	assert.True(t, strings.Contains(buf.String(), "global info"))
	assert.Same(t, logger, xlog.OrDefault(nil))
}

func TestDiscard(t *testing.T) {
	l := xlog.Discard()
	assert.NotPanics(t, func() {
		l.Error(context.Background(), "nothing")
		l.With(xlog.Count(3)).Warn(context.Background(), "nothing")
	})
}
