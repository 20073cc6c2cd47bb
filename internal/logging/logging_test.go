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

	"github.com/abhisek/stemlab/internal/config"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stemlab.log")
	logger, closeFn, err := New(config.Config{LogFile: path, LogLevel: "warn"})
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept", "lesson", "3")
	require.NoError(t, closeFn())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "dropped")
	assert.Contains(t, string(raw), `"msg":"kept"`)
	assert.Contains(t, string(raw), `"lesson":"3"`)
}

func TestNew_NoFileDiscards(t *testing.T) {
	logger, closeFn, err := New(config.Config{LogLevel: "info"})
	require.NoError(t, err)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
	assert.NoError(t, closeFn())
}

func TestNew_BadLevel(t *testing.T) {
	_, _, err := New(config.Config{LogLevel: "loud"})
	assert.Error(t, err)
}

func TestContext(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, slog.LevelInfo)

	ctx := WithLogger(context.Background(), logger)
	FromContext(ctx).Info("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	// A context without a logger never panics.
	FromContext(context.Background()).Info("nowhere")
	assert.NotContains(t, buf.String(), "nowhere")
}
