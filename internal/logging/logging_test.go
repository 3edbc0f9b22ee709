package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/nsfs/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelWarn,
		"bogus": slog.LevelWarn,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := New(config.Log{Level: "info", Format: "text"}, &buf)

	logger.Debug("hidden")
	logger.Info("shown", "cmd", "ls")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `msg=shown cmd=ls`)
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(config.Log{Level: "debug", Format: "json"}, &buf)

	logger.Debug("created entry", "name", "a")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "created entry", rec["msg"])
	assert.Equal(t, "a", rec["name"])
	assert.Equal(t, "DEBUG", rec["level"])
}

func TestNew_DefaultsToWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := New(config.Log{}, &buf)

	logger.Info("quiet")
	logger.Warn("loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	require.NotNil(t, logger)
	assert.False(t, logger.Enabled(t.Context(), slog.LevelError))
}
