package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Output: &buf})
	require.NoError(t, err)

	logger.Info("stage complete", "stage", "tokenize", "tokens", 42)
	logger.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "stage complete")
	assert.Contains(t, out, "stage=tokenize")
	assert.Contains(t, out, "tokens=42")
	assert.NotContains(t, out, "hidden")
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "JSON", Output: &buf})
	require.NoError(t, err)

	logger.Debug("blacklist loaded", "terms", 3)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &record))
	assert.Equal(t, "blacklist loaded", record["msg"])
	assert.Equal(t, float64(3), record["terms"])
	assert.Contains(t, record, "source", "debug level adds source locations")
}

func TestNewRejectsUnknown(t *testing.T) {
	_, err := New(Options{Format: "xml"})
	assert.Error(t, err)

	_, err = New(Options{Level: "trace"})
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"":        slog.LevelInfo,
		"INFO":    slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestNopDiscards(t *testing.T) {
	Nop().Error("nothing should happen")
}
