package structured

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Defaults(t *testing.T) {
	logger, err := NewLogger(Options{})
	require.NoError(t, err)
	assert.Equal(t, "info", logger.entry.GetLevel().String())
}

func TestNewLogger_InvalidOptions(t *testing.T) {
	_, err := NewLogger(Options{Level: "loud"})
	assert.Error(t, err)

	_, err = NewLogger(Options{Format: "xml"})
	assert.Error(t, err)
}

func TestLogger_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(Options{Level: "debug", Format: "json", Output: &buf})
	require.NoError(t, err)

	logger.Warn("Failed to read groups", map[string]interface{}{
		"keyword":  "yazılım",
		"strategy": "raw",
	})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warning", entry["level"])
	assert.Equal(t, "Failed to read groups", entry["msg"])
	assert.Equal(t, "yazılım", entry["keyword"])
	assert.Equal(t, "raw", entry["strategy"])
}

func TestLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(Options{Level: "warn", Output: &buf})
	require.NoError(t, err)

	logger.Debug("hidden", nil)
	logger.Info("hidden", nil)
	logger.Error("shown", map[string]interface{}{"code": 500})

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "code=500")
}

func TestLogger_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	var buf bytes.Buffer
	logger, err := NewLogger(Options{Output: &buf, File: path})
	require.NoError(t, err)

	logger.Info("Server started", map[string]interface{}{"port": 8000})
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "Server started"))
	assert.Contains(t, buf.String(), "Server started")
}
