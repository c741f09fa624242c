package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThomasCrouzet/simdedupe/internal/config"
)

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(config.LogConfig{Level: "debug", Format: "json"}, &buf)
	require.NoError(t, err)

	log.Debug().Str("udid", "AAAA").Msg("resolved creation time")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "AAAA", entry["udid"])
	assert.Equal(t, "resolved creation time", entry["message"])
}

func TestNewLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(config.LogConfig{Level: "WARN", Format: "json"}, &buf)
	require.NoError(t, err)

	log.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	log.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(config.LogConfig{Level: "info"}, &buf)
	require.NoError(t, err)

	log.Info().Str("udid", "BBBB").Msg("deleted")
	assert.Contains(t, buf.String(), "deleted")
	assert.Contains(t, buf.String(), "udid=BBBB")
	assert.NotContains(t, buf.String(), "\x1b[", "non-terminal output must not be colored")
}

func TestNewDefaultsToWarn(t *testing.T) {
	log, err := NewWithWriter(config.LogConfig{}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := NewWithWriter(config.LogConfig{Level: "loud"}, &bytes.Buffer{})
	assert.Error(t, err)
}
