package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "debug", Output: &buf})

	log.Debug().Str("gate", "H").Msg("applied")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "H", entry["gate"])
	assert.Equal(t, "applied", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "warn", Output: &buf})

	log.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestNewDefaultsToInfo(t *testing.T) {
	for _, level := range []string{"", "verbose"} {
		var buf bytes.Buffer
		log := New(Config{Level: level, Output: &buf})

		log.Debug().Msg("dropped")
		log.Info().Msg("kept")
		assert.NotContains(t, buf.String(), "dropped")
		assert.Contains(t, buf.String(), "kept")
	}
}

func TestNewPretty(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info", Pretty: true, Output: &buf})

	log.Info().Str("outcome", "01").Msg("measured")
	assert.Contains(t, buf.String(), "measured")
	assert.Contains(t, buf.String(), "outcome=01")
}
