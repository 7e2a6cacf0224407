package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dilemma-sim/config"
)

func TestNewBuildsConsoleAndJSONLoggers(t *testing.T) {
	for _, format := range []string{"console", "json"} {
		logger, err := New(config.LoggerConfig{Level: "debug", Format: format})
		require.NoError(t, err, "format %q", format)
		assert.NotNil(t, logger)
	}
}

func TestNewRejectsInvalidLevel(t *testing.T) {
	_, err := New(config.LoggerConfig{Level: "chatty", Format: "console"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}
