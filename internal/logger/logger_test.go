package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestNewLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level    string
		expected zerolog.Level
	}{
		{level: "debug", expected: zerolog.DebugLevel},
		{level: "warn", expected: zerolog.WarnLevel},
		{level: "", expected: zerolog.InfoLevel},
		{level: "loud", expected: zerolog.InfoLevel},
	}

	for _, tc := range tests {
		log := New(&bytes.Buffer{}, tc.level)
		require.Equal(t, tc.expected, log.GetLevel(), "level %q", tc.level)
	}
}

func TestNewWritesJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(&buf, "info")

	log.Debug().Msg("hidden")
	require.Empty(t, buf.String())

	log.Info().Int("size", 3).Msg("done")
	require.Contains(t, buf.String(), `"size":3`)
	require.Contains(t, buf.String(), `"message":"done"`)
	require.Contains(t, buf.String(), `"time":`)
}
