package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{7, zerolog.TraceLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFor(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerTo(&buf, 1)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.WarnLevel) })

	logger := GetLogger("scaffold")
	logger.Info().Str("dest", "/tmp/x").Msg("copied")

	out := buf.String()
	assert.Contains(t, out, "copied")
	assert.Contains(t, out, "component=scaffold")
	assert.Contains(t, out, "dest=/tmp/x")
}

func TestWarnLevelSuppressesInfo(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerTo(&buf, 0)

	GetLogger("x").Info().Msg("hidden")
	assert.NotContains(t, buf.String(), "hidden")
}
