package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoggerConfig_ConsoleOnStderr(t *testing.T) {
	zc, err := loggerConfig("warn")
	require.NoError(t, err)
	assert.Equal(t, "console", zc.Encoding)
	assert.Equal(t, []string{"stderr"}, zc.OutputPaths)
	assert.Equal(t, zapcore.WarnLevel, zc.Level.Level())
	assert.Nil(t, zc.Sampling)

	_, err = loggerConfig("loud")
	assert.Error(t, err)
}
