package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLoggerIsNop(t *testing.T) {
	require.NotNil(t, Logger)
	// Must not panic before Initialize.
	Info("message before initialization")
	Warnw("structured message", "key", "value")
}

func TestInitializeConsole(t *testing.T) {
	err := Initialize(false)
	require.NoError(t, err)
	assert.False(t, JSONOutput)
	require.NotNil(t, Logger)
	Infof("console logger ready: %d", 1)
}

func TestInitializeJSON(t *testing.T) {
	err := Initialize(true)
	require.NoError(t, err)
	assert.True(t, JSONOutput)
	require.NotNil(t, Logger)
	Infow("json logger ready", "mode", "json")
}

func TestCleanupDoesNotPanic(t *testing.T) {
	require.NoError(t, Initialize(false))
	Cleanup()
}
