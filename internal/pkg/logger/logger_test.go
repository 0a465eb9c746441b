package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	log, err := New("verbose")
	require.NoError(t, err)

	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestNewWithOutput_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "explorer.log")

	log, err := NewWithOutput("debug", path)
	require.NoError(t, err)

	log.Debug("category selected")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"category selected"`)
	assert.Contains(t, string(data), `"timestamp"`)
}
