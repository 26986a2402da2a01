package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Domenick1991/farecast/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	log, err := New(config.LogConfig{Level: "debug", Encoding: "json", File: path, MaxSizeMB: 1})
	require.NoError(t, err)

	log.Info("quote served")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"quote served"`)
}

func TestNew_RejectsBadSettings(t *testing.T) {
	_, err := New(config.LogConfig{Level: "loud"})
	assert.Error(t, err)

	_, err = New(config.LogConfig{Encoding: "xml"})
	assert.Error(t, err)
}

func TestNew_Defaults(t *testing.T) {
	log, err := New(config.LogConfig{})
	require.NoError(t, err)
	assert.NotNil(t, log)
}
