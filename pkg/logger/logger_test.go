package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.log")

	log, err := New(path, "info")
	require.NoError(t, err)

	log.Info("schedule created for jam=%d", 7)
	log.Debug("hidden at info level")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "schedule created for jam=7")
	assert.NotContains(t, string(data), "hidden at info level")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("", "loud")
	assert.Error(t, err)
}

func TestNewFileOnly(t *testing.T) {
	log, err := NewFileOnly("", "info")
	require.NoError(t, err)
	log.Info("dropped")
	assert.NoError(t, log.Close())

	path := filepath.Join(t.TempDir(), "jamgrid.log")
	log, err = NewFileOnly(path, "debug")
	require.NoError(t, err)
	log.Debug("grid loaded for %s", "20261016")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "grid loaded for 20261016")
}
