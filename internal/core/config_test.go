package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigAbsentFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Empty(t, cfg.StorePath)
	assert.Empty(t, cfg.Binary)
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	appDir := filepath.Join(dir, "sshcm")
	require.NoError(t, os.MkdirAll(appDir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(appDir, "sshcm.ini"),
		[]byte("store = /tmp/custom.connections\nbinary = mosh\n"), 0600))

	cfg, err := LoadConfig()
	require.NoError(t, err)

	if cfg.StorePath == "" {
		t.Skip("user config dir not honored on this platform")
	}

	assert.Equal(t, "/tmp/custom.connections", cfg.StorePath)
	assert.Equal(t, "mosh", cfg.Binary)
	assert.Equal(t, "/tmp/custom.connections", cfg.ResolveStorePath())
}
