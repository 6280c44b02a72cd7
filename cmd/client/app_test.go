package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/habittracker/internal/client/config"
)

func TestNewApp_FileBackend(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.EnvTokenBackend, "file")
	t.Setenv(config.EnvPassphrase, "correct horse")
	t.Setenv(config.EnvLogLevel, "info")

	a, err := newApp(context.Background(), appOptions{
		envFile: filepath.Join(dir, "missing.env"),
		server:  "http://127.0.0.1:1",
		dataDir: dir,
	})
	require.NoError(t, err)
	require.NotNil(t, a.cli)

	require.NoError(t, a.Close())

	for _, name := range []string{"habittracker.db", "history.db"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestNewApp_InvalidServer(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.EnvTokenBackend, "file")

	_, err := newApp(context.Background(), appOptions{
		envFile: filepath.Join(dir, "missing.env"),
		server:  "not a url",
		dataDir: dir,
	})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
