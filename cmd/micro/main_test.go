package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	configPath, logPath = "", ""
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestTooManyArgs(t *testing.T) {
	assert.Error(t, execute(t, "a.txt", "b.txt"))
}

func TestMissingFileIsFatal(t *testing.T) {
	err := execute(t, filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBadConfigIsFatal(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "micro.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("tab_stop: 0\n"), 0o644))
	logFile := filepath.Join(dir, "micro.log")

	err := execute(t, "--config", cfg, "--log", logFile, "file.txt")
	assert.ErrorContains(t, err, "tab_stop")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "micro starting")
}
