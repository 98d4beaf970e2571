package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	ConfigureDebug(dir)
	t.Cleanup(func() { ConfigureDebug("") })

	names := []string{
		"debug-20240101-000000.log",
		"debug-20240102-000000.log",
		"debug-20240103-000000.log",
		"debug-20240104-000000.log",
		"notes.txt",
	}
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("x"), 0o644))
	}

	CleanupLogs(2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var left []string
	for _, e := range entries {
		left = append(left, e.Name())
	}
	assert.NotContains(t, left, "debug-20240101-000000.log")
	assert.NotContains(t, left, "debug-20240102-000000.log")
	assert.Contains(t, left, "debug-20240103-000000.log")
	assert.Contains(t, left, "debug-20240104-000000.log")
	assert.Contains(t, left, "notes.txt")
}

func TestCleanupLogs_Disabled(t *testing.T) {
	dir := t.TempDir()
	ConfigureDebug(dir)
	t.Cleanup(func() { ConfigureDebug("") })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "debug-20240101-000000.log"), nil, 0o644))
	CleanupLogs(0)

	_, err := os.Stat(filepath.Join(dir, "debug-20240101-000000.log"))
	assert.NoError(t, err)
}

func TestDebug_WritesToConfiguredDir(t *testing.T) {
	dir := t.TempDir()
	ConfigureDebug(dir)
	t.Cleanup(func() { ConfigureDebug("") })

	Debug("resolved %d windows", 3)

	// The file is opened once per process; when an earlier test already
	// opened it elsewhere there is nothing to check here.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "debug-") {
			data, err := os.ReadFile(filepath.Join(dir, e.Name()))
			require.NoError(t, err)
			assert.Contains(t, string(data), "resolved 3 windows")
		}
	}
}
