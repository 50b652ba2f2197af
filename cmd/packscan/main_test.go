package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runScanCommand executes the scan subcommand against root, capturing
// stdout, and returns the captured output and the resulting exit code.
func runScanCommand(t *testing.T, args ...string) (string, int, error) {
	t.Helper()
	exitCode = 0

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	rootCmd.SetArgs(args)
	execErr := rootCmd.Execute()

	require.NoError(t, w.Close())
	os.Stdout = old
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out), exitCode, execErr
}

func TestScanCommand_FoundExitsZero(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "package.json"),
		[]byte(`{"dependencies": {"chalk": "5.6.1"}}`), 0o644))

	out, code, err := runScanCommand(t, "scan", root, "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "chalk@5.6.1")
}

func TestScanCommand_NothingFoundExitsOne(t *testing.T) {
	_, code, err := runScanCommand(t, "scan", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 1, code)
}

func TestScanCommand_InvalidPathFails(t *testing.T) {
	_, _, err := runScanCommand(t, "scan", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestScanCommand_RejectsUnknownFormat(t *testing.T) {
	_, _, err := runScanCommand(t, "scan", t.TempDir(), "--format", "xml")
	require.Error(t, err)
}
