package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jward/packscan"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "packscan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadLimits_EmptyPathReturnsDefaults(t *testing.T) {
	limits, err := LoadLimits("")
	require.NoError(t, err)
	assert.Equal(t, packscan.DefaultLimits(), limits)
}

func TestLoadLimits_OverridesFields(t *testing.T) {
	path := writeConfig(t, `
limits:
  max_manifests: 5
  manifests_per_target: 2
  source_files_per_ext: 10
  file_timeout: 250ms
  max_file_size: 1024
`)
	limits, err := LoadLimits(path)
	require.NoError(t, err)
	assert.Equal(t, 5, limits.MaxManifests)
	assert.Equal(t, 2, limits.ManifestsPerTarget)
	assert.Equal(t, 10, limits.SourceFilesPerExt)
	assert.Equal(t, 250*time.Millisecond, limits.FileTimeout)
	assert.Equal(t, int64(1024), limits.MaxFileSize)
}

func TestLoadLimits_OmittedFieldsKeepDefaults(t *testing.T) {
	path := writeConfig(t, `
limits:
  max_manifests: 7
`)
	limits, err := LoadLimits(path)
	require.NoError(t, err)

	defaults := packscan.DefaultLimits()
	assert.Equal(t, 7, limits.MaxManifests)
	assert.Equal(t, defaults.ManifestsPerTarget, limits.ManifestsPerTarget)
	assert.Equal(t, defaults.SourceFilesPerExt, limits.SourceFilesPerExt)
	assert.Equal(t, defaults.FileTimeout, limits.FileTimeout)
	assert.Equal(t, defaults.MaxFileSize, limits.MaxFileSize)
}

func TestLoadLimits_MissingFile(t *testing.T) {
	_, err := LoadLimits(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadLimits_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "limits: [not: a: map")
	_, err := LoadLimits(path)
	require.Error(t, err)
}

func TestLoadLimits_InvalidDuration(t *testing.T) {
	path := writeConfig(t, `
limits:
  file_timeout: soon
`)
	_, err := LoadLimits(path)
	require.Error(t, err)
}
