package packscan

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scanDefaults runs a full scan of root with the compiled-in target list.
func scanDefaults(t *testing.T, root string) *ScanResult {
	t.Helper()
	result, err := New(DefaultTargets()).Scan(context.Background(), root)
	require.NoError(t, err)
	return result
}

func findingFor(t *testing.T, result *ScanResult, name string) Finding {
	t.Helper()
	for _, f := range result.Found {
		if f.Target.Name == name {
			return f
		}
	}
	t.Fatalf("no finding for %s", name)
	return Finding{}
}

// TestIntegration_DeclaredExactVersion: a repo declaring the flagged chalk
// version is reported as an exact match.
func TestIntegration_DeclaredExactVersion(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package.json"), `{
		"name": "demo-app",
		"version": "1.0.0",
		"dependencies": {
			"chalk": "5.6.1",
			"express": "^4.18.0"
		}
	}`)

	result := scanDefaults(t, root)
	f := findingFor(t, result, "chalk")
	assert.Equal(t, ExactVersionMatch, f.Classification)
	assert.Len(t, result.Found, 1)
	assert.Len(t, result.NotFound, 17)
}

// TestIntegration_DeclaredDifferentRange: a caret range below the flagged
// version is still a detection, classified as a mismatch.
func TestIntegration_DeclaredDifferentRange(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package.json"),
		`{"dependencies": {"chalk": "^5.0.0"}}`)

	result := scanDefaults(t, root)
	f := findingFor(t, result, "chalk")
	assert.Equal(t, VersionMismatch, f.Classification)
	require.NotEmpty(t, f.Evidence)
	assert.Contains(t, f.Evidence[0].Detail, "^5.0.0")
}

// TestIntegration_SourceReferenceWithoutManifest: a repo with no manifest
// but an import of a flagged package is a source-only match.
func TestIntegration_SourceReferenceWithoutManifest(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "strip.ts"),
		`import ansiRegex from 'ansi-regex';

export function strip(s: string): string {
	return s.replace(ansiRegex(), '');
}
`)

	result := scanDefaults(t, root)
	f := findingFor(t, result, "ansi-regex")
	assert.Equal(t, SourceOnlyMatch, f.Classification)
	assert.Len(t, result.Found, 1)
}

// TestIntegration_EmptyRepository: nothing to find, every target lands in
// NotFound.
func TestIntegration_EmptyRepository(t *testing.T) {
	result := scanDefaults(t, t.TempDir())
	assert.Empty(t, result.Found)
	assert.Len(t, result.NotFound, 18)
	assert.Equal(t, 18, result.TotalChecked)
}

// TestIntegration_Idempotent: scanning an unmodified repository twice
// yields identical classification sets (timestamps aside).
func TestIntegration_Idempotent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package.json"),
		`{"dependencies": {"debug": "4.4.2"}, "devDependencies": {"color-name": "^2.0.0"}}`)
	writeFile(t, filepath.Join(root, "index.js"), `const wrap = require("wrap-ansi");`)

	first := scanDefaults(t, root)
	second := scanDefaults(t, root)

	assert.Equal(t, first.Found, second.Found)
	assert.Equal(t, first.NotFound, second.NotFound)
	assert.Equal(t, first.Repository, second.Repository)
}

// TestIntegration_MixedRepository exercises all four classifications in
// one scan.
func TestIntegration_MixedRepository(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package.json"), `{
		"dependencies": {"chalk": "5.6.1"},
		"devDependencies": {"debug": "^4.0.0"}
	}`)
	writeFile(t, filepath.Join(root, "lib", "color.js"), `const stripAnsi = require('strip-ansi');`)
	// A flagged name inside node_modules must contribute nothing.
	writeFile(t, filepath.Join(root, "node_modules", "color", "package.json"),
		`{"name": "color", "version": "5.0.1"}`)

	result := scanDefaults(t, root)

	assert.Equal(t, ExactVersionMatch, findingFor(t, result, "chalk").Classification)
	assert.Equal(t, VersionMismatch, findingFor(t, result, "debug").Classification)
	assert.Equal(t, SourceOnlyMatch, findingFor(t, result, "strip-ansi").Classification)
	assert.Len(t, result.Found, 3)

	for _, target := range result.NotFound {
		assert.NotEqual(t, "chalk", target.Name)
	}
}
