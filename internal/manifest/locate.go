// Package manifest locates npm manifest files and matches declared
// dependencies against package names.
package manifest

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// skipDirs names directories excluded from traversal. node_modules is the
// load-bearing exclusion: scanning installed trees would both explode cost
// and report correctly-installed copies of packages the repository never
// asked for. The rest are the conventional noise directories.
var skipDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
	"__pycache__":  true,
}

// Locate walks root and returns paths of files named exactly package.json,
// in lexical order, capped at max results. Hidden directories and skipDirs
// are not descended into. Unreadable subtrees are skipped, not fatal; an
// empty result is a normal condition, not an error. The caller is expected
// to have validated root as a readable directory.
func Locate(root string, max int) []string {
	var paths []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, ".") || skipDirs[name]) {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() == "package.json" {
			paths = append(paths, path)
			if max > 0 && len(paths) >= max {
				return filepath.SkipAll
			}
		}
		return nil
	})

	// WalkDir visits entries in lexical order already; sorting keeps the
	// contract explicit and stable across repeated runs.
	sort.Strings(paths)
	return paths
}
