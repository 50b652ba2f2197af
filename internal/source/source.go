// Package source performs lexical detection of package references in
// JavaScript and TypeScript files. Matching is regex-based, not AST-aware:
// presence of a reference is all the caller needs, not its meaning.
package source

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/jward/packscan/internal/fsio"
)

// Extensions lists the file extensions inspected for package references.
var Extensions = []string{".js", ".ts", ".jsx", ".tsx", ".mjs"}

// Options bounds a usage scan.
type Options struct {
	// FilesPerExt caps how many files are inspected per extension.
	FilesPerExt int

	// FileTimeout bounds each file read.
	FileTimeout time.Duration

	// MaxFileSize skips files larger than this many bytes.
	MaxFileSize int64

	// Logger receives debug notes for skipped files. Nil discards.
	Logger *slog.Logger
}

var skipDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
	"__pycache__":  true,
}

// referencePattern builds one regex covering the three reference forms for
// a package name:
//
//	require("name")      call style, optional internal whitespace
//	import ... from "name"
//	import("name")       dynamic import
//
// The name is quote-anchored so it must be the entire module specifier:
// matching "color" never matches require('color-convert'). QuoteMeta keeps
// names like color.js literal.
func referencePattern(pkg string) *regexp.Regexp {
	name := regexp.QuoteMeta(pkg)
	expr := fmt.Sprintf(
		`(?:require\s*\(\s*|import\s*\(\s*|import\b[^'";]*?\bfrom\s*)(?:"%s"|'%s')`,
		name, name,
	)
	return regexp.MustCompile(expr)
}

// UsageFound reports whether any source file under root references pkg via
// require, import-from, or dynamic import. Returns on the first match; a
// full enumeration is never needed. Unreadable, binary, oversized, or
// timed-out files are skipped. The walk ends once every extension's file
// budget is spent.
func UsageFound(ctx context.Context, root, pkg string, opts Options) bool {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	re := referencePattern(pkg)

	inspected := make(map[string]int, len(Extensions))
	wanted := make(map[string]bool, len(Extensions))
	for _, ext := range Extensions {
		wanted[ext] = true
	}

	found := false
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if ctx.Err() != nil {
			return filepath.SkipAll
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, ".") || skipDirs[name]) {
				return filepath.SkipDir
			}
			return nil
		}

		ext := filepath.Ext(d.Name())
		if !wanted[ext] {
			return nil
		}
		if opts.FilesPerExt > 0 && inspected[ext] >= opts.FilesPerExt {
			if budgetsExhausted(inspected, opts.FilesPerExt) {
				return filepath.SkipAll
			}
			return nil
		}
		inspected[ext]++

		data, err := fsio.ReadFile(ctx, path, opts.FileTimeout, opts.MaxFileSize)
		if err != nil {
			logger.Debug("skipping source file", "path", path, "reason", err)
			return nil
		}
		if fsio.IsBinary(data) {
			logger.Debug("skipping binary file", "path", path)
			return nil
		}
		if re.Match(data) {
			found = true
			return filepath.SkipAll
		}
		return nil
	})
	return found
}

func budgetsExhausted(inspected map[string]int, perExt int) bool {
	for _, ext := range Extensions {
		if inspected[ext] < perExt {
			return false
		}
	}
	return true
}
