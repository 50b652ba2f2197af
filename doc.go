// Package packscan detects known-compromised npm packages in a source
// repository. Given a fixed list of name@version targets, it reports which
// are declared in manifest files or referenced from source code, and whether
// the exact flagged version is in use.
//
// # Pipeline
//
// A scan runs in three steps:
//
//  1. Locate: walk the repository once for package.json files, skipping
//     node_modules and other vendored trees, up to a configurable cap.
//
//  2. Match: for each target, check the located manifests' dependency
//     sections (dependencies, devDependencies, peerDependencies,
//     optionalDependencies — first match wins) and compare the declared
//     version against the target. Independently, scan JavaScript and
//     TypeScript sources for require/import references to the package name.
//
//  3. Classify: combine manifest and source evidence into exactly one of
//     ExactVersionMatch, VersionMismatch, SourceOnlyMatch, or NotFound per
//     target.
//
// # Usage
//
// Create an Engine and scan:
//
//	e := packscan.New(packscan.DefaultTargets())
//	result, err := e.Scan(ctx, "/path/to/repo")
//	if err != nil { ... }
//	for _, f := range result.Found {
//		fmt.Println(f.Target, f.Classification)
//	}
//
// # Matching semantics
//
// Version matching is deliberately conservative: a declared version
// satisfies a target only when it is string-equal to the exact version or
// to the caret, tilde, or >= prefixed form of it. Semantically-equivalent
// ranges written differently (for example ">=6.2.0" against target 6.2.2)
// are reported as VersionMismatch. Source matching is lexical: the package
// name must be the entire quoted module specifier, so scanning for "color"
// never matches require('color-convert').
//
// # Bounds
//
// Every traversal and file read is bounded by [ScanLimits]: manifest count,
// manifests inspected per target, source files per extension, per-file
// read timeout, and maximum file size. One corrupt, huge, or unreadable
// file never fails a scan; it simply contributes no evidence.
package packscan
