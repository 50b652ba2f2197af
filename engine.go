package packscan

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jward/packscan/internal/fsio"
	"github.com/jward/packscan/internal/manifest"
	"github.com/jward/packscan/internal/source"
)

// Engine orchestrates a scan: manifest discovery, per-target manifest and
// source matching, and classification. Targets are checked independently;
// the result follows configured target order, not discovery order.
type Engine struct {
	targets []TargetSpec
	limits  ScanLimits
	logger  *slog.Logger

	// useParallel enables the per-target worker pool.
	useParallel bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLimits overrides the default scan bounds. Zero fields keep defaults.
func WithLimits(limits ScanLimits) Option {
	return func(e *Engine) {
		e.limits = limits.withDefaults()
	}
}

// WithLogger sets the logger for scan warnings and per-file debug tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithParallel controls per-target parallel scanning. When true (default),
// targets are checked by a worker pool and results merged back into
// configured order. Set to false for serial scanning.
func WithParallel(parallel bool) Option {
	return func(e *Engine) {
		e.useParallel = parallel
	}
}

// New creates an Engine for the given target list. The list is treated as
// constant: the Engine never mutates it and copies it defensively.
func New(targets []TargetSpec, opts ...Option) *Engine {
	e := &Engine{
		targets:     append([]TargetSpec(nil), targets...),
		limits:      DefaultLimits(),
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		useParallel: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Targets returns a copy of the configured target list.
func (e *Engine) Targets() []TargetSpec {
	return append([]TargetSpec(nil), e.targets...)
}

// Scan checks every configured target under root and returns the
// classified result. The only errors are fatal preconditions, detected
// before any scanning work begins: a missing or unreadable root wraps
// [ErrInvalidRepository]. Per-file failures during the scan are absorbed
// and the scan always reports on every target.
func (e *Engine) Scan(ctx context.Context, root string) (*ScanResult, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidRepository, root, err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRepository, absRoot)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidRepository, absRoot)
	}
	if _, err := os.ReadDir(absRoot); err != nil {
		return nil, fmt.Errorf("%w: unreadable: %s", ErrInvalidRepository, absRoot)
	}

	manifests := manifest.Locate(absRoot, e.limits.MaxManifests)
	if len(manifests) == 0 {
		e.logger.Warn("no package.json manifests found", "repository", absRoot)
	} else {
		e.logger.Debug("located manifests", "count", len(manifests))
	}

	findings := e.checkTargets(ctx, absRoot, manifests)

	result := &ScanResult{
		Repository:   absRoot,
		Timestamp:    time.Now().UTC(),
		TotalChecked: len(e.targets),
	}
	for _, f := range findings {
		if f.Classification.Found() {
			result.Found = append(result.Found, f)
		} else {
			result.NotFound = append(result.NotFound, f.Target)
		}
	}
	return result, nil
}

// checkTargets produces one finding per target, in configured order.
func (e *Engine) checkTargets(ctx context.Context, root string, manifests []string) []Finding {
	if e.useParallel && len(e.targets) > 1 {
		return e.checkTargetsParallel(ctx, root, manifests)
	}
	findings := make([]Finding, len(e.targets))
	for i, t := range e.targets {
		findings[i] = e.checkTarget(ctx, root, manifests, t)
	}
	return findings
}

// checkTarget runs the per-target state machine: manifest evidence first
// (first file with a section match decides), then source evidence to
// corroborate or to upgrade an absent manifest match to SourceOnlyMatch.
func (e *Engine) checkTarget(ctx context.Context, root string, manifests []string, t TargetSpec) Finding {
	var decl *manifest.Declaration

	// A target without a version has nothing to compare against, so
	// manifest evidence can never classify it; only source usage can.
	if t.Version != "" {
		limit := len(manifests)
		if e.limits.ManifestsPerTarget > 0 && limit > e.limits.ManifestsPerTarget {
			limit = e.limits.ManifestsPerTarget
		}
		for _, path := range manifests[:limit] {
			data, err := fsio.ReadFile(ctx, path, e.limits.FileTimeout, e.limits.MaxFileSize)
			if err != nil {
				e.logger.Debug("skipping manifest", "path", path, "reason", err)
				continue
			}
			if d, ok := manifest.Match(data, path, t.Name); ok {
				decl = &d
				break
			}
		}
	}

	finding := Finding{Target: t}
	if decl != nil {
		if VersionSatisfies(decl.Version, t.Version) {
			finding.Classification = ExactVersionMatch
			finding.Evidence = append(finding.Evidence, Evidence{
				Kind:   EvidenceManifest,
				Path:   decl.Path,
				Detail: fmt.Sprintf("%s declares %q (flagged version)", decl.Section, decl.Version),
			})
		} else {
			finding.Classification = VersionMismatch
			finding.Evidence = append(finding.Evidence, Evidence{
				Kind:   EvidenceManifest,
				Path:   decl.Path,
				Detail: fmt.Sprintf("%s declares %q, flagged version is %q", decl.Section, decl.Version, t.Version),
			})
		}
	}

	used := source.UsageFound(ctx, root, t.Name, source.Options{
		FilesPerExt: e.limits.SourceFilesPerExt,
		FileTimeout: e.limits.FileTimeout,
		MaxFileSize: e.limits.MaxFileSize,
		Logger:      e.logger,
	})
	switch {
	case used && decl == nil:
		finding.Classification = SourceOnlyMatch
		finding.Evidence = append(finding.Evidence, Evidence{
			Kind:   EvidenceSource,
			Detail: "referenced from source code; possible transitive or undeclared dependency",
		})
	case used:
		finding.Evidence = append(finding.Evidence, Evidence{
			Kind:   EvidenceSource,
			Detail: "also referenced from source code",
		})
	case decl == nil:
		finding.Classification = NotFound
	}
	return finding
}
