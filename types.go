package packscan

import "time"

// Classification is the single outcome assigned to each target after a scan.
type Classification string

const (
	// ExactVersionMatch means a manifest declares the flagged version
	// (exactly, or via a ^, ~, or >= form of it).
	ExactVersionMatch Classification = "exact_version_match"

	// VersionMismatch means a manifest declares the package at some other
	// version or range.
	VersionMismatch Classification = "version_mismatch"

	// SourceOnlyMatch means no manifest declares the package but source
	// code references it — a possible transitive or undeclared dependency.
	SourceOnlyMatch Classification = "source_only_match"

	// NotFound means neither manifest nor source evidence exists.
	NotFound Classification = "not_found"
)

// Found reports whether the classification counts as a detection.
func (c Classification) Found() bool {
	return c != NotFound
}

// EvidenceKind distinguishes where a piece of evidence came from.
type EvidenceKind string

const (
	EvidenceManifest EvidenceKind = "manifest"
	EvidenceSource   EvidenceKind = "source"
)

// Evidence is one note supporting a finding: a manifest declaration or a
// source-code reference.
type Evidence struct {
	Kind   EvidenceKind `json:"kind"`
	Path   string       `json:"path,omitempty"`
	Detail string       `json:"detail"`
}

// Finding pairs a target with its classification and the evidence behind it.
// Every finding carries at least one evidence note.
type Finding struct {
	Target         TargetSpec     `json:"target"`
	Classification Classification `json:"classification"`
	Evidence       []Evidence     `json:"evidence"`
}

// ScanResult is the immutable outcome of one scan. Every configured target
// appears in exactly one of Found or NotFound, both in configured order.
type ScanResult struct {
	Repository   string       `json:"repository"`
	Timestamp    time.Time    `json:"timestamp"`
	TotalChecked int          `json:"total_checked"`
	Found        []Finding    `json:"found"`
	NotFound     []TargetSpec `json:"not_found"`
}

// ScanLimits bounds the cost of a scan regardless of repository size.
// The zero value of any field means "use the default".
type ScanLimits struct {
	// MaxManifests caps how many package.json files the locator returns.
	MaxManifests int

	// ManifestsPerTarget caps how many located manifests are inspected for
	// any one target. Trades completeness for bounded worst-case latency on
	// large monorepos.
	ManifestsPerTarget int

	// SourceFilesPerExt caps how many source files are inspected per
	// extension when looking for import/require references.
	SourceFilesPerExt int

	// FileTimeout bounds any single file read. On timeout the file simply
	// contributes no evidence.
	FileTimeout time.Duration

	// MaxFileSize skips files larger than this many bytes.
	MaxFileSize int64
}

// DefaultLimits returns the documented default bounds.
func DefaultLimits() ScanLimits {
	return ScanLimits{
		MaxManifests:       50,
		ManifestsPerTarget: 10,
		SourceFilesPerExt:  100,
		FileTimeout:        5 * time.Second,
		MaxFileSize:        4 << 20, // 4 MiB
	}
}

// withDefaults fills any zero field from DefaultLimits.
func (l ScanLimits) withDefaults() ScanLimits {
	d := DefaultLimits()
	if l.MaxManifests <= 0 {
		l.MaxManifests = d.MaxManifests
	}
	if l.ManifestsPerTarget <= 0 {
		l.ManifestsPerTarget = d.ManifestsPerTarget
	}
	if l.SourceFilesPerExt <= 0 {
		l.SourceFilesPerExt = d.SourceFilesPerExt
	}
	if l.FileTimeout <= 0 {
		l.FileTimeout = d.FileTimeout
	}
	if l.MaxFileSize <= 0 {
		l.MaxFileSize = d.MaxFileSize
	}
	return l
}
