package packscan

import "errors"

// Sentinel errors for fatal scan preconditions. Both abort a scan before
// any traversal begins and are the only errors Scan returns; every per-file
// failure during a scan is absorbed into "no evidence from this file".
// Use with errors.Is.
var (
	// ErrInvalidRepository indicates the root path is missing, not a
	// directory, or unreadable.
	ErrInvalidRepository = errors.New("invalid repository path")

	// ErrMissingCapability indicates a required parsing capability is
	// unavailable. JSON decoding is the standard library in this
	// implementation, so no current code path raises it; the sentinel is
	// kept so callers mapping errors to exit codes cover the full taxonomy.
	ErrMissingCapability = errors.New("missing required capability")
)
