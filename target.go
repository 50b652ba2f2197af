package packscan

import "strings"

// TargetSpec names one package/version pair to check for. Immutable.
type TargetSpec struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// String renders the spec back to its name@version form.
func (t TargetSpec) String() string {
	if t.Version == "" {
		return t.Name
	}
	return t.Name + "@" + t.Version
}

// ParseTarget splits a "name@version" spec into name and version. The split
// is on the LAST "@" so scoped names parse correctly:
//
//	@scope/pkg@1.0.0 → ("@scope/pkg", "1.0.0")
//
// A spec with no "@" (beyond a leading scope marker) yields an empty
// version. That target can still be found via source usage, but can never
// produce an exact-version match.
func ParseTarget(spec string) TargetSpec {
	i := strings.LastIndex(spec, "@")
	if i <= 0 {
		// No separator, or the "@" is the scope prefix itself.
		return TargetSpec{Name: spec}
	}
	return TargetSpec{Name: spec[:i], Version: spec[i+1:]}
}

// ParseTargets parses a list of specs, preserving order.
func ParseTargets(specs []string) []TargetSpec {
	targets := make([]TargetSpec, 0, len(specs))
	for _, s := range specs {
		targets = append(targets, ParseTarget(s))
	}
	return targets
}

// defaultTargetSpecs is the fixed audit list: the 18 packages (with the
// exact published versions) from the September 2025 npm registry
// compromise. Changing the list is a source edit, not a runtime option.
var defaultTargetSpecs = []string{
	"ansi-styles@6.2.2",
	"debug@4.4.2",
	"chalk@5.6.1",
	"supports-color@10.2.1",
	"strip-ansi@7.1.1",
	"ansi-regex@6.2.1",
	"wrap-ansi@9.0.1",
	"color-convert@3.1.1",
	"color-name@2.0.1",
	"is-arrayish@0.3.3",
	"slice-ansi@7.1.1",
	"color@5.0.1",
	"color-string@2.1.1",
	"simple-swizzle@0.2.3",
	"supports-hyperlinks@4.1.1",
	"has-ansi@6.0.1",
	"chalk-template@1.1.1",
	"backslash@0.2.1",
}

// DefaultTargets returns a fresh copy of the compiled-in audit list.
func DefaultTargets() []TargetSpec {
	return ParseTargets(defaultTargetSpecs)
}
