package manifest

import "encoding/json"

// Sections lists the dependency sections checked, in precedence order.
// When a package appears in more than one section of the same file, the
// first section here wins.
var Sections = []string{
	"dependencies",
	"devDependencies",
	"peerDependencies",
	"optionalDependencies",
}

// Declaration is one matched dependency entry: where it was found and the
// raw declared version string. The version is whatever the manifest says —
// possibly a range, a tag, or a url — never assumed to be semver.
type Declaration struct {
	Path    string
	Section string
	Version string
}

// Match scans one manifest's dependency sections for a key equal to pkg and
// returns the first declaration found, in section precedence order. Returns
// ok=false when no section contains the key, when the data is not valid
// JSON, or when the declared value is null, empty, or not a string — all of
// these mean "no evidence from this file", never an error.
func Match(data []byte, path, pkg string) (Declaration, bool) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return Declaration{}, false
	}

	for _, section := range Sections {
		raw, ok := doc[section]
		if !ok {
			continue
		}
		var deps map[string]any
		if err := json.Unmarshal(raw, &deps); err != nil {
			// Section exists but is not an object. Shape mismatch is a
			// per-section no-match, not a parse failure.
			continue
		}
		value, ok := deps[pkg]
		if !ok {
			continue
		}
		version, ok := value.(string)
		if !ok || version == "" {
			// Key present with null, empty, or non-string value: treated
			// as not found in this section.
			continue
		}
		return Declaration{Path: path, Section: section, Version: version}, true
	}
	return Declaration{}, false
}
