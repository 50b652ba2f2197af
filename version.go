package packscan

// VersionSatisfies reports whether a declared manifest version string pins
// the expected exact version. Exactly four declared forms satisfy:
//
//	V   ^V   ~V   >=V
//
// where V is the expected version. Everything else — a different version,
// a different range operator, "*", "latest", a git or url reference — is a
// mismatch. The comparison is pure string equality against the four
// templates, not semver range evaluation, so ">=6.2.0" does not satisfy an
// expected 6.2.2 even though it could resolve to it. An empty expected
// version never matches.
func VersionSatisfies(declared, expected string) bool {
	if expected == "" || declared == "" {
		return false
	}
	switch declared {
	case expected, "^" + expected, "~" + expected, ">=" + expected:
		return true
	}
	return false
}
