package extractor

import "regexp"

// Patterns are compiled once at package scope; the scanner itself holds
// only per-run mutable state.
var (
	// headerPattern matches a markdown level-2 header carrying a
	// filename or section label.
	headerPattern = regexp.MustCompile(`^## (.+)`)

	// fencePattern matches any fence line; group 1 is the language tag
	// (empty for a bare closing fence).
	fencePattern = regexp.MustCompile("^```(.*)$")
)
