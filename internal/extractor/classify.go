package extractor

import (
	"regexp"
	"strings"
)

// knownExtensions is the allowlist of extensions a header must end with
// for the extension check to classify it as a path.
var knownExtensions = []string{
	".go", ".py", ".js", ".ts", ".html", ".css", ".txt", ".md",
	".yaml", ".yml", ".json", ".xml", ".sql", ".sh", ".rs", ".toml",
}

// conventionalDirs are top-level directory names commonly used in
// generated project layouts.
var conventionalDirs = []string{
	"src/", "lib/", "app/", "cmd/", "internal/", "pkg/",
	"components/", "utils/", "config/", "tests/",
}

// filenamePattern matches a bare "name.ext" token with no whitespace.
var filenamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_.-]*\.[a-zA-Z0-9]+$`)

// IsLikelyFilePath reports whether a header or label string looks like a
// file path rather than a free-text section title. The check is a
// short-circuit OR over independent heuristics; any single match wins.
// False positives are preferred over silently dropping real file paths.
func IsLikelyFilePath(text string) bool {
	if text == "" {
		return false
	}

	return hasPathSeparator(text) ||
		hasInteriorDot(text) ||
		hasKnownExtension(text) ||
		hasConventionalPrefix(text) ||
		matchesFilenamePattern(text)
}

func hasPathSeparator(text string) bool {
	return strings.ContainsAny(text, `/\`)
}

func hasInteriorDot(text string) bool {
	return strings.Contains(text, ".") &&
		!strings.HasPrefix(text, ".") &&
		!strings.HasSuffix(text, ".")
}

func hasKnownExtension(text string) bool {
	for _, ext := range knownExtensions {
		if strings.HasSuffix(text, ext) {
			return true
		}
	}
	return false
}

func hasConventionalPrefix(text string) bool {
	for _, dir := range conventionalDirs {
		if strings.HasPrefix(text, dir) {
			return true
		}
	}
	return false
}

func matchesFilenamePattern(text string) bool {
	return filenamePattern.MatchString(text)
}

// NormalizeContent canonicalizes line endings so the parsers only ever
// see a single newline terminator.
func NormalizeContent(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.ReplaceAll(content, "\r", "\n")
}
