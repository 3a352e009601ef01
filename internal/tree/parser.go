package tree

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/tildaslashalef/codenest/internal/loggy"
	"github.com/tildaslashalef/codenest/internal/ulid"
)

// Patterns for the different structure elements, compiled once at
// package scope.
var (
	// treeLinePattern matches a branch entry: indentation/pipes, a
	// branch glyph, then the entry text.
	treeLinePattern = regexp.MustCompile(`^[\s│]*[├└]──\s*(.+)$`)

	// continuationPattern matches a pipe-only spacer line.
	continuationPattern = regexp.MustCompile(`^[\s│]*│\s*$`)

	// rootFolderPattern matches a structure root such as "my-project/".
	rootFolderPattern = regexp.MustCompile(`^([^/\s]+)/$`)

	// fenceOpenPattern and fenceClosePattern detect a markdown fence
	// wrapping the listing.
	fenceOpenPattern  = regexp.MustCompile("^```\\s*(\\w+)?")
	fenceClosePattern = regexp.MustCompile("^```\\s*$")

	// commentPattern strips trailing inline comments from entry names.
	commentPattern = regexp.MustCompile(`\s*#.*$`)

	// prefixPattern captures the leading whitespace/pipe run used for
	// depth computation.
	prefixPattern = regexp.MustCompile(`^[\s│]*`)
)

// Parser finds and parses tree structures in free-form text
type Parser struct {
	logger *loggy.Logger
}

// New creates a new tree structure Parser
func New(logger *loggy.Logger) *Parser {
	return &Parser{
		logger: logger,
	}
}

// Parse returns the first tree structure found in the text, or false
// when the text contains none. A listing truncated by end of input is
// still returned with whatever entries accumulated.
func (p *Parser) Parse(text string) (*Structure, bool) {
	structures := p.parse(text, true)
	if len(structures) == 0 {
		return nil, false
	}
	return &structures[0], true
}

// ParseAll returns every tree structure found in the text, in document
// order. The scanner resets between structures, so listings separated by
// prose are each returned on their own.
func (p *Parser) ParseAll(text string) []Structure {
	return p.parse(text, false)
}

func (p *Parser) parse(text string, firstOnly bool) []Structure {
	lines := strings.Split(normalize(text), "\n")

	scanner := &treeScanner{}
	var structures []Structure

	emit := func() {
		entries := parseStructureLines(scanner.buffer)
		if len(entries) > 0 {
			structures = append(structures, Structure{
				ID:         ulid.StructureID(),
				RootFolder: scanner.rootFolder,
				Entries:    entries,
			})
			p.logger.Debug("Parsed tree structure",
				"root", scanner.rootFolder,
				"entries", len(entries),
			)
		}
		scanner.reset()
	}

	for _, line := range lines {
		if scanner.processLine(line) {
			emit()
			if firstOnly && len(structures) > 0 {
				return structures
			}
		}
	}

	// A document that runs out of lines mid-structure force-completes;
	// contrast with the block extractor, which discards unterminated
	// fences.
	if scanner.inStructure() && len(scanner.buffer) > 0 {
		emit()
	}

	return structures
}

// scanState enumerates the tree scanner's modes
type scanState int

const (
	stateScanning scanState = iota
	stateInStructure
	stateInCodeBlock
)

// treeScanner is the tree-drawing state machine. It is scoped to one
// parse invocation and explicitly reset between structures.
type treeScanner struct {
	state           scanState
	buffer          []string
	rootFolder      string
	inMarkdownFence bool
}

func (s *treeScanner) reset() {
	s.state = stateScanning
	s.buffer = nil
	s.rootFolder = ""
	s.inMarkdownFence = false
}

func (s *treeScanner) inStructure() bool {
	return s.state == stateInStructure || s.state == stateInCodeBlock
}

// processLine advances the state machine by one line and reports whether
// a structure just completed.
func (s *treeScanner) processLine(line string) bool {
	switch s.state {
	case stateScanning:
		if s.detectStart(line) {
			if s.inMarkdownFence {
				s.state = stateInCodeBlock
			} else {
				s.state = stateInStructure
			}
			s.buffer = append(s.buffer, line)
		}
		return false

	case stateInStructure, stateInCodeBlock:
		if s.detectEnd(line) {
			return true
		}
		s.buffer = append(s.buffer, line)
		return false
	}

	return false
}

// detectStart reports whether the line begins a tree structure. A fence
// opener is not itself structure content; it only flags that the next
// structure is fenced.
func (s *treeScanner) detectStart(line string) bool {
	trimmed := strings.TrimSpace(line)

	if fenceOpenPattern.MatchString(trimmed) {
		s.inMarkdownFence = true
		return false
	}

	if m := rootFolderPattern.FindStringSubmatch(trimmed); m != nil {
		s.rootFolder = m[1]
		return true
	}

	return treeLinePattern.MatchString(trimmed)
}

// detectEnd reports whether the line terminates the structure being
// accumulated.
func (s *treeScanner) detectEnd(line string) bool {
	trimmed := strings.TrimSpace(line)

	if s.inMarkdownFence && fenceClosePattern.MatchString(trimmed) {
		return true
	}

	if trimmed == "" {
		return true
	}

	return !treeLinePattern.MatchString(line) &&
		!continuationPattern.MatchString(line) &&
		!rootFolderPattern.MatchString(trimmed)
}

// parseStructureLines converts buffered lines into entries. Lines that
// match no structure pattern are skipped silently, never an error.
func parseStructureLines(lines []string) []Entry {
	var entries []Entry
	for _, line := range lines {
		if entry, ok := parseLine(line); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// parseLine extracts (name, depth, isDir) from a single structure line
func parseLine(line string) (Entry, bool) {
	line = strings.TrimRight(line, " \t")

	if strings.TrimSpace(line) == "" || continuationPattern.MatchString(line) {
		return Entry{}, false
	}

	if m := rootFolderPattern.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
		return Entry{Name: m[1], Depth: 0, IsDir: true}, true
	}

	m := treeLinePattern.FindStringSubmatch(line)
	if m == nil {
		return Entry{}, false
	}

	// Each nesting level contributes four prefix characters ("│   ").
	// The prefix is counted in runes; the pipe glyph is multi-byte.
	prefix := prefixPattern.FindString(line)
	depth := utf8.RuneCountInString(prefix)/4 + 1

	name := strings.TrimSpace(commentPattern.ReplaceAllString(m[1], ""))

	isDir := strings.HasSuffix(name, "/")
	if isDir {
		name = strings.TrimSuffix(name, "/")
	}

	if name == "" {
		return Entry{}, false
	}

	return Entry{Name: name, Depth: depth, IsDir: isDir}, true
}

// normalize canonicalizes line endings
func normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
