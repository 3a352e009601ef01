// Package extractor turns unstructured text (chat transcripts, markdown
// documents, pasted AI output) into an ordered list of code blocks. It
// pairs markdown headers ("## name") with fenced code blocks, tracking
// fence nesting so inner fences are preserved as content.
package extractor

import (
	"strings"

	"github.com/tildaslashalef/codenest/internal/loggy"
	"github.com/tildaslashalef/codenest/internal/ulid"
)

// Extractor extracts code blocks from raw text
type Extractor struct {
	logger *loggy.Logger
}

// New creates a new Extractor
func New(logger *loggy.Logger) *Extractor {
	return &Extractor{
		logger: logger,
	}
}

// ExtractCodeBlocks scans the text for header+fence pairs and returns
// one CodeBlock per completed top-level fence. Malformed input degrades
// to fewer blocks; no error is ever returned. A document that ends while
// still inside a fence discards the unterminated block.
func (e *Extractor) ExtractCodeBlocks(content string) []CodeBlock {
	normalized := NormalizeContent(content)
	lines := strings.Split(normalized, "\n")

	scanner := newBlockScanner()
	index := newDedupIndex()
	var blocks []CodeBlock

	for _, line := range lines {
		block := scanner.processLine(line)
		if block == nil {
			continue
		}

		if index.isDuplicate(block.Content) {
			e.logger.Debug("Skipping duplicate block",
				"header", block.Path,
				"lines", block.LineCount,
			)
			continue
		}
		index.add(block.Content)

		block.ID = ulid.BlockID()
		blocks = append(blocks, *block)
	}

	e.logger.Debug("Extraction complete",
		"lines_scanned", len(lines),
		"blocks", len(blocks),
	)

	return blocks
}

// scanState enumerates the block scanner's modes
type scanState int

const (
	stateSeekingHeader scanState = iota
	stateInBlock
)

// blockScanner is the fence/header state machine. One scanner is scoped
// to a single extraction run; its fields are reset after each completed
// block and the whole value is discarded when the run ends.
type blockScanner struct {
	state         scanState
	pendingHeader string
	declaredLang  string
	contentLines  []string
	nestingDepth  int
}

func newBlockScanner() *blockScanner {
	return &blockScanner{state: stateSeekingHeader}
}

// processLine advances the state machine by one line and returns a
// completed block, or nil when more lines are needed.
func (s *blockScanner) processLine(line string) *CodeBlock {
	switch s.state {
	case stateSeekingHeader:
		if m := headerPattern.FindStringSubmatch(line); m != nil {
			// A header only primes the next fence; it does not open a block.
			// A later header overwrites an unused pending one.
			s.pendingHeader = strings.TrimSpace(m[1])
			return nil
		}

		if s.pendingHeader == "" {
			return nil
		}

		if m := fencePattern.FindStringSubmatch(line); m != nil {
			tag := strings.TrimSpace(m[1])
			if tag != "" {
				s.declaredLang = strings.Fields(tag)[0]
			} else {
				s.declaredLang = ""
			}
			s.state = stateInBlock
			s.nestingDepth = 1
			s.contentLines = nil
		}
		return nil

	case stateInBlock:
		m := fencePattern.FindStringSubmatch(line)
		if m == nil {
			s.contentLines = append(s.contentLines, line)
			return nil
		}

		if strings.TrimSpace(m[1]) != "" {
			// A tagged fence opens a nested block; the raw line is content.
			s.nestingDepth++
			s.contentLines = append(s.contentLines, line)
			return nil
		}

		s.nestingDepth--
		if s.nestingDepth > 0 {
			// Closed a nested block, not the outer one.
			s.contentLines = append(s.contentLines, line)
			return nil
		}

		return s.complete()
	}

	return nil
}

// complete finalizes the current block and resets the scanner
func (s *blockScanner) complete() *CodeBlock {
	defer s.reset()

	if len(s.contentLines) == 0 || s.pendingHeader == "" {
		return nil
	}

	content := strings.Join(s.contentLines, "\n")

	var path string
	if IsLikelyFilePath(s.pendingHeader) {
		path = s.pendingHeader
	}

	language := s.declaredLang
	if language == "" {
		language = inferLanguage(path, content)
	}

	return &CodeBlock{
		Language:   language,
		Path:       path,
		Content:    content,
		LineCount:  len(s.contentLines),
		IsArtifact: path == "",
	}
}

func (s *blockScanner) reset() {
	s.state = stateSeekingHeader
	s.pendingHeader = ""
	s.declaredLang = ""
	s.contentLines = nil
	s.nestingDepth = 0
}
