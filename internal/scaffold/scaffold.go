// Package scaffold materializes parsed structures as real directories
// and files under an output root.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goombaio/namegenerator"

	"github.com/tildaslashalef/codenest/internal/extractor"
	"github.com/tildaslashalef/codenest/internal/loggy"
	"github.com/tildaslashalef/codenest/internal/tree"
)

// Marker records the outcome of one creation attempt. The returned slice
// of markers matches the input order of the entries or blocks.
type Marker struct {
	Path  string `json:"path"`
	IsDir bool   `json:"is_dir"`
	Err   error  `json:"-"`
}

// Failed reports whether the creation attempt failed
func (m Marker) Failed() bool {
	return m.Err != nil
}

func (m Marker) String() string {
	switch {
	case m.Err != nil:
		return fmt.Sprintf("failed %s: %v", m.Path, m.Err)
	case m.IsDir:
		return fmt.Sprintf("created dir  %s", m.Path)
	default:
		return fmt.Sprintf("created file %s", m.Path)
	}
}

// Service creates directories and files from parse results
type Service struct {
	logger *loggy.Logger
}

// NewService creates a new scaffold Service
func NewService(logger *loggy.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// MaterializeEntries walks a depth-ordered entry sequence and creates
// each one under its ancestor directory, maintaining a path stack seeded
// with the root. Per-entry failures are recorded as failure markers and
// never abort the remaining entries. Pre-existing directories are not an
// error; pre-existing files are left untouched.
func (s *Service) MaterializeEntries(entries []tree.Entry, root string) []Marker {
	markers := make([]Marker, 0, len(entries))

	if err := os.MkdirAll(root, 0755); err != nil {
		s.logger.Error("Failed to create output root", "root", root, "error", err)
		for _, entry := range entries {
			markers = append(markers, Marker{Path: entry.Name, IsDir: entry.IsDir, Err: err})
		}
		return markers
	}

	stack := []string{root}

	for _, entry := range entries {
		// Pop stale ancestors. Depth jumps of more than one level in
		// malformed listings are tolerated, not rejected.
		for len(stack) > entry.Depth+1 {
			stack = stack[:len(stack)-1]
		}

		current := filepath.Join(stack[len(stack)-1], entry.Name)

		if entry.IsDir {
			if err := os.MkdirAll(current, 0755); err != nil {
				s.logger.Warn("Failed to create directory", "path", current, "error", err)
				markers = append(markers, Marker{Path: current, IsDir: true, Err: err})
				continue
			}
			stack = append(stack, current)
			markers = append(markers, Marker{Path: current, IsDir: true})
			continue
		}

		if err := touchFile(current); err != nil {
			s.logger.Warn("Failed to create file", "path", current, "error", err)
			markers = append(markers, Marker{Path: current, Err: err})
			continue
		}
		markers = append(markers, Marker{Path: current})
	}

	return markers
}

// MaterializeStructure materializes a parsed structure under basePath,
// generating a memorable directory name when the listing had no root
// folder of its own. It returns the creation log and the directory the
// structure landed in.
func (s *Service) MaterializeStructure(structure *tree.Structure, basePath string) ([]Marker, string) {
	target := basePath
	if structure.RootFolder == "" {
		target = filepath.Join(basePath, generateName())
		s.logger.Info("Structure has no root folder, generated name",
			"dir", target,
			"structure", structure.ID,
		)
	}

	markers := s.MaterializeEntries(structure.Entries, target)

	if structure.RootFolder != "" {
		target = filepath.Join(basePath, structure.RootFolder)
	}
	return markers, target
}

// WriteCodeBlocks writes each block's content to its path resolved
// against root, creating parent directories first. Blocks without a
// resolved path are written under synthesized artifact names. Returns
// the number of files written and the per-block creation log.
func (s *Service) WriteCodeBlocks(blocks []extractor.CodeBlock, root string) (int, []Marker) {
	markers := make([]Marker, 0, len(blocks))
	written := 0
	artifactCount := 0

	if err := os.MkdirAll(root, 0755); err != nil {
		s.logger.Error("Failed to create output root", "root", root, "error", err)
		for _, block := range blocks {
			markers = append(markers, Marker{Path: block.Path, Err: err})
		}
		return 0, markers
	}

	for _, block := range blocks {
		var rel string
		if block.Path != "" {
			rel = filepath.FromSlash(strings.ReplaceAll(block.Path, `\`, "/"))
		} else {
			artifactCount++
			rel = extractor.ArtifactName(artifactCount, block.Language)
		}

		full := filepath.Join(root, rel)

		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			markers = append(markers, Marker{Path: full, Err: err})
			continue
		}

		if err := os.WriteFile(full, []byte(block.Content), 0644); err != nil {
			s.logger.Warn("Failed to write file", "path", full, "error", err)
			markers = append(markers, Marker{Path: full, Err: err})
			continue
		}

		markers = append(markers, Marker{Path: full})
		written++
	}

	s.logger.Info("Wrote code blocks", "root", root, "files", written)
	return written, markers
}

// touchFile creates an empty file, leaving an existing one untouched
func touchFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	return f.Close()
}

// generateName creates a random, memorable directory name
func generateName() string {
	seed := time.Now().UTC().UnixNano()
	name := namegenerator.NewNameGenerator(seed).Generate()
	return strings.ReplaceAll(name, "_", "-")
}
