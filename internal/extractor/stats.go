package extractor

import (
	"sort"
	"strings"
)

// FolderStructure maps destination directories to the file basenames
// placed in them. Blocks without a resolved path are excluded; files at
// the output root are grouped under ".".
func FolderStructure(blocks []CodeBlock) map[string][]string {
	structure := make(map[string][]string)

	for _, block := range blocks {
		if block.Path == "" {
			continue
		}

		path := strings.ReplaceAll(block.Path, `\`, "/")

		dir := "."
		name := path
		if idx := strings.LastIndex(path, "/"); idx >= 0 {
			dir = path[:idx]
			name = path[idx+1:]
		}

		structure[dir] = append(structure[dir], name)
	}

	return structure
}

// Stats rebuilds project statistics from a finished list of blocks
func Stats(blocks []CodeBlock) ProjectStats {
	stats := ProjectStats{
		Languages: make(map[string]int),
	}

	for _, block := range blocks {
		if block.Path != "" {
			stats.TotalFiles++
		}
		stats.TotalLines += block.LineCount
		stats.Languages[block.Language]++
	}

	for dir := range FolderStructure(blocks) {
		stats.Folders = append(stats.Folders, dir)
	}
	sort.Strings(stats.Folders)

	artifactCount := 0
	for _, block := range blocks {
		if block.IsArtifact {
			artifactCount++
			stats.Artifacts = append(stats.Artifacts, ArtifactName(artifactCount, block.Language))
		}
	}

	return stats
}
