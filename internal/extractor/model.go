package extractor

// LanguageText is the sentinel language for fences that carry no tag
const LanguageText = "text"

// CodeBlock represents one extracted unit of content: a fenced block
// paired with the markdown header that preceded it.
type CodeBlock struct {
	ID        string `json:"id"`
	Language  string `json:"language"`
	Path      string `json:"path,omitempty"` // empty when the header was not a file path
	Content   string `json:"content"`
	LineCount int    `json:"line_count"`
	// IsArtifact is true when Path is empty: the header text was a label
	// rather than a path, and the block is written under a synthesized name.
	IsArtifact bool `json:"is_artifact"`
}

// ProjectStats is a derived aggregate over a finished list of code blocks.
// It is rebuilt on demand and never maintained incrementally.
type ProjectStats struct {
	TotalFiles int            `json:"total_files"`
	TotalLines int            `json:"total_lines"`
	Languages  map[string]int `json:"languages"`
	Folders    []string       `json:"folders"`
	Artifacts  []string       `json:"artifacts"`
}
