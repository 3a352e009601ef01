package tree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tildaslashalef/codenest/internal/loggy"
)

const fence = "```"

func TestParseDepths(t *testing.T) {
	logger := loggy.NewNoopLogger()
	p := New(logger)

	input := strings.Join([]string{
		"proj/",
		"├── src/",
		"│   └── main.ext",
		"└── README.md",
		"",
	}, "\n")

	structure, found := p.Parse(input)
	require.True(t, found)

	assert.Equal(t, "proj", structure.RootFolder)
	assert.True(t, strings.HasPrefix(structure.ID, "tree-"))
	assert.Equal(t, []Entry{
		{Name: "proj", Depth: 0, IsDir: true},
		{Name: "src", Depth: 1, IsDir: true},
		{Name: "main.ext", Depth: 2, IsDir: false},
		{Name: "README.md", Depth: 1, IsDir: false},
	}, structure.Entries)
}

func TestParseNoStructure(t *testing.T) {
	p := New(loggy.NewNoopLogger())

	_, found := p.Parse("Nothing here.\n\nJust prose with no listings.\n")
	assert.False(t, found)
}

func TestParseFencedStructure(t *testing.T) {
	p := New(loggy.NewNoopLogger())

	input := strings.Join([]string{
		"## Project Structure",
		fence,
		"api-service/",
		"├── app/",
		"│   ├── __init__.py",
		"│   └── routes.py",
		"└── requirements.txt",
		fence,
		"",
		"That's all.",
	}, "\n")

	structure, found := p.Parse(input)
	require.True(t, found)

	assert.Equal(t, "api-service", structure.RootFolder)
	require.Len(t, structure.Entries, 5)
	assert.Equal(t, Entry{Name: "routes.py", Depth: 2, IsDir: false}, structure.Entries[3])
	assert.Equal(t, Entry{Name: "requirements.txt", Depth: 1, IsDir: false}, structure.Entries[4])
}

func TestParseInlineComments(t *testing.T) {
	p := New(loggy.NewNoopLogger())

	input := strings.Join([]string{
		"svc/",
		"├── main.py                 # FastAPI entry point",
		"└── config.py               # Configuration management",
		"",
	}, "\n")

	structure, found := p.Parse(input)
	require.True(t, found)

	require.Len(t, structure.Entries, 3)
	assert.Equal(t, "main.py", structure.Entries[1].Name)
	assert.Equal(t, "config.py", structure.Entries[2].Name)
}

func TestParseTruncatedStructure(t *testing.T) {
	p := New(loggy.NewNoopLogger())

	// No blank line or closing fence before end of input: the
	// accumulated entries are still returned.
	input := "proj/\n├── src/\n│   └── app.py"

	structure, found := p.Parse(input)
	require.True(t, found)

	assert.Equal(t, []Entry{
		{Name: "proj", Depth: 0, IsDir: true},
		{Name: "src", Depth: 1, IsDir: true},
		{Name: "app.py", Depth: 2, IsDir: false},
	}, structure.Entries)
}

func TestParseAllMultipleStructures(t *testing.T) {
	p := New(loggy.NewNoopLogger())

	input := strings.Join([]string{
		"First project:",
		"",
		"alpha/",
		"└── a.txt",
		"",
		"And the second:",
		"",
		fence,
		"beta/",
		"└── b.txt",
		fence,
		"",
	}, "\n")

	structures := p.ParseAll(input)

	require.Len(t, structures, 2)
	assert.Equal(t, "alpha", structures[0].RootFolder)
	assert.Equal(t, "beta", structures[1].RootFolder)
	assert.Len(t, structures[0].Entries, 2)
	assert.Len(t, structures[1].Entries, 2)
}

func TestParseStructureWithoutRootFolder(t *testing.T) {
	p := New(loggy.NewNoopLogger())

	input := strings.Join([]string{
		"├── a/",
		"│   └── one.txt",
		"└── two.txt",
		"",
	}, "\n")

	structure, found := p.Parse(input)
	require.True(t, found)

	assert.Empty(t, structure.RootFolder)
	assert.Equal(t, []Entry{
		{Name: "a", Depth: 1, IsDir: true},
		{Name: "one.txt", Depth: 2, IsDir: false},
		{Name: "two.txt", Depth: 1, IsDir: false},
	}, structure.Entries)
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Entry
		ok   bool
	}{
		{"root folder", "proj/", Entry{Name: "proj", Depth: 0, IsDir: true}, true},
		{"top-level file", "├── README.md", Entry{Name: "README.md", Depth: 1, IsDir: false}, true},
		{"top-level dir", "└── src/", Entry{Name: "src", Depth: 1, IsDir: true}, true},
		{"nested file", "│   └── helpers.py", Entry{Name: "helpers.py", Depth: 2, IsDir: false}, true},
		{"doubly nested", "│   │   └── deep.txt", Entry{Name: "deep.txt", Depth: 3, IsDir: false}, true},
		{"continuation line", "│", Entry{}, false},
		{"blank", "   ", Entry{}, false},
		{"prose", "this is not a tree line", Entry{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, ok := parseLine(tt.line)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, entry)
			}
		})
	}
}
