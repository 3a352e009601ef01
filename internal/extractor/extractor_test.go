package extractor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tildaslashalef/codenest/internal/loggy"
)

const fence = "```"

func TestExtractCodeBlocks(t *testing.T) {
	logger := loggy.NewNoopLogger()
	e := New(logger)

	t.Run("simple header and block", func(t *testing.T) {
		input := "## app/main.py\n" +
			fence + "python\n" +
			"print('hello')\n" +
			"print('world')\n" +
			fence + "\n"

		blocks := e.ExtractCodeBlocks(input)

		require.Len(t, blocks, 1)
		assert.Equal(t, "python", blocks[0].Language)
		assert.Equal(t, "app/main.py", blocks[0].Path)
		assert.Equal(t, "print('hello')\nprint('world')", blocks[0].Content)
		assert.Equal(t, 2, blocks[0].LineCount)
		assert.False(t, blocks[0].IsArtifact)
		assert.True(t, strings.HasPrefix(blocks[0].ID, "blk-"))
	})

	t.Run("no fences yields no blocks", func(t *testing.T) {
		input := "Just a paragraph of prose.\n\nAnd another one.\n"
		blocks := e.ExtractCodeBlocks(input)
		assert.Empty(t, blocks)
	})

	t.Run("nested fences are content", func(t *testing.T) {
		input := "## README.md\n" +
			fence + "markdown\n" +
			"# Usage\n" +
			fence + "text\n" +
			"inner literal block\n" +
			fence + "\n" +
			"after the inner block\n" +
			fence + "\n"

		blocks := e.ExtractCodeBlocks(input)

		require.Len(t, blocks, 1)
		content := blocks[0].Content
		assert.Contains(t, content, fence+"text")
		assert.Contains(t, content, "inner literal block")
		// The bare fence that closed the inner block stays in the content
		assert.Equal(t, 5, blocks[0].LineCount)
		assert.Contains(t, content, "after the inner block")
	})

	t.Run("unterminated fence discards the block", func(t *testing.T) {
		input := "## lost.py\n" +
			fence + "python\n" +
			"print('never closed')\n"

		blocks := e.ExtractCodeBlocks(input)
		assert.Empty(t, blocks)
	})

	t.Run("header without fence is overwritten by next header", func(t *testing.T) {
		input := "## first label\n" +
			"some narrative text\n" +
			"## second.py\n" +
			fence + "python\n" +
			"x = 1\n" +
			fence + "\n"

		blocks := e.ExtractCodeBlocks(input)

		require.Len(t, blocks, 1)
		assert.Equal(t, "second.py", blocks[0].Path)
	})

	t.Run("fence without preceding header is ignored", func(t *testing.T) {
		input := fence + "python\n" +
			"x = 1\n" +
			fence + "\n"

		blocks := e.ExtractCodeBlocks(input)
		assert.Empty(t, blocks)
	})

	t.Run("label header becomes artifact", func(t *testing.T) {
		input := "## Installation Notes\n" +
			fence + "bash\n" +
			"pip install example\n" +
			fence + "\n"

		blocks := e.ExtractCodeBlocks(input)

		require.Len(t, blocks, 1)
		assert.Empty(t, blocks[0].Path)
		assert.True(t, blocks[0].IsArtifact)
		assert.Equal(t, "bash", blocks[0].Language)
	})

	t.Run("duplicate content emitted once", func(t *testing.T) {
		body := fence + "python\n" +
			"print('same')\n" +
			fence + "\n"
		input := "## a.py\n" + body + "\n## b.py\n" + body

		blocks := e.ExtractCodeBlocks(input)

		require.Len(t, blocks, 1)
		assert.Equal(t, "a.py", blocks[0].Path)
	})

	t.Run("untagged fence defaults to text", func(t *testing.T) {
		input := "## Some Notes\n" +
			fence + "\n" +
			"remember to water the plants\n" +
			fence + "\n"

		blocks := e.ExtractCodeBlocks(input)

		require.Len(t, blocks, 1)
		assert.Equal(t, LanguageText, blocks[0].Language)
	})

	t.Run("untagged fence with path infers language", func(t *testing.T) {
		input := "## cmd/server/main.go\n" +
			fence + "\n" +
			"package main\n" +
			"\n" +
			"func main() {}\n" +
			fence + "\n"

		blocks := e.ExtractCodeBlocks(input)

		require.Len(t, blocks, 1)
		assert.Equal(t, "go", blocks[0].Language)
	})

	t.Run("carriage returns are normalized", func(t *testing.T) {
		input := "## win.txt\r\n" +
			fence + "text\r\n" +
			"line one\r\n" +
			fence + "\r\n"

		blocks := e.ExtractCodeBlocks(input)

		require.Len(t, blocks, 1)
		assert.Equal(t, "line one", blocks[0].Content)
	})

	t.Run("extraction is idempotent", func(t *testing.T) {
		input := "## a.py\n" +
			fence + "python\n" +
			"x = 1\n" +
			fence + "\n" +
			"## notes\n" +
			fence + "text\n" +
			"free text\n" +
			fence + "\n"

		first := e.ExtractCodeBlocks(input)
		second := e.ExtractCodeBlocks(input)

		require.Equal(t, len(first), len(second))
		for i := range first {
			// IDs are freshly minted per run; everything else must match
			a, b := first[i], second[i]
			a.ID, b.ID = "", ""
			assert.Equal(t, a, b)
		}
	})

	t.Run("line count matches content lines", func(t *testing.T) {
		input := "## multi.txt\n" +
			fence + "text\n" +
			"one\n" +
			"two\n" +
			"three\n" +
			fence + "\n"

		blocks := e.ExtractCodeBlocks(input)

		require.Len(t, blocks, 1)
		assert.Equal(t, blocks[0].LineCount, len(strings.Split(blocks[0].Content, "\n")))
	})
}

func TestDedupIndex(t *testing.T) {
	index := newDedupIndex()

	assert.False(t, index.isDuplicate("x = 1"))
	index.add("x = 1")

	assert.True(t, index.isDuplicate("x = 1"))
	// Equality ignores surrounding whitespace only
	assert.True(t, index.isDuplicate("\n  x = 1  \n"))
	assert.False(t, index.isDuplicate("x = 2"))
}
