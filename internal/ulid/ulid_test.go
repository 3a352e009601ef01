package ulid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithPrefix(t *testing.T) {
	id := WithPrefix(PrefixBlock)
	assert.True(t, strings.HasPrefix(id, "blk-"))
	assert.True(t, IsValid(id))
	assert.Equal(t, "blk", Prefix(id))
}

func TestGenerateUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := Generate()
		assert.False(t, seen[id], "duplicate ULID generated")
		seen[id] = true
	}
}

func TestGenerateSortable(t *testing.T) {
	a := Generate()
	b := Generate()
	// Monotonic entropy keeps IDs ordered within the same process
	assert.True(t, a < b)
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid(Generate()))
	assert.True(t, IsValid(BlockID()))
	assert.True(t, IsValid(StructureID()))
	assert.True(t, IsValid(RunID()))
	assert.False(t, IsValid("not-a-ulid"))
	assert.False(t, IsValid(""))
}
