// Package ulid provides prefixed, lexicographically sortable identifiers
// for the codenest application, built on github.com/oklog/ulid/v2.
package ulid

import (
	"crypto/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Common prefixes for different parts of the application
const (
	// Prefix for extracted code blocks
	PrefixBlock = "blk"

	// Prefix for parsed tree structures
	PrefixStructure = "tree"

	// Prefix for analysis/scaffold runs
	PrefixRun = "run"

	// PrefixSeparator is used to separate the prefix from the ULID
	PrefixSeparator = "-"
)

var (
	entropy     = ulid.Monotonic(rand.Reader, 0)
	entropyLock sync.Mutex
)

// Generate creates a new ULID string
func Generate() string {
	entropyLock.Lock()
	defer entropyLock.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// BlockID generates a new ID for a code block
func BlockID() string {
	return WithPrefix(PrefixBlock)
}

// StructureID generates a new ID for a tree structure
func StructureID() string {
	return WithPrefix(PrefixStructure)
}

// RunID generates a new ID for an analysis or scaffold run
func RunID() string {
	return WithPrefix(PrefixRun)
}

// WithPrefix generates a new ULID with the given prefix
func WithPrefix(prefix string) string {
	if prefix == "" {
		return Generate()
	}
	return prefix + PrefixSeparator + Generate()
}

// Prefix returns the prefix of a prefixed ULID, or "" when there is none
func Prefix(id string) string {
	idx := strings.LastIndex(id, PrefixSeparator)
	if idx <= 0 {
		return ""
	}
	return id[:idx]
}

// IsValid reports whether id is a valid ULID, ignoring any prefix
func IsValid(id string) bool {
	if idx := strings.LastIndex(id, PrefixSeparator); idx >= 0 {
		id = id[idx+1:]
	}
	_, err := ulid.ParseStrict(id)
	return err == nil
}
