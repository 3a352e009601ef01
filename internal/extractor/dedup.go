package extractor

import (
	"hash/fnv"
	"strings"
)

// dedupIndex suppresses blocks whose content is identical, modulo
// surrounding whitespace, to one already captured. The FNV fingerprint
// is only a fast-reject pre-filter; equality is always decided by full
// value comparison so a hash collision can never suppress a real block.
type dedupIndex struct {
	byHash map[uint64][]string
}

func newDedupIndex() *dedupIndex {
	return &dedupIndex{
		byHash: make(map[uint64][]string),
	}
}

func (d *dedupIndex) isDuplicate(content string) bool {
	trimmed := strings.TrimSpace(content)
	for _, existing := range d.byHash[fingerprint(trimmed)] {
		if existing == trimmed {
			return true
		}
	}
	return false
}

func (d *dedupIndex) add(content string) {
	trimmed := strings.TrimSpace(content)
	h := fingerprint(trimmed)
	d.byHash[h] = append(d.byHash[h], trimmed)
}

func fingerprint(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}
