// Package tree parses ASCII/Unicode tree-drawing listings (the "├──"
// style output commonly pasted from LLMs and documentation) into an
// ordered list of entries that can be materialized on disk.
package tree

// Entry is one parsed line of a directory listing. Entries keep the
// order of their source lines, which is assumed to be pre-order
// directory-tree traversal order.
type Entry struct {
	Name  string `json:"name"`
	Depth int    `json:"depth"` // 0 is the structure root
	IsDir bool   `json:"is_dir"`
}

// Structure is a complete parsed directory listing
type Structure struct {
	ID         string  `json:"id"`
	RootFolder string  `json:"root_folder,omitempty"` // empty when the listing had no "name/" root line
	Entries    []Entry `json:"entries"`
}
