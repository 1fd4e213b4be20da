package files

import (
	"os"
	"path/filepath"
	"strings"
)

// Entry is one filesystem node as seen by the tree. Recomputed on every
// listing, never cached beyond one listing cycle.
type Entry struct {
	Path  string
	Name  string
	IsDir bool
}

// Hidden reports whether the entry is a dotfile.
func (e Entry) Hidden() bool {
	return strings.HasPrefix(e.Name, ".")
}

// NewEntry builds an Entry for a child of dir.
func NewEntry(dir string, de os.DirEntry) Entry {
	name := de.Name()
	return Entry{
		Path:  filepath.Join(dir, name),
		Name:  name,
		IsDir: de.IsDir(),
	}
}
