package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestNewEntry(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), nil, 0644))
	assert.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

	des, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(des))

	byName := map[string]Entry{}
	for _, de := range des {
		e := NewEntry(dir, de)
		byName[e.Name] = e
	}

	hidden := byName[".hidden"]
	assert.Equal(t, filepath.Join(dir, ".hidden"), hidden.Path)
	assert.True(t, hidden.Hidden())
	assert.False(t, hidden.IsDir)

	sub := byName["sub"]
	assert.True(t, sub.IsDir)
	assert.False(t, sub.Hidden())
}
