package explorer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/datatug/filescope/pkg/files"
	"github.com/datatug/filescope/pkg/preview"
	"github.com/datatug/filescope/pkg/render"
	"github.com/gdamore/tcell/v2"
)

func newTestExplorer(t *testing.T) *Explorer {
	t.Helper()
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello"), 0644))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), nil, 0644))
	assert.NoError(t, os.Mkdir(filepath.Join(dir, "docs"), 0755))

	e, err := New(dir)
	assert.NoError(t, err)
	t.Cleanup(func() { e.watcher.Stop() })
	return e
}

func treeChildNames(e *Explorer) []string {
	children := e.tree.GetRoot().GetChildren()
	names := make([]string, len(children))
	for i, child := range children {
		names[i] = child.GetReference().(files.Entry).Name
	}
	return names
}

func TestNewExplorer(t *testing.T) {
	e := newTestExplorer(t)
	assert.Equal(t, []string{"a.txt", "docs"}, treeChildNames(e))
	assert.Equal(t, e.model.Root(), e.watcher.Root())
}

func TestToggleHiddenKey(t *testing.T) {
	e := newTestExplorer(t)
	assert.Equal(t, 2, len(e.tree.GetRoot().GetChildren()))

	e.treeInputCapture(tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone))
	assert.Equal(t, 3, len(e.tree.GetRoot().GetChildren()))

	e.treeInputCapture(tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone))
	assert.Equal(t, 2, len(e.tree.GetRoot().GetChildren()))
}

func TestViewportKeys(t *testing.T) {
	e := newTestExplorer(t)
	start := e.engine.Viewport()

	e.treeInputCapture(tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone))
	assert.Equal(t, start.Grown(), e.engine.Viewport())

	e.treeInputCapture(tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone))
	assert.Equal(t, start, e.engine.Viewport())
}

func TestToggleTreePanel(t *testing.T) {
	e := newTestExplorer(t)
	assert.Equal(t, 2, e.layout.GetItemCount())

	e.treeInputCapture(tcell.NewEventKey(tcell.KeyRune, 't', tcell.ModNone))
	assert.Equal(t, 1, e.layout.GetItemCount())

	e.treeInputCapture(tcell.NewEventKey(tcell.KeyRune, 't', tcell.ModNone))
	assert.Equal(t, 2, e.layout.GetItemCount())
}

func TestCurrentEntry(t *testing.T) {
	e := newTestExplorer(t)
	entry, ok := e.currentEntry()
	assert.True(t, ok)
	assert.True(t, entry.IsDir)
	assert.Equal(t, e.model.Root(), entry.Path)
}

func TestPreviewText(t *testing.T) {
	t.Run("pixels_pass_through", func(t *testing.T) {
		content := render.Content{Text: "[#ff0000:#00ff00]▀[-:-]", Kind: render.KindPixels}
		assert.Equal(t, content.Text, previewText(content))
	})

	t.Run("plain_text_is_escaped", func(t *testing.T) {
		content := render.Content{Text: "x[0] = 1", Kind: render.KindText}
		assert.NotEqual(t, content.Text, previewText(content))
	})
}

func TestStatusLine(t *testing.T) {
	rich := statusLine(preview.Result{Path: "/a", Mode: preview.ModeRich})
	degraded := statusLine(preview.Result{Path: "/a", Mode: preview.ModeDegraded})
	none := statusLine(preview.Result{Path: "/a", Mode: preview.ModeNone})
	assert.NotEqual(t, rich, degraded)
	assert.NotEqual(t, degraded, none)
}

func TestEntryLabel(t *testing.T) {
	assert.Equal(t, "[blue]docs/[-]", entryLabel(files.Entry{Name: "docs", IsDir: true}))
	assert.Equal(t, "a.txt", entryLabel(files.Entry{Name: "a.txt"}))
}
