package explorer

import (
	"context"
	"fmt"

	"github.com/datatug/filescope/pkg/files"
	"github.com/datatug/filescope/pkg/render"
	"github.com/rivo/tview"
)

// reloadTree re-lists the model root and rebuilds the tree.
func (e *Explorer) reloadTree() {
	e.renderTree(e.model.Reload(context.Background()))
}

// renderTree rebuilds the tree widget from an already-loaded listing.
func (e *Explorer) renderTree(entries []files.Entry) {
	root := tview.NewTreeNode(e.model.Root()).SetReference(files.Entry{
		Path:  e.model.Root(),
		Name:  e.model.Root(),
		IsDir: true,
	})
	for _, entry := range entries {
		root.AddChild(newEntryNode(entry))
	}
	root.SetExpanded(true)
	e.tree.SetRoot(root)
	e.tree.SetCurrentNode(root)
}

func newEntryNode(entry files.Entry) *tview.TreeNode {
	node := tview.NewTreeNode(entryLabel(entry)).SetReference(entry)
	if entry.IsDir {
		node.SetExpanded(false)
	}
	return node
}

func entryLabel(entry files.Entry) string {
	if entry.IsDir {
		return fmt.Sprintf("[blue]%s/[-]", tview.Escape(entry.Name))
	}
	return tview.Escape(entry.Name)
}

// onTreeSelectionChanged previews whatever the cursor lands on.
func (e *Explorer) onTreeSelectionChanged(node *tview.TreeNode) {
	entry, ok := node.GetReference().(files.Entry)
	if !ok {
		return
	}
	e.selection = entry.Path
	if entry.IsDir {
		e.previewPane.SetText("")
		e.setStatus(fmt.Sprintf("[gray]%s/[-]", entry.Path))
		return
	}
	e.previewPane.SetText(tview.Escape(render.NoPreviewText))
	e.engine.PreviewAsync(entry.Path)
}

// onTreeNodeActivated expands or collapses directories in place, loading
// children on first expansion.
func (e *Explorer) onTreeNodeActivated(node *tview.TreeNode) {
	entry, ok := node.GetReference().(files.Entry)
	if !ok || !entry.IsDir {
		return
	}
	if node.IsExpanded() && node != e.tree.GetRoot() {
		node.SetExpanded(false)
		return
	}
	if len(node.GetChildren()) == 0 {
		for _, child := range e.model.List(context.Background(), entry.Path) {
			node.AddChild(newEntryNode(child))
		}
	}
	node.SetExpanded(true)
}

// currentEntry returns the entry under the cursor, if any.
func (e *Explorer) currentEntry() (files.Entry, bool) {
	node := e.tree.GetCurrentNode()
	if node == nil {
		return files.Entry{}, false
	}
	entry, ok := node.GetReference().(files.Entry)
	return entry, ok
}
