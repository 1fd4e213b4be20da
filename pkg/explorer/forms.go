package explorer

import (
	"fmt"
	"path/filepath"

	"github.com/datatug/filescope/pkg/files"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// showPrompt displays a one-line input over the main page. Enter submits,
// Escape cancels.
func (e *Explorer) showPrompt(label, initial string, submit func(value string)) {
	input := tview.NewInputField().
		SetLabel(label + ": ").
		SetText(initial).
		SetFieldWidth(0).
		SetFieldBackgroundColor(tview.Styles.PrimitiveBackgroundColor).
		SetFieldTextColor(tview.Styles.PrimaryTextColor)
	input.SetBorder(true)

	input.SetDoneFunc(func(key tcell.Key) {
		value := input.GetText()
		e.closePrompt()
		if key == tcell.KeyEnter && value != "" {
			submit(value)
		}
	})

	modal := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().
			AddItem(nil, 0, 1, false).
			AddItem(input, 0, 2, true).
			AddItem(nil, 0, 1, false), 3, 0, true).
		AddItem(nil, 0, 1, false)

	e.pages.AddPage(pagePrompt, modal, true, true)
	e.app.SetFocus(input)
}

func (e *Explorer) closePrompt() {
	e.pages.RemovePage(pagePrompt)
	e.app.SetFocus(e.tree)
}

// afterFileOp refreshes the tree and the preview pane once an operation
// lands, or reports its failure on the status line.
func (e *Explorer) afterFileOp(op string, err error) {
	if err != nil {
		e.setStatus(fmt.Sprintf("[red]%s failed:[-] %s", op, err))
		return
	}
	e.setStatus(fmt.Sprintf("[green]%s done[-]", op))
	e.reloadTree()
	e.engine.Rerender()
}

func (e *Explorer) showRenamePrompt() {
	entry, ok := e.currentEntry()
	if !ok {
		return
	}
	e.showPrompt("Rename to", entry.Name, func(newName string) {
		newPath, err := files.Rename(entry.Path, newName)
		if err == nil {
			e.selection = newPath
		}
		e.afterFileOp("rename", err)
	})
}

func (e *Explorer) showMovePrompt() {
	entry, ok := e.currentEntry()
	if !ok {
		return
	}
	e.showPrompt("Move to directory", filepath.Dir(entry.Path), func(destDir string) {
		newPath, err := files.Move(entry.Path, destDir)
		if err == nil {
			e.selection = newPath
		}
		e.afterFileOp("move", err)
	})
}

func (e *Explorer) showCopyPrompt() {
	entry, ok := e.currentEntry()
	if !ok || entry.IsDir {
		return
	}
	e.showPrompt("Copy to directory", filepath.Dir(entry.Path), func(destDir string) {
		_, err := files.Copy(entry.Path, destDir)
		e.afterFileOp("copy", err)
	})
}

func (e *Explorer) showDeleteConfirm() {
	entry, ok := e.currentEntry()
	if !ok {
		return
	}
	modal := tview.NewModal().
		SetText(fmt.Sprintf("Delete %s?", entry.Name)).
		AddButtons([]string{"Delete", "Cancel"}).
		SetDoneFunc(func(_ int, label string) {
			e.closePrompt()
			if label == "Delete" {
				e.afterFileOp("delete", files.Delete(entry.Path))
			}
		})
	e.pages.AddPage(pagePrompt, modal, true, true)
}

func (e *Explorer) showCreateFolderPrompt() {
	parent := e.model.Root()
	if entry, ok := e.currentEntry(); ok && entry.IsDir {
		parent = entry.Path
	}
	e.showPrompt("New folder name", "", func(name string) {
		_, err := files.CreateFolder(parent, name)
		e.afterFileOp("create folder", err)
	})
}
