package explorer

import (
	"context"
	"errors"
	"fmt"

	"github.com/datatug/filescope/pkg/render"
	"github.com/gdamore/tcell/v2"
)

func (e *Explorer) treeInputCapture(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() == tcell.KeyEscape {
		e.goHome()
		return nil
	}
	if event.Key() != tcell.KeyRune {
		return event
	}
	switch event.Rune() {
	case 'h':
		e.renderTree(e.model.ToggleHidden(context.Background()))
		return nil
	case 't':
		e.toggleTreePanel()
		return nil
	case '+', '=':
		e.engine.Grow()
		return nil
	case '-', '_':
		e.engine.Shrink()
		return nil
	case 'p':
		e.toggleAudio()
		return nil
	case '/':
		e.showSearchPrompt()
		return nil
	case 'r':
		e.showRenamePrompt()
		return nil
	case 'm':
		e.showMovePrompt()
		return nil
	case 'c':
		e.showCopyPrompt()
		return nil
	case 'd':
		e.showDeleteConfirm()
		return nil
	case 'n':
		e.showCreateFolderPrompt()
		return nil
	case 'q':
		e.Stop()
		return nil
	}
	return event
}

func (e *Explorer) toggleAudio() {
	entry, ok := e.currentEntry()
	if !ok || entry.IsDir {
		return
	}
	if err := e.player.Toggle(entry.Path); err != nil {
		if errors.Is(err, render.ErrToolUnavailable) {
			e.setStatus("[red]no audio player available[-]")
			return
		}
		e.setStatus(fmt.Sprintf("[red]%s[-]", err))
		return
	}
	if playing := e.player.Playing(); playing != "" {
		e.setStatus(fmt.Sprintf("[green]playing[-] %s", playing))
	} else {
		e.setStatus("stopped")
	}
}
