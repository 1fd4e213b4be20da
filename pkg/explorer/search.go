package explorer

import (
	"fmt"

	"github.com/datatug/filescope/pkg/search"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// showSearchPrompt asks for a query and lists matches under the current
// root, best first. Selecting a match previews it.
func (e *Explorer) showSearchPrompt() {
	e.showPrompt("Search", "", func(query string) {
		root := e.model.Root()
		go func() {
			matches, err := search.Search(root, query, search.Options{})
			e.app.QueueUpdateDraw(func() {
				if err != nil {
					e.setStatus(fmt.Sprintf("[red]search failed:[-] %s", err))
					return
				}
				e.showSearchResults(query, matches)
			})
		}()
	})
}

func (e *Explorer) showSearchResults(query string, matches []search.Match) {
	list := tview.NewList().ShowSecondaryText(true)
	list.SetBorder(true).SetTitle(fmt.Sprintf(" %d matches for %q ", len(matches), query))

	for _, match := range matches {
		match := match
		list.AddItem(
			tview.Escape(match.Name),
			fmt.Sprintf("%3d  %s", match.Score, tview.Escape(match.Path)),
			0,
			func() {
				e.closeSearchResults()
				e.selection = match.Path
				e.engine.PreviewAsync(match.Path)
			})
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape {
			e.closeSearchResults()
			return nil
		}
		return event
	})

	e.pages.AddPage(pageSearch, list, true, true)
	e.app.SetFocus(list)
}

func (e *Explorer) closeSearchResults() {
	e.pages.RemovePage(pageSearch)
	e.app.SetFocus(e.tree)
}
