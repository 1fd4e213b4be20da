package explorer

import (
	"context"
	"fmt"

	"github.com/datatug/filescope/pkg/audio"
	"github.com/datatug/filescope/pkg/files"
	"github.com/datatug/filescope/pkg/files/osfile"
	"github.com/datatug/filescope/pkg/filetree"
	"github.com/datatug/filescope/pkg/media"
	"github.com/datatug/filescope/pkg/preview"
	"github.com/datatug/filescope/pkg/render"
	"github.com/datatug/filescope/pkg/watch"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"
)

const (
	pageMain   = "main"
	pagePrompt = "prompt"
	pageSearch = "search"
)

// Explorer is the host application: a directory tree on the left, the
// preview pane on the right, modal prompts for file operations.
type Explorer struct {
	app    *tview.Application
	pages  *tview.Pages
	layout *tview.Flex

	tree        *tview.TreeView
	previewPane *tview.TextView
	status      *tview.TextView

	store    files.Store
	model    *filetree.Model
	engine   *preview.Engine
	player   *audio.Player
	watcher  *watch.Watcher
	homeRoot string

	treeHidden bool
	selection  string
}

// New builds an explorer rooted at dir.
func New(dir string) (*Explorer, error) {
	store := osfile.NewStore(dir)
	e := &Explorer{
		app:      tview.NewApplication(),
		store:    store,
		model:    filetree.NewModel(store, dir),
		engine:   preview.NewEngine(),
		player:   audio.NewPlayer(),
		homeRoot: dir,
	}

	e.tree = tview.NewTreeView()
	e.tree.SetBorder(true).SetTitle(" " + store.RootTitle() + " ")
	e.tree.SetChangedFunc(e.onTreeSelectionChanged)
	e.tree.SetSelectedFunc(e.onTreeNodeActivated)
	e.tree.SetInputCapture(e.treeInputCapture)

	e.previewPane = tview.NewTextView().SetDynamicColors(true).SetWrap(false)
	e.previewPane.SetBorder(true).SetTitle(" preview ")

	e.status = tview.NewTextView().SetDynamicColors(true)

	e.layout = tview.NewFlex().
		AddItem(e.tree, 0, 1, true).
		AddItem(e.previewPane, 0, 2, false)

	body := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(e.layout, 0, 1, true).
		AddItem(e.status, 1, 0, false)

	e.pages = tview.NewPages().AddPage(pageMain, body, true, true)
	e.app.SetRoot(e.pages, true)

	e.engine.OnResult(func(result preview.Result) {
		e.app.QueueUpdateDraw(func() { e.showResult(result) })
	})

	watcher, err := watch.New(0, func(string) {
		e.app.QueueUpdateDraw(func() { e.reloadTree() })
	})
	if err != nil {
		return nil, fmt.Errorf("explorer: %w", err)
	}
	e.watcher = watcher
	if err := e.watcher.SetRoot(dir); err != nil {
		logrus.WithError(err).Warn("explorer: root not watchable")
	}

	e.reloadTree()
	return e, nil
}

// Run starts the watcher and the tview event loop, and tears both down on
// exit.
func (e *Explorer) Run() error {
	if err := e.watcher.Start(); err != nil {
		return err
	}
	defer e.watcher.Stop()
	defer e.player.Stop()
	return e.app.Run()
}

// Stop ends the event loop.
func (e *Explorer) Stop() {
	e.app.Stop()
}

func (e *Explorer) showResult(result preview.Result) {
	if result.Path != e.selection {
		return
	}
	if result.Failed {
		e.previewPane.SetText(tview.Escape(result.Reason))
		return
	}
	e.previewPane.SetText(previewText(result.Content))
	e.setStatus(statusLine(result) + imageMetaSuffix(result.Path))
}

// imageMetaSuffix probes dimensions and format for image files, " 800x600 png"
// or "" when the probe has nothing to say.
func imageMetaSuffix(path string) string {
	if media.Classify(path) != media.CategoryImage {
		return ""
	}
	meta := render.GetImageMeta(path)
	if meta == nil {
		return ""
	}
	return fmt.Sprintf(" %dx%d %s", meta.Width, meta.Height, meta.Format)
}

func (e *Explorer) setStatus(text string) {
	e.status.SetText(text)
}

// previewText prepares render output for a dynamic-colors TextView. Kinds
// that carry tview color tags pass through; everything else is escaped so
// bracketed file content cannot be misread as tags.
func previewText(content render.Content) string {
	switch content.Kind {
	case render.KindPixels, render.KindCode:
		return content.Text
	default:
		return tview.Escape(content.Text)
	}
}

func statusLine(result preview.Result) string {
	switch result.Mode {
	case preview.ModeRich:
		return fmt.Sprintf("[gray]%s[-]", result.Path)
	case preview.ModeDegraded:
		return fmt.Sprintf("[gray]%s[-] [yellow](degraded)[-]", result.Path)
	default:
		return fmt.Sprintf("[gray]%s[-] [red](no preview)[-]", result.Path)
	}
}

// goHome re-roots the tree back to the directory the explorer started in.
func (e *Explorer) goHome() {
	e.setRoot(e.homeRoot)
}

func (e *Explorer) setRoot(dir string) {
	e.model.SetRoot(context.Background(), dir)
	if err := e.watcher.SetRoot(dir); err != nil {
		logrus.WithError(err).WithField("dir", dir).Warn("explorer: watch failed")
	}
	e.reloadTree()
}

// toggleTreePanel hides or restores the tree, leaving the preview pane
// full-width.
func (e *Explorer) toggleTreePanel() {
	e.layout.Clear()
	if e.treeHidden {
		e.layout.AddItem(e.tree, 0, 1, true).AddItem(e.previewPane, 0, 2, false)
		e.app.SetFocus(e.tree)
	} else {
		e.layout.AddItem(e.previewPane, 0, 1, false)
	}
	e.treeHidden = !e.treeHidden
}
