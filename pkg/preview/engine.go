package preview

import (
	"os"
	"sync"
	"sync/atomic"

	"github.com/datatug/filescope/pkg/media"
	"github.com/datatug/filescope/pkg/render"
)

// Mode records which rendering path produced the content.
type Mode string

const (
	ModeRich     Mode = "rich"
	ModeDegraded Mode = "degraded"
	ModeNone     Mode = "none"
)

// Result is what a preview request resolves to. Failed is set only when no
// strategy could run at all (for example the path is not a regular file);
// rendering failures degrade instead.
type Result struct {
	Path    string
	Content render.Content
	Mode    Mode
	Failed  bool
	Reason  string
}

// Engine owns the viewport and dispatches paths to render strategies:
// classify, attempt rich, fall back to degraded. It never propagates a
// rendering error to the caller.
type Engine struct {
	mu         sync.Mutex
	viewport   render.Viewport
	strategies map[media.Category]render.Strategy
	selection  string
	generation atomic.Int64
	onResult   func(Result)
}

func NewEngine() *Engine {
	return &Engine{
		viewport: render.DefaultViewport(),
		strategies: map[media.Category]render.Strategy{
			media.CategoryImage:  render.ImageRenderer{},
			media.CategoryVideo:  render.VideoFrameRenderer{},
			media.CategoryPDF:    render.NewPDFTextRenderer(),
			media.CategoryVector: render.VectorRenderer{},
			media.CategoryCode:   render.SyntaxTextRenderer{},
			media.CategoryText:   render.PlainTextRenderer{},
			media.CategoryAudio:  render.PlainTextRenderer{},
		},
	}
}

// SetStrategy overrides the renderer for one category.
func (e *Engine) SetStrategy(category media.Category, strategy render.Strategy) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.strategies[category] = strategy
}

// OnResult registers the host callback for asynchronous render completions.
func (e *Engine) OnResult(f func(Result)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onResult = f
}

func (e *Engine) Viewport() render.Viewport {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.viewport
}

// SetViewport clamps and applies new dimensions, then re-renders the
// current selection if there is one.
func (e *Engine) SetViewport(width, height int) {
	e.mu.Lock()
	e.viewport = render.Viewport{Width: width, Height: height}.Clamped()
	e.mu.Unlock()
	e.Rerender()
}

// Grow steps the viewport up one size.
func (e *Engine) Grow() {
	e.mu.Lock()
	e.viewport = e.viewport.Grown()
	e.mu.Unlock()
	e.Rerender()
}

// Shrink steps the viewport down one size, clamped at the floor.
func (e *Engine) Shrink() {
	e.mu.Lock()
	e.viewport = e.viewport.Shrunk()
	e.mu.Unlock()
	e.Rerender()
}

// Preview renders the path synchronously. It never returns an error: rich
// failures retry degraded, and degraded always yields displayable content.
func (e *Engine) Preview(path string) Result {
	e.mu.Lock()
	e.selection = path
	viewport := e.viewport
	e.mu.Unlock()
	return e.renderPath(path, viewport)
}

// PreviewAsync renders on a background goroutine and delivers through the
// OnResult callback. A render superseded by a newer selection or viewport
// change is dropped, so a stale result can never overwrite a newer one.
func (e *Engine) PreviewAsync(path string) {
	e.mu.Lock()
	e.selection = path
	viewport := e.viewport
	callback := e.onResult
	e.mu.Unlock()

	generation := e.generation.Add(1)
	go func() {
		result := e.renderPath(path, viewport)
		if e.generation.Load() != generation {
			return
		}
		if callback != nil {
			callback(result)
		}
	}()
}

// Rerender re-runs the current selection, if any, at the current viewport.
func (e *Engine) Rerender() {
	e.mu.Lock()
	path := e.selection
	e.mu.Unlock()
	if path == "" {
		return
	}
	e.PreviewAsync(path)
}

func (e *Engine) renderPath(path string, viewport render.Viewport) Result {
	info, err := os.Stat(path)
	if err != nil {
		return Result{Path: path, Failed: true, Reason: err.Error()}
	}
	if info.IsDir() {
		return Result{Path: path, Failed: true, Reason: "is a directory"}
	}

	e.mu.Lock()
	strategy := e.strategies[media.Classify(path)]
	e.mu.Unlock()
	if strategy == nil {
		strategy = render.PlainTextRenderer{}
	}

	if content, err := strategy.RenderRich(path, viewport); err == nil {
		return Result{Path: path, Content: content, Mode: ModeRich}
	}
	content := strategy.RenderDegraded(path, viewport)
	mode := ModeDegraded
	if content.Text == render.NoPreviewText {
		mode = ModeNone
	}
	return Result{Path: path, Content: content, Mode: mode}
}
