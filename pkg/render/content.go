package render

// Kind tells the host how to display a piece of content.
type Kind string

const (
	KindPixels  Kind = "pixels"  // half-block grid with tview color tags
	KindASCII   Kind = "ascii"   // monochrome glyph art
	KindCode    Kind = "code"    // colorized text with tview tags
	KindText    Kind = "text"    // plain text, no tag interpretation
	KindMessage Kind = "message" // status line such as "No preview available"
)

type Content struct {
	Text string
	Kind Kind
}

const NoPreviewText = "No preview available"

func NoPreview() Content {
	return Content{Text: NoPreviewText, Kind: KindMessage}
}

func Message(text string) Content {
	return Content{Text: text, Kind: KindMessage}
}

// Strategy renders one media category. RenderRich may fail; RenderDegraded
// always returns something displayable.
type Strategy interface {
	RenderRich(path string, viewport Viewport) (Content, error)
	RenderDegraded(path string, viewport Viewport) Content
}
