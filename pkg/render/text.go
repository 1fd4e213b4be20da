package render

import (
	"fmt"
	"strings"

	"github.com/datatug/filescope/pkg/fsutils"
	"github.com/mattn/go-runewidth"
)

// DefaultTextMaxBytes caps plain-text previews to avoid flooding the terminal.
const DefaultTextMaxBytes = 10 * 1024

var _ Strategy = (*PlainTextRenderer)(nil)

// PlainTextRenderer shows the head of a text file. There is no rich path
// distinct from the degraded one; binary or unreadable content degrades to
// the "no preview" marker.
type PlainTextRenderer struct {
	MaxBytes int
}

func (r PlainTextRenderer) RenderRich(path string, viewport Viewport) (Content, error) {
	data, err := r.read(path)
	if err != nil {
		return Content{}, err
	}
	if !isTextData(data) {
		return Content{}, fmt.Errorf("%w: binary content", ErrDecodeFailure)
	}
	return Content{Text: trimLines(normalizeText(data), viewport.Width), Kind: KindText}, nil
}

func (r PlainTextRenderer) RenderDegraded(path string, viewport Viewport) Content {
	data, err := r.read(path)
	if err != nil || !isTextData(data) {
		return NoPreview()
	}
	return Content{Text: trimLines(normalizeText(data), viewport.Width), Kind: KindText}
}

func (r PlainTextRenderer) read(path string) ([]byte, error) {
	maxBytes := r.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultTextMaxBytes
	}
	data, err := fsutils.ReadFileData(path, maxBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnreadable, err)
	}
	return data, nil
}

// trimLines cuts each line to the viewport width measured in display cells.
func trimLines(text string, width int) string {
	if width <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if runewidth.StringWidth(line) > width {
			lines[i] = runewidth.Truncate(line, width, "…")
		}
	}
	return strings.Join(lines, "\n")
}
