package render

import (
	"fmt"
	"path/filepath"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/datatug/filescope/pkg/chroma2tcell"
	"github.com/datatug/filescope/pkg/fsutils"
	"github.com/datatug/filescope/pkg/media"
)

// DefaultCodeMaxBytes caps syntax-highlighted previews; highlighting a huge
// file blocks the render goroutine for too long.
const DefaultCodeMaxBytes = 1024 * 1024

const DefaultCodeStyle = "dracula"

var _ Strategy = (*SyntaxTextRenderer)(nil)

// SyntaxTextRenderer colorizes source files with line numbers. On any
// failure the degraded path yields the literal "no preview" marker, as a
// half-highlighted file is worse than none.
type SyntaxTextRenderer struct {
	Style    string
	MaxBytes int
}

func (r SyntaxTextRenderer) RenderRich(path string, _ Viewport) (Content, error) {
	maxBytes := r.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultCodeMaxBytes
	}
	data, err := fsutils.ReadFileData(path, maxBytes)
	if err != nil {
		return Content{}, fmt.Errorf("%w: %s", ErrUnreadable, err)
	}
	if !isTextData(data) {
		return Content{}, fmt.Errorf("%w: binary content", ErrDecodeFailure)
	}

	style := r.Style
	if style == "" {
		style = DefaultCodeStyle
	}
	name := filepath.Base(path)
	var colorized string
	if lang, ok := media.Language(name); ok {
		colorized, err = chroma2tcell.ColorizeByLanguage(string(data), style, lang)
	} else {
		lexer := lexers.Match(name)
		if lexer == nil {
			lexer = lexers.Fallback
		}
		colorized, err = chroma2tcell.Colorize(string(data), style, lexer)
	}
	if err != nil {
		return Content{}, fmt.Errorf("%w: %s", ErrDecodeFailure, err)
	}
	return Content{Text: chroma2tcell.WithLineNumbers(colorized), Kind: KindCode}, nil
}

func (r SyntaxTextRenderer) RenderDegraded(string, Viewport) Content {
	return NoPreview()
}
