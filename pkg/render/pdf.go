package render

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	DefaultPDFMaxPages = 2
	DefaultPDFMaxChars = 5000
)

const pdfNoTextFound = "[No text found on first page]"

var _ Strategy = (*PDFTextRenderer)(nil)

// PDFTextRenderer extracts text from the first MaxPages pages. The rich path
// wraps the snippet in a fenced block for monospaced display; the degraded
// path emits the bare text.
type PDFTextRenderer struct {
	MaxPages int
	MaxChars int
}

func NewPDFTextRenderer() *PDFTextRenderer {
	return &PDFTextRenderer{
		MaxPages: DefaultPDFMaxPages,
		MaxChars: DefaultPDFMaxChars,
	}
}

func (r *PDFTextRenderer) RenderRich(path string, _ Viewport) (Content, error) {
	text, err := r.extractText(path)
	if err != nil {
		return Content{}, err
	}
	if text == pdfNoTextFound {
		return Content{Text: text, Kind: KindMessage}, nil
	}
	return Content{Text: "```\n" + text + "\n```", Kind: KindText}, nil
}

func (r *PDFTextRenderer) RenderDegraded(path string, _ Viewport) Content {
	text, err := r.extractText(path)
	if err != nil {
		return NoPreview()
	}
	return Content{Text: text, Kind: KindText}
}

func (r *PDFTextRenderer) extractText(path string) (text string, err error) {
	// The pdf package panics on some malformed files.
	defer func() {
		if p := recover(); p != nil {
			text = ""
			err = fmt.Errorf("%w: %v", ErrDecodeFailure, p)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrDecodeFailure, err)
	}
	defer func() {
		_ = f.Close()
	}()

	maxPages := r.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultPDFMaxPages
	}
	totalPages := reader.NumPage()
	if totalPages < maxPages {
		maxPages = totalPages
	}

	var sb strings.Builder
	for i := 1; i <= maxPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
	}

	text = sb.String()
	if strings.TrimSpace(text) == "" {
		return pdfNoTextFound, nil
	}
	maxChars := r.MaxChars
	if maxChars <= 0 {
		maxChars = DefaultPDFMaxChars
	}
	if len(text) > maxChars {
		text = text[:maxChars]
	}
	return text, nil
}
