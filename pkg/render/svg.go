package render

import (
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

var _ Strategy = (*VectorRenderer)(nil)

// VectorRenderer rasterizes SVG files at the viewport's pixel-equivalent size
// and then follows the image paths. When rasterization fails entirely the
// degraded path falls back to the raw source text.
type VectorRenderer struct {
	text PlainTextRenderer
}

func (r VectorRenderer) RenderRich(path string, viewport Viewport) (Content, error) {
	pxW, pxH := viewport.PixelSize()
	img, err := rasterizeSVG(path, pxW, pxH)
	if err != nil {
		return Content{}, err
	}
	return renderPixels(img, viewport), nil
}

func (r VectorRenderer) RenderDegraded(path string, viewport Viewport) Content {
	w := min(80, viewport.Width)
	h := min(40, viewport.Height)
	img, err := rasterizeSVG(path, w*2, h*2)
	if err != nil {
		// No rasterizer output at all: show the source.
		return r.text.RenderDegraded(path, viewport)
	}
	return Content{Text: asciiArt(img, w, h), Kind: KindASCII}
}

// rasterizeSVG renders the file into an RGBA bitmap fitted to (maxW,maxH),
// preserving the viewBox aspect ratio.
func rasterizeSVG(path string, maxW, maxH int) (img image.Image, err error) {
	// oksvg panics on some malformed path data.
	defer func() {
		if p := recover(); p != nil {
			img = nil
			err = fmt.Errorf("%w: %v", ErrRasterUnavailable, p)
		}
	}()

	icon, err := oksvg.ReadIcon(path, oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRasterUnavailable, err)
	}

	vbW := int(icon.ViewBox.W)
	vbH := int(icon.ViewBox.H)
	if vbW <= 0 || vbH <= 0 {
		vbW, vbH = maxW, maxH
	}
	w, h := fitSize(vbW, vbH, maxW, maxH)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: degenerate view box", ErrRasterUnavailable)
	}

	icon.SetTarget(0, 0, float64(w), float64(h))
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)
	return rgba, nil
}
