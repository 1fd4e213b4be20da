package render

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/riff"
	_ "golang.org/x/image/vp8"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

var _ Strategy = (*ImageRenderer)(nil)

// ImageRenderer draws raster images as a colored half-block grid, with
// glyph-ramp art as the degraded path.
type ImageRenderer struct{}

func (r ImageRenderer) RenderRich(path string, viewport Viewport) (Content, error) {
	img, err := decodeImageFile(path)
	if err != nil {
		return Content{}, err
	}
	return renderPixels(img, viewport), nil
}

func (r ImageRenderer) RenderDegraded(path string, viewport Viewport) Content {
	img, err := decodeImageFile(path)
	if err != nil {
		return NoPreview()
	}
	return renderASCII(img, viewport)
}

// renderPixels packs two image rows per cell row using the upper half block,
// foreground = top pixel, background = bottom pixel.
func renderPixels(img image.Image, viewport Viewport) Content {
	pxW, pxH := viewport.PixelSize()
	scaled := downscale(img, pxW, pxH)
	bounds := scaled.Bounds()
	var sb strings.Builder
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		if y > bounds.Min.Y {
			sb.WriteByte('\n')
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			top := hexColor(scaled, x, y)
			bottom := top
			if y+1 < bounds.Max.Y {
				bottom = hexColor(scaled, x, y+1)
			}
			sb.WriteString("[" + top + ":" + bottom + "]▀")
		}
		sb.WriteString("[-:-]")
	}
	return Content{Text: sb.String(), Kind: KindPixels}
}

func renderASCII(img image.Image, viewport Viewport) Content {
	return Content{
		Text: asciiArt(img, viewport.Width, viewport.Height),
		Kind: KindASCII,
	}
}

func hexColor(img image.Image, x, y int) string {
	r, g, b, _ := img.At(x, y).RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

func decodeImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnreadable, err)
	}
	defer func() {
		_ = f.Close()
	}()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDecodeFailure, err)
	}
	return img, nil
}

// ImageMeta describes a decodable image without decoding all pixels.
type ImageMeta struct {
	Format string
	Width  int
	Height int
}

// GetImageMeta probes format and dimensions via the registered decoders.
func GetImageMeta(path string) (meta *ImageMeta) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer func() {
		_ = f.Close()
	}()
	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return
	}
	return &ImageMeta{
		Format: strings.ToUpper(format),
		Width:  cfg.Width,
		Height: cfg.Height,
	}
}
