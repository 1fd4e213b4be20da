package render

import (
	"image"
	"strings"
)

// asciiRamp orders ten glyphs dark to light; index selection below is part of
// the output contract and must stay byte-stable.
const asciiRamp = "@%#*+=-:. "

// asciiArt converts img to glyph-ramp art bounded by (maxW,maxH) cells.
// Each pixel maps to one glyph: index = gray * (len(ramp)-1) / 255 with
// ITU-R 601 luma, so identical input always yields identical output.
func asciiArt(img image.Image, maxW, maxH int) string {
	scaled := downscale(img, maxW, maxH)
	bounds := scaled.Bounds()
	rows := make([]string, 0, bounds.Dy())
	var sb strings.Builder
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		sb.Reset()
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			sb.WriteByte(asciiRamp[rampIndex(grayAt(scaled, x, y))])
		}
		rows = append(rows, sb.String())
	}
	return strings.Join(rows, "\n")
}

func rampIndex(gray uint8) int {
	return int(gray) * (len(asciiRamp) - 1) / 255
}

// grayAt returns the 8-bit ITU-R 601 luma of the pixel.
func grayAt(img image.Image, x, y int) uint8 {
	r, g, b, _ := img.At(x, y).RGBA()
	r8 := r >> 8
	g8 := g >> 8
	b8 := b >> 8
	return uint8((r8*299 + g8*587 + b8*114) / 1000)
}
