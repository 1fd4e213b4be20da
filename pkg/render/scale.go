package render

import (
	"image"

	"github.com/nfnt/resize"
)

// fitSize computes the box (w,h) scaled to fit within (maxW,maxH) preserving
// aspect ratio. Images already inside the box keep their size; nothing is
// ever upscaled.
func fitSize(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 || maxW <= 0 || maxH <= 0 {
		return 0, 0
	}
	if w <= maxW && h <= maxH {
		return w, h
	}
	scaleW := float64(maxW) / float64(w)
	scaleH := float64(maxH) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}
	fw := int(float64(w) * scale)
	fh := int(float64(h) * scale)
	if fw < 1 {
		fw = 1
	}
	if fh < 1 {
		fh = 1
	}
	return fw, fh
}

// downscale bounds both dimensions of img by (maxW,maxH) preserving aspect
// ratio, never upscaling.
func downscale(img image.Image, maxW, maxH int) image.Image {
	return resize.Thumbnail(uint(maxW), uint(maxH), img, resize.Lanczos3)
}
