package render

// Viewport is the character-cell box constraining preview output.
type Viewport struct {
	Width  int
	Height int
}

const (
	DefaultWidth  = 100
	DefaultHeight = 50

	SizeStepWidth  = 20
	SizeStepHeight = 10

	MinWidth  = 20
	MinHeight = 10
)

func DefaultViewport() Viewport {
	return Viewport{Width: DefaultWidth, Height: DefaultHeight}
}

// Grown returns the viewport increased by one step.
func (v Viewport) Grown() Viewport {
	return Viewport{
		Width:  v.Width + SizeStepWidth,
		Height: v.Height + SizeStepHeight,
	}
}

// Shrunk returns the viewport decreased by one step, clamped at the floor.
func (v Viewport) Shrunk() Viewport {
	return Viewport{
		Width:  max(MinWidth, v.Width-SizeStepWidth),
		Height: max(MinHeight, v.Height-SizeStepHeight),
	}
}

// Clamped enforces the minimum box size.
func (v Viewport) Clamped() Viewport {
	return Viewport{
		Width:  max(MinWidth, v.Width),
		Height: max(MinHeight, v.Height),
	}
}

// PixelSize is the pixel-equivalent of the cell box: one pixel per column,
// two pixels per row (half-block rendering packs two pixels into each cell).
func (v Viewport) PixelSize() (width, height int) {
	return v.Width, v.Height * 2
}
