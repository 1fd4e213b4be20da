package render

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestViewportShrunk(t *testing.T) {
	t.Run("one_step_down", func(t *testing.T) {
		v := Viewport{Width: 100, Height: 50}.Shrunk()
		assert.Equal(t, Viewport{Width: 80, Height: 40}, v)
	})

	t.Run("repeated_shrinks_never_go_below_floor", func(t *testing.T) {
		v := Viewport{Width: 100, Height: 50}
		for i := 0; i < 20; i++ {
			v = v.Shrunk()
		}
		assert.Equal(t, Viewport{Width: MinWidth, Height: MinHeight}, v)
	})
}

func TestViewportGrown(t *testing.T) {
	v := Viewport{Width: 100, Height: 50}.Grown()
	assert.Equal(t, Viewport{Width: 120, Height: 60}, v)
}

func TestViewportClamped(t *testing.T) {
	v := Viewport{Width: 1, Height: 1}.Clamped()
	assert.Equal(t, Viewport{Width: MinWidth, Height: MinHeight}, v)

	v = Viewport{Width: 55, Height: 33}.Clamped()
	assert.Equal(t, Viewport{Width: 55, Height: 33}, v)
}

func TestViewportPixelSize(t *testing.T) {
	w, h := Viewport{Width: 40, Height: 20}.PixelSize()
	assert.Equal(t, 40, w)
	assert.Equal(t, 40, h)
}
