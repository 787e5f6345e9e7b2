package bitmap

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	p := New(4, 3)
	assert.Equal(t, 4, p.Width())
	assert.Equal(t, 3, p.Height())
	assert.Equal(t, 12, p.Stride)
	assert.Len(t, p.Pix, 36)
	assert.Equal(t, Color{}, p.RGBAt(3, 2))

	empty := New(-1, 5)
	assert.Equal(t, 0, empty.Width())
	assert.Empty(t, empty.Pix)
}

func TestSetAndAt(t *testing.T) {
	p := New(2, 2)
	p.SetRGB(1, 0, Color{R: 10, G: 20, B: 30})
	p.Set(0, 1, color.RGBA{R: 1, G: 2, B: 3, A: 255})

	assert.Equal(t, Color{R: 10, G: 20, B: 30}, p.RGBAt(1, 0))
	assert.Equal(t, Color{R: 1, G: 2, B: 3}, p.RGBAt(0, 1))
	assert.Equal(t, []uint8{0, 0, 0, 10, 20, 30, 1, 2, 3, 0, 0, 0}, p.Pix)

	// out of bounds is ignored
	p.SetRGB(2, 2, Color{R: 255})
	assert.Equal(t, Color{}, p.RGBAt(2, 2))
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := Color{R: 255, G: 128, B: 0}.RGBA()
	assert.Equal(t, uint32(0xFFFF), r)
	assert.Equal(t, uint32(0x8080), g)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0xFFFF), a)
}

func TestClone(t *testing.T) {
	p := New(1, 1)
	p.SetRGB(0, 0, Color{R: 7})
	c := p.Clone()
	c.SetRGB(0, 0, Color{R: 9})
	assert.Equal(t, uint8(7), p.RGBAt(0, 0).R)
	assert.Equal(t, uint8(9), c.RGBAt(0, 0).R)
}

func TestConvert(t *testing.T) {
	t.Run("nrgba drops alpha", func(t *testing.T) {
		src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
		src.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 10})
		src.SetNRGBA(1, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 255})

		dst := Convert(src)
		require.Equal(t, image.Rect(0, 0, 2, 1), dst.Bounds())
		assert.Equal(t, Color{R: 200, G: 100, B: 50}, dst.RGBAt(0, 0))
		assert.Equal(t, Color{R: 1, G: 2, B: 3}, dst.RGBAt(1, 0))
	})

	t.Run("offset bounds", func(t *testing.T) {
		src := image.NewRGBA(image.Rect(5, 5, 7, 7))
		src.SetRGBA(6, 6, color.RGBA{R: 9, G: 8, B: 7, A: 255})

		dst := Convert(src)
		assert.Equal(t, image.Rect(0, 0, 2, 2), dst.Bounds())
		assert.Equal(t, Color{R: 9, G: 8, B: 7}, dst.RGBAt(1, 1))
	})

	t.Run("gray", func(t *testing.T) {
		src := image.NewGray(image.Rect(0, 0, 1, 1))
		src.SetGray(0, 0, color.Gray{Y: 77})
		assert.Equal(t, Color{R: 77, G: 77, B: 77}, Convert(src).RGBAt(0, 0))
	})

	t.Run("rgb passthrough", func(t *testing.T) {
		src := New(1, 1)
		assert.Same(t, src, Convert(src))
	})
}
