package bitmap

import (
	"image"
	"image/color"
)

// New returns a zero filled (black) buffer of w x h pixels anchored at 0,0.
// Negative sizes are treated as zero.
func New(w, h int) *RGB {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &RGB{
		Pix:    make([]uint8, 3*w*h),
		Stride: 3 * w,
		Rect:   image.Rect(0, 0, w, h),
	}
}

// RGB is a packed 24 bit pixel buffer without alpha. It implements the
// draw.Image interface.
type RGB struct {
	// Pix holds the pixels in R, G, B order. The pixel at (x, y) starts at
	// Pix[y*Stride + x*3].
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

// Bounds implements the image.Image (and draw.Image) interface.
func (p *RGB) Bounds() image.Rectangle {
	return p.Rect
}

// ColorModel implements the image.Image (and draw.Image) interface.
func (p *RGB) ColorModel() color.Model {
	return Model
}

// Opaque reports that every pixel is fully opaque, letting encoders skip
// the alpha channel.
func (p *RGB) Opaque() bool {
	return true
}

func (p *RGB) Width() int {
	return p.Rect.Dx()
}

func (p *RGB) Height() int {
	return p.Rect.Dy()
}

func (p *RGB) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}

// At implements the image.Image (and draw.Image) interface.
func (p *RGB) At(x, y int) color.Color {
	return p.RGBAt(x, y)
}

func (p *RGB) RGBAt(x, y int) Color {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Color{}
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3]
	return Color{R: s[0], G: s[1], B: s[2]}
}

// Set implements the draw.Image interface. Alpha of c is dropped.
func (p *RGB) Set(x, y int, c color.Color) {
	p.SetRGB(x, y, Model.Convert(c).(Color))
}

func (p *RGB) SetRGB(x, y int, c Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3]
	s[0] = c.R
	s[1] = c.G
	s[2] = c.B
}

// Clone returns a deep copy of p.
func (p *RGB) Clone() *RGB {
	c := &RGB{
		Pix:    make([]uint8, len(p.Pix)),
		Stride: p.Stride,
		Rect:   p.Rect,
	}
	copy(c.Pix, p.Pix)
	return c
}

// Color is an opaque 24 bit color.
type Color struct {
	R, G, B uint8
}

// RGBA implements the color.Color interface. Alpha is always 100% opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = 0xFFFF
	return
}

// Model converts any color to Color by taking its non-premultiplied
// channels and discarding alpha.
var Model = color.ModelFunc(rgbModel)

func rgbModel(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B}
}
