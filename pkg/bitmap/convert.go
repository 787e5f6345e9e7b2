package bitmap

import (
	"image"
	"image/color"
)

// Convert copies src into a new RGB buffer anchored at 0,0. Alpha is
// discarded, the stored (non-premultiplied) channels are kept as they are.
// An *RGB src is returned unchanged.
func Convert(src image.Image) *RGB {
	if rgb, ok := src.(*RGB); ok {
		return rgb
	}

	b := src.Bounds()
	dst := New(b.Dx(), b.Dy())

	if n, ok := src.(*image.NRGBA); ok {
		for y := 0; y < b.Dy(); y++ {
			si := n.PixOffset(b.Min.X, b.Min.Y+y)
			di := y * dst.Stride
			for x := 0; x < b.Dx(); x++ {
				dst.Pix[di+0] = n.Pix[si+0]
				dst.Pix[di+1] = n.Pix[si+1]
				dst.Pix[di+2] = n.Pix[si+2]
				si += 4
				di += 3
			}
		}
		return dst
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			dst.SetRGB(x-b.Min.X, y-b.Min.Y, Color{R: c.R, G: c.G, B: c.B})
		}
	}

	return dst
}
