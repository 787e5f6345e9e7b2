package mosaic

import (
	"image"

	"mosaic/pkg/bitmap"
)

// Grid returns the number of whole blocks along each axis.
func Grid(w, h, ratio int) (cols, rows int) {
	return w / ratio, h / ratio
}

// BlockRect is the pixel region of the block at the given grid position.
func BlockRect(row, col, ratio int) image.Rectangle {
	return image.Rect(col*ratio, row*ratio, (col+1)*ratio, (row+1)*ratio)
}

// Average returns the per channel mean of the pixels of src inside r,
// truncated towards zero.
func Average(src *bitmap.RGB, r image.Rectangle) bitmap.Color {
	r = r.Intersect(src.Rect)
	n := uint64(r.Dx() * r.Dy())
	if n == 0 {
		return bitmap.Color{}
	}

	var sr, sg, sb uint64
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := src.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			sr += uint64(src.Pix[i+0])
			sg += uint64(src.Pix[i+1])
			sb += uint64(src.Pix[i+2])
			i += 3
		}
	}

	return bitmap.Color{R: uint8(sr / n), G: uint8(sg / n), B: uint8(sb / n)}
}

// Fill paints every pixel of dst inside r with c.
func Fill(dst *bitmap.RGB, r image.Rectangle, c bitmap.Color) {
	r = r.Intersect(dst.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := dst.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.Pix[i+0] = c.R
			dst.Pix[i+1] = c.G
			dst.Pix[i+2] = c.B
			i += 3
		}
	}
}

// Pixelate returns a new buffer of the same size as src where every full
// ratio x ratio block holds the average color of that block in src.
func Pixelate(src *bitmap.RGB, ratio int) (*bitmap.RGB, error) {
	return PixelateFunc(src, ratio, nil)
}

// PixelateFunc is Pixelate calling onRow after each finished block row.
//
// Only whole blocks are visited. When src was not trimmed first, the
// trailing partial column and row stay black in the result.
func PixelateFunc(src *bitmap.RGB, ratio int, onRow func(row, rows int)) (*bitmap.RGB, error) {
	if err := checkRatio("pixelate", ratio); err != nil {
		return nil, err
	}

	dst := bitmap.New(src.Width(), src.Height())
	cols, rows := Grid(src.Width(), src.Height(), ratio)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			r := BlockRect(row, col, ratio).Add(src.Rect.Min)
			Fill(dst, r.Sub(src.Rect.Min), Average(src, r))
		}
		if onRow != nil {
			onRow(row, rows)
		}
	}

	return dst, nil
}
