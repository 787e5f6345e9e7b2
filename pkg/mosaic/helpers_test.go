package mosaic

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mosaic/pkg/bitmap"
)

func solid(w, h int, c bitmap.Color) *bitmap.RGB {
	p := bitmap.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p.SetRGB(x, y, c)
		}
	}
	return p
}

// gradient encodes the column in R and the row in G.
func gradient(w, h int) *bitmap.RGB {
	p := bitmap.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p.SetRGB(x, y, bitmap.Color{R: uint8(x), G: uint8(y), B: uint8((x * 7) ^ (y * 11))})
		}
	}
	return p
}

func requireFlatBlocks(t *testing.T, p *bitmap.RGB, ratio int) {
	t.Helper()
	cols, rows := Grid(p.Width(), p.Height(), ratio)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			r := BlockRect(row, col, ratio)
			want := p.RGBAt(r.Min.X, r.Min.Y)
			for y := r.Min.Y; y < r.Max.Y; y++ {
				for x := r.Min.X; x < r.Max.X; x++ {
					require.Equal(t, want, p.RGBAt(x, y), "block %d,%d pixel %d,%d", row, col, x, y)
				}
			}
		}
	}
}
