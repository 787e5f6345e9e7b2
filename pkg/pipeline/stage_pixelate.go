package pipeline

import (
	"io"

	"github.com/schollz/progressbar/v3"

	"mosaic/pkg/bitmap"
	"mosaic/pkg/mosaic"
)

type PixelateOption func(s *pixelate)

// WithProgress renders a bar over block rows to w.
func WithProgress(w io.Writer) PixelateOption {
	return func(s *pixelate) {
		s.progress = w
	}
}

func PixelateStage(ratio int, opts ...PixelateOption) Stage {
	s := &pixelate{ratio: ratio}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

type pixelate struct {
	ratio    int
	progress io.Writer
}

func (s *pixelate) Name() string {
	return "pixelate"
}

func (s *pixelate) Process(img *bitmap.RGB) (*bitmap.RGB, error) {
	if s.progress == nil || s.ratio < 1 {
		return mosaic.Pixelate(img, s.ratio)
	}

	_, rows := mosaic.Grid(img.Width(), img.Height(), s.ratio)
	bar := progressbar.NewOptions(rows,
		progressbar.OptionSetWriter(s.progress),
		progressbar.OptionSetDescription("Pixelating"),
		progressbar.OptionShowCount(),
	)

	out, err := mosaic.PixelateFunc(img, s.ratio, func(row, rows int) {
		_ = bar.Add(1)
	})
	if err != nil {
		return nil, err
	}

	_ = bar.Finish()
	return out, nil
}
