package pipeline

import (
	"mosaic/pkg/bitmap"
	"mosaic/pkg/mosaic"
)

func TrimStage(ratio int) Stage {
	return &trim{ratio: ratio}
}

type trim struct {
	ratio int
}

func (s *trim) Name() string {
	return "trim"
}

func (s *trim) Process(img *bitmap.RGB) (*bitmap.RGB, error) {
	return mosaic.Trim(img, s.ratio)
}
