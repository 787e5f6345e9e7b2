package pipeline

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"mosaic/pkg/bitmap"
)

func New(logger *zap.Logger, opts ...Option) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}

	p := &Pipeline{
		log: logger.With(zap.String("via", "pipeline")),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

type Pipeline struct {
	log    *zap.Logger
	stages []Stage
}

func (p *Pipeline) Stages() []Stage {
	return p.stages
}

// Run passes img through every stage in order and returns the last output.
func (p *Pipeline) Run(img *bitmap.RGB) (*bitmap.RGB, error) {
	for _, s := range p.stages {
		start := time.Now()
		log := p.log.With(zap.String("stage", s.Name()))

		out, err := s.Process(img)
		if err != nil {
			return nil, fmt.Errorf("stage %s failed: %w", s.Name(), err)
		}

		log.With(
			zap.String("in", sizeOf(img)),
			zap.String("out", sizeOf(out)),
			zap.String("cost", time.Since(start).String()),
		).Debug("stage done")

		if empty(out) && !empty(img) {
			log.With(zap.String("size", sizeOf(out))).Warn("empty block grid")
		}

		img = out
	}

	return img, nil
}

func empty(img *bitmap.RGB) bool {
	return img.Width() == 0 || img.Height() == 0
}

func sizeOf(img *bitmap.RGB) string {
	return fmt.Sprintf("%dx%d", img.Width(), img.Height())
}
