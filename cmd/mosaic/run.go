package main

import (
	"context"

	"github.com/inhies/go-bytesize"
	"go.uber.org/zap"

	"mosaic/pkg/mosaic"
	"mosaic/pkg/pipeline"
	"mosaic/pkg/store"
)

// run loads conf.Input, pixelates it and writes conf.Output. Nothing is
// written when any step fails.
func run(ctx context.Context, conf *mosaic.Config, s *store.Store, p *pipeline.Pipeline, logger *zap.Logger) error {
	if err := conf.Validate(); err != nil {
		return err
	}

	img, err := s.Load(ctx, conf.Input)
	if err != nil {
		return err
	}

	out, err := p.Run(img)
	if err != nil {
		return err
	}

	size, err := s.Save(conf.Output, out)
	if err != nil {
		return err
	}

	logger.With(
		zap.String("input", conf.Input),
		zap.String("output", conf.Output),
		zap.Int("ratio", conf.Ratio),
		zap.Int("w", out.Width()),
		zap.Int("h", out.Height()),
		zap.String("size", bytesize.New(float64(size)).String()),
	).Info("pixelated")

	return nil
}
