package pipeline

type Option func(p *Pipeline)

func WithStage(s ...Stage) Option {
	return func(p *Pipeline) {
		p.stages = append(p.stages, s...)
	}
}

// WithBlocks adds the trim and pixelate stages for the given block size.
func WithBlocks(ratio int, opts ...PixelateOption) Option {
	return WithStage(TrimStage(ratio), PixelateStage(ratio, opts...))
}
