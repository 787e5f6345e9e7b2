package main

import (
	"context"
	"os"
	"time"

	"github.com/samber/lo"
	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"mosaic/pkg/mosaic"
	"mosaic/pkg/pipeline"
	"mosaic/pkg/store"
)

var ratio = flag.IntP("ratio", "r", mosaic.DefaultRatio, "block size in pixels")
var progress = flag.Bool("progress", false, "show progress bars")
var timeout = flag.Duration("timeout", 30*time.Second, "download timeout for url inputs")
var debug = flag.Bool("debug", false, "set debug")

func main() {
	flag.Usage = func() {
		_, _ = os.Stderr.WriteString("usage: mosaic [input_path] [output_path] [flags]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := newLogger(*debug)
	defer func() {
		_ = logger.Sync()
	}()

	conf := configFromArgs(flag.Args(), *ratio, *progress)

	var s *store.Store
	var p *pipeline.Pipeline

	app := fx.New(
		fx.Supply(conf, logger),
		fx.Provide(
			newStore,
			newPipeline,
		),
		fx.Populate(&s, &p),
		lo.Ternary(*debug, fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}), fx.NopLogger),
	)
	if err := app.Err(); err != nil {
		logger.With(zap.Error(err)).Fatal("setup failed")
	}

	if err := run(context.Background(), conf, s, p, logger); err != nil {
		logger.With(
			zap.String("kind", mosaic.KindOf(err).String()),
			zap.Error(err),
		).Fatal("pixelate failed")
	}
}

func newLogger(debug bool) *zap.Logger {
	if debug {
		logger, _ := zap.NewDevelopment()
		return logger
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	cfg.DisableStacktrace = true
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// configFromArgs fills the input and output paths from the positional
// arguments, keeping the defaults for the missing ones.
func configFromArgs(args []string, ratio int, progress bool) *mosaic.Config {
	c := mosaic.DefaultConfig()

	if in, err := lo.Nth(args, 0); err == nil {
		c.Input = in
	}
	if out, err := lo.Nth(args, 1); err == nil {
		c.Output = out
	}

	c.Ratio = ratio
	c.Progress = progress
	return c
}

func newStore(conf *mosaic.Config, logger *zap.Logger) (*store.Store, error) {
	opts := []store.Option{store.WithTimeout(*timeout)}
	if conf.Progress {
		opts = append(opts, store.WithProgress(os.Stderr))
	}
	return store.NewOs("", logger, opts...)
}

func newPipeline(conf *mosaic.Config, logger *zap.Logger) *pipeline.Pipeline {
	var opts []pipeline.PixelateOption
	if conf.Progress {
		opts = append(opts, pipeline.WithProgress(os.Stderr))
	}
	return pipeline.New(logger, pipeline.WithBlocks(conf.Ratio, opts...))
}
