package store

import (
	"bytes"
	"context"
	"image"
	"io"

	"github.com/inhies/go-bytesize"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"mosaic/pkg/bitmap"
	"mosaic/pkg/mosaic"
)

// New returns a Store reading and writing images through fs.
func New(fs afero.Fs, logger *zap.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Store{
		fs:  fs,
		log: logger.With(zap.String("via", "store")),
	}
	s.dl = NewDownloader(s.log)

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// NewOs is New over the local file system, rooted at dir when not empty.
func NewOs(dir string, logger *zap.Logger, opts ...Option) (*Store, error) {
	fs, err := newFs(dir)
	if err != nil {
		return nil, errors.Wrap(err, "create store failed")
	}
	return New(fs, logger, opts...), nil
}

type Store struct {
	fs  afero.Fs
	dl  *Downloader
	log *zap.Logger
}

// Load decodes the image at path into an RGB buffer. Paths starting with
// http:// or https:// are downloaded first.
func (s *Store) Load(ctx context.Context, path string) (*bitmap.RGB, error) {
	var r io.Reader

	if isURL(path) {
		bs, err := s.dl.Get(ctx, path)
		if err != nil {
			return nil, &mosaic.Error{Kind: mosaic.KindFetch, Op: "load", Path: path, Err: err}
		}
		r = bytes.NewReader(bs)
	} else {
		f, err := s.fs.Open(path)
		if err != nil {
			return nil, &mosaic.Error{Kind: mosaic.KindDecode, Op: "load", Path: path, Err: errors.Wrap(err, "open failed")}
		}
		defer func() {
			_ = f.Close()
		}()
		r = f
	}

	img, err := decode(r)
	if err != nil {
		return nil, &mosaic.Error{Kind: mosaic.KindDecode, Op: "load", Path: path, Err: errors.Wrap(err, "image decode failed")}
	}

	rgb := bitmap.Convert(img)
	s.log.With(
		zap.String("path", path),
		zap.Int("w", rgb.Width()),
		zap.Int("h", rgb.Height()),
	).Debug("decoded")

	return rgb, nil
}

// Save encodes img to path in the format named by its extension and returns
// the written size. The image is written to a temporary sibling first, so
// nothing is left at path when encoding fails.
func (s *Store) Save(path string, img image.Image) (int64, error) {
	fail := func(err error) (int64, error) {
		return 0, &mosaic.Error{Kind: mosaic.KindEncode, Op: "save", Path: path, Err: err}
	}

	if err := checkFormat(path); err != nil {
		return fail(err)
	}

	tmp := tmpName(path)
	f, err := s.fs.Create(tmp)
	if err != nil {
		return fail(errors.Wrap(err, "create failed"))
	}

	if err := encode(f, img, path); err != nil {
		_ = f.Close()
		_ = s.fs.Remove(tmp)
		return fail(errors.Wrap(err, "image encode failed"))
	}

	if err := f.Close(); err != nil {
		_ = s.fs.Remove(tmp)
		return fail(errors.Wrap(err, "close failed"))
	}

	if err := s.fs.Rename(tmp, path); err != nil {
		_ = s.fs.Remove(tmp)
		return fail(errors.Wrap(err, "rename failed"))
	}

	var size int64
	if info, err := s.fs.Stat(path); err == nil {
		size = info.Size()
	}

	s.log.With(
		zap.String("path", path),
		zap.String("size", bytesize.New(float64(size)).String()),
	).Debug("saved")

	return size, nil
}
