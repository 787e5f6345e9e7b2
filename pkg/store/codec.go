package store

import (
	"image"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"github.com/xfmoulet/qoi"

	// decoders only
	_ "golang.org/x/image/webp"
)

const formatQOI = ".qoi"

var ErrUnsupportedFormat = errors.New("unsupported image format")

// checkFormat fails early for output names no encoder is known for.
func checkFormat(path string) error {
	if strings.EqualFold(filepath.Ext(path), formatQOI) {
		return nil
	}
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return errors.Wrapf(ErrUnsupportedFormat, "extension %q", filepath.Ext(path))
	}
	return nil
}

func decode(r io.Reader) (image.Image, error) {
	return imaging.Decode(r)
}

func encode(w io.Writer, img image.Image, path string) error {
	if strings.EqualFold(filepath.Ext(path), formatQOI) {
		return qoi.Encode(w, img)
	}

	f, err := imaging.FormatFromFilename(path)
	if err != nil {
		return errors.Wrapf(ErrUnsupportedFormat, "extension %q", filepath.Ext(path))
	}

	return imaging.Encode(w, img, f)
}
