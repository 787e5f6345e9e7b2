package mosaic

import (
	"github.com/disintegration/imaging"

	"mosaic/pkg/bitmap"
)

// Trim crops src so both sides are multiples of ratio. A src that already
// fits is returned as is. Otherwise the whole image is resampled with a
// nearest-neighbour filter to the truncated size, so the result is a
// subsample of src rather than a plain top-left crop.
func Trim(src *bitmap.RGB, ratio int) (*bitmap.RGB, error) {
	if err := checkRatio("trim", ratio); err != nil {
		return nil, err
	}

	w, h := src.Width(), src.Height()
	rw, rh := w%ratio, h%ratio
	if rw == 0 && rh == 0 {
		return src, nil
	}

	tw, th := w-rw, h-rh
	// imaging keeps the aspect ratio when one side is zero
	if tw == 0 || th == 0 {
		return bitmap.New(tw, th), nil
	}

	return bitmap.Convert(imaging.Resize(src, tw, th, imaging.NearestNeighbor)), nil
}
