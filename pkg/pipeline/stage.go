package pipeline

import "mosaic/pkg/bitmap"

// Stage takes ownership of img and returns the buffer handed to the next
// stage, which may be img itself.
type Stage interface {
	Name() string
	Process(img *bitmap.RGB) (*bitmap.RGB, error)
}
