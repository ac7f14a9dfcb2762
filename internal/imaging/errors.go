package imaging

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyRegion is returned when a clamped crop box has no area.
	// No raster format can store a zero-size image, so nothing is written.
	ErrEmptyRegion = errors.New("crop region is empty after clamping")

	// ErrCellCount is returned when Compose does not get exactly one
	// image and one caption per grid cell.
	ErrCellCount = errors.New("grid needs exactly 4 images and 4 captions")
)

// LoadError reports an image path that could not be decoded into pixels,
// either because the file is missing or unreadable or because its
// contents are not a supported raster format.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("could not load image %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
