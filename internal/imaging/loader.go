package imaging

import (
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/disintegration/imaging"
)

// DefaultJPEGQuality matches the quality most desktop codecs use when none
// is requested.
const DefaultJPEGQuality = 95

// SaveOptions controls how Save encodes an image.
type SaveOptions struct {
	// JPEGQuality is used for .jpg/.jpeg outputs (1-100). Zero selects
	// DefaultJPEGQuality.
	JPEGQuality int
}

// Open decodes the image at path.
//
// PNG, JPEG, GIF, TIFF and BMP are supported. EXIF orientation is applied
// to JPEGs so pixel coordinates match what an image viewer shows.
//
// Every failure (missing file, permission denied, unknown or corrupt
// format) is returned as a *LoadError carrying path.
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return img, nil
}

// Save encodes img to path, choosing the format from the file extension.
// An existing file at path is overwritten.
func Save(img image.Image, path string, opts SaveOptions) error {
	quality := opts.JPEGQuality
	if quality <= 0 || quality > 100 {
		quality = DefaultJPEGQuality
	}

	if _, err := imaging.FormatFromFilename(path); err != nil {
		return fmt.Errorf("cannot save %s: %w", path, err)
	}

	if err := imaging.Save(img, path, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("failed to save image %s: %w", path, err)
	}
	return nil
}

// ImageInfo contains metadata about an image file on disk.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the format implied by the file extension ("png", "jpeg",
	// ...) or "unknown".
	Format string `json:"format"`

	// FileSizeBytes is the size of the file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// Inspect decodes the image at path and reports its dimensions, format
// and size on disk.
func Inspect(path string) (*ImageInfo, error) {
	img, err := Open(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	if f, err := imaging.FormatFromFilename(path); err == nil {
		format = strings.ToLower(f.String())
	}

	bounds := img.Bounds()
	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		FileSizeBytes: stat.Size(),
	}, nil
}

// DimensionsResult contains the width and height of an image.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GetDimensions returns the dimensions of the image at path.
func GetDimensions(path string) (*DimensionsResult, error) {
	img, err := Open(path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	return &DimensionsResult{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}
