package imaging

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// CroppedSuffix is inserted before the extension of a cropped output file.
const CroppedSuffix = "_cropped"

// BoundingBox is an axis-aligned rectangle given by its top-left corner
// and its size, relative to the image origin.
type BoundingBox struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Clamp returns the box constrained to an image of the given size.
//
// X and Y are pulled into [0, width] and [0, height]. Width and Height are
// then cut so the box ends at or before the right and bottom edges. A box
// lying entirely outside the image, or one requested with a negative
// size, collapses to zero width or height rather than going negative.
func (b BoundingBox) Clamp(width, height int) BoundingBox {
	x := clampInt(b.X, 0, width)
	y := clampInt(b.Y, 0, height)
	return BoundingBox{
		X:      x,
		Y:      y,
		Width:  clampInt(b.Width, 0, width-x),
		Height: clampInt(b.Height, 0, height-y),
	}
}

// Empty reports whether the box covers no pixels.
func (b BoundingBox) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Rect converts the box to an image.Rectangle.
func (b BoundingBox) Rect() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.Width, b.Y+b.Height)
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", b.X, b.Y, b.Width, b.Height)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// CropImage clamps box to img and returns the selected pixels as a new
// image whose bounds start at (0,0). The box is relative to img's
// top-left corner even if img.Bounds().Min is not the origin.
//
// A box that clamps to nothing yields an empty image, not an error.
func CropImage(img image.Image, box BoundingBox) (*image.NRGBA, BoundingBox) {
	bounds := img.Bounds()
	clamped := box.Clamp(bounds.Dx(), bounds.Dy())
	if clamped.Empty() {
		return &image.NRGBA{}, clamped
	}
	return imaging.Crop(img, clamped.Rect().Add(bounds.Min)), clamped
}

// CroppedPath derives the output path for a cropped copy of path by
// inserting CroppedSuffix before the extension:
//
//	photo.png      -> photo_cropped.png
//	dir/a.b.jpg    -> dir/a.b_cropped.jpg
//	notes          -> notes_cropped
//
// A leading dot in the file name does not start an extension.
func CroppedPath(path string) string {
	stem, ext := splitExt(path)
	return stem + CroppedSuffix + ext
}

// splitExt splits path into stem and extension, ignoring leading dots of
// the base name so ".hidden" has no extension.
func splitExt(path string) (string, string) {
	base := filepath.Base(path)
	trimmed := strings.TrimLeft(base, ".")
	ext := filepath.Ext(trimmed)
	if ext == "" || ext == trimmed {
		return path, ""
	}
	return strings.TrimSuffix(path, ext), ext
}

// CropFile crops box out of the image at path and writes it beside the
// input under CroppedPath(path), overwriting any existing file. It returns
// the output path.
//
// The box is clamped to the image first. If nothing remains the call fails
// with ErrEmptyRegion and no file is written. Load failures are returned as
// *LoadError.
func CropFile(path string, box BoundingBox, opts SaveOptions) (string, error) {
	img, err := Open(path)
	if err != nil {
		return "", err
	}
	return cropAndSave(img, path, box, opts)
}

func cropAndSave(img image.Image, path string, box BoundingBox, opts SaveOptions) (string, error) {
	cropped, clamped := CropImage(img, box)
	if clamped.Empty() {
		return "", fmt.Errorf("%w: requested %s, clamped %s", ErrEmptyRegion, box, clamped)
	}

	outputPath := CroppedPath(path)
	if err := Save(cropped, outputPath, opts); err != nil {
		return "", err
	}
	return outputPath, nil
}

// QuadrantBox returns the box for a named region of an image of the given
// size. Halves and quadrants split at width/2 and height/2; "center" is
// the middle half in each axis.
func QuadrantBox(width, height int, region string) (BoundingBox, error) {
	midX := width / 2
	midY := height / 2

	var x1, y1, x2, y2 int

	switch region {
	case "top-left":
		x1, y1, x2, y2 = 0, 0, midX, midY
	case "top-right":
		x1, y1, x2, y2 = midX, 0, width, midY
	case "bottom-left":
		x1, y1, x2, y2 = 0, midY, midX, height
	case "bottom-right":
		x1, y1, x2, y2 = midX, midY, width, height
	case "top-half":
		x1, y1, x2, y2 = 0, 0, width, midY
	case "bottom-half":
		x1, y1, x2, y2 = 0, midY, width, height
	case "left-half":
		x1, y1, x2, y2 = 0, 0, midX, height
	case "right-half":
		x1, y1, x2, y2 = midX, 0, width, height
	case "center":
		qW := width / 4
		qH := height / 4
		x1, y1, x2, y2 = qW, qH, width-qW, height-qH
	default:
		return BoundingBox{}, fmt.Errorf("unknown region: %s", region)
	}

	return BoundingBox{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}, nil
}

// CropQuadrantFile is CropFile for a named region (see QuadrantBox). An
// unknown region fails before anything is written.
func CropQuadrantFile(path, region string, opts SaveOptions) (string, error) {
	img, err := Open(path)
	if err != nil {
		return "", err
	}
	bounds := img.Bounds()
	box, err := QuadrantBox(bounds.Dx(), bounds.Dy(), region)
	if err != nil {
		return "", err
	}
	return cropAndSave(img, path, box, opts)
}
