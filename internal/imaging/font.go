package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	// DefaultFontPath is the preferred caption font. A bare file name is
	// resolved against the working directory.
	DefaultFontPath = "arial.ttf"

	// DefaultFontSize is the caption size in pixels.
	DefaultFontSize = 16
)

// DefaultFace returns the bundled bitmap font used when no preferred font
// can be loaded.
func DefaultFace() font.Face {
	return basicfont.Face7x13
}

// LoadFontFace parses the TrueType/OpenType font at path and returns a
// face of the given pixel size.
func LoadFontFace(path string, size float64) (font.Face, error) {
	if path == "" {
		return nil, fmt.Errorf("no font path given")
	}
	if size <= 0 {
		return nil, fmt.Errorf("invalid font size %.1f", size)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}

	// At 72 DPI one point is one pixel.
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face for %s: %w", path, err)
	}
	return face, nil
}

// ResolveFace returns the preferred font at path, or DefaultFace when it
// is missing or unusable. The returned face is never nil; a non-nil error
// only explains why the fallback was taken.
func ResolveFace(path string, size float64) (font.Face, error) {
	face, err := LoadFontFace(path, size)
	if err != nil {
		return DefaultFace(), err
	}
	return face, nil
}

// drawText renders text with its top-left corner at origin. font.Drawer
// positions glyphs on the baseline, so the dot starts one ascent below
// origin.
func drawText(dst draw.Image, origin image.Point, text string, c color.Color, face font.Face) {
	if text == "" {
		return
	}
	if face == nil {
		face = DefaultFace()
	}

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(origin.X),
			Y: fixed.I(origin.Y) + face.Metrics().Ascent,
		},
	}
	d.DrawString(text)
}
