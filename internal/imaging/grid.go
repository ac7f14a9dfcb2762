package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
)

const (
	// GridColumns and GridRows fix the composite at two by two cells.
	GridColumns = 2
	GridRows    = 2

	// GridCells is the number of images (and captions) a grid takes.
	GridCells = GridColumns * GridRows
)

// Layout holds the pixel geometry of a caption grid.
type Layout struct {
	// CellWidth and CellHeight are the size every input image is
	// stretched to.
	CellWidth  int `json:"cell_width"`
	CellHeight int `json:"cell_height"`

	// Padding separates neighbouring cells in both axes.
	Padding int `json:"padding"`

	// CaptionHeight is the text band reserved beneath each cell.
	CaptionHeight int `json:"caption_height"`

	// CaptionInset offsets the caption from the cell's left edge and from
	// the bottom of its image.
	CaptionInset int `json:"caption_inset"`
}

// DefaultLayout returns 200x100 cells, 10px padding and a 30px caption
// band, giving a 410x280 canvas.
func DefaultLayout() Layout {
	return Layout{
		CellWidth:     200,
		CellHeight:    100,
		Padding:       10,
		CaptionHeight: 30,
		CaptionInset:  5,
	}
}

// Validate rejects layouts that cannot produce a canvas.
func (l Layout) Validate() error {
	if l.CellWidth <= 0 || l.CellHeight <= 0 {
		return fmt.Errorf("invalid cell size %dx%d", l.CellWidth, l.CellHeight)
	}
	if l.Padding < 0 || l.CaptionHeight < 0 || l.CaptionInset < 0 {
		return fmt.Errorf("padding, caption height and caption inset must not be negative")
	}
	return nil
}

// rowHeight is the vertical pitch of one grid row: image, caption band
// and the padding that follows it.
func (l Layout) rowHeight() int {
	return l.CellHeight + l.Padding + l.CaptionHeight
}

// CanvasSize returns the composite dimensions. Columns are separated by
// padding with none after the last one; every row, the last included, is
// followed by padding below its caption band.
func (l Layout) CanvasSize() (width, height int) {
	width = GridColumns*(l.CellWidth+l.Padding) - l.Padding
	height = GridRows * l.rowHeight()
	return width, height
}

// CellOrigin returns the top-left pixel of cell i. Cells fill row-major:
// 0 top-left, 1 top-right, 2 bottom-left, 3 bottom-right.
func (l Layout) CellOrigin(i int) image.Point {
	row := i / GridColumns
	col := i % GridColumns
	return image.Pt(col*(l.CellWidth+l.Padding), row*l.rowHeight())
}

// CellRect returns the image area of cell i.
func (l Layout) CellRect(i int) image.Rectangle {
	o := l.CellOrigin(i)
	return image.Rect(o.X, o.Y, o.X+l.CellWidth, o.Y+l.CellHeight)
}

// CaptionRect returns the caption band beneath cell i.
func (l Layout) CaptionRect(i int) image.Rectangle {
	r := l.CellRect(i)
	return image.Rect(r.Min.X, r.Max.Y, r.Max.X, r.Max.Y+l.CaptionHeight)
}

// CaptionOrigin returns the top-left corner of cell i's caption text.
func (l Layout) CaptionOrigin(i int) image.Point {
	o := l.CellOrigin(i)
	return image.Pt(o.X+l.CaptionInset, o.Y+l.CellHeight+l.CaptionInset)
}

// ComposeOptions configures Compose and ComposeFiles.
type ComposeOptions struct {
	// Layout is the grid geometry. The zero Layout selects DefaultLayout.
	Layout Layout

	// Face renders the captions. Nil selects DefaultFace.
	Face font.Face

	// CaptionColor and Background default to black and white when nil.
	CaptionColor color.Color
	Background   color.Color

	Save SaveOptions
}

func (o ComposeOptions) withDefaults() ComposeOptions {
	if o.Layout == (Layout{}) {
		o.Layout = DefaultLayout()
	}
	if o.Face == nil {
		o.Face = DefaultFace()
	}
	if o.CaptionColor == nil {
		o.CaptionColor = color.Black
	}
	if o.Background == nil {
		o.Background = color.White
	}
	return o
}

// Compose lays out four images in a 2x2 grid with a caption beneath each.
//
// images[i] and captions[i] belong to cell i. Each image is stretched to
// the cell size without preserving its aspect ratio. Cells are painted in
// index order over a canvas filled with the background colour, so
// transparent pixels show the background and the result is opaque.
// Captions are not clipped to their band.
func Compose(images []image.Image, captions []string, opts ComposeOptions) (*image.NRGBA, error) {
	if len(images) != GridCells || len(captions) != GridCells {
		return nil, fmt.Errorf("%w: got %d images and %d captions", ErrCellCount, len(images), len(captions))
	}
	opts = opts.withDefaults()
	layout := opts.Layout
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	width, height := layout.CanvasSize()
	canvas := imaging.New(width, height, opts.Background)

	for i, img := range images {
		if img == nil {
			return nil, fmt.Errorf("image for cell %d is nil", i)
		}
		resized := imaging.Resize(img, layout.CellWidth, layout.CellHeight, imaging.Linear)
		draw.Draw(canvas, layout.CellRect(i), resized, image.Point{}, draw.Over)
		drawText(canvas, layout.CaptionOrigin(i), captions[i], opts.CaptionColor, opts.Face)
	}

	return canvas, nil
}

// ComposeFiles loads the four images at paths, composes them with
// captions and writes the result to outputPath, overwriting any existing
// file. It returns outputPath.
//
// Every input is decoded before anything is drawn. A path that cannot be
// decoded fails the call with a *LoadError naming it, and no output is
// written.
func ComposeFiles(paths, captions []string, outputPath string, opts ComposeOptions) (string, error) {
	if len(paths) != GridCells || len(captions) != GridCells {
		return "", fmt.Errorf("%w: got %d images and %d captions", ErrCellCount, len(paths), len(captions))
	}

	images := make([]image.Image, len(paths))
	for i, p := range paths {
		img, err := Open(p)
		if err != nil {
			return "", err
		}
		images[i] = img
	}

	canvas, err := Compose(images, captions, opts)
	if err != nil {
		return "", err
	}

	if err := Save(canvas, outputPath, opts.Save); err != nil {
		return "", err
	}
	return outputPath, nil
}
