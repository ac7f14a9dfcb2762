package imaging

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

// writeTestFont writes the Go Regular TrueType font to the test's temp dir.
func writeTestFont(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "goregular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0644); err != nil {
		t.Fatalf("failed to write font: %v", err)
	}
	return path
}

func TestLoadFontFace(t *testing.T) {
	face, err := LoadFontFace(writeTestFont(t), 16)
	if err != nil {
		t.Fatalf("LoadFontFace failed: %v", err)
	}
	defer face.Close()

	m := face.Metrics()
	if m.Ascent.Ceil() <= 0 || m.Height.Ceil() < 14 || m.Height.Ceil() > 24 {
		t.Errorf("unexpected metrics for a 16px face: ascent %d, height %d", m.Ascent.Ceil(), m.Height.Ceil())
	}
}

func TestLoadFontFace_Errors(t *testing.T) {
	garbage := filepath.Join(t.TempDir(), "garbage.ttf")
	if err := os.WriteFile(garbage, []byte("not a font"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	tests := []struct {
		name string
		path string
		size float64
	}{
		{"empty path", "", 16},
		{"missing file", "/nonexistent/arial.ttf", 16},
		{"not a font", garbage, 16},
		{"zero size", writeTestFont(t), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadFontFace(tt.path, tt.size); err == nil {
				t.Error("LoadFontFace should fail")
			}
		})
	}
}

func TestResolveFace_FallsBack(t *testing.T) {
	face, err := ResolveFace("/nonexistent/arial.ttf", 16)
	if face != basicfont.Face7x13 {
		t.Errorf("ResolveFace should fall back to basicfont.Face7x13, got %T", face)
	}
	if err == nil {
		t.Error("ResolveFace should report why it fell back")
	}
}

func TestResolveFace_Preferred(t *testing.T) {
	face, err := ResolveFace(writeTestFont(t), 16)
	if err != nil {
		t.Fatalf("ResolveFace failed: %v", err)
	}
	if face == basicfont.Face7x13 {
		t.Error("ResolveFace should use the preferred font when it loads")
	}
}

func countDark(img image.Image, r image.Rectangle) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			cr, cg, cb := rgb8(img, x, y)
			if cr < 128 && cg < 128 && cb < 128 {
				n++
			}
		}
	}
	return n
}

func TestDrawText(t *testing.T) {
	img := createInMemoryImage(100, 30, color.White)

	drawText(img, image.Pt(5, 5), "Hello", color.Black, DefaultFace())

	if countDark(img, img.Bounds()) == 0 {
		t.Error("text should leave dark pixels")
	}
	// Nothing is drawn above the requested top edge.
	if countDark(img, image.Rect(0, 0, 100, 5)) != 0 {
		t.Error("text should start at the requested top edge")
	}
}

func TestDrawText_NilFaceAndEmptyString(t *testing.T) {
	img := createInMemoryImage(60, 30, color.White)

	drawText(img, image.Pt(2, 2), "", color.Black, nil)
	if countDark(img, img.Bounds()) != 0 {
		t.Error("empty text should draw nothing")
	}

	drawText(img, image.Pt(2, 2), "ok", color.Black, nil)
	if countDark(img, img.Bounds()) == 0 {
		t.Error("nil face should fall back to the default face")
	}
}

func TestDrawText_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(20, 20, color.White)

	// Should not panic when text runs past the edges.
	drawText(img, image.Pt(15, 15), "overflowing caption", color.Black, DefaultFace())
	drawText(img, image.Pt(-30, -30), "negative", color.Black, DefaultFace())
}
