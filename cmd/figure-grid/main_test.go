package main

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/figure-tools/internal/imaging"
)

func parse(t *testing.T, args ...string) *gridCLI {
	t.Helper()
	var cli gridCLI
	parser, err := newParser(&cli)
	if err != nil {
		t.Fatalf("newParser failed: %v", err)
	}
	if _, err := parser.Parse(args); err != nil {
		t.Fatalf("Parse(%v) failed: %v", args, err)
	}
	return &cli
}

func writeSolid(t *testing.T, path string, c color.Color) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 50, 50))
	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			img.Set(x, y, c)
		}
	}
	if err := imaging.Save(img, path, imaging.SaveOptions{}); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestParse_Defaults(t *testing.T) {
	cli := parse(t)

	wantImages := []string{
		"r1_input_cropped.png",
		"r1_MIMO-UNetplus_cropped.png",
		"r1_restormer_cropped.png",
		"r1_ours_cropped.png",
	}
	wantCaptions := []string{"Original Image", "MIMO UNet+", "Restormer", "Ours"}

	if strings.Join(cli.Images, "|") != strings.Join(wantImages, "|") {
		t.Errorf("Images: got %v, want %v", cli.Images, wantImages)
	}
	if strings.Join(cli.Captions, "|") != strings.Join(wantCaptions, "|") {
		t.Errorf("Captions: got %v, want %v", cli.Captions, wantCaptions)
	}
	if cli.Output != "composite.jpg" {
		t.Errorf("Output: got %s, want composite.jpg", cli.Output)
	}
}

func TestRun_Success(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("GRID_FONT_PATH", "/nonexistent/arial.ttf")
	dir := t.TempDir()

	var paths []string
	for i, c := range []color.Color{color.White, color.Black, color.Gray{Y: 128}, color.NRGBA{R: 255, A: 255}} {
		p := filepath.Join(dir, string(rune('a'+i))+".png")
		writeSolid(t, p, c)
		paths = append(paths, p)
	}
	output := filepath.Join(dir, "out.jpg")

	args := append(paths, "--captions=One,Two,Three,Four", "--output="+output)
	cli := parse(t, args...)

	var out bytes.Buffer
	run(cli, &out)

	if strings.TrimSpace(out.String()) != "Composite image saved as: "+output {
		t.Fatalf("output: got %q", out.String())
	}

	dims, err := imaging.GetDimensions(output)
	if err != nil {
		t.Fatalf("GetDimensions failed: %v", err)
	}
	if dims.Width != 410 || dims.Height != 280 {
		t.Errorf("dimensions: got %dx%d, want 410x280", dims.Width, dims.Height)
	}
}

func TestRun_MissingImages(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	dir := t.TempDir()
	output := filepath.Join(dir, "out.jpg")

	cli := parse(t, filepath.Join(dir, "a.png"), filepath.Join(dir, "b.png"),
		filepath.Join(dir, "c.png"), filepath.Join(dir, "d.png"), "--output="+output)

	var out bytes.Buffer
	run(cli, &out)

	if !strings.HasPrefix(out.String(), "Error: ") || !strings.Contains(out.String(), "a.png") {
		t.Errorf("output: got %q, want an error naming a.png", out.String())
	}
}

func TestRun_WrongCaptionCount(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	cli := parse(t, "a.png", "b.png", "c.png", "d.png", "--captions=only,two")

	var out bytes.Buffer
	run(cli, &out)

	if !strings.HasPrefix(out.String(), "Error: ") {
		t.Errorf("output: got %q, want an error", out.String())
	}
}
