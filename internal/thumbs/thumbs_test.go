package thumbs

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writePNG creates a flat-color test image of the given size.
func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func decodeJPEG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := jpeg.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func TestGenerateResizesWide(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "photo.png"), 960, 480)

	report, err := Generate(dir, Options{Width: 480, Quality: 80}, nil)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if report.Generated != 1 || report.Skipped != 0 || report.Failed != 0 {
		t.Fatalf("report = %+v, expected 1 generated", report)
	}

	out := filepath.Join(dir, "photo_thumb.jpg")
	img := decodeJPEG(t, out)
	if img.Bounds().Dx() != 480 {
		t.Errorf("thumb width = %d, expected 480", img.Bounds().Dx())
	}
	if img.Bounds().Dy() != 240 {
		t.Errorf("thumb height = %d, expected 240 (aspect preserved)", img.Bounds().Dy())
	}
}

func TestGenerateNeverUpscales(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "tiny.png"), 100, 60)

	if _, err := Generate(dir, Options{Width: 480}, nil); err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	img := decodeJPEG(t, filepath.Join(dir, "tiny_thumb.jpg"))
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 60 {
		t.Errorf("thumb = %dx%d, expected original 100x60", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestGenerateSkipsExisting(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "photo.png"), 600, 400)

	if _, err := Generate(dir, DefaultOptions(), nil); err != nil {
		t.Fatalf("first Generate() failed: %v", err)
	}

	report, err := Generate(dir, DefaultOptions(), nil)
	if err != nil {
		t.Fatalf("second Generate() failed: %v", err)
	}
	if report.Generated != 0 || report.Skipped != 1 {
		t.Errorf("report = %+v, expected the existing thumb to be skipped", report)
	}

	// Overwrite regenerates.
	opts := DefaultOptions()
	opts.Overwrite = true
	report, err = Generate(dir, opts, nil)
	if err != nil {
		t.Fatalf("overwrite Generate() failed: %v", err)
	}
	if report.Generated != 1 {
		t.Errorf("report = %+v, expected 1 regenerated with overwrite", report)
	}
}

func TestGenerateIgnoresThumbsAndNonImages(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "photo_thumb.png"), 100, 100)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "clip.mp4"), []byte("fake"), 0o600); err != nil {
		t.Fatal(err)
	}

	report, err := Generate(dir, DefaultOptions(), nil)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if report.Generated != 0 || report.Failed != 0 {
		t.Errorf("report = %+v, expected nothing generated or failed", report)
	}
}

func TestGenerateCountsUndecodable(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.jpg"), []byte("not an image"), 0o600); err != nil {
		t.Fatal(err)
	}

	report, err := Generate(dir, DefaultOptions(), nil)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if report.Failed != 1 {
		t.Errorf("report = %+v, expected 1 failed", report)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "broken_thumb.jpg")); statErr == nil {
		t.Error("no thumbnail should exist for an undecodable file")
	}
}

func TestGenerateWalksSubdirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "2024", "summer")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writePNG(t, filepath.Join(sub, "lake.png"), 640, 480)

	report, err := Generate(dir, DefaultOptions(), nil)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if report.Generated != 1 {
		t.Errorf("report = %+v, expected nested image thumbnailed", report)
	}
}
