package screenshot

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func fixedCapturer(dir string) *Capturer {
	c := New(dir, "showcase")
	c.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return c
}

func TestFilename(t *testing.T) {
	c := fixedCapturer("shots")
	want := filepath.Join("shots", "showcase_2026-01-02_03-04-05.000.png")
	if got := c.Filename(); got != want {
		t.Errorf("Filename = %q, want %q", got, want)
	}
}

func TestSavePixelsFlipsRows(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	c := fixedCapturer(dir)

	// 1x2 image: bottom row red, top row blue (OpenGL order)
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	path, err := c.SavePixels(pixels, 1, 2)
	if err != nil {
		t.Fatalf("SavePixels: %v", err)
	}
	if !strings.HasPrefix(path, dir) {
		t.Errorf("path %q not in %q", path, dir)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	r, _, b, _ := img.At(0, 0).RGBA()
	if b == 0 || r != 0 {
		t.Error("top row should be blue after flip")
	}
	r, _, b, _ = img.At(0, 1).RGBA()
	if r == 0 || b != 0 {
		t.Error("bottom row should be red after flip")
	}
}

func TestSavePixelsSizeMismatch(t *testing.T) {
	c := fixedCapturer(t.TempDir())
	if _, err := c.SavePixels(make([]byte, 7), 1, 2); err == nil {
		t.Error("expected size mismatch error")
	}
}
