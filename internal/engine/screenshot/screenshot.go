// Package screenshot saves the current frame as a PNG.
package screenshot

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Capturer writes timestamped PNG files into a directory.
type Capturer struct {
	dir    string
	prefix string
	now    func() time.Time
}

// New creates a capturer writing <prefix>_<timestamp>.png files into dir.
// An empty dir writes to the working directory.
func New(dir, prefix string) *Capturer {
	return &Capturer{dir: dir, prefix: prefix, now: time.Now}
}

// Filename returns the path the next capture will be written to.
func (c *Capturer) Filename() string {
	name := fmt.Sprintf("%s_%s.png", c.prefix, c.now().Format("2006-01-02_15-04-05.000"))
	if c.dir != "" {
		name = filepath.Join(c.dir, name)
	}
	return name
}

// SavePixels writes bottom-up RGBA rows, as read back from OpenGL, to a PNG
// and returns its path.
func (c *Capturer) SavePixels(pixels []byte, width, height int) (string, error) {
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}
	return c.SaveImage(img)
}

// SaveImage writes img to a PNG and returns its path.
func (c *Capturer) SaveImage(img image.Image) (string, error) {
	if c.dir != "" {
		if err := os.MkdirAll(c.dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := c.Filename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return filename, nil
}
