package overlay

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	firstGlyph   = ' '
	lastGlyph    = '~'
	atlasColumns = 16
)

// Atlas is a bitmap font rasterised into a single alpha image, one fixed
// size cell per printable ASCII glyph.
type Atlas struct {
	Image *image.Alpha

	cellW, cellH int
}

// NewAtlas rasterises the 7x13 basic font.
func NewAtlas() *Atlas {
	face := basicfont.Face7x13
	cellW := face.Advance
	cellH := face.Height

	count := int(lastGlyph-firstGlyph) + 1
	rows := (count + atlasColumns - 1) / atlasColumns
	img := image.NewAlpha(image.Rect(0, 0, atlasColumns*cellW, rows*cellH))

	d := &font.Drawer{Dst: img, Src: image.Opaque, Face: face}
	for r := firstGlyph; r <= lastGlyph; r++ {
		col, row := cell(r)
		d.Dot = fixed.P(col*cellW, row*cellH+face.Ascent)
		d.DrawString(string(r))
	}

	return &Atlas{Image: img, cellW: cellW, cellH: cellH}
}

func cell(r rune) (col, row int) {
	i := int(r - firstGlyph)
	return i % atlasColumns, i / atlasColumns
}

// GlyphSize returns the cell size in pixels.
func (a *Atlas) GlyphSize() (int, int) {
	return a.cellW, a.cellH
}

// GlyphUV returns the texture coordinates of r. Runes outside printable
// ASCII map to '?'.
func (a *Atlas) GlyphUV(r rune) (u0, v0, u1, v1 float32) {
	if r < firstGlyph || r > lastGlyph {
		r = '?'
	}
	col, row := cell(r)
	b := a.Image.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	u0 = float32(col*a.cellW) / w
	v0 = float32(row*a.cellH) / h
	u1 = float32((col+1)*a.cellW) / w
	v1 = float32((row+1)*a.cellH) / h
	return
}

// MeasureText returns the size of text drawn at scale. Lines are split on
// '\n'.
func (a *Atlas) MeasureText(text string, scale float32) (float32, float32) {
	lines, longest, cur := 1, 0, 0
	for _, r := range text {
		if r == '\n' {
			lines++
			cur = 0
			continue
		}
		cur++
		longest = max(longest, cur)
	}
	return float32(longest*a.cellW) * scale, float32(lines*a.cellH) * scale
}

// RGBA returns the atlas as white glyphs with alpha coverage, ready for
// upload as an RGBA texture.
func (a *Atlas) RGBA() *image.RGBA {
	out := image.NewRGBA(a.Image.Bounds())
	draw.DrawMask(out, out.Bounds(), image.White, image.Point{}, a.Image, image.Point{}, draw.Src)
	return out
}
