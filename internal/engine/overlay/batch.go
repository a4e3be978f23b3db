package overlay

// Vertex formats
const (
	solidStride = 7 // x, y, z, r, g, b, a
	textStride  = 9 // x, y, z, u, v, r, g, b, a
)

// Batch collects the quads of one overlay frame.
type Batch struct {
	Solid     []float32
	TextVerts []float32

	atlas *Atlas
}

// NewBatch creates an empty batch that lays text out with atlas.
func NewBatch(atlas *Atlas) *Batch {
	return &Batch{
		Solid:     make([]float32, 0, 1024),
		TextVerts: make([]float32, 0, 4096),
		atlas:     atlas,
	}
}

// Reset empties the batch, keeping its storage.
func (b *Batch) Reset() {
	b.Solid = b.Solid[:0]
	b.TextVerts = b.TextVerts[:0]
}

// SolidQuads returns the number of solid quads queued.
func (b *Batch) SolidQuads() int {
	return len(b.Solid) / (solidStride * 6)
}

// Glyphs returns the number of glyph quads queued.
func (b *Batch) Glyphs() int {
	return len(b.TextVerts) / (textStride * 6)
}

// Rect queues a filled rectangle.
func (b *Batch) Rect(x, y, w, h float32, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	b.Solid = append(b.Solid,
		x, y, 0, c.R, c.G, c.B, c.A,
		x+w, y, 0, c.R, c.G, c.B, c.A,
		x+w, y+h, 0, c.R, c.G, c.B, c.A,

		x, y, 0, c.R, c.G, c.B, c.A,
		x+w, y+h, 0, c.R, c.G, c.B, c.A,
		x, y+h, 0, c.R, c.G, c.B, c.A,
	)
}

// RectOutline queues a rectangle border of the given thickness.
func (b *Batch) RectOutline(x, y, w, h, thickness float32, c Color) {
	b.Rect(x, y, w, thickness, c)
	b.Rect(x, y+h-thickness, w, thickness, c)
	b.Rect(x, y+thickness, thickness, h-thickness*2, c)
	b.Rect(x+w-thickness, y+thickness, thickness, h-thickness*2, c)
}

// Panel queues a filled rectangle with a 1px border.
func (b *Batch) Panel(x, y, w, h float32, bg, border Color) {
	b.Rect(x, y, w, h, bg)
	b.RectOutline(x, y, w, h, 1, border)
}

// Text queues text with its top-left corner at (x, y). Spaces produce no
// quads.
func (b *Batch) Text(x, y float32, text string, scale float32, c Color) {
	gw, gh := b.atlas.GlyphSize()
	charW := float32(gw) * scale
	charH := float32(gh) * scale

	curX := x
	for _, r := range text {
		switch r {
		case '\n':
			curX = x
			y += charH
			continue
		case ' ':
			curX += charW
			continue
		}

		u0, v0, u1, v1 := b.atlas.GlyphUV(r)
		b.TextVerts = append(b.TextVerts,
			curX, y, 0, u0, v0, c.R, c.G, c.B, c.A,
			curX+charW, y, 0, u1, v0, c.R, c.G, c.B, c.A,
			curX+charW, y+charH, 0, u1, v1, c.R, c.G, c.B, c.A,

			curX, y, 0, u0, v0, c.R, c.G, c.B, c.A,
			curX+charW, y+charH, 0, u1, v1, c.R, c.G, c.B, c.A,
			curX, y+charH, 0, u0, v1, c.R, c.G, c.B, c.A,
		)
		curX += charW
	}
}
