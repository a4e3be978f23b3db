package overlay

import (
	"strings"
	"testing"

	"github.com/Faultbox/showcase/internal/nav"
	"github.com/Faultbox/showcase/internal/page"
)

func testDoc() *page.Document {
	doc := page.NewDocument(800, 600)
	n := doc.Append(page.NewElement("nav", ""))
	n.Fixed = true
	n.Height = nav.NavHeight
	main := doc.Append(page.NewElement("section", "", "main"))
	main.Top = 600
	main.Height = 1600
	return doc
}

func TestAtlasCoversPrintableASCII(t *testing.T) {
	a := NewAtlas()
	gw, gh := a.GlyphSize()
	if gw != 7 || gh != 13 {
		t.Fatalf("GlyphSize = %dx%d, want 7x13", gw, gh)
	}

	// 'A' must have some coverage inside its cell
	u0, v0, _, _ := a.GlyphUV('A')
	b := a.Image.Bounds()
	x0 := int(u0 * float32(b.Dx()))
	y0 := int(v0 * float32(b.Dy()))
	lit := 0
	for y := y0; y < y0+gh; y++ {
		for x := x0; x < x0+gw; x++ {
			if a.Image.AlphaAt(x, y).A > 0 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("glyph 'A' is blank in the atlas")
	}
}

func TestGlyphUVFallback(t *testing.T) {
	a := NewAtlas()
	u0, v0, u1, v1 := a.GlyphUV('é')
	q0, r0, q1, r1 := a.GlyphUV('?')
	if u0 != q0 || v0 != r0 || u1 != q1 || v1 != r1 {
		t.Error("non-ASCII rune does not map to '?'")
	}
}

func TestMeasureText(t *testing.T) {
	a := NewAtlas()
	tests := []struct {
		text  string
		scale float32
		w, h  float32
	}{
		{"abc", 1, 21, 13},
		{"ab\nabcd", 1, 28, 26},
		{"x", 2, 14, 26},
		{"", 1, 0, 13},
	}
	for _, tt := range tests {
		w, h := a.MeasureText(tt.text, tt.scale)
		if w != tt.w || h != tt.h {
			t.Errorf("MeasureText(%q, %v) = %v,%v want %v,%v", tt.text, tt.scale, w, h, tt.w, tt.h)
		}
	}
}

func TestBatchText(t *testing.T) {
	b := NewBatch(NewAtlas())
	b.Text(0, 0, "a b", 1, ColorText)
	if b.Glyphs() != 2 {
		t.Errorf("Glyphs = %d, want 2 (spaces are skipped)", b.Glyphs())
	}
	b.Rect(0, 0, 10, 10, ColorWhite)
	b.Rect(0, 0, 0, 10, ColorWhite)
	if b.SolidQuads() != 1 {
		t.Errorf("SolidQuads = %d, want 1", b.SolidQuads())
	}
	b.Reset()
	if b.Glyphs() != 0 || b.SolidQuads() != 0 {
		t.Error("Reset left vertices behind")
	}
}

func TestMenuButtonOnlyWhenNavVisible(t *testing.T) {
	doc := testDoc()
	o := New(doc, NewAtlas())

	if _, ok := o.MenuButton(); ok {
		t.Fatal("menu button reported while nav hidden")
	}
	if o.HitMenuButton(760, 40) {
		t.Error("hit on hidden nav")
	}

	doc.QuerySelector("nav").Classes.Add(nav.ClassVisible)
	r, ok := o.MenuButton()
	if !ok {
		t.Fatal("menu button missing while nav visible")
	}
	cx, cy := r.Left+r.Width/2, r.Top+r.Height/2
	if !o.HitMenuButton(cx, cy) {
		t.Errorf("center (%v, %v) of %+v not hit", cx, cy, r)
	}
	if o.HitMenuButton(10, 40) {
		t.Error("title area counted as menu button")
	}
}

func TestBuildTracksPageState(t *testing.T) {
	doc := testDoc()
	o := New(doc, NewAtlas())
	o.Load = LoadState{}

	// Main section below the fold, nav hidden: nothing to draw
	if b := o.Build(); b.SolidQuads() != 0 {
		t.Errorf("SolidQuads = %d with nothing on screen", b.SolidQuads())
	}

	doc.ScrollTo(100)
	if b := o.Build(); b.SolidQuads() != 1 {
		t.Errorf("SolidQuads = %d, want main panel only", b.SolidQuads())
	}

	navEl := doc.QuerySelector("nav")
	navEl.Classes.Add(nav.ClassVisible)
	withNav := o.Build().SolidQuads()
	navEl.Classes.Add(nav.ClassOpen)
	withMenu := o.Build().SolidQuads()
	if withMenu <= withNav {
		t.Errorf("open menu added no quads (%d -> %d)", withNav, withMenu)
	}
}

func TestBuildProgressLabel(t *testing.T) {
	doc := testDoc()
	o := New(doc, NewAtlas())

	o.Load = LoadState{Loading: true, Percent: 42}
	loading := o.Build().Glyphs()
	if loading != len(strings.ReplaceAll("Loading 42%", " ", "")) {
		t.Errorf("loading glyphs = %d", loading)
	}

	o.Load = LoadState{Failed: true}
	failed := o.Build().Glyphs()
	if failed != len(strings.ReplaceAll("Model unavailable", " ", "")) {
		t.Errorf("failure glyphs = %d", failed)
	}
}
