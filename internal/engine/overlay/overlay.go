// Package overlay draws the page chrome over the 3D scene: the main
// section, the navigation bar and its menu, and the model loading bar.
//
// Layout and hit testing are computed from the page document on the CPU;
// Renderer only uploads the resulting Batch.
package overlay

import (
	"fmt"

	"github.com/Faultbox/showcase/internal/nav"
	"github.com/Faultbox/showcase/internal/page"
)

// Layout constants in screen coordinates.
const (
	menuButtonW   = 72
	menuButtonH   = 32
	menuMargin    = 16
	menuPanelW    = 200
	menuItemH     = 28
	progressH     = 4
	progressW     = 240
	textScale     = 1.5
	mainTextInset = 32
)

// LoadState is the loading bar's view of the model load.
type LoadState struct {
	Loading bool
	Percent float64
	Failed  bool
	Message string
}

// Overlay lays out the page chrome for one document.
type Overlay struct {
	Title     string
	MenuItems []string
	MainText  string
	Load      LoadState

	doc   *page.Document
	batch *Batch
}

// New creates an overlay for doc using atlas for text.
func New(doc *page.Document, atlas *Atlas) *Overlay {
	return &Overlay{
		Title:     "Showcase",
		MenuItems: []string{"Home", "Gallery", "About", "Contact"},
		Load:      LoadState{Loading: true},
		doc:       doc,
		batch:     NewBatch(atlas),
	}
}

func (o *Overlay) navElement() *page.Element {
	return o.doc.QuerySelector(nav.NavSelector)
}

// NavVisible reports whether the navigation bar is showing.
func (o *Overlay) NavVisible() bool {
	n := o.navElement()
	return n != nil && n.Classes.Contains(nav.ClassVisible)
}

// MenuOpen reports whether the menu panel is showing.
func (o *Overlay) MenuOpen() bool {
	n := o.navElement()
	return n != nil && n.Classes.Contains(nav.ClassOpen)
}

// MenuButton returns the menu button rectangle. ok is false while the
// navigation bar is hidden.
func (o *Overlay) MenuButton() (r page.Rect, ok bool) {
	if !o.NavVisible() {
		return page.Rect{}, false
	}
	w := float32(o.doc.ViewportWidth)
	return page.Rect{
		Left:   w - menuButtonW - menuMargin,
		Top:    (nav.NavHeight - menuButtonH) / 2,
		Width:  menuButtonW,
		Height: menuButtonH,
	}, true
}

// HitMenuButton reports whether a click at (x, y) lands on the menu button.
func (o *Overlay) HitMenuButton(x, y float32) bool {
	r, ok := o.MenuButton()
	if !ok {
		return false
	}
	return x >= r.Left && x < r.Left+r.Width && y >= r.Top && y < r.Bottom()
}

// Build lays out the current frame.
func (o *Overlay) Build() *Batch {
	b := o.batch
	b.Reset()
	vw := float32(o.doc.ViewportWidth)
	vh := float32(o.doc.ViewportHeight)

	if main := o.doc.QuerySelector(nav.MainSelector); main != nil {
		r := main.BoundingClientRect()
		if r.Bottom() > 0 && r.Top < vh {
			b.Rect(0, r.Top, vw, r.Height, ColorMainBg)
			if o.MainText != "" {
				b.Text(mainTextInset, r.Top+mainTextInset, o.MainText, textScale, ColorTextDark)
			}
		}
	}

	if o.Load.Loading || o.Load.Failed {
		o.buildProgress(b, vw, vh)
	}

	if o.NavVisible() {
		b.Panel(0, 0, vw, nav.NavHeight, ColorNavBg, ColorPanelBorder)
		_, th := b.atlas.MeasureText(o.Title, textScale)
		b.Text(menuMargin, (nav.NavHeight-th)/2, o.Title, textScale, ColorText)

		btn, _ := o.MenuButton()
		bg := ColorNavBg.Lighten(0.1)
		if o.MenuOpen() {
			bg = ColorProgress
		}
		b.Panel(btn.Left, btn.Top, btn.Width, btn.Height, bg, ColorPanelBorder)
		tw, th := b.atlas.MeasureText("Menu", 1)
		b.Text(btn.Left+(btn.Width-tw)/2, btn.Top+(btn.Height-th)/2, "Menu", 1, ColorText)
	}

	if o.MenuOpen() {
		x := vw - menuPanelW - menuMargin
		y := float32(nav.NavHeight)
		h := float32(len(o.MenuItems)*menuItemH + menuMargin)
		b.Panel(x, y, menuPanelW, h, ColorMenuBg, ColorPanelBorder)
		for i, item := range o.MenuItems {
			b.Text(x+menuMargin, y+menuMargin/2+float32(i*menuItemH)+6, item, 1, ColorText)
		}
	}

	return b
}

func (o *Overlay) buildProgress(b *Batch, vw, vh float32) {
	x := (vw - progressW) / 2
	y := vh - 48
	b.Rect(x, y, progressW, progressH, ColorProgressBg)

	label := fmt.Sprintf("Loading %.0f%%", o.Load.Percent)
	fill := ColorProgress
	if o.Load.Failed {
		label = "Model unavailable"
		if o.Load.Message != "" {
			label += ": " + o.Load.Message
		}
		fill = ColorError
		b.Rect(x, y, progressW, progressH, fill)
	} else {
		pct := min(max(o.Load.Percent, 0), 100)
		b.Rect(x, y, progressW*float32(pct/100), progressH, fill)
	}

	tw, _ := b.atlas.MeasureText(label, 1)
	b.Text((vw-tw)/2, y+progressH+6, label, 1, ColorTextDim)
}
