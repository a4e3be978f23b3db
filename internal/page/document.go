package page

import (
	"errors"
	"fmt"
)

// ErrElementNotFound is returned when a required element is missing.
var ErrElementNotFound = errors.New("element not found")

// Document is an ordered list of elements plus viewport and scroll state.
type Document struct {
	ViewportWidth  int
	ViewportHeight int
	ScrollY        float32

	elements []*Element
}

// NewDocument creates an empty document with the given viewport size.
func NewDocument(viewportWidth, viewportHeight int) *Document {
	return &Document{
		ViewportWidth:  viewportWidth,
		ViewportHeight: viewportHeight,
	}
}

// Append adds e to the document and returns it.
func (d *Document) Append(e *Element) *Element {
	e.doc = d
	d.elements = append(d.elements, e)
	return e
}

// Elements returns the elements in document order.
func (d *Document) Elements() []*Element {
	return d.elements
}

// GetElementByID returns the element with the given id, or nil.
func (d *Document) GetElementByID(id string) *Element {
	for _, e := range d.elements {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// QuerySelector returns the first element matching selector, or nil.
// Supported selectors are "tag", ".class" and "#id".
func (d *Document) QuerySelector(selector string) *Element {
	for _, e := range d.elements {
		if e.matches(selector) {
			return e
		}
	}
	return nil
}

// MustQuery is QuerySelector returning ErrElementNotFound when nothing matches.
func (d *Document) MustQuery(selector string) (*Element, error) {
	if e := d.QuerySelector(selector); e != nil {
		return e, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrElementNotFound, selector)
}

// ContentHeight returns the bottom edge of the lowest non-fixed element.
func (d *Document) ContentHeight() float32 {
	var h float32
	for _, e := range d.elements {
		if !e.Fixed && e.Top+e.Height > h {
			h = e.Top + e.Height
		}
	}
	return h
}

// MaxScroll returns the largest valid ScrollY.
func (d *Document) MaxScroll() float32 {
	m := d.ContentHeight() - float32(d.ViewportHeight)
	if m < 0 {
		return 0
	}
	return m
}

// ScrollTo sets ScrollY, clamped to [0, MaxScroll], and reports whether it
// changed.
func (d *Document) ScrollTo(y float32) bool {
	if y < 0 {
		y = 0
	}
	if max := d.MaxScroll(); y > max {
		y = max
	}
	if y == d.ScrollY {
		return false
	}
	d.ScrollY = y
	return true
}

// ScrollBy scrolls by dy pixels; see ScrollTo.
func (d *Document) ScrollBy(dy float32) bool {
	return d.ScrollTo(d.ScrollY + dy)
}

// SetViewport updates the viewport size and re-clamps the scroll offset.
func (d *Document) SetViewport(width, height int) {
	d.ViewportWidth = width
	d.ViewportHeight = height
	d.ScrollTo(d.ScrollY)
}
