// Package page models the document the viewer is mounted in: a handful of
// stacked elements with CSS-style class lists, a scroll offset, and window
// event listeners.
package page

import (
	"slices"
	"strings"
)

// ClassList is an ordered set of class names.
type ClassList struct {
	names []string
}

// Contains reports whether name is in the list.
func (c *ClassList) Contains(name string) bool {
	return slices.Contains(c.names, name)
}

// Add adds name if absent.
func (c *ClassList) Add(name string) {
	if !c.Contains(name) {
		c.names = append(c.names, name)
	}
}

// Remove removes name if present.
func (c *ClassList) Remove(name string) {
	if i := slices.Index(c.names, name); i >= 0 {
		c.names = slices.Delete(c.names, i, i+1)
	}
}

// Toggle flips name and reports whether it is now present.
func (c *ClassList) Toggle(name string) bool {
	if c.Contains(name) {
		c.Remove(name)
		return false
	}
	c.Add(name)
	return true
}

// Len returns the number of classes.
func (c *ClassList) Len() int {
	return len(c.names)
}

// String returns the space separated class attribute.
func (c *ClassList) String() string {
	return strings.Join(c.names, " ")
}

// Rect is a client-space rectangle in pixels, relative to the viewport.
type Rect struct {
	Top, Left, Width, Height float32
}

// Bottom returns Top + Height.
func (r Rect) Bottom() float32 {
	return r.Top + r.Height
}

// Element is a block in the document.
type Element struct {
	ID      string
	Tag     string
	Classes ClassList

	// Top and Height are in document space. Fixed elements ignore scroll.
	Top    float32
	Height float32
	Fixed  bool

	// Surface size of a mounted drawing surface, zero if none.
	SurfaceWidth  int
	SurfaceHeight int

	doc *Document
}

// NewElement creates an element with the given tag, id and classes.
func NewElement(tag, id string, classes ...string) *Element {
	e := &Element{ID: id, Tag: tag}
	for _, c := range classes {
		e.Classes.Add(c)
	}
	return e
}

// BoundingClientRect returns the element's rectangle relative to the
// viewport top-left, accounting for scroll.
func (e *Element) BoundingClientRect() Rect {
	r := Rect{Top: e.Top, Height: e.Height}
	if e.doc != nil {
		r.Width = float32(e.doc.ViewportWidth)
		if !e.Fixed {
			r.Top -= e.doc.ScrollY
		}
	}
	return r
}

// MountSurface records a drawing surface of the given size inside e.
func (e *Element) MountSurface(width, height int) {
	e.SurfaceWidth = width
	e.SurfaceHeight = height
}

// matches reports whether e matches a simple selector: tag, .class or #id.
func (e *Element) matches(selector string) bool {
	switch {
	case strings.HasPrefix(selector, "#"):
		return e.ID == selector[1:]
	case strings.HasPrefix(selector, "."):
		return e.Classes.Contains(selector[1:])
	default:
		return e.Tag == selector
	}
}
