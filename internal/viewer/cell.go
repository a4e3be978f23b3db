package viewer

import "errors"

// ErrAlreadySet is returned by Cell.Set after the first successful Set.
var ErrAlreadySet = errors.New("cell already set")

// Cell holds a value that is written at most once.
type Cell[T any] struct {
	value T
	set   bool
}

// Set stores v if the cell is empty.
func (c *Cell[T]) Set(v T) error {
	if c.set {
		return ErrAlreadySet
	}
	c.value = v
	c.set = true
	return nil
}

// Get returns the stored value and whether one has been set.
func (c *Cell[T]) Get() (T, bool) {
	return c.value, c.set
}

// IsSet reports whether a value has been stored.
func (c *Cell[T]) IsSet() bool {
	return c.set
}
