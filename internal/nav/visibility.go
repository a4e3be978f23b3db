// Package nav drives the navigation bar's CSS state: "visible" once the main
// section scrolls under the bar, and "open" while the menu is toggled on.
package nav

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/showcase/internal/engine/frame"
	"github.com/Faultbox/showcase/internal/logger"
	"github.com/Faultbox/showcase/internal/page"
)

// NavHeight is the bar height in pixels. The main section counts as reached
// once its top edge is at or above this line.
const NavHeight = 80

// CSS classes toggled on the nav element.
const (
	ClassVisible = "visible"
	ClassOpen    = "open"
)

// Selectors for the tracked elements.
const (
	NavSelector  = "nav"
	MainSelector = ".main"
)

// FrameRequester schedules a callback for the next frame.
type FrameRequester interface {
	RequestAnimationFrame(cb frame.Callback) frame.ID
}

// State is the tracked section's position relative to the bar.
type State int

const (
	NotYetReached State = iota
	Reached
)

func (s State) String() string {
	switch s {
	case Reached:
		return "reached"
	default:
		return "not-yet-reached"
	}
}

// VisibilityController recomputes the nav bar's visible class from the main
// section's position, at most once per frame.
type VisibilityController struct {
	nav    *page.Element
	main   *page.Element
	frames FrameRequester

	state   State
	pending bool
	checks  int
}

// Install looks up the nav and main elements, forces the hidden state and
// subscribes to scroll and resize on win.
func Install(doc *page.Document, win *page.Window, frames FrameRequester) (*VisibilityController, error) {
	navEl, err := doc.MustQuery(NavSelector)
	if err != nil {
		return nil, fmt.Errorf("nav visibility: %w", err)
	}
	mainEl, err := doc.MustQuery(MainSelector)
	if err != nil {
		return nil, fmt.Errorf("nav visibility: %w", err)
	}

	c := &VisibilityController{
		nav:    navEl,
		main:   mainEl,
		frames: frames,
		state:  NotYetReached,
	}

	// Initial state is hidden regardless of where the page is scrolled.
	navEl.Classes.Remove(ClassVisible)

	win.AddEventListener(page.EventScroll, c.schedule)
	win.AddEventListener(page.EventResize, c.schedule)

	logger.Debug("nav visibility installed", zap.Float32("main_top", mainEl.Top))
	return c, nil
}

// schedule coalesces bursts of events into one check on the next frame.
func (c *VisibilityController) schedule(page.Event) {
	if c.pending {
		return
	}
	c.pending = true
	c.frames.RequestAnimationFrame(func(time.Duration) {
		c.pending = false
		c.Update()
	})
}

// Update measures the main section now and applies the visible class.
func (c *VisibilityController) Update() State {
	c.checks++

	next := NotYetReached
	if c.main.BoundingClientRect().Top <= NavHeight {
		next = Reached
	}

	if next == Reached {
		c.nav.Classes.Add(ClassVisible)
	} else {
		c.nav.Classes.Remove(ClassVisible)
	}

	if next != c.state {
		logger.Debug("nav state changed",
			zap.Stringer("from", c.state),
			zap.Stringer("to", next),
		)
		c.state = next
	}
	return next
}

// State returns the last computed state.
func (c *VisibilityController) State() State {
	return c.state
}

// Pending reports whether a check is waiting for the next frame.
func (c *VisibilityController) Pending() bool {
	return c.pending
}

// Checks returns how many measurements have run.
func (c *VisibilityController) Checks() int {
	return c.checks
}
