package page

// EventType names a window-level event.
type EventType string

// Window events the viewer dispatches.
const (
	EventResize           EventType = "resize"
	EventScroll           EventType = "scroll"
	EventDOMContentLoaded EventType = "DOMContentLoaded"
)

// Event is delivered to listeners.
type Event struct {
	Type    EventType
	Width   int     // resize
	Height  int     // resize
	ScrollY float32 // scroll
}

// Listener handles one event.
type Listener func(Event)

// Window dispatches window events to listeners in registration order.
// Listeners are never removed.
type Window struct {
	listeners map[EventType][]Listener
}

// NewWindow creates a window with no listeners.
func NewWindow() *Window {
	return &Window{listeners: make(map[EventType][]Listener)}
}

// AddEventListener registers fn for events of type t.
func (w *Window) AddEventListener(t EventType, fn Listener) {
	w.listeners[t] = append(w.listeners[t], fn)
}

// Dispatch delivers ev to every listener for its type and returns how many
// were called.
func (w *Window) Dispatch(ev Event) int {
	ls := w.listeners[ev.Type]
	for _, fn := range ls {
		fn(ev)
	}
	return len(ls)
}

// ListenerCount returns the number of listeners for t.
func (w *Window) ListenerCount(t EventType) int {
	return len(w.listeners[t])
}
