package viewer

import (
	"github.com/Faultbox/showcase/internal/engine/camera"
	"github.com/Faultbox/showcase/internal/page"
)

// Sizer is a drawing surface that can be resized.
type Sizer interface {
	SetSize(width, height int)
}

// ResizeHandler keeps the camera aspect and the surface size in step with
// the window.
type ResizeHandler struct {
	Camera  *camera.PerspectiveCamera
	Surface Sizer
}

// Handle applies a resize event. Empty sizes are ignored.
func (h *ResizeHandler) Handle(ev page.Event) {
	if ev.Height <= 0 || ev.Width <= 0 {
		return
	}
	h.Camera.Aspect = float32(ev.Width) / float32(ev.Height)
	h.Camera.UpdateProjectionMatrix()
	h.Surface.SetSize(ev.Width, ev.Height)
}
