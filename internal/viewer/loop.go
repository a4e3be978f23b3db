package viewer

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/showcase/internal/engine/camera"
	"github.com/Faultbox/showcase/internal/engine/frame"
	"github.com/Faultbox/showcase/internal/engine/scene"
	"github.com/Faultbox/showcase/internal/logger"
)

// SceneRenderer draws a scene from a camera.
type SceneRenderer interface {
	Render(s *scene.Scene, cam *camera.PerspectiveCamera) error
}

// Updater advances per-frame state such as damped camera motion.
type Updater interface {
	Update() bool
}

// RenderLoop redraws the scene on every animation frame, forever.
type RenderLoop struct {
	frames   *frame.Scheduler
	controls Updater
	renderer SceneRenderer
	scene    *scene.Scene
	camera   *camera.PerspectiveCamera

	count    uint64
	failures uint64
}

// NewRenderLoop creates a loop; call Start to schedule the first frame.
func NewRenderLoop(frames *frame.Scheduler, controls Updater, r SceneRenderer, s *scene.Scene, cam *camera.PerspectiveCamera) *RenderLoop {
	return &RenderLoop{
		frames:   frames,
		controls: controls,
		renderer: r,
		scene:    s,
		camera:   cam,
	}
}

// Start schedules the first frame.
func (l *RenderLoop) Start() {
	l.frames.RequestAnimationFrame(l.animate)
}

// animate re-registers itself before doing any work, so a failing frame
// never stops the loop.
func (l *RenderLoop) animate(time.Duration) {
	l.frames.RequestAnimationFrame(l.animate)
	l.count++

	l.controls.Update()
	if err := l.renderer.Render(l.scene, l.camera); err != nil {
		l.failures++
		// Only the first failure and then every 600th, to avoid flooding
		if l.failures == 1 || l.failures%600 == 0 {
			logger.Error("render failed", zap.Error(err), zap.Uint64("failures", l.failures))
		}
	}
}

// Frames returns how many frames the loop has run.
func (l *RenderLoop) Frames() uint64 {
	return l.count
}
