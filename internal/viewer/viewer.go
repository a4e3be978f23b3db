package viewer

import (
	"errors"
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/showcase/internal/assets"
	"github.com/Faultbox/showcase/internal/command"
	"github.com/Faultbox/showcase/internal/config"
	"github.com/Faultbox/showcase/internal/engine/frame"
	"github.com/Faultbox/showcase/internal/engine/input"
	"github.com/Faultbox/showcase/internal/engine/overlay"
	"github.com/Faultbox/showcase/internal/engine/renderer"
	"github.com/Faultbox/showcase/internal/engine/screenshot"
	"github.com/Faultbox/showcase/internal/engine/window"
	"github.com/Faultbox/showcase/internal/logger"
	"github.com/Faultbox/showcase/internal/nav"
	"github.com/Faultbox/showcase/internal/page"
)

// Viewer is the running showcase.
type Viewer struct {
	cfg *config.Config

	doc    *page.Document
	events *page.Window
	mount  *page.Element
	frames *frame.Scheduler

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	chrome   *overlay.Overlay
	chromeGL *overlay.Renderer

	world  *World
	loop   *RenderLoop
	loader *assets.Loader
	navCtl *nav.VisibilityController

	shots       *screenshot.Capturer
	captureNext bool

	running  bool
	dragging bool
}

// New mounts the viewer into its page and starts loading the model.
// When the mount element is missing it returns ErrMountNotFound before any
// window or GL state exists.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		cfg:    cfg,
		events: page.NewWindow(),
		frames: frame.NewScheduler(),
	}

	v.doc = NewDocument(cfg.Page, cfg.Window.Width, cfg.Window.Height)
	mount, err := Bootstrap(v.doc, cfg.Page.MountID)
	if err != nil {
		return nil, err
	}
	v.mount = mount

	v.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		Samples:    cfg.Window.Samples,
		SRGB:       cfg.Window.SRGB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Fullscreen and HiDPI can change the size we asked for
	width, height := v.window.Size()
	v.doc.SetViewport(width, height)

	v.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		PixelRatio: v.window.PixelRatio(),
		SRGB:       cfg.Window.SRGB,
		Samples:    v.window.Samples(),
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	v.mount.MountSurface(v.window.DrawableSize())
	logger.Info("renderer added to container",
		zap.Int("surface_width", v.mount.SurfaceWidth),
		zap.Int("surface_height", v.mount.SurfaceHeight),
	)

	atlas := overlay.NewAtlas()
	v.chrome = overlay.New(v.doc, atlas)
	v.chrome.Title = cfg.Window.Title
	v.chromeGL, err = overlay.NewRenderer(atlas)
	if err != nil {
		v.renderer.Close()
		v.window.Close()
		return nil, fmt.Errorf("failed to create overlay: %w", err)
	}

	v.input = input.New()
	v.shots = screenshot.New(assets.ResolvePath(cfg.BaseDir(), cfg.Screenshot.Dir), "showcase")

	v.world = NewWorld(cfg, width, height)
	v.loop = NewRenderLoop(v.frames, v.world.Controls, v.renderer, v.world.Scene, v.world.Camera)
	v.loop.Start()

	resize := &ResizeHandler{Camera: v.world.Camera, Surface: v.renderer}
	v.events.AddEventListener(page.EventResize, resize.Handle)

	if err := nav.RegisterMenu(command.Default, v.doc); err != nil && !errors.Is(err, command.ErrDuplicateCommand) {
		logger.Warn("menu command not registered", zap.Error(err))
	}
	v.events.AddEventListener(page.EventDOMContentLoaded, func(page.Event) {
		ctl, err := nav.Install(v.doc, v.events, v.frames)
		if err != nil {
			logger.Error("nav visibility unavailable", zap.Error(err))
			return
		}
		v.navCtl = ctl
	})

	v.loader = assets.NewLoader(v.frames)
	logger.Info("gltf loader created")
	modelPath := assets.ResolvePath(cfg.BaseDir(), cfg.Asset.ModelPath)
	logger.Info("attempting to load model", zap.String("path", modelPath))
	v.loader.Load(modelPath, modelCallbacks(v.world, &v.chrome.Load))

	v.events.Dispatch(page.Event{Type: page.EventDOMContentLoaded})

	return v, nil
}

// Run drives frames until the window is closed.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting render loop")

	for v.running {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		// 1. Input becomes page events and control deltas
		if v.input.Update() {
			v.running = false
			break
		}
		for _, ev := range v.input.Events() {
			v.handleInput(ev)
		}

		// 2. Background completions, then animation frames
		v.frames.RunTasks()
		v.frames.Tick()

		// 3. Page chrome over the scene
		w, h := v.renderer.Size()
		v.chromeGL.Draw(v.chrome.Build(), w, h)

		if v.captureNext {
			v.captureNext = false
			v.capture()
		}

		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Duration("dt", dt),
				zap.Float32("scroll_y", v.doc.ScrollY),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (v *Viewer) handleInput(ev input.Event) {
	switch ev.Type {
	case input.EventWindowResize:
		v.doc.SetViewport(ev.Width, ev.Height)
		v.renderer.SetPixelRatio(v.window.PixelRatio())
		v.mount.MountSurface(v.window.DrawableSize())
		v.events.Dispatch(page.Event{Type: page.EventResize, Width: ev.Width, Height: ev.Height, ScrollY: v.doc.ScrollY})

	case input.EventKeyDown:
		switch ev.Key {
		case sdl.SCANCODE_ESCAPE:
			v.running = false
		case sdl.SCANCODE_M:
			v.openMenu()
		case sdl.SCANCODE_F12:
			v.captureNext = true
		case sdl.SCANCODE_PAGEDOWN, sdl.SCANCODE_SPACE:
			v.scrollBy(float32(v.doc.ViewportHeight) * 0.9)
		case sdl.SCANCODE_PAGEUP:
			v.scrollBy(-float32(v.doc.ViewportHeight) * 0.9)
		case sdl.SCANCODE_HOME:
			v.scrollTo(0)
		case sdl.SCANCODE_END:
			v.scrollTo(v.doc.MaxScroll())
		}

	case input.EventMouseWheel:
		v.scrollBy(-ev.WheelY * v.cfg.Page.ScrollStep)

	case input.EventMouseDown:
		if ev.Button != sdl.BUTTON_LEFT {
			return
		}
		x, y := float32(ev.MouseX), float32(ev.MouseY)
		if v.chrome.HitMenuButton(x, y) {
			v.openMenu()
			return
		}
		// Only drags that start on the 3D surface orbit the camera
		r := v.mount.BoundingClientRect()
		v.dragging = y >= r.Top && y < r.Bottom()

	case input.EventMouseUp:
		if ev.Button == sdl.BUTTON_LEFT {
			v.dragging = false
		}

	case input.EventMouseMove:
		if v.dragging {
			v.world.Controls.Drag(float32(ev.DX), float32(ev.DY), float32(v.doc.ViewportHeight))
		}
	}
}

func (v *Viewer) capture() {
	w, h := v.window.DrawableSize()
	path, err := v.shots.SavePixels(screenshot.ReadFramebuffer(w, h), w, h)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

func (v *Viewer) openMenu() {
	if err := command.Invoke(nav.CommandOpenMenu); err != nil {
		logger.Error("open menu", zap.Error(err))
	}
}

func (v *Viewer) scrollBy(dy float32) {
	v.scrollTo(v.doc.ScrollY + dy)
}

func (v *Viewer) scrollTo(y float32) {
	if v.doc.ScrollTo(y) {
		v.events.Dispatch(page.Event{Type: page.EventScroll, ScrollY: v.doc.ScrollY})
	}
}

// Close waits for the model load to settle and releases GL and window
// resources.
func (v *Viewer) Close() {
	logger.Info("closing viewer", zap.Uint64("frames", v.loop.Frames()))

	v.loader.Wait()
	if v.chromeGL != nil {
		v.chromeGL.Close()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
