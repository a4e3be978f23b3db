package viewer

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"

	"github.com/Faultbox/showcase/internal/assets"
	"github.com/Faultbox/showcase/internal/config"
	"github.com/Faultbox/showcase/internal/engine/camera"
	"github.com/Faultbox/showcase/internal/engine/frame"
	"github.com/Faultbox/showcase/internal/engine/overlay"
	"github.com/Faultbox/showcase/internal/engine/scene"
	"github.com/Faultbox/showcase/internal/page"
	"github.com/Faultbox/showcase/pkg/math"
)

const eps = 1e-4

func TestBootstrap(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		name    string
		mountID string
		lookup  string
		wantErr bool
	}{
		{"present", "threejs-container", "threejs-container", false},
		{"absent", "", "threejs-container", true},
		{"different id", "other", "threejs-container", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pc := cfg.Page
			pc.MountID = tt.mountID
			doc := NewDocument(pc, 800, 600)

			el, err := Bootstrap(doc, tt.lookup)
			if tt.wantErr {
				if !errors.Is(err, ErrMountNotFound) {
					t.Fatalf("err = %v, want ErrMountNotFound", err)
				}
				if el != nil {
					t.Error("element returned with error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Bootstrap: %v", err)
			}
			if el.ID != tt.lookup {
				t.Errorf("ID = %q", el.ID)
			}
		})
	}
}

func TestNewDocumentLayout(t *testing.T) {
	pc := config.Default().Page
	pc.HeroHeight = 0
	doc := NewDocument(pc, 800, 600)

	main := doc.QuerySelector(".main")
	if main == nil {
		t.Fatal("no .main element")
	}
	if main.Top != 600 {
		t.Errorf("main top = %v, want hero = viewport height 600", main.Top)
	}
	bar := doc.QuerySelector("nav")
	if bar == nil || !bar.Fixed {
		t.Fatal("nav missing or not fixed")
	}
	if doc.MaxScroll() <= 0 {
		t.Error("page does not scroll")
	}
}

func TestCell(t *testing.T) {
	var c Cell[int]
	if _, ok := c.Get(); ok || c.IsSet() {
		t.Fatal("new cell reports a value")
	}
	if err := c.Set(1); err != nil {
		t.Fatalf("first Set: %v", err)
	}
	if err := c.Set(2); !errors.Is(err, ErrAlreadySet) {
		t.Errorf("second Set err = %v, want ErrAlreadySet", err)
	}
	if v, ok := c.Get(); !ok || v != 1 {
		t.Errorf("Get = %v, %v; want 1, true", v, ok)
	}
}

func TestPlaceModel(t *testing.T) {
	// 2x4x6 box centered at (3, 5, 7)
	model := scene.NewNode("model")
	child := scene.NewMeshNode("mesh", scene.NewBox(2, 4, 6, scene.Material{}))
	child.Position = math.V3(3, 5, 7)
	model.Add(child)

	PlaceModel(model, DefaultPlacement)

	// -center + (0, size.y/2, 0) + (0.1, 0, 0.05)
	want := math.V3(-3+0.1, -5+2, -7+0.05)
	if !model.Position.ApproxEqual(want, eps) {
		t.Errorf("Position = %+v, want %+v", model.Position, want)
	}
	if math32.Abs(model.Rotation.X-math32.Pi/2) > eps || model.Rotation.Y != 0 || model.Rotation.Z != 0 {
		t.Errorf("Rotation = %+v, want (pi/2, 0, 0)", model.Rotation)
	}
	if model.Scale != math.V3(1, 1, 1) {
		t.Errorf("Scale = %+v", model.Scale)
	}
}

func TestPlaceModelKeepsExistingPosition(t *testing.T) {
	model := scene.NewMeshNode("m", scene.NewBox(1, 2, 1, scene.Material{}))
	model.Position = math.V3(1, 1, 1)

	PlaceModel(model, DefaultPlacement)

	// box center is the node position itself, so centering cancels it
	want := math.V3(0.1, 1, 0.05)
	if !model.Position.ApproxEqual(want, eps) {
		t.Errorf("Position = %+v, want %+v", model.Position, want)
	}
}

func TestPlaceModelEmpty(t *testing.T) {
	model := scene.NewNode("empty")
	PlaceModel(model, DefaultPlacement)
	if !model.Position.ApproxEqual(math.V3(0.1, 0, 0.05), eps) {
		t.Errorf("Position = %+v", model.Position)
	}
}

func TestNewWorldDefaults(t *testing.T) {
	w := NewWorld(config.Default(), 1600, 900)

	if !w.Scene.Contains(w.Placeholder) || !w.Placeholder.Visible {
		t.Fatal("placeholder not in scene or hidden")
	}
	if got := w.Placeholder.Mesh.Material.Color; got != [4]float32{0, 1, 0, 1} {
		t.Errorf("placeholder color = %v", got)
	}
	if !w.Camera.Position.ApproxEqual(math.V3(0.5, -1, 10), eps) {
		t.Errorf("camera position = %+v", w.Camera.Position)
	}
	if math32.Abs(w.Camera.Aspect-16.0/9.0) > eps {
		t.Errorf("aspect = %v", w.Camera.Aspect)
	}
	if w.Scene.Background != nil {
		t.Error("background should be transparent")
	}
	if w.Scene.Ambient.Intensity != 0 || w.Scene.Directional.Intensity != 0 {
		t.Error("lights should default to zero intensity")
	}
	c := w.Controls
	if !c.EnableDamping || c.DampingFactor != 0.05 || c.EnableZoom || c.EnablePan || !c.EnableRotate || c.RotateSpeed != 1 {
		t.Errorf("controls = %+v", c)
	}
	if _, ok := w.Model(); ok {
		t.Error("model present before load")
	}
}

func TestOnModelLoaded(t *testing.T) {
	w := NewWorld(config.Default(), 800, 600)
	model := scene.NewMeshNode("taino", scene.NewBox(1, 1, 1, scene.Material{}))

	if err := w.OnModelLoaded(model); err != nil {
		t.Fatalf("OnModelLoaded: %v", err)
	}
	if w.Placeholder.Visible {
		t.Error("placeholder still visible")
	}
	if w.Scene.Count(model) != 1 {
		t.Error("model not in scene exactly once")
	}
	if got, ok := w.Model(); !ok || got != model {
		t.Error("model cell not set")
	}

	second := scene.NewNode("second")
	if err := w.OnModelLoaded(second); !errors.Is(err, ErrAlreadySet) {
		t.Errorf("second load err = %v, want ErrAlreadySet", err)
	}
	if w.Scene.Contains(second) {
		t.Error("second model added to scene")
	}
}

func TestModelCallbacks(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		w := NewWorld(config.Default(), 800, 600)
		state := overlay.LoadState{Loading: true}
		cb := modelCallbacks(w, &state)

		cb.OnProgress(assets.Progress{Loaded: 50, Total: 200})
		if state.Percent != 25 {
			t.Errorf("Percent = %v, want 25", state.Percent)
		}
		cb.OnLoad(scene.NewMeshNode("m", scene.NewBox(1, 1, 1, scene.Material{})))
		if state.Loading || state.Failed {
			t.Errorf("state = %+v after load", state)
		}
		if w.Placeholder.Visible {
			t.Error("placeholder visible after load")
		}
	})

	t.Run("failure keeps placeholder", func(t *testing.T) {
		w := NewWorld(config.Default(), 800, 600)
		state := overlay.LoadState{Loading: true}
		cb := modelCallbacks(w, &state)

		cb.OnError(&assets.LoadError{Message: "open model: no such file", Type: assets.ErrNotFound})
		if !state.Failed || state.Loading || state.Message != "not_found" {
			t.Errorf("state = %+v", state)
		}
		if !w.Placeholder.Visible {
			t.Error("placeholder hidden after failure")
		}
		if _, ok := w.Model(); ok {
			t.Error("model set after failure")
		}
	})
}

func TestFormatPercent(t *testing.T) {
	if got := formatPercent(42); got != "42.00%" {
		t.Errorf("formatPercent = %q", got)
	}
}

type fakeSurface struct {
	w, h  int
	calls int
}

func (f *fakeSurface) SetSize(w, h int) {
	f.w, f.h = w, h
	f.calls++
}

func TestResizeHandler(t *testing.T) {
	cam := camera.NewPerspectiveCamera(75, 1, 0.1, 1000)
	surf := &fakeSurface{}
	h := &ResizeHandler{Camera: cam, Surface: surf}

	h.Handle(page.Event{Type: page.EventResize, Width: 1000, Height: 500})
	if cam.Aspect != 2 {
		t.Errorf("Aspect = %v, want 2", cam.Aspect)
	}
	if surf.w != 1000 || surf.h != 500 {
		t.Errorf("surface = %dx%d", surf.w, surf.h)
	}
	proj := cam.ProjectionMatrix()

	// Same size again is harmless
	h.Handle(page.Event{Type: page.EventResize, Width: 1000, Height: 500})
	if cam.ProjectionMatrix() != proj || surf.calls != 2 {
		t.Error("repeated resize not idempotent")
	}

	h.Handle(page.Event{Type: page.EventResize, Width: 1000, Height: 0})
	if cam.Aspect != 2 || surf.calls != 2 {
		t.Error("zero-height resize was applied")
	}
}

type recorder struct {
	log []string
	err error
}

func (r *recorder) Update() bool {
	r.log = append(r.log, "update")
	return false
}

func (r *recorder) Render(*scene.Scene, *camera.PerspectiveCamera) error {
	r.log = append(r.log, "render")
	return r.err
}

func TestRenderLoop(t *testing.T) {
	frames := frame.NewScheduler()
	rec := &recorder{}
	loop := NewRenderLoop(frames, rec, rec, scene.New(), camera.NewPerspectiveCamera(75, 1, 0.1, 1000))

	loop.Start()
	for i := 0; i < 3; i++ {
		if n := frames.Tick(); n != 1 {
			t.Fatalf("Tick ran %d callbacks, want 1", n)
		}
	}

	want := []string{"update", "render", "update", "render", "update", "render"}
	if len(rec.log) != len(want) {
		t.Fatalf("log = %v", rec.log)
	}
	for i := range want {
		if rec.log[i] != want[i] {
			t.Fatalf("log = %v, want %v", rec.log, want)
		}
	}
	if loop.Frames() != 3 {
		t.Errorf("Frames = %d", loop.Frames())
	}
}

func TestRenderLoopSurvivesErrors(t *testing.T) {
	frames := frame.NewScheduler()
	rec := &recorder{err: errors.New("boom")}
	loop := NewRenderLoop(frames, rec, rec, scene.New(), camera.NewPerspectiveCamera(75, 1, 0.1, 1000))

	loop.Start()
	frames.Tick()
	frames.Tick()

	if frames.Pending() != 1 {
		t.Errorf("Pending = %d, loop stopped after render error", frames.Pending())
	}
	if loop.Frames() != 2 {
		t.Errorf("Frames = %d, want 2", loop.Frames())
	}
}
