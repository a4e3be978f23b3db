package camera

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/Faultbox/showcase/pkg/math"
)

const eps = 1e-3

func newTestRig() (*PerspectiveCamera, *OrbitControls) {
	cam := NewPerspectiveCamera(75, 16.0/9.0, 0.1, 1000)
	cam.Position = math.V3(0.5, -1, 10)
	return cam, NewOrbitControls(cam)
}

func TestUpdateProjectionMatrix(t *testing.T) {
	cam := NewPerspectiveCamera(90, 1, 1, 100)
	before := cam.ProjectionMatrix()

	cam.Aspect = 2
	if cam.ProjectionMatrix() != before {
		t.Fatal("projection changed before UpdateProjectionMatrix")
	}
	cam.UpdateProjectionMatrix()
	after := cam.ProjectionMatrix()

	// fov 90 -> cot(45°) = 1, x scale is 1/aspect
	if math32.Abs(after[0]-0.5) > eps || math32.Abs(after[5]-1) > eps {
		t.Errorf("projection scale = (%v, %v), want (0.5, 1)", after[0], after[5])
	}
}

func TestUpdateWithoutInputKeepsDistance(t *testing.T) {
	cam, oc := newTestRig()
	oc.EnableDamping = true
	dist := cam.Position.Length()

	for i := 0; i < 10; i++ {
		oc.Update()
	}
	if math32.Abs(cam.Position.Length()-dist) > eps {
		t.Errorf("distance drifted from %v to %v", dist, cam.Position.Length())
	}
	if !cam.Position.ApproxEqual(math.V3(0.5, -1, 10), eps) {
		t.Errorf("position moved without input: %+v", cam.Position)
	}
}

func TestDragWithoutDampingAppliesOnce(t *testing.T) {
	cam, oc := newTestRig()
	cam.Position = math.V3(0, 0, 10)

	// Full-height drag = one full turn; a quarter of it is 90 degrees
	oc.Drag(25, 0, 100)
	if !oc.Update() {
		t.Fatal("Update reported no movement after drag")
	}
	if !cam.Position.ApproxEqual(math.V3(-10, 0, 0), eps) {
		t.Errorf("position = %+v, want (-10, 0, 0)", cam.Position)
	}
	if oc.Update() {
		t.Error("second Update moved the camera without damping")
	}
}

func TestDampingBleedsOff(t *testing.T) {
	cam, oc := newTestRig()
	cam.Position = math.V3(0, 0, 10)
	oc.EnableDamping = true
	oc.DampingFactor = 0.05

	oc.Drag(10, 0, 100)

	first := cam.Position
	oc.Update()
	step1 := cam.Position.Distance(first)
	prev := cam.Position
	oc.Update()
	step2 := cam.Position.Distance(prev)

	if step1 == 0 {
		t.Fatal("first damped update did not move")
	}
	if step2 >= step1 {
		t.Errorf("steps did not shrink: %v then %v", step1, step2)
	}
	if math32.Abs(cam.Position.Length()-10) > eps {
		t.Errorf("orbit radius changed to %v", cam.Position.Length())
	}
}

func TestDisabledInputIgnored(t *testing.T) {
	cam, oc := newTestRig()
	oc.EnableRotate = false
	oc.EnableZoom = false
	oc.EnablePan = false
	start := cam.Position

	oc.Drag(40, 40, 100)
	oc.Dolly(3)
	oc.Pan(10, 10, 100)
	oc.Update()

	if !cam.Position.ApproxEqual(start, eps) {
		t.Errorf("camera moved to %+v with input disabled", cam.Position)
	}
}

func TestDollyClampsDistance(t *testing.T) {
	cam, oc := newTestRig()
	cam.Position = math.V3(0, 0, 10)
	oc.MinDistance = 9

	oc.Dolly(20)
	oc.Update()

	if d := cam.Position.Length(); math32.Abs(d-9) > eps {
		t.Errorf("distance = %v, want clamp at 9", d)
	}
}

func TestPolarAngleClamped(t *testing.T) {
	cam, oc := newTestRig()
	cam.Position = math.V3(0, 0, 10)
	oc.MinPolarAngle = math32.Pi / 4

	oc.Drag(0, 1000, 100)
	oc.Update()

	want := math.V3(0, 10*math32.Cos(math32.Pi/4), 10*math32.Sin(math32.Pi/4))
	if !cam.Position.ApproxEqual(want, eps) {
		t.Errorf("position = %+v, want %+v", cam.Position, want)
	}
	for i, f := range cam.ViewMatrix() {
		if math32.IsNaN(f) {
			t.Fatalf("view matrix element %d is NaN", i)
		}
	}
}
