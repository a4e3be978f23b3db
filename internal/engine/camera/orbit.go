package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/showcase/pkg/math"
)

// OrbitControls orbits a camera around a target point. Pointer input
// accumulates rotation deltas; Update applies them to the camera, bleeding
// them off gradually when damping is enabled.
type OrbitControls struct {
	Camera *PerspectiveCamera
	Target math.Vec3

	EnableDamping bool
	DampingFactor float32

	EnableRotate bool
	RotateSpeed  float32
	EnableZoom   bool
	ZoomSpeed    float32
	EnablePan    bool

	MinDistance   float32
	MaxDistance   float32
	MinPolarAngle float32
	MaxPolarAngle float32

	delta    math.Spherical // pending rotation (Radius unused)
	scale    float32        // pending dolly factor
	panDelta math.Vec3
}

// NewOrbitControls attaches controls to cam, orbiting the origin.
func NewOrbitControls(cam *PerspectiveCamera) *OrbitControls {
	oc := &OrbitControls{
		Camera:        cam,
		DampingFactor: 0.05,
		EnableRotate:  true,
		RotateSpeed:   1,
		EnableZoom:    true,
		ZoomSpeed:     1,
		EnablePan:     true,
		MinDistance:   0,
		MaxDistance:   math32.Inf(1),
		MinPolarAngle: 0,
		MaxPolarAngle: math32.Pi,
		scale:         1,
	}
	cam.LookAt(oc.Target)
	return oc
}

// Drag feeds a pointer drag of (dx, dy) pixels on a surface clientHeight
// pixels tall. A drag across the full height rotates one full turn.
func (oc *OrbitControls) Drag(dx, dy, clientHeight float32) {
	if !oc.EnableRotate || clientHeight <= 0 {
		return
	}
	oc.rotateLeft(2 * math32.Pi * dx * oc.RotateSpeed / clientHeight)
	oc.rotateUp(2 * math32.Pi * dy * oc.RotateSpeed / clientHeight)
}

func (oc *OrbitControls) rotateLeft(angle float32) {
	oc.delta.Theta -= angle
}

func (oc *OrbitControls) rotateUp(angle float32) {
	oc.delta.Phi -= angle
}

// Dolly moves the camera toward (steps > 0) or away from the target.
func (oc *OrbitControls) Dolly(steps float32) {
	if !oc.EnableZoom || steps == 0 {
		return
	}
	factor := math32.Pow(0.95, oc.ZoomSpeed*math32.Abs(steps))
	if steps > 0 {
		oc.scale *= factor
	} else {
		oc.scale /= factor
	}
}

// Pan shifts the target in the camera's screen plane by (dx, dy) pixels.
func (oc *OrbitControls) Pan(dx, dy, clientHeight float32) {
	if !oc.EnablePan || clientHeight <= 0 {
		return
	}
	cam := oc.Camera
	offset := cam.Position.Sub(oc.Target)
	// World units per pixel at the target distance
	unit := 2 * offset.Length() * math32.Tan(cam.FOV*math32.Pi/360) / clientHeight

	forward := offset.Negate().Normalize()
	right := forward.Cross(cam.Up).Normalize()
	up := right.Cross(forward)
	oc.panDelta = oc.panDelta.Add(right.Scale(-dx * unit)).Add(up.Scale(dy * unit))
}

// Update applies pending input to the camera. It reports whether the
// camera moved.
func (oc *OrbitControls) Update() bool {
	cam := oc.Camera
	before := cam.Position

	offset := cam.Position.Sub(oc.Target)
	s := math.SphericalFromVec3(offset)

	if oc.EnableDamping {
		s.Theta += oc.delta.Theta * oc.DampingFactor
		s.Phi += oc.delta.Phi * oc.DampingFactor
		oc.Target = oc.Target.Add(oc.panDelta.Scale(oc.DampingFactor))
	} else {
		s.Theta += oc.delta.Theta
		s.Phi += oc.delta.Phi
		oc.Target = oc.Target.Add(oc.panDelta)
	}
	s.Phi = math.Clamp(s.Phi, oc.MinPolarAngle, oc.MaxPolarAngle)
	s = s.MakeSafe()
	s.Radius = math.Clamp(s.Radius*oc.scale, oc.MinDistance, oc.MaxDistance)

	cam.Position = oc.Target.Add(s.Vec3())
	cam.LookAt(oc.Target)

	if oc.EnableDamping {
		keep := 1 - oc.DampingFactor
		oc.delta.Theta *= keep
		oc.delta.Phi *= keep
		oc.panDelta = oc.panDelta.Scale(keep)
	} else {
		oc.delta = math.Spherical{}
		oc.panDelta = math.Vec3{}
	}
	oc.scale = 1

	return cam.Position.Distance(before) > 1e-4
}
