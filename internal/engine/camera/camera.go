// Package camera provides the perspective camera and the orbit controls
// that drive it from pointer input.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/showcase/pkg/math"
)

// PerspectiveCamera is a pinhole camera looking from Position at Target.
type PerspectiveCamera struct {
	FOV    float32 // vertical field of view in degrees
	Aspect float32
	Near   float32
	Far    float32

	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3

	projection math.Mat4
}

// NewPerspectiveCamera creates a camera at the origin looking down -Z.
func NewPerspectiveCamera(fov, aspect, near, far float32) *PerspectiveCamera {
	c := &PerspectiveCamera{
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
		Target: math.V3(0, 0, -1),
		Up:     math.V3(0, 1, 0),
	}
	c.UpdateProjectionMatrix()
	return c
}

// UpdateProjectionMatrix recomputes the projection after FOV, Aspect, Near
// or Far change.
func (c *PerspectiveCamera) UpdateProjectionMatrix() {
	c.projection = math.Perspective(c.FOV*math32.Pi/180, c.Aspect, c.Near, c.Far)
}

// ProjectionMatrix returns the matrix computed by the last
// UpdateProjectionMatrix.
func (c *PerspectiveCamera) ProjectionMatrix() math.Mat4 {
	return c.projection
}

// LookAt points the camera at target.
func (c *PerspectiveCamera) LookAt(target math.Vec3) {
	c.Target = target
}

// ViewMatrix returns the world-to-camera matrix.
func (c *PerspectiveCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Target, c.Up)
}

// ViewProjection returns ProjectionMatrix * ViewMatrix.
func (c *PerspectiveCamera) ViewProjection() math.Mat4 {
	return c.projection.Mul(c.ViewMatrix())
}
