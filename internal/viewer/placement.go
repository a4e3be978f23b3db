package viewer

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/showcase/internal/engine/scene"
	"github.com/Faultbox/showcase/pkg/math"
)

// Placement is the fixed transform applied to a loaded model.
type Placement struct {
	Offset   math.Vec3 // added after centering and lifting
	Rotation math.Euler
	Scale    math.Vec3
}

// DefaultPlacement nudges the model slightly right and forward and stands
// it upright by rotating a quarter turn about X.
var DefaultPlacement = Placement{
	Offset:   math.V3(0.1, 0, 0.05),
	Rotation: math.Euler{X: math32.Pi / 2},
	Scale:    math.V3(1, 1, 1),
}

// PlaceModel centers model on the origin using its current bounding box,
// lifts it by half its height and applies p.
//
// The box is measured before p's rotation is applied, so the lift uses the
// model's original Y extent.
func PlaceModel(model *scene.Node, p Placement) {
	box := scene.ComputeBoundingBox(model)
	if !box.IsEmpty() {
		center := box.Center()
		size := box.Size()
		model.Position = model.Position.Sub(center)
		model.Position.Y += size.Y / 2
	}
	model.Position = model.Position.Add(p.Offset)
	model.Rotation = p.Rotation
	model.Scale = p.Scale
}
