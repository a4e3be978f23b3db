package scene

import "github.com/Faultbox/showcase/pkg/math"

// AmbientLight lights every surface equally.
type AmbientLight struct {
	Color     [3]float32
	Intensity float32
}

// DirectionalLight shines from Position toward the origin.
type DirectionalLight struct {
	Color     [3]float32
	Intensity float32
	Position  math.Vec3
}

// Direction returns the unit vector from the lit surface toward the light.
func (l DirectionalLight) Direction() math.Vec3 {
	return l.Position.Normalize()
}

// Scene is the root of the graph plus its lights. A nil Background clears
// to transparent.
type Scene struct {
	Node

	Background  *[4]float32
	Ambient     AmbientLight
	Directional DirectionalLight
}

// New creates an empty scene with a transparent background and white,
// unlit lights.
func New() *Scene {
	s := &Scene{
		Node:        *NewNode("scene"),
		Ambient:     AmbientLight{Color: [3]float32{1, 1, 1}},
		Directional: DirectionalLight{Color: [3]float32{1, 1, 1}},
	}
	return s
}

// Contains reports whether n is attached anywhere under the scene root.
func (s *Scene) Contains(n *Node) bool {
	for p := n.parent; p != nil; p = p.parent {
		if p == &s.Node {
			return true
		}
	}
	return false
}

// Count returns how many times n appears in the graph.
func (s *Scene) Count(n *Node) int {
	count := 0
	s.Traverse(func(node *Node) {
		if node == n {
			count++
		}
	})
	return count
}

// VisibleMeshes returns the number of meshes that would be drawn.
func (s *Scene) VisibleMeshes() int {
	count := 0
	s.TraverseVisible(func(node *Node, _ math.Mat4) {
		if node.Mesh != nil {
			count++
		}
	})
	return count
}
