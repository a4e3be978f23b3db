// Package scene provides the viewer's scene graph: transform nodes, meshes,
// lights and bounding box queries. It holds no GPU state; the renderer
// uploads meshes on first draw.
package scene

import (
	"slices"

	"github.com/Faultbox/showcase/pkg/math"
)

// Node is a transform in the scene graph with an optional mesh.
type Node struct {
	Name     string
	Position math.Vec3
	Rotation math.Euler
	Scale    math.Vec3
	Visible  bool
	Mesh     *Mesh

	parent   *Node
	children []*Node
}

// NewNode creates a visible node with identity transform.
func NewNode(name string) *Node {
	return &Node{
		Name:    name,
		Scale:   math.Vec3{X: 1, Y: 1, Z: 1},
		Visible: true,
	}
}

// NewMeshNode creates a visible node holding mesh.
func NewMeshNode(name string, mesh *Mesh) *Node {
	n := NewNode(name)
	n.Mesh = mesh
	return n
}

// Add attaches child to n, detaching it from any previous parent first.
// Adding a node that is already a child of n does nothing.
func (n *Node) Add(child *Node) {
	if child == nil || child == n || child.parent == n {
		return
	}
	if child.parent != nil {
		child.parent.Remove(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

// Remove detaches child from n. It reports whether child was attached.
func (n *Node) Remove(child *Node) bool {
	i := slices.Index(n.children, child)
	if i < 0 {
		return false
	}
	n.children = slices.Delete(n.children, i, i+1)
	child.parent = nil
	return true
}

// Parent returns the node n is attached to, or nil.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the directly attached nodes.
func (n *Node) Children() []*Node {
	return n.children
}

// LocalMatrix composes Position, Rotation and Scale.
func (n *Node) LocalMatrix() math.Mat4 {
	return math.Compose(n.Position, n.Rotation.Mat4(), n.Scale)
}

// WorldMatrix composes the local matrices from the root down to n.
func (n *Node) WorldMatrix() math.Mat4 {
	m := n.LocalMatrix()
	for p := n.parent; p != nil; p = p.parent {
		m = p.LocalMatrix().Mul(m)
	}
	return m
}

// SetTransform replaces the local transform with a decomposed matrix.
func (n *Node) SetTransform(m math.Mat4) {
	n.Position, n.Rotation, n.Scale = math.Decompose(m)
}

// Traverse calls fn for n and every descendant, depth first.
func (n *Node) Traverse(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.Traverse(fn)
	}
}

// TraverseVisible is Traverse that skips hidden nodes and their subtrees.
func (n *Node) TraverseVisible(fn func(node *Node, world math.Mat4)) {
	n.traverseVisible(math.Identity(), fn)
}

func (n *Node) traverseVisible(parent math.Mat4, fn func(*Node, math.Mat4)) {
	if !n.Visible {
		return
	}
	world := parent.Mul(n.LocalMatrix())
	fn(n, world)
	for _, c := range n.children {
		c.traverseVisible(world, fn)
	}
}

// ComputeBoundingBox returns the world-space box enclosing every mesh vertex
// in the subtree rooted at n, visible or not. The box is empty when the
// subtree has no geometry.
func ComputeBoundingBox(n *Node) math.Box3 {
	box := math.EmptyBox3()
	var walk func(node *Node, world math.Mat4)
	walk = func(node *Node, world math.Mat4) {
		if node.Mesh != nil {
			for _, p := range node.Mesh.Geometry.Positions {
				box = box.ExpandByPoint(world.TransformVec3(math.Vec3{X: p[0], Y: p[1], Z: p[2]}))
			}
		}
		for _, c := range node.children {
			walk(c, world.Mul(c.LocalMatrix()))
		}
	}
	walk(n, n.WorldMatrix())
	return box
}
