package scene

import (
	"sync/atomic"

	"github.com/Faultbox/showcase/pkg/math"
)

// Geometry is indexed triangle data.
type Geometry struct {
	Positions [][3]float32
	Normals   [][3]float32
	Indices   []uint32
}

// Material is a Phong-style surface description.
type Material struct {
	Color       [4]float32 // linear RGBA
	Shininess   float32
	DoubleSided bool
}

// ColorFromHex converts 0xRRGGBB to an opaque RGBA color.
func ColorFromHex(hex uint32) [4]float32 {
	return [4]float32{
		float32((hex>>16)&0xff) / 255.0,
		float32((hex>>8)&0xff) / 255.0,
		float32(hex&0xff) / 255.0,
		1,
	}
}

var meshIDs atomic.Uint64

// Mesh pairs geometry with a material. Its ID keys GPU buffers in the
// renderer.
type Mesh struct {
	Geometry Geometry
	Material Material

	id     uint64
	bounds math.Box3
}

// NewMesh creates a mesh. Missing normals are computed from the triangles.
func NewMesh(g Geometry, m Material) *Mesh {
	if len(g.Normals) != len(g.Positions) {
		g.Normals = ComputeNormals(g.Positions, g.Indices)
	}
	mesh := &Mesh{
		Geometry: g,
		Material: m,
		id:       meshIDs.Add(1),
		bounds:   math.EmptyBox3(),
	}
	for _, p := range g.Positions {
		mesh.bounds = mesh.bounds.ExpandByPoint(math.Vec3{X: p[0], Y: p[1], Z: p[2]})
	}
	return mesh
}

// ID returns the mesh's process-unique identifier.
func (m *Mesh) ID() uint64 {
	return m.id
}

// Bounds returns the local-space bounding box.
func (m *Mesh) Bounds() math.Box3 {
	return m.bounds
}

// TriangleCount returns the number of indexed triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Geometry.Indices) / 3
}

// ComputeNormals returns smooth per-vertex normals, averaging the face
// normals of every triangle that shares a vertex.
func ComputeNormals(positions [][3]float32, indices []uint32) [][3]float32 {
	acc := make([]math.Vec3, len(positions))
	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		if int(i0) >= len(positions) || int(i1) >= len(positions) || int(i2) >= len(positions) {
			continue
		}
		p0 := vec(positions[i0])
		p1 := vec(positions[i1])
		p2 := vec(positions[i2])
		// Unnormalized, so larger faces weigh more
		face := p1.Sub(p0).Cross(p2.Sub(p0))
		acc[i0] = acc[i0].Add(face)
		acc[i1] = acc[i1].Add(face)
		acc[i2] = acc[i2].Add(face)
	}

	normals := make([][3]float32, len(positions))
	for i, n := range acc {
		n = n.Normalize()
		if n == (math.Vec3{}) {
			n = math.Vec3{Y: 1}
		}
		normals[i] = n.Array()
	}
	return normals
}

func vec(p [3]float32) math.Vec3 {
	return math.Vec3{X: p[0], Y: p[1], Z: p[2]}
}
