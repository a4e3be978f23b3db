package scene

// NewBox creates a box mesh of the given size.
func NewBox(width, height, depth float32, material Material) *Mesh {
	return NewMesh(NewBoxGeometry(width, height, depth), material)
}

// NewBoxGeometry builds an axis-aligned box centered on the origin with
// per-face normals (24 vertices, 12 triangles).
func NewBoxGeometry(width, height, depth float32) Geometry {
	hx, hy, hz := width/2, height/2, depth/2

	type face struct {
		normal  [3]float32
		corners [4][3]float32 // counter-clockwise seen from outside
	}
	faces := []face{
		{[3]float32{1, 0, 0}, [4][3]float32{{hx, -hy, hz}, {hx, -hy, -hz}, {hx, hy, -hz}, {hx, hy, hz}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-hx, -hy, -hz}, {-hx, -hy, hz}, {-hx, hy, hz}, {-hx, hy, -hz}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-hx, hy, hz}, {hx, hy, hz}, {hx, hy, -hz}, {-hx, hy, -hz}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-hx, -hy, -hz}, {hx, -hy, -hz}, {hx, -hy, hz}, {-hx, -hy, hz}}},
		{[3]float32{0, 0, 1}, [4][3]float32{{-hx, -hy, hz}, {hx, -hy, hz}, {hx, hy, hz}, {-hx, hy, hz}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{hx, -hy, -hz}, {-hx, -hy, -hz}, {-hx, hy, -hz}, {hx, hy, -hz}}},
	}

	g := Geometry{
		Positions: make([][3]float32, 0, 24),
		Normals:   make([][3]float32, 0, 24),
		Indices:   make([]uint32, 0, 36),
	}
	for _, f := range faces {
		base := uint32(len(g.Positions))
		for _, c := range f.corners {
			g.Positions = append(g.Positions, c)
			g.Normals = append(g.Normals, f.normal)
		}
		g.Indices = append(g.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return g
}
