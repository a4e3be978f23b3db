package assets

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/Faultbox/showcase/internal/engine/scene"
	"github.com/Faultbox/showcase/pkg/math"
)

// defaultMaterial is used for primitives without a material, matching the
// glTF default of an opaque white surface.
var defaultMaterial = scene.Material{Color: [4]float32{1, 1, 1, 1}, Shininess: 30}

// Convert builds a scene subgraph from a decoded glTF document. It uses the
// document's default scene, or every scene when none is marked default.
// Only triangle primitives are converted.
func Convert(doc *gltf.Document) (*scene.Node, error) {
	c := &converter{
		doc:       doc,
		meshes:    make(map[int][]*scene.Mesh),
		materials: make(map[int]scene.Material),
		visiting:  make(map[int]bool),
	}

	root := scene.NewNode("gltf")
	var roots []int
	if doc.Scene != nil && *doc.Scene < len(doc.Scenes) {
		roots = doc.Scenes[*doc.Scene].Nodes
	} else {
		for _, s := range doc.Scenes {
			roots = append(roots, s.Nodes...)
		}
	}

	for _, idx := range roots {
		n, err := c.node(idx)
		if err != nil {
			return nil, err
		}
		root.Add(n)
	}

	if c.triangles == 0 {
		return nil, withKind(ErrEmpty, errors.New("document has no triangle geometry"))
	}
	return root, nil
}

type converter struct {
	doc       *gltf.Document
	meshes    map[int][]*scene.Mesh
	materials map[int]scene.Material
	visiting  map[int]bool
	triangles int
}

func (c *converter) node(idx int) (*scene.Node, error) {
	if idx < 0 || idx >= len(c.doc.Nodes) {
		return nil, withKind(ErrParse, errors.Errorf("node %d out of range", idx))
	}
	if c.visiting[idx] {
		return nil, withKind(ErrParse, errors.Errorf("node %d is its own ancestor", idx))
	}
	c.visiting[idx] = true
	defer delete(c.visiting, idx)

	gn := c.doc.Nodes[idx]
	name := gn.Name
	if name == "" {
		name = fmt.Sprintf("node%d", idx)
	}
	n := scene.NewNode(name)
	applyTransform(n, gn)

	if gn.Mesh != nil {
		meshes, err := c.mesh(*gn.Mesh)
		if err != nil {
			return nil, err
		}
		// One child per primitive keeps a single mesh per node
		for i, m := range meshes {
			n.Add(scene.NewMeshNode(fmt.Sprintf("%s.%d", name, i), m))
		}
	}

	for _, child := range gn.Children {
		cn, err := c.node(child)
		if err != nil {
			return nil, err
		}
		n.Add(cn)
	}
	return n, nil
}

func applyTransform(n *scene.Node, gn *gltf.Node) {
	m := gn.MatrixOrDefault()
	if m != gltf.DefaultMatrix {
		var mat math.Mat4
		for i, v := range m {
			mat[i] = float32(v)
		}
		n.SetTransform(mat)
		return
	}

	t := gn.TranslationOrDefault()
	r := gn.RotationOrDefault()
	s := gn.ScaleOrDefault()
	n.Position = math.V3(float32(t[0]), float32(t[1]), float32(t[2]))
	n.Rotation = math.EulerFromQuat(math.Quat{
		X: float32(r[0]), Y: float32(r[1]), Z: float32(r[2]), W: float32(r[3]),
	}.Normalize())
	n.Scale = math.V3(float32(s[0]), float32(s[1]), float32(s[2]))
}

func (c *converter) mesh(idx int) ([]*scene.Mesh, error) {
	if cached, ok := c.meshes[idx]; ok {
		return cached, nil
	}
	if idx < 0 || idx >= len(c.doc.Meshes) {
		return nil, withKind(ErrParse, errors.Errorf("mesh %d out of range", idx))
	}

	var out []*scene.Mesh
	for pi, prim := range c.doc.Meshes[idx].Primitives {
		if prim.Mode != gltf.PrimitiveTriangles {
			continue
		}
		m, err := c.primitive(prim)
		if err != nil {
			return nil, withKind(ErrParse, errors.Wrapf(err, "mesh %d primitive %d", idx, pi))
		}
		if m == nil {
			continue
		}
		c.triangles += m.TriangleCount()
		out = append(out, m)
	}
	c.meshes[idx] = out
	return out, nil
}

func (c *converter) primitive(prim *gltf.Primitive) (*scene.Mesh, error) {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil, nil
	}
	accessor, err := c.accessor(posIdx)
	if err != nil {
		return nil, err
	}
	positions, err := modeler.ReadPosition(c.doc, accessor, nil)
	if err != nil {
		return nil, errors.Wrap(err, "positions")
	}
	if len(positions) == 0 {
		return nil, nil
	}

	var normals [][3]float32
	if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
		if acr, err := c.accessor(normIdx); err == nil {
			normals, _ = modeler.ReadNormal(c.doc, acr, nil)
		}
	}

	var indices []uint32
	if prim.Indices != nil {
		acr, err := c.accessor(*prim.Indices)
		if err != nil {
			return nil, err
		}
		indices, err = modeler.ReadIndices(c.doc, acr, nil)
		if err != nil {
			return nil, errors.Wrap(err, "indices")
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}
	for _, i := range indices {
		if int(i) >= len(positions) {
			return nil, errors.Errorf("index %d exceeds %d vertices", i, len(positions))
		}
	}
	if len(indices) < 3 {
		return nil, nil
	}

	material := defaultMaterial
	if prim.Material != nil {
		material = c.material(*prim.Material)
	}

	return scene.NewMesh(scene.Geometry{
		Positions: positions,
		Normals:   normals,
		Indices:   indices,
	}, material), nil
}

func (c *converter) accessor(idx int) (*gltf.Accessor, error) {
	if idx < 0 || idx >= len(c.doc.Accessors) {
		return nil, errors.Errorf("accessor %d out of range", idx)
	}
	return c.doc.Accessors[idx], nil
}

func (c *converter) material(idx int) scene.Material {
	if m, ok := c.materials[idx]; ok {
		return m
	}
	m := defaultMaterial
	if idx >= 0 && idx < len(c.doc.Materials) {
		gm := c.doc.Materials[idx]
		m.DoubleSided = gm.DoubleSided
		if pbr := gm.PBRMetallicRoughness; pbr != nil && pbr.BaseColorFactor != nil {
			f := *pbr.BaseColorFactor
			m.Color = [4]float32{float32(f[0]), float32(f[1]), float32(f[2]), float32(f[3])}
		}
	}
	c.materials[idx] = m
	return m
}
