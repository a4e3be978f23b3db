// Package renderer draws a scene graph with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/showcase/internal/engine/camera"
	"github.com/Faultbox/showcase/internal/engine/renderer/shaders"
	"github.com/Faultbox/showcase/internal/engine/scene"
	"github.com/Faultbox/showcase/internal/engine/shader"
	"github.com/Faultbox/showcase/internal/logger"
	"github.com/Faultbox/showcase/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width      int // drawing surface size in screen coordinates
	Height     int
	PixelRatio float32
	SRGB       bool
	Samples    int
}

// gpuMesh holds the uploaded buffers for one scene.Mesh.
type gpuMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	log    *zap.Logger

	program *shader.Program
	meshes  map[uint64]*gpuMesh
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	if cfg.PixelRatio <= 0 {
		cfg.PixelRatio = 1
	}
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
		meshes: make(map[uint64]*gpuMesh),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	if cfg.Samples > 0 {
		gl.Enable(gl.MULTISAMPLE)
	}
	if cfg.SRGB {
		gl.Enable(gl.FRAMEBUFFER_SRGB)
	}

	var err error
	r.program, err = shader.NewProgram(shaders.MeshVertexShader, shaders.MeshFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("mesh shader: %w", err)
	}

	r.applyViewport()
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer", zap.Int("meshes", len(r.meshes)))
	for id, m := range r.meshes {
		deleteMesh(m)
		delete(r.meshes, id)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// SetPixelRatio sets framebuffer pixels per screen coordinate.
func (r *Renderer) SetPixelRatio(ratio float32) {
	if ratio <= 0 {
		ratio = 1
	}
	r.config.PixelRatio = ratio
	r.applyViewport()
}

// PixelRatio returns the current pixel ratio.
func (r *Renderer) PixelRatio() float32 {
	return r.config.PixelRatio
}

// SetSize resizes the drawing surface to width x height screen coordinates.
func (r *Renderer) SetSize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	r.applyViewport()
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the drawing surface size in screen coordinates.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

func (r *Renderer) applyViewport() {
	w := int32(float32(r.config.Width) * r.config.PixelRatio)
	h := int32(float32(r.config.Height) * r.config.PixelRatio)
	gl.Viewport(0, 0, w, h)
}

// Render clears the surface and draws every visible mesh in s.
func (r *Renderer) Render(s *scene.Scene, cam *camera.PerspectiveCamera) error {
	if s.Background != nil {
		bg := *s.Background
		gl.ClearColor(bg[0], bg[1], bg[2], bg[3])
	} else {
		gl.ClearColor(0, 0, 0, 0)
	}
	gl.DepthMask(true)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	p := r.program
	p.Use()

	viewProj := cam.ViewProjection()
	p.SetMat4("uViewProj", &viewProj)

	amb := s.Ambient
	p.SetVec3("uAmbient", amb.Color[0]*amb.Intensity, amb.Color[1]*amb.Intensity, amb.Color[2]*amb.Intensity)
	dir := s.Directional
	d := dir.Direction()
	p.SetVec3("uLightDir", d.X, d.Y, d.Z)
	p.SetVec3("uLightColor", dir.Color[0]*dir.Intensity, dir.Color[1]*dir.Intensity, dir.Color[2]*dir.Intensity)
	p.SetVec3("uCameraPos", cam.Position.X, cam.Position.Y, cam.Position.Z)

	s.TraverseVisible(func(n *scene.Node, world math.Mat4) {
		if n.Mesh == nil || n.Mesh.TriangleCount() == 0 {
			return
		}
		gm := r.upload(n.Mesh)
		mat := n.Mesh.Material

		if mat.DoubleSided {
			gl.Disable(gl.CULL_FACE)
		} else {
			gl.Enable(gl.CULL_FACE)
			gl.CullFace(gl.BACK)
		}

		normal := world.NormalMatrix()
		p.SetMat4("uModel", &world)
		p.SetMat3("uNormalMatrix", &normal)
		p.SetVec4("uColor", mat.Color)
		p.SetFloat("uShininess", max(mat.Shininess, 1))

		gl.BindVertexArray(gm.vao)
		gl.DrawElementsWithOffset(gl.TRIANGLES, gm.indexCount, gl.UNSIGNED_INT, 0)
	})
	gl.BindVertexArray(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("render: GL error 0x%x", code)
	}
	return nil
}

// upload returns the GPU buffers for m, creating them on first use.
func (r *Renderer) upload(m *scene.Mesh) *gpuMesh {
	if gm, ok := r.meshes[m.ID()]; ok {
		return gm
	}

	g := m.Geometry
	// Interleaved position + normal
	vertices := make([]float32, 0, len(g.Positions)*6)
	for i, p := range g.Positions {
		n := g.Normals[i]
		vertices = append(vertices, p[0], p[1], p[2], n[0], n[1], n[2])
	}

	gm := &gpuMesh{indexCount: int32(len(g.Indices))}
	gl.GenVertexArrays(1, &gm.vao)
	gl.BindVertexArray(gm.vao)

	gl.GenBuffers(1, &gm.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, gm.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	const stride = 6 * 4
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.GenBuffers(1, &gm.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gm.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Indices)*4, unsafe.Pointer(&g.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	r.meshes[m.ID()] = gm
	r.log.Debug("mesh uploaded",
		zap.Uint64("mesh", m.ID()),
		zap.Int("vertices", len(g.Positions)),
		zap.Int("triangles", m.TriangleCount()),
	)
	return gm
}

func deleteMesh(m *gpuMesh) {
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
	gl.DeleteVertexArrays(1, &m.vao)
}
