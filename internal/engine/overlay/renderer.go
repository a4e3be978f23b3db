package overlay

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/showcase/internal/engine/shader"
	"github.com/Faultbox/showcase/pkg/math"
)

const solidVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec4 aColor;

uniform mat4 uProjection;

out vec4 vColor;

void main() {
	gl_Position = uProjection * vec4(aPos, 1.0);
	vColor = aColor;
}
`

const solidFragmentShader = `
#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
	FragColor = vColor;
}
`

const textVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

uniform mat4 uProjection;

out vec2 vTexCoord;
out vec4 vColor;

void main() {
	gl_Position = uProjection * vec4(aPos, 1.0);
	vTexCoord = aTexCoord;
	vColor = aColor;
}
`

const textFragmentShader = `
#version 410 core

uniform sampler2D uTexture;

in vec2 vTexCoord;
in vec4 vColor;
out vec4 FragColor;

void main() {
	float alpha = texture(uTexture, vTexCoord).a;
	FragColor = vec4(vColor.rgb, vColor.a * alpha);
}
`

// Renderer uploads overlay batches and draws them over the current frame.
type Renderer struct {
	solid *shader.Program
	text  *shader.Program

	solidVAO, solidVBO uint32
	textVAO, textVBO   uint32
	fontTex            uint32
}

// NewRenderer compiles the overlay shaders and uploads the font atlas.
// Must be called with a current GL context.
func NewRenderer(atlas *Atlas) (*Renderer, error) {
	r := &Renderer{}

	var err error
	r.solid, err = shader.NewProgram(solidVertexShader, solidFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("create solid shader: %w", err)
	}
	r.text, err = shader.NewProgram(textVertexShader, textFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("create text shader: %w", err)
	}

	r.solidVAO, r.solidVBO = vertexArray(solidStride, []int32{3, 4})
	r.textVAO, r.textVBO = vertexArray(textStride, []int32{3, 2, 4})
	r.fontTex = uploadAtlas(atlas)

	return r, nil
}

// vertexArray creates a VAO/VBO pair with tightly packed float attributes
// of the given component counts.
func vertexArray(stride int, sizes []int32) (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	offset := 0
	for i, size := range sizes {
		gl.VertexAttribPointerWithOffset(uint32(i), size, gl.FLOAT, false, int32(stride*4), uintptr(offset*4))
		gl.EnableVertexAttribArray(uint32(i))
		offset += int(size)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vao, vbo
}

func uploadAtlas(atlas *Atlas) uint32 {
	img := atlas.RGBA()
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(img.Bounds().Dx()), int32(img.Bounds().Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	// Nearest keeps the bitmap glyphs crisp at integer scales
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// Draw renders b over a width x height surface in screen coordinates.
func (r *Renderer) Draw(b *Batch, width, height int) {
	// Save OpenGL state
	var prevBlend, prevDepth, prevCull int32
	gl.GetIntegerv(gl.BLEND, &prevBlend)
	gl.GetIntegerv(gl.DEPTH_TEST, &prevDepth)
	gl.GetIntegerv(gl.CULL_FACE, &prevCull)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	proj := math.Ortho(0, float32(width), float32(height), 0, -1, 1)

	if len(b.Solid) > 0 {
		r.solid.Use()
		r.solid.SetMat4("uProjection", &proj)
		gl.BindVertexArray(r.solidVAO)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.solidVBO)
		gl.BufferData(gl.ARRAY_BUFFER, len(b.Solid)*4, unsafe.Pointer(&b.Solid[0]), gl.STREAM_DRAW)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(b.Solid)/solidStride))
	}

	if len(b.TextVerts) > 0 {
		r.text.Use()
		r.text.SetMat4("uProjection", &proj)
		r.text.SetInt("uTexture", 0)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, r.fontTex)

		gl.BindVertexArray(r.textVAO)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)
		gl.BufferData(gl.ARRAY_BUFFER, len(b.TextVerts)*4, unsafe.Pointer(&b.TextVerts[0]), gl.STREAM_DRAW)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(b.TextVerts)/textStride))
	}

	// Restore state
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)

	if prevBlend == gl.FALSE {
		gl.Disable(gl.BLEND)
	}
	if prevDepth == gl.TRUE {
		gl.Enable(gl.DEPTH_TEST)
	}
	if prevCull == gl.TRUE {
		gl.Enable(gl.CULL_FACE)
	}
}

// Close releases renderer resources.
func (r *Renderer) Close() {
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
	gl.DeleteVertexArrays(1, &r.solidVAO)
	gl.DeleteBuffers(1, &r.solidVBO)
	gl.DeleteVertexArrays(1, &r.textVAO)
	gl.DeleteBuffers(1, &r.textVBO)
	if r.solid != nil {
		r.solid.Delete()
	}
	if r.text != nil {
		r.text.Delete()
	}
}
