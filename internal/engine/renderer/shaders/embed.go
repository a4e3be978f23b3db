// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// MeshVertexShader transforms lit mesh vertices.
//
//go:embed mesh.vert
var MeshVertexShader string

// MeshFragmentShader shades meshes with ambient + directional Phong lighting.
//
//go:embed mesh.frag
var MeshFragmentShader string
