package render

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/kkconaty23/Simple-3D-game/internal/openglhelper"
)

// mesh is a static piece of scene geometry: one VAO with an interleaved
// VBO and an index buffer.
type mesh struct {
	vao        *openglhelper.VertexArrayObject
	vbo        *openglhelper.BufferObject
	ebo        *openglhelper.BufferObject
	indexCount int32
}

// Draw renders the mesh. The caller is responsible for binding a shader
// and setting its uniforms first.
func (m *mesh) Draw() {
	m.vao.Bind()
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	m.vao.Unbind()
}

// Delete releases all GPU resources.
func (m *mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
	m.ebo.Delete()
}

// newCubeMesh builds the demo cube: 2x2x2, centered on the origin, a
// distinct solid color per face. Vertex layout: position (3), color (3).
func newCubeMesh() *mesh {
	vertices := []float32{
		// Front face, red
		-1, -1, 1, 1, 0, 0,
		1, -1, 1, 1, 0, 0,
		1, 1, 1, 1, 0, 0,
		-1, 1, 1, 1, 0, 0,

		// Back face, green
		-1, -1, -1, 0, 1, 0,
		-1, 1, -1, 0, 1, 0,
		1, 1, -1, 0, 1, 0,
		1, -1, -1, 0, 1, 0,

		// Top face, blue
		-1, 1, -1, 0, 0, 1,
		-1, 1, 1, 0, 0, 1,
		1, 1, 1, 0, 0, 1,
		1, 1, -1, 0, 0, 1,

		// Bottom face, yellow
		-1, -1, -1, 1, 1, 0,
		1, -1, -1, 1, 1, 0,
		1, -1, 1, 1, 1, 0,
		-1, -1, 1, 1, 1, 0,

		// Right face, cyan
		1, -1, -1, 0, 1, 1,
		1, 1, -1, 0, 1, 1,
		1, 1, 1, 0, 1, 1,
		1, -1, 1, 0, 1, 1,

		// Left face, magenta
		-1, -1, -1, 1, 0, 1,
		-1, -1, 1, 1, 0, 1,
		-1, 1, 1, 1, 0, 1,
		-1, 1, -1, 1, 0, 1,
	}

	indices := []uint32{
		0, 1, 2, 2, 3, 0, // Front face
		4, 5, 6, 6, 7, 4, // Back face
		8, 9, 10, 10, 11, 8, // Top face
		12, 13, 14, 14, 15, 12, // Bottom face
		16, 17, 18, 18, 19, 16, // Right face
		20, 21, 22, 22, 23, 20, // Left face
	}

	return buildMesh(vertices, indices, 3)
}

// newOverlayMesh builds the 2D background: a sky quad over the top half
// of the screen and a ground quad over the bottom half, directly in
// normalized device coordinates. Vertex layout: position (2), color (3).
func newOverlayMesh() *mesh {
	sky := []float32{0.5, 0.8, 1.0}
	ground := []float32{0.2, 0.6, 0.2}

	vertices := []float32{
		// Sky quad
		-1, 1, sky[0], sky[1], sky[2],
		1, 1, sky[0], sky[1], sky[2],
		1, 0, sky[0], sky[1], sky[2],
		-1, 0, sky[0], sky[1], sky[2],

		// Ground quad
		-1, 0, ground[0], ground[1], ground[2],
		1, 0, ground[0], ground[1], ground[2],
		1, -1, ground[0], ground[1], ground[2],
		-1, -1, ground[0], ground[1], ground[2],
	}

	indices := []uint32{
		0, 1, 2, 2, 3, 0,
		4, 5, 6, 6, 7, 4,
	}

	return buildMesh(vertices, indices, 2)
}

// buildMesh uploads interleaved position+color vertex data. posSize is
// the number of position components (2 for NDC overlays, 3 for scene
// geometry); a 3-component color always follows.
func buildMesh(vertices []float32, indices []uint32, posSize int32) *mesh {
	vao := openglhelper.NewVAO()
	vao.Bind()

	vbo := openglhelper.NewVBO(vertices, openglhelper.StaticDraw)
	ebo := openglhelper.NewEBO(indices, openglhelper.StaticDraw)

	stride := (posSize + 3) * 4
	vao.SetVertexAttribPointer(0, posSize, gl.FLOAT, false, stride, 0)
	vao.SetVertexAttribPointer(1, 3, gl.FLOAT, false, stride, int(posSize)*4)

	vao.Unbind()

	return &mesh{
		vao:        vao,
		vbo:        vbo,
		ebo:        ebo,
		indexCount: int32(len(indices)),
	}
}
