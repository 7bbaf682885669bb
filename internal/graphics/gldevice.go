package graphics

import (
	"fmt"
	"image"

	renderer "voxel/internal/graphics/renderer"
	"voxel/internal/graphics/shaders"
	"voxel/internal/meshing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const vertexSize = 4 // bytes per meshing.Vertex

// GLDevice draws chunk meshes with OpenGL. It owns the terrain program, its
// uniform locations and the block atlas texture.
type GLDevice struct {
	shader  *Shader
	vao     uint32
	atlas   uint32
	mvpLoc  int32
	buffers map[renderer.Buffer]struct{}
}

// NewGLDevice compiles the terrain program and uploads the atlas. A GL
// context must be current.
func NewGLDevice(atlas *image.RGBA) (*GLDevice, error) {
	shader, err := NewShader(shaders.TerrainVert, shaders.TerrainFrag)
	if err != nil {
		return nil, fmt.Errorf("terrain program: %w", err)
	}

	d := &GLDevice{
		shader:  shader,
		atlas:   UploadTexture(atlas),
		mvpLoc:  shader.Uniform("mvp"),
		buffers: make(map[renderer.Buffer]struct{}),
	}
	gl.GenVertexArrays(1, &d.vao)

	shader.Use()
	shader.SetInt("atlas", 0)
	return d, nil
}

// CreateBuffer allocates a vertex buffer object.
func (d *GLDevice) CreateBuffer() (renderer.Buffer, error) {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	if vbo == 0 {
		return 0, fmt.Errorf("gen buffer: gl error 0x%x", gl.GetError())
	}
	buf := renderer.Buffer(vbo)
	d.buffers[buf] = struct{}{}
	return buf, nil
}

// Upload replaces the buffer contents with vertices.
func (d *GLDevice) Upload(buf renderer.Buffer, vertices []meshing.Vertex) error {
	if _, ok := d.buffers[buf]; !ok {
		return fmt.Errorf("upload: unknown buffer %d", buf)
	}
	if len(vertices) == 0 {
		return nil
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(buf))
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*vertexSize, gl.Ptr(&vertices[0]), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("buffer data: gl error 0x%x", code)
	}
	return nil
}

// Draw issues one triangle-list draw of count vertices.
func (d *GLDevice) Draw(buf renderer.Buffer, mvp mgl32.Mat4, count int) {
	d.shader.Use()
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, d.atlas)
	gl.UniformMatrix4fv(d.mvpLoc, 1, false, &mvp[0])

	gl.BindVertexArray(d.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(buf))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 4, gl.UNSIGNED_BYTE, false, vertexSize, 0)

	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))
}

// DeleteBuffer frees a vertex buffer.
func (d *GLDevice) DeleteBuffer(buf renderer.Buffer) {
	if _, ok := d.buffers[buf]; !ok {
		return
	}
	vbo := uint32(buf)
	gl.DeleteBuffers(1, &vbo)
	delete(d.buffers, buf)
}

// Dispose frees every remaining buffer and the program.
func (d *GLDevice) Dispose() {
	for buf := range d.buffers {
		d.DeleteBuffer(buf)
	}
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
	if d.atlas != 0 {
		gl.DeleteTextures(1, &d.atlas)
		d.atlas = 0
	}
	d.shader.Delete()
}
