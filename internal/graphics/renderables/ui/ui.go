package ui

import (
	"voxel/internal/graphics"
	"voxel/internal/graphics/shaders"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// UI draws flat screen-space rectangles. It is owned by the overlays that use
// it rather than registered with the renderer.
type UI struct {
	shader   *graphics.Shader
	colorLoc int32
	vao      uint32
	vbo      uint32
	width    float32
	height   float32
}

// NewUI creates a new UI drawer
func NewUI() *UI {
	return &UI{width: 1, height: 1}
}

// Init compiles the program and allocates a one-quad buffer.
func (u *UI) Init() error {
	var err error
	u.shader, err = graphics.NewShader(shaders.UIVert, shaders.UIFrag)
	if err != nil {
		return err
	}
	u.colorLoc = u.shader.Uniform("uColor")

	gl.GenVertexArrays(1, &u.vao)
	gl.GenBuffers(1, &u.vbo)
	gl.BindVertexArray(u.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, u.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 6*2*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return nil
}

// SetViewport sets the pixel size used to map rectangles to clip space.
func (u *UI) SetViewport(width, height int) {
	u.width, u.height = float32(max(width, 1)), float32(max(height, 1))
}

// Dispose cleans up OpenGL resources
func (u *UI) Dispose() {
	if u.vao != 0 {
		gl.DeleteVertexArrays(1, &u.vao)
		u.vao = 0
	}
	if u.vbo != 0 {
		gl.DeleteBuffers(1, &u.vbo)
		u.vbo = 0
	}
	u.shader.Delete()
}

// rectVertices maps a pixel rectangle (top-left origin) to two clip-space triangles.
func rectVertices(x, y, w, h, width, height float32) [12]float32 {
	x0 := (x/width)*2 - 1
	y0 := 1 - (y/height)*2
	x1 := ((x+w)/width)*2 - 1
	y1 := 1 - ((y+h)/height)*2
	return [12]float32{
		x0, y0,
		x0, y1,
		x1, y1,
		x0, y0,
		x1, y1,
		x1, y0,
	}
}

// DrawFilledRect draws a screen-space rectangle (pixels, top-left origin) with RGBA color.
func (u *UI) DrawFilledRect(x, y, w, h float32, color mgl32.Vec3, alpha float32) {
	if u.shader == nil {
		return
	}
	verts := rectVertices(x, y, w, h, u.width, u.height)

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	u.shader.Use()
	gl.Uniform4f(u.colorLoc, color.X(), color.Y(), color.Z(), alpha)

	gl.BindVertexArray(u.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, u.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(&verts[0]))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
}
