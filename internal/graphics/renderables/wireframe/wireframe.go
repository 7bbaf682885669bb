package wireframe

import (
	"voxel/internal/graphics"
	renderer "voxel/internal/graphics/renderer"
	"voxel/internal/graphics/shaders"
	"voxel/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// CubeEdges are the 12 edges of the unit cube as line-list endpoints.
var CubeEdges = []float32{
	// z = 0
	0, 0, 0, 1, 0, 0,
	1, 0, 0, 1, 1, 0,
	1, 1, 0, 0, 1, 0,
	0, 1, 0, 0, 0, 0,

	// z = 1
	0, 0, 1, 1, 0, 1,
	1, 0, 1, 1, 1, 1,
	1, 1, 1, 0, 1, 1,
	0, 1, 1, 0, 0, 1,

	// connecting edges
	0, 0, 0, 0, 0, 1,
	1, 0, 0, 1, 0, 1,
	1, 1, 0, 1, 1, 1,
	0, 1, 0, 0, 1, 1,
}

// Wireframe outlines the block under the cursor.
type Wireframe struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
	prof   *profiling.Profiler

	target    [3]int
	hasTarget bool
}

// NewWireframe creates a new wireframe renderable
func NewWireframe(prof *profiling.Profiler) *Wireframe {
	return &Wireframe{prof: prof}
}

// SetTarget selects the block to outline; ok=false hides the cursor.
func (w *Wireframe) SetTarget(pos [3]int, ok bool) {
	w.target, w.hasTarget = pos, ok
}

// Init initializes the wireframe rendering system
func (w *Wireframe) Init() error {
	var err error
	w.shader, err = graphics.NewShader(shaders.WireframeVert, shaders.WireframeFrag)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &w.vao)
	gl.BindVertexArray(w.vao)

	gl.GenBuffers(1, &w.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, w.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(CubeEdges)*4, gl.Ptr(CubeEdges), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.BindVertexArray(0)
	return nil
}

// Render draws the outline for the current target, if any.
func (w *Wireframe) Render(ctx renderer.RenderContext) {
	if !w.hasTarget {
		return
	}
	defer w.prof.Track("render.cursor")()

	// Grow the box slightly around the block center so it is not z-fighting.
	model := mgl32.Translate3D(
		float32(w.target[0])+0.5,
		float32(w.target[1])+0.5,
		float32(w.target[2])+0.5,
	).Mul4(mgl32.Scale3D(1.01, 1.01, 1.01)).Mul4(mgl32.Translate3D(-0.5, -0.5, -0.5))
	mvp := ctx.ViewProj.Mul4(model)

	w.shader.Use()
	w.shader.SetMatrix4("mvp", &mvp[0])
	w.shader.SetVector3("color", 0, 0, 0)

	gl.BindVertexArray(w.vao)
	gl.LineWidth(1.0)
	gl.DrawArrays(gl.LINES, 0, int32(len(CubeEdges)/3))
}

// SetViewport implements renderer.Renderable.
func (w *Wireframe) SetViewport(width, height int) {}

// Dispose cleans up OpenGL resources
func (w *Wireframe) Dispose() {
	if w.vao != 0 {
		gl.DeleteVertexArrays(1, &w.vao)
	}
	if w.vbo != 0 {
		gl.DeleteBuffers(1, &w.vbo)
	}
	w.shader.Delete()
}
