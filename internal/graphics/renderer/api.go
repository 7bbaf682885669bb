package renderer

import (
	"voxel/internal/meshing"

	"github.com/go-gl/mathgl/mgl32"
)

// Buffer is an opaque handle to a device-side vertex buffer.
type Buffer uint32

// Device is the GPU abstraction the terrain hands meshes to. Upload replaces
// the buffer contents and is called once per rebuild; Draw issues one
// triangle-list draw of count vertices with the given transform.
type Device interface {
	CreateBuffer() (Buffer, error)
	Upload(buf Buffer, vertices []meshing.Vertex) error
	Draw(buf Buffer, mvp mgl32.Mat4, count int)
	DeleteBuffer(buf Buffer)
}

// RenderContext provides shared per-frame context for all renderables
type RenderContext struct {
	View     mgl32.Mat4
	Proj     mgl32.Mat4
	ViewProj mgl32.Mat4
	Width    int
	Height   int
	DT       float64
}

// NewRenderContext derives the combined transform from view and projection.
func NewRenderContext(view, proj mgl32.Mat4, width, height int, dt float64) RenderContext {
	return RenderContext{
		View:     view,
		Proj:     proj,
		ViewProj: proj.Mul4(view),
		Width:    width,
		Height:   height,
		DT:       dt,
	}
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
