package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	clearColor  [3]float32
	width       int
	height      int
}

// NewRenderer configures global GL state and initializes every renderable.
func NewRenderer(width, height int, clearColor [3]float32, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.Enable(gl.POLYGON_OFFSET_FILL)
	gl.PolygonOffset(1, 1)

	r := &Renderer{
		renderables: rs,
		clearColor:  clearColor,
	}

	for _, rr := range rs {
		if err := rr.Init(); err != nil {
			return nil, err
		}
	}
	r.UpdateViewport(width, height)

	return r, nil
}

// Render clears the frame and runs every renderable in order.
func (r *Renderer) Render(view, proj mgl32.Mat4, dt float64) RenderContext {
	gl.ClearColor(r.clearColor[0], r.clearColor[1], r.clearColor[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := NewRenderContext(view, proj, r.width, r.height, dt)
	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
	return ctx
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// UpdateViewport propagates new framebuffer dimensions.
func (r *Renderer) UpdateViewport(width, height int) {
	r.width, r.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
	for _, rr := range r.renderables {
		rr.SetViewport(width, height)
	}
}

// Size returns the current viewport size.
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}
