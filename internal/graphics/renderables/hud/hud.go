package hud

import (
	"fmt"
	"strings"
	"time"

	"voxel/internal/graphics"
	renderer "voxel/internal/graphics/renderer"
	"voxel/internal/graphics/renderables/terrain"
	"voxel/internal/graphics/renderables/ui"
	"voxel/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	fontPixels = 32
	textScale  = 0.5
)

// HUD draws the debug overlay: frame timings, terrain statistics and the
// busiest profiler sections. It starts hidden.
type HUD struct {
	font    *graphics.FontRenderer
	panel   *ui.UI
	terrain *terrain.Terrain
	prof    *profiling.Profiler
	times   FrameTimes
	visible bool
	width   int
	height  int

	fps      int
	position mgl32.Vec3
	target   string
}

// NewHUD creates the overlay. prof may be nil.
func NewHUD(t *terrain.Terrain, prof *profiling.Profiler) *HUD {
	return &HUD{terrain: t, prof: prof, panel: ui.NewUI()}
}

// Init bakes the font and builds its renderer.
func (h *HUD) Init() error {
	if err := h.panel.Init(); err != nil {
		return err
	}
	atlas, err := graphics.BakeFont(nil, fontPixels)
	if err != nil {
		return err
	}
	h.font, err = graphics.NewFontRenderer(atlas, max(h.width, 1), max(h.height, 1))
	return err
}

// Toggle shows or hides the overlay.
func (h *HUD) Toggle() {
	h.visible = !h.visible
}

// Visible reports whether the overlay is drawn.
func (h *HUD) Visible() bool {
	return h.visible
}

// Update records per-frame values from the game loop.
func (h *HUD) Update(frame time.Duration, fps int, position mgl32.Vec3, target string) {
	h.times.Add(frame)
	h.fps = fps
	h.position = position
	h.target = target
}

// Lines formats the overlay text.
func (h *HUD) Lines() []string {
	lo, avg, hi := h.times.Stats()
	stats := h.terrain.LastFrame()

	lines := []string{
		fmt.Sprintf("FPS: %d  frame %.2f/%.2f/%.2f ms", h.fps, ms(lo), ms(avg), ms(hi)),
		fmt.Sprintf("Pos: %.1f, %.1f, %.1f", h.position.X(), h.position.Y(), h.position.Z()),
		fmt.Sprintf("Chunks: %d visible, %d drawn, %d rebuilt", stats.Visible, stats.Drawn, stats.Rebuilt),
		fmt.Sprintf("Vertices: %d", stats.Vertices),
	}
	if h.target != "" {
		lines = append(lines, "Target: "+h.target)
	}
	if top := h.prof.TopN(5); top != "" {
		lines = append(lines, strings.Split(top, ", ")...)
	}
	return lines
}

// Render draws the overlay when visible.
func (h *HUD) Render(ctx renderer.RenderContext) {
	if !h.visible || h.font == nil {
		return
	}
	lines := h.Lines()
	step := h.font.LineHeight() * textScale

	var width float32
	for _, l := range lines {
		width = max(width, h.font.Measure(l, textScale))
	}
	h.panel.DrawFilledRect(4, 4, width+12, step*float32(len(lines))+12, mgl32.Vec3{0, 0, 0}, 0.45)
	h.font.RenderLines(lines, 10, 10+step, step, textScale, mgl32.Vec3{1, 1, 1})
}

// SetViewport updates the text projection.
func (h *HUD) SetViewport(width, height int) {
	h.width, h.height = width, height
	h.panel.SetViewport(width, height)
	if h.font != nil {
		h.font.SetViewport(width, height)
	}
}

// Dispose cleans up OpenGL resources
func (h *HUD) Dispose() {
	if h.font != nil {
		h.font.Dispose()
	}
	h.panel.Dispose()
}

func ms(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}
