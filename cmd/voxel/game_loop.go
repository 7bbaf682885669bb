package main

import (
	"fmt"
	"time"

	"voxel/internal/config"
	"voxel/internal/game"
	"voxel/internal/input"
	"voxel/internal/logging"
	"voxel/internal/physics"
	"voxel/internal/world"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// GameLoop manages the main game loop state
type GameLoop struct {
	window  *glfw.Window
	game    *GameComponents
	log     *logging.Logger
	limiter *game.FPSLimiter
	budget  time.Duration

	input      *input.Manager
	lastX      float64
	lastY      float64
	firstMouse bool

	// Timing
	frames           int
	fps              int
	lastFrame        time.Duration
	lastFPSCheckTime time.Time
	lastTime         time.Time
}

// NewGameLoop creates a new game loop with all components
func NewGameLoop(window *glfw.Window, g *GameComponents, cfg config.RenderSettings, log *logging.Logger) *GameLoop {
	return &GameLoop{
		window:           window,
		game:             g,
		log:              log,
		limiter:          game.NewFPSLimiter(cfg.FPSLimit),
		budget:           time.Duration(cfg.FrameBudgetMs * float64(time.Millisecond)),
		input:            input.NewManager(),
		firstMouse:       true,
		lastFPSCheckTime: time.Now(),
		lastTime:         time.Now(),
	}
}

// Run ticks until the window is asked to close.
func (gl *GameLoop) Run() {
	for !gl.window.ShouldClose() {
		gl.tick()
	}
}

func (gl *GameLoop) tick() {
	prof := gl.game.Profiler
	prof.ResetFrame()
	now := time.Now()
	dt := now.Sub(gl.lastTime).Seconds()
	gl.lastTime = now

	func() { defer prof.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	gl.handleInputActions()

	p := gl.game.Player
	func() { defer prof.Track("player.Update")(); p.Update(heldMoves(gl.input), dt) }()

	hit := gl.pick()
	if gl.editWorld(hit) {
		hit = gl.pick()
	}
	gl.game.Wireframe.SetTarget(hit.HitPosition, hit.Hit)
	gl.game.HUD.Update(gl.lastFrame, gl.fps, p.Position, gl.describe(hit))

	view := p.ViewMatrix()
	proj := gl.game.Camera.ProjectionMatrix()
	func() { defer prof.Track("renderer.Render")(); gl.game.Renderer.Render(view, proj, dt) }()
	func() { defer prof.Track("glfw.SwapBuffers")(); gl.window.SwapBuffers() }()

	gl.frames++
	if time.Since(gl.lastFPSCheckTime) >= time.Second {
		stats := gl.game.Terrain.LastFrame()
		gl.log.Infof("FPS: %d (%d visible, %d drawn, %d vertices)", gl.frames, stats.Visible, stats.Drawn, stats.Vertices)
		gl.fps = gl.frames
		gl.frames = 0
		gl.lastFPSCheckTime = time.Now()
	}

	gl.lastFrame = time.Since(now)
	if gl.budget > 0 && gl.lastFrame > gl.budget {
		gl.log.Warnf("frame took too long: %.2fms (budget %.2fms): %s",
			float64(gl.lastFrame.Microseconds())/1000.0,
			float64(gl.budget.Microseconds())/1000.0,
			prof.TopN(3))
	}

	// Clear edge flags at end of frame
	gl.input.PostUpdate()
	gl.limiter.Wait()
}

func (gl *GameLoop) handleInputActions() {
	if gl.input.JustPressed(input.ActionQuit) {
		gl.window.SetShouldClose(true)
	}
	if gl.input.JustPressed(input.ActionToggleHUD) {
		gl.game.HUD.Toggle()
	}
}

func (gl *GameLoop) pick() physics.RaycastResult {
	defer gl.game.Profiler.Track("physics.Raycast")()
	p := gl.game.Player
	return physics.Raycast(p.Position, p.LookAt(), physics.MinReachDistance, physics.MaxReachDistance, gl.game.World)
}

// editWorld places stone in front of the picked block or removes it. It
// reports whether the world changed.
func (gl *GameLoop) editWorld(hit physics.RaycastResult) bool {
	if !hit.Hit {
		return false
	}
	switch {
	case gl.input.JustPressed(input.ActionPlaceBlock):
		a := hit.AdjacentPosition
		gl.game.World.SetBlock(a[0], a[1], a[2], world.BlockTypeStone)
	case gl.input.JustPressed(input.ActionRemoveBlock):
		h := hit.HitPosition
		gl.game.World.SetBlock(h[0], h[1], h[2], world.BlockTypeAir)
	default:
		return false
	}
	return true
}

func (gl *GameLoop) describe(hit physics.RaycastResult) string {
	if !hit.Hit {
		return ""
	}
	h := hit.HitPosition
	return fmt.Sprintf("%s at %d, %d, %d (%.1f)", gl.game.World.Block(h[0], h[1], h[2]), h[0], h[1], h[2], hit.Distance)
}
