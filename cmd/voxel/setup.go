package main

import (
	"context"
	"fmt"
	"image"
	"time"

	"voxel/internal/assets"
	"voxel/internal/config"
	"voxel/internal/graphics"
	"voxel/internal/graphics/renderables/crosshair"
	"voxel/internal/graphics/renderables/hud"
	"voxel/internal/graphics/renderables/terrain"
	"voxel/internal/graphics/renderables/wireframe"
	renderer "voxel/internal/graphics/renderer"
	"voxel/internal/logging"
	"voxel/internal/player"
	"voxel/internal/profiling"
	"voxel/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

const atlasFetchTimeout = 30 * time.Second

func setupWindow(cfg config.WindowSettings, vsync bool) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	if vsync {
		glfw.SwapInterval(1)
	} else {
		// paced by game.FPSLimiter instead
		glfw.SwapInterval(0)
	}
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	return window, nil
}

// GameComponents holds all the initialized game components
type GameComponents struct {
	Renderer  *renderer.Renderer
	Device    *graphics.GLDevice
	Terrain   *terrain.Terrain
	Wireframe *wireframe.Wireframe
	HUD       *hud.HUD
	Camera    *graphics.Camera
	World     *world.World
	Player    *player.Player
	Profiler  *profiling.Profiler
}

func setupGame(window *glfw.Window, cfg config.Config, log *logging.Logger) (*GameComponents, error) {
	seed := cfg.World.Seed
	if seed == 0 {
		seed = time.Now().Unix()
	}
	w := world.NewWithSize(world.DefaultSize, seed)
	size := w.Size()
	log.Infof("world %dx%dx%d chunks, seed %d", size.X, size.Y, size.Z, seed)

	device, err := graphics.NewGLDevice(loadAtlas(cfg.Assets, log))
	if err != nil {
		return nil, err
	}

	prof := profiling.New()
	terrainRenderer := terrain.New(w, device, prof, log)
	wireframeRenderer := wireframe.NewWireframe(prof)
	hudRenderer := hud.NewHUD(terrainRenderer, prof)

	fbWidth, fbHeight := window.GetFramebufferSize()
	r, err := renderer.NewRenderer(fbWidth, fbHeight, cfg.Render.ClearColor,
		terrainRenderer,
		wireframeRenderer,
		crosshair.NewCrosshair(),
		hudRenderer,
	)
	if err != nil {
		device.Dispose()
		return nil, fmt.Errorf("renderer: %w", err)
	}

	return &GameComponents{
		Renderer:  r,
		Device:    device,
		Terrain:   terrainRenderer,
		Wireframe: wireframeRenderer,
		HUD:       hudRenderer,
		Camera:    graphics.NewCamera(fbWidth, fbHeight, cfg.Camera),
		World:     w,
		Player:    player.NewPlayer(cfg.Camera.MoveSpeed, cfg.Camera.MouseSpeed),
		Profiler:  prof,
	}, nil
}

// loadAtlas resolves the configured block atlas, falling back to flat colors
// when it is unset or cannot be loaded.
func loadAtlas(cfg config.AssetSettings, log *logging.Logger) *image.RGBA {
	if cfg.Atlas == "" {
		return graphics.FlatAtlas(graphics.DefaultTileSize)
	}

	ctx, cancel := context.WithTimeout(context.Background(), atlasFetchTimeout)
	defer cancel()

	path, err := assets.Fetch(ctx, cfg.Atlas, cfg.CacheDir)
	if err != nil {
		log.Warnf("atlas %q: %v; using flat colors", cfg.Atlas, err)
		return graphics.FlatAtlas(graphics.DefaultTileSize)
	}
	img, err := graphics.LoadAtlas(path)
	if err != nil {
		log.Warnf("atlas %q: %v; using flat colors", path, err)
		return graphics.FlatAtlas(graphics.DefaultTileSize)
	}
	log.Infof("loaded atlas %s (%dx%d)", path, img.Rect.Dx(), img.Rect.Dy())
	return img
}

// Dispose releases renderables before the device that owns their buffers.
func (g *GameComponents) Dispose() {
	g.Renderer.Dispose()
	g.Device.Dispose()
}
