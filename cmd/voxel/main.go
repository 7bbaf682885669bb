package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"voxel/internal/config"
	"voxel/internal/logging"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "YAML config file")
	seed := flag.Int64("seed", 0, "terrain seed, overrides the config when nonzero")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.World.Seed = *seed
	}

	log := logging.New(os.Stdout, "[voxel] ", logging.ParseLevel(cfg.Log.Level), cfg.Log.Color)
	closer.Bind(func() {
		log.Infof("shutting down")
	})

	if err := run(cfg, log); err != nil {
		log.Errorf("%v", err)
		closer.Exit(1)
	}
	closer.Close()
}

func run(cfg config.Config, log *logging.Logger) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow(cfg.Window, cfg.Render.VSync)
	if err != nil {
		return err
	}
	defer window.Destroy()

	g, err := setupGame(window, cfg, log)
	if err != nil {
		return err
	}
	defer g.Dispose()

	loop := NewGameLoop(window, g, cfg.Render, log)
	setupInputHandlers(window, loop)
	loop.Run()
	return nil
}
