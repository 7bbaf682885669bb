// Command voxel-export generates a whole world and writes its chunk meshes
// as a Wavefront OBJ file.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"voxel/internal/config"
	"voxel/internal/export"
	"voxel/internal/logging"
	"voxel/internal/profiling"
	"voxel/internal/world"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	seed := flag.Int64("seed", 0, "terrain seed, overrides the config when nonzero")
	out := flag.String("out", "world.obj", "output path")
	compress := flag.Bool("zstd", false, "zstd-compress the output (appends .zst)")
	flat := flag.Int("flat", 0, "generate a flat slab of this height instead of noise terrain")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logging.New(os.Stderr, "[voxel-export] ", logging.ParseLevel(cfg.Log.Level), cfg.Log.Color)

	if *seed != 0 {
		cfg.World.Seed = *seed
	}
	if cfg.World.Seed == 0 {
		cfg.World.Seed = time.Now().Unix()
	}

	path := *out
	if *compress && !strings.HasSuffix(path, ".zst") {
		path += ".zst"
	}

	if err := run(cfg.World.Seed, *flat, path, *compress, log); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(seed int64, flat int, path string, compress bool, log *logging.Logger) error {
	prof := profiling.New()

	var opts []world.Option
	if flat > 0 {
		opts = append(opts, world.WithGenerator(world.NewFlatGenerator(flat)))
	}
	w := world.NewWithSize(world.DefaultSize, seed, opts...)

	func() {
		defer prof.Track("world.GenerateAll")()
		w.GenerateAll()
	}()

	var (
		stats export.Stats
		err   error
	)
	func() {
		defer prof.Track("export.WriteFile")()
		stats, err = export.WriteFile(path, w, compress)
	}()
	if err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}

	log.Infof("seed %d: wrote %d chunks, %d vertices, %d triangles to %s", seed, stats.Chunks, stats.Vertices, stats.Triangles, path)
	log.Debugf("timings: %s", prof.TopN(2))
	return nil
}
