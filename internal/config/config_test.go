package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "voxel.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Width != 1024 || cfg.Window.Height != 768 {
		t.Errorf("window %dx%d, want 1024x768", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Camera.FOV != 45 || cfg.Camera.Near != 0.01 || cfg.Camera.Far != 1000 {
		t.Errorf("unexpected camera defaults %+v", cfg.Camera)
	}
	if cfg.Camera.MoveSpeed != 10 || cfg.Camera.MouseSpeed != 0.001 {
		t.Errorf("unexpected speeds %+v", cfg.Camera)
	}
	if cfg.Render.ClearColor != [3]float32{0.6, 0.8, 1.0} {
		t.Errorf("clear color %v", cfg.Render.ClearColor)
	}
	if cfg.World.Seed != 0 || cfg.Assets.Atlas != "" {
		t.Errorf("expected time seed and flat atlas by default")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
window:
  title: test
camera:
  fov: 70
render:
  fps_limit: 144
world:
  seed: 42
log:
  level: debug
  color: false
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Title != "test" || cfg.Camera.FOV != 70 || cfg.Render.FPSLimit != 144 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.World.Seed != 42 || cfg.Log.Level != "debug" || cfg.Log.Color {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Window.Width != 1024 || cfg.Camera.MoveSpeed != 10 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadClamps(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		check func(Config) bool
	}{
		{"tiny window", "window: {width: 10, height: 10}", func(c Config) bool {
			return c.Window.Width == 320 && c.Window.Height == 240
		}},
		{"narrow fov", "camera: {fov: 1}", func(c Config) bool { return c.Camera.FOV == 10 }},
		{"wide fov", "camera: {fov: 179}", func(c Config) bool { return c.Camera.FOV == 150 }},
		{"bad planes", "camera: {near: -1, far: 0}", func(c Config) bool {
			return c.Camera.Near == 0.01 && c.Camera.Far > c.Camera.Near
		}},
		{"negative fps", "render: {fps_limit: -5}", func(c Config) bool { return c.Render.FPSLimit == 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tc.body))
			if err != nil {
				t.Fatal(err)
			}
			if !tc.check(cfg) {
				t.Errorf("not clamped: %+v", cfg)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := Load(writeConfig(t, "window: [1, 2")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
