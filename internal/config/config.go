package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings of the windowed client. World and chunk
// dimensions are compile-time constants.
type Config struct {
	Window WindowSettings `yaml:"window"`
	Camera CameraSettings `yaml:"camera"`
	Render RenderSettings `yaml:"render"`
	Assets AssetSettings  `yaml:"assets"`
	World  WorldSettings  `yaml:"world"`
	Log    LogSettings    `yaml:"log"`
}

type WindowSettings struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type CameraSettings struct {
	FOV        float32 `yaml:"fov"`
	Near       float32 `yaml:"near"`
	Far        float32 `yaml:"far"`
	MoveSpeed  float32 `yaml:"move_speed"`
	MouseSpeed float32 `yaml:"mouse_speed"`
}

type RenderSettings struct {
	FPSLimit   int        `yaml:"fps_limit"`
	VSync      bool       `yaml:"vsync"`
	ClearColor [3]float32 `yaml:"clear_color"`
	// FrameBudgetMs logs frames slower than this; 0 disables the warning.
	FrameBudgetMs float64 `yaml:"frame_budget_ms"`
}

type AssetSettings struct {
	// Atlas is a local PNG path or a remote source understood by go-getter.
	// Empty uses the generated flat-color atlas.
	Atlas    string `yaml:"atlas"`
	CacheDir string `yaml:"cache_dir"`
}

type WorldSettings struct {
	// Seed fixes terrain generation; 0 derives it from the clock.
	Seed int64 `yaml:"seed"`
}

type LogSettings struct {
	Level string `yaml:"level"`
	Color bool   `yaml:"color"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Window: WindowSettings{Width: 1024, Height: 768, Title: "voxel"},
		Camera: CameraSettings{
			FOV:        45,
			Near:       0.01,
			Far:        1000,
			MoveSpeed:  10,
			MouseSpeed: 0.001,
		},
		Render: RenderSettings{
			FPSLimit:   0,
			ClearColor: [3]float32{0.6, 0.8, 1.0},
		},
		Assets: AssetSettings{CacheDir: ".voxel-cache"},
		Log:    LogSettings{Level: "info", Color: true},
	}
}

// Load reads a YAML file over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	cfg.clamp()
	return cfg, nil
}

// clamp pulls out-of-range values back to usable ones.
func (c *Config) clamp() {
	if c.Window.Width < 320 {
		c.Window.Width = 320
	}
	if c.Window.Height < 240 {
		c.Window.Height = 240
	}
	if c.Camera.FOV < 10 {
		c.Camera.FOV = 10
	}
	if c.Camera.FOV > 150 {
		c.Camera.FOV = 150
	}
	if c.Camera.Near <= 0 {
		c.Camera.Near = 0.01
	}
	if c.Camera.Far <= c.Camera.Near {
		c.Camera.Far = c.Camera.Near * 1000
	}
	if c.Render.FPSLimit < 0 {
		c.Render.FPSLimit = 0
	}
}
