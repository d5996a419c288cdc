// Package config holds the client configuration, loaded from a YAML file
// over built-in defaults.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/colony/internal/camera"
	"chosenoffset.com/colony/internal/logger"
	"chosenoffset.com/colony/internal/player"
	"chosenoffset.com/colony/internal/render"
)

// Config holds every tunable of the client.
type Config struct {
	Window WindowConfig  `yaml:"window"`
	Render RenderConfig  `yaml:"render"`
	Log    logger.Config `yaml:"log"`
	Player player.Config `yaml:"player"`
	Camera camera.Config `yaml:"camera"`
	Debug  DebugConfig   `yaml:"debug"`
	Assets AssetsConfig  `yaml:"assets"`
}

// WindowConfig describes the primary window.
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
	Icon      string `yaml:"icon"` // PNG path; empty disables the icon
}

// RenderConfig controls drawing and frame pacing.
type RenderConfig struct {
	ClearColor render.RGB `yaml:"clear_color"`
	AntiAlias  bool       `yaml:"antialias"`
	TPS        int        `yaml:"tps"`

	// MaxFrameDelta caps the delta fed to the per-frame systems.
	MaxFrameDelta time.Duration `yaml:"max_frame_delta"`
}

// DebugConfig toggles the diagnostics layer.
type DebugConfig struct {
	Diagnostics   bool          `yaml:"diagnostics"`
	AxisIndicator bool          `yaml:"axis_indicator"`
	LogInterval   time.Duration `yaml:"log_interval"`
}

// AssetsConfig locates the asset manifest.
type AssetsConfig struct {
	Manifest string `yaml:"manifest"`
}

// DefaultConfig returns the stock client configuration. Logging and the
// diagnostics layer follow the build mode.
func DefaultConfig() *Config {
	logCfg := logger.ReleaseConfig()
	if DebugBuild {
		logCfg = logger.DevelopmentConfig()
	}

	return &Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "Colony",
			Resizable: true,
			Icon:      "assets/textures/icon.png",
		},
		Render: RenderConfig{
			ClearColor:    render.RGB{0.4, 0.4, 0.4},
			AntiAlias:     true,
			TPS:           60,
			MaxFrameDelta: 100 * time.Millisecond,
		},
		Log:    logCfg,
		Player: player.DefaultConfig(),
		Camera: camera.DefaultConfig(),
		Debug: DebugConfig{
			Diagnostics:   DebugBuild,
			AxisIndicator: DebugBuild,
			LogInterval:   time.Second,
		},
		Assets: AssetsConfig{
			Manifest: "assets/scene.yaml",
		},
	}
}

// Load reads the configuration at path over the defaults. A missing file
// yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Render.TPS <= 0 {
		errs = append(errs, fmt.Errorf("render.tps must be positive, got %d", c.Render.TPS))
	}
	if c.Render.MaxFrameDelta <= 0 {
		errs = append(errs, fmt.Errorf("render.max_frame_delta must be positive, got %v", c.Render.MaxFrameDelta))
	}

	p := c.Player
	if p.MinGrid > p.MaxGrid {
		errs = append(errs, fmt.Errorf("player grid bound is inverted: [%v, %v]", p.MinGrid, p.MaxGrid))
	}
	for _, b := range []struct {
		name string
		v    float32
	}{{"min_grid", p.MinGrid}, {"max_grid", p.MaxGrid}} {
		if float64(b.v) != math.Round(float64(b.v)) {
			errs = append(errs, fmt.Errorf("player.%s must be a whole number, got %v", b.name, b.v))
		}
	}
	if p.MoveCooldown <= 0 {
		errs = append(errs, fmt.Errorf("player.move_cooldown must be positive, got %v", p.MoveCooldown))
	}
	if p.IdleToRun <= 0 {
		errs = append(errs, fmt.Errorf("player.idle_to_run must be positive, got %v", p.IdleToRun))
	}

	cam := c.Camera
	if cam.Speed <= 0 {
		errs = append(errs, fmt.Errorf("camera.speed must be positive, got %v", cam.Speed))
	}
	if cam.DeadZone < 0 {
		errs = append(errs, fmt.Errorf("camera.dead_zone must not be negative, got %v", cam.DeadZone))
	}
	if err := cam.LookAt.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("camera.look_at: %w", err))
	}
	if cam.FovDegrees <= 0 || cam.FovDegrees >= 180 {
		errs = append(errs, fmt.Errorf("camera.fov_degrees must be in (0, 180), got %v", cam.FovDegrees))
	}
	if cam.Near <= 0 || cam.Far <= cam.Near {
		errs = append(errs, fmt.Errorf("camera clip planes must satisfy 0 < near < far, got %v and %v", cam.Near, cam.Far))
	}

	if c.Debug.LogInterval <= 0 {
		errs = append(errs, fmt.Errorf("debug.log_interval must be positive, got %v", c.Debug.LogInterval))
	}

	return errors.Join(errs...)
}

// FrameStepWarning reports whether the camera's Euler step can overshoot
// at the maximum frame delta.
func (c *Config) FrameStepWarning() bool {
	return float64(c.Camera.Speed)*c.Render.MaxFrameDelta.Seconds() >= 1
}
