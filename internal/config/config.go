// Package config holds the demo's settings: window parameters and
// camera tuning, loadable from an optional YAML file with CLI flag
// overrides applied on top.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Window configures the GLFW window.
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

// Camera configures camera tuning and the projection.
type Camera struct {
	FOV         float32 `yaml:"fov"` // vertical, degrees
	Near        float32 `yaml:"near"`
	Far         float32 `yaml:"far"`
	Sensitivity float32 `yaml:"sensitivity"`
	MoveSpeed   float32 `yaml:"move_speed"`

	// TimeScaled switches movement from a fixed per-frame step to
	// MoveSpeed units per second. Off by default: the original demo
	// moves a fixed step per frame.
	TimeScaled bool `yaml:"time_scaled"`
}

// Config is the full settings tree.
type Config struct {
	Window Window `yaml:"window"`
	Camera Camera `yaml:"camera"`
}

// Default returns the original demo's settings.
func Default() Config {
	return Config{
		Window: Window{
			Width:  800,
			Height: 600,
			Title:  "3D OpenGL Game",
			VSync:  true,
		},
		Camera: Camera{
			FOV:         60,
			Near:        0.1,
			Far:         100,
			Sensitivity: 0.1,
			MoveSpeed:   0.1,
		},
	}
}

// Load reads a YAML settings file over the defaults. Fields absent from
// the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects settings that would produce a degenerate projection
// or window. Called once at startup; a failure is fatal.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("config: fov must be in (0, 180), got %v", c.Camera.FOV)
	}
	if c.Camera.Near <= 0 {
		return fmt.Errorf("config: near plane must be positive, got %v", c.Camera.Near)
	}
	if c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("config: far plane (%v) must be greater than near plane (%v)", c.Camera.Far, c.Camera.Near)
	}
	if c.Camera.Sensitivity <= 0 {
		return fmt.Errorf("config: sensitivity must be positive, got %v", c.Camera.Sensitivity)
	}
	if c.Camera.MoveSpeed < 0 {
		return fmt.Errorf("config: move speed must not be negative, got %v", c.Camera.MoveSpeed)
	}
	return nil
}

// Aspect returns the window aspect ratio.
func (c *Config) Aspect() float32 {
	return float32(c.Window.Width) / float32(c.Window.Height)
}
