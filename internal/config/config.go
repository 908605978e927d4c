// Package config loads render settings from a JSON file and lets CLI
// flags override them, the same two-layer pattern the tools build on.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"runtime"
)

// Config holds every setting the driver needs before the main loop
// starts: window/render geometry, projection parameters, motion speeds
// and the asset paths to load.
type Config struct {
	// Window/render geometry
	Width  int `json:"width"`
	Height int `json:"height"`

	// Projection parameters
	FovY  float64 `json:"fov_y"`
	ZNear float64 `json:"z_near"`
	ZFar  float64 `json:"z_far"`

	// Timing
	FPSTarget int `json:"fps_target"`

	// Default driver state
	RenderMode string `json:"render_mode"`
	CullMode   string `json:"cull_mode"`
	Shading    string `json:"shading"`

	// Motion
	MoveSpeed float64 `json:"move_speed"`
	TurnSpeed float64 `json:"turn_speed"`

	// Assets
	MeshPath    string `json:"mesh_path"`
	TexturePath string `json:"texture_path"`
	OutputPath  string `json:"output_path"`

	// Batch rendering
	Workers     int `json:"workers"`
	WebPQuality int `json:"webp_quality"`
}

// Load reads a JSON config file. Fields absent from the file keep
// their zero value until Resolve fills in defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override the config file.
type Flags struct {
	MeshPath    string
	TexturePath string
	OutputPath  string
	Width       int
	Height      int
	Workers     int
}

// Resolve applies CLI overrides, then fills in defaults for anything
// still unset.
func (c *Config) Resolve(flags Flags) {
	if flags.MeshPath != "" {
		c.MeshPath = flags.MeshPath
	}
	if flags.TexturePath != "" {
		c.TexturePath = flags.TexturePath
	}
	if flags.OutputPath != "" {
		c.OutputPath = flags.OutputPath
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.FovY <= 0 {
		c.FovY = math.Pi / 3
	}
	if c.ZNear <= 0 {
		c.ZNear = 1.0
	}
	if c.ZFar <= 0 {
		c.ZFar = 50.0
	}
	if c.FPSTarget <= 0 {
		c.FPSTarget = 30
	}
	if c.RenderMode == "" {
		c.RenderMode = "textured"
	}
	if c.CullMode == "" {
		c.CullMode = "backface"
	}
	if c.Shading == "" {
		c.Shading = "lambertian"
	}
	if c.MoveSpeed <= 0 {
		c.MoveSpeed = 5.0
	}
	if c.TurnSpeed <= 0 {
		c.TurnSpeed = 1.0
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.WebPQuality <= 0 {
		c.WebPQuality = 90
	}
	if c.OutputPath == "" {
		c.OutputPath = "render.webp"
	}
}
