// Package config loads the optional YAML configuration file. Every field
// has a default, so the program runs without a file at all.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunables of the demo.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Camera CameraConfig `yaml:"camera"`
	Water  WaterConfig  `yaml:"water"`
}

// WindowConfig describes the window to create.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

// CameraConfig describes the initial camera placement and tuning.
type CameraConfig struct {
	Position    [3]float32 `yaml:"position"`
	Speed       float32    `yaml:"speed"`
	Sensitivity float32    `yaml:"sensitivity"`
}

// WaterConfig describes the water surface tessellation.
type WaterConfig struct {
	Size       float32 `yaml:"size"`       // world-space edge length
	Resolution int     `yaml:"resolution"` // grid cells per edge
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Effective Water Simulation",
			VSync:  true,
		},
		Camera: CameraConfig{
			Position:    [3]float32{0, 3, 8},
			Speed:       2.5,
			Sensitivity: 0.1,
		},
		Water: WaterConfig{
			Size:       100,
			Resolution: 100,
		},
	}
}

// Load reads the YAML file at path over the defaults. Fields absent from
// the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return cfg, fmt.Errorf("invalid window size %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Water.Resolution <= 0 {
		return cfg, fmt.Errorf("invalid water resolution %d", cfg.Water.Resolution)
	}

	return cfg, nil
}
