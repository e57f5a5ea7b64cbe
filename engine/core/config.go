package core

import (
	"fmt"
	"os"

	"github.com/hubastard/canvas2d/engine/colors"
	"gopkg.in/yaml.v3"
)

// Config for the canvas window and engine run.
type Config struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	FrameRate int    `yaml:"frame_rate"`
	Visible   bool   `yaml:"visible"`
	VSync     bool   `yaml:"vsync"`
	// Background is a colour name or #rrggbb[aa]; empty disables clearing.
	Background      string `yaml:"background"`
	CirclePrecision int    `yaml:"circle_precision"`
}

// DefaultConfig is a 1000x1000 visible canvas at (50,50) on black.
func DefaultConfig() Config {
	return Config{
		Title:           "My Project",
		Width:           1000,
		Height:          1000,
		X:               50,
		Y:               50,
		FrameRate:       60,
		Visible:         true,
		VSync:           true,
		Background:      "black",
		CirclePrecision: 100,
	}
}

// LoadConfig reads a YAML file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("load config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return &ConfigurationError{What: fmt.Sprintf("canvas size %dx%d", c.Width, c.Height)}
	}
	if c.CirclePrecision < 3 {
		return &ConfigurationError{What: fmt.Sprintf("circle precision %d", c.CirclePrecision)}
	}
	if c.FrameRate < 0 {
		return &ConfigurationError{What: fmt.Sprintf("frame rate %d", c.FrameRate)}
	}
	if _, _, err := c.ClearColor(); err != nil {
		return &ConfigurationError{What: err.Error()}
	}
	return nil
}

// ClearColor resolves Background. ok is false when clearing is disabled.
func (c Config) ClearColor() (col colors.Color, ok bool, err error) {
	if c.Background == "" {
		return colors.Color{}, false, nil
	}
	col, err = colors.Parse(c.Background)
	if err != nil {
		return colors.Color{}, false, err
	}
	return col, true, nil
}
