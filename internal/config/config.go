// Package config loads board preferences from a TOML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"

	"InkBoard/internal/state"
)

// Config holds the preferences of one board.
type Config struct {
	Pen    Pen    `toml:"pen"`
	Input  Input  `toml:"input"`
	Canvas Canvas `toml:"canvas"`

	LogLevel string `toml:"log_level" env:"INKBOARD_LOG_LEVEL"`
}

// Pen is the starting pen.
type Pen struct {
	Width float64 `toml:"width" env:"INKBOARD_PEN_WIDTH"`
	// Color is a hex color such as "#1e88e5". Empty picks black, or white
	// on a dark board.
	Color string `toml:"color" env:"INKBOARD_PEN_COLOR"`
	Dark  bool   `toml:"dark"  env:"INKBOARD_DARK"`
}

// Input holds the input policies.
type Input struct {
	StylusOnly bool `toml:"stylus_only" env:"INKBOARD_STYLUS_ONLY"`
	MultiTouch bool `toml:"multi_touch" env:"INKBOARD_MULTI_TOUCH"`
}

// Canvas is the initial surface size.
type Canvas struct {
	Width  int `toml:"width"  env:"INKBOARD_CANVAS_WIDTH"`
	Height int `toml:"height" env:"INKBOARD_CANVAS_HEIGHT"`
}

// Default returns the built-in preferences.
func Default() Config {
	return Config{
		Pen:      Pen{Width: state.DefaultStyle.Width},
		Input:    Input{MultiTouch: true},
		Canvas:   Canvas{Width: 800, Height: 600},
		LogLevel: "info",
	}
}

// Load returns the defaults overridden by the TOML file at path, then by
// INKBOARD_* environment variables. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return cfg, fmt.Errorf("config file %s: %w", path, err)
			}
			return cfg, fmt.Errorf("decode config %s: %w", path, err)
		}
	}
	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ParseEnv overrides target with environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	if c.Pen.Width <= 0 {
		return fmt.Errorf("pen width must be positive, got %v", c.Pen.Width)
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas must have an area, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if _, err := c.Style(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Style returns the starting pen.
func (c Config) Style() (state.Style, error) {
	col, err := ParseColor(c.Pen.Color, c.Pen.Dark)
	if err != nil {
		return state.Style{}, err
	}
	return state.Style{Color: col, Width: c.Pen.Width}, nil
}

// Level returns the configured log level.
func (c Config) Level() (log.Level, error) {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// ParseColor turns a hex string into an opaque pen color. An empty string
// gives the default pen for the board's theme.
func ParseColor(hex string, dark bool) (color.NRGBA, error) {
	if hex == "" {
		if dark {
			return color.NRGBA{R: 255, G: 255, B: 255, A: 255}, nil
		}
		return color.NRGBA{A: 255}, nil
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("pen color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
