// Package config loads calculator settings from TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"smartcalc/calc"
	"smartcalc/calc/graph"
)

var ErrInvalid = errors.New("invalid config")

type Engine struct {
	AngleUnit string `toml:"angle_unit" yaml:"angle_unit"`
	Precision int    `toml:"precision" yaml:"precision"`
}

type Graph struct {
	XBegin     float64 `toml:"x_begin" yaml:"x_begin"`
	XEnd       float64 `toml:"x_end" yaml:"x_end"`
	YBegin     float64 `toml:"y_begin" yaml:"y_begin"`
	YEnd       float64 `toml:"y_end" yaml:"y_end"`
	YAutoScale bool    `toml:"y_auto_scale" yaml:"y_auto_scale"`
}

type Window struct {
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`
	Scale  int `toml:"scale" yaml:"scale"`
	TPS    int `toml:"tps" yaml:"tps"`
}

type Log struct {
	Level string `toml:"level" yaml:"level"`
}

type Config struct {
	Engine Engine `toml:"engine" yaml:"engine"`
	Graph  Graph  `toml:"graph" yaml:"graph"`
	Window Window `toml:"window" yaml:"window"`
	Log    Log    `toml:"log" yaml:"log"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Engine: Engine{AngleUnit: "radians", Precision: 7},
		Graph: Graph{
			XBegin:     graph.DefaultXBegin,
			XEnd:       graph.DefaultXEnd,
			YBegin:     -5,
			YEnd:       5,
			YAutoScale: true,
		},
		Window: Window{Width: 320, Height: 320, Scale: 2, TPS: 60},
		Log:    Log{Level: "info"},
	}
}

// Load reads path over the defaults. The format is chosen by extension:
// .toml, .yaml or .yml.
func Load(path string) (Config, error) {
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("%w: unsupported config format %q", ErrInvalid, filepath.Ext(path))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if _, err := calc.ParseAngleUnit(c.Engine.AngleUnit); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Engine.Precision < 0 || c.Engine.Precision > 15 {
		return fmt.Errorf("%w: precision %d outside 0..15", ErrInvalid, c.Engine.Precision)
	}
	if err := c.GraphRequest().Normalize().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 || c.Window.Scale <= 0 || c.Window.TPS <= 0 {
		return fmt.Errorf("%w: window %dx%d scale %d tps %d", ErrInvalid, c.Window.Width, c.Window.Height, c.Window.Scale, c.Window.TPS)
	}
	return nil
}

// AngleUnit returns the configured unit, falling back to radians.
func (c Config) AngleUnit() calc.AngleUnit {
	u, _ := calc.ParseAngleUnit(c.Engine.AngleUnit)
	return u
}

// GraphRequest returns the configured plot window.
func (c Config) GraphRequest() graph.Request {
	return graph.Request{
		XBegin:     c.Graph.XBegin,
		XEnd:       c.Graph.XEnd,
		YBegin:     c.Graph.YBegin,
		YEnd:       c.Graph.YEnd,
		YAutoScale: c.Graph.YAutoScale,
	}
}
