// Package config resolves run parameters from defaults, an optional TOML or
// YAML file and positional command line arguments.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/philipparndt/coinpack/pkg/coinpack"
	"github.com/philipparndt/coinpack/pkg/ellipsoid"
)

// Default parameters: a US quarter in a 300mm x 600mm x 300mm ellipsoid.
const (
	DefaultRadius = 9.525
	DefaultHeight = 1.52
	DefaultA      = 150
	DefaultB      = 300
	DefaultC      = 150
	DefaultOutput = "mesh.stl"
)

// Coin is the coin section of a config file.
type Coin struct {
	Radius float32 `toml:"radius" yaml:"radius"`
	Height float32 `toml:"height" yaml:"height"`
}

// Ellipsoid holds the semi-axes of the container.
type Ellipsoid struct {
	A float32 `toml:"a" yaml:"a"`
	B float32 `toml:"b" yaml:"b"`
	C float32 `toml:"c" yaml:"c"`
}

// Config holds everything a run needs.
type Config struct {
	Coin      Coin      `toml:"coin" yaml:"coin"`
	Ellipsoid Ellipsoid `toml:"ellipsoid" yaml:"ellipsoid"`
	Output    string    `toml:"output" yaml:"output"`
	Workers   int       `toml:"workers" yaml:"workers"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Coin:      Coin{Radius: DefaultRadius, Height: DefaultHeight},
		Ellipsoid: Ellipsoid{A: DefaultA, B: DefaultB, C: DefaultC},
		Output:    DefaultOutput,
	}
}

// Load reads a config file on top of the defaults. The format is chosen
// by extension: .toml, .yaml or .yml.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config format: %s", path)
	}

	return cfg, nil
}

// Resolve builds the effective configuration. Positional arguments
// override the file, which overrides the defaults. An empty path skips
// the file.
func Resolve(path string, args []string) (Config, error) {
	cfg := Defaults()
	if path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return cfg, err
		}
	}
	if err := cfg.ApplyArgs(args); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyArgs overrides the parameters in the order radius, height, a, b, c.
// Missing trailing arguments keep their current value.
func (c *Config) ApplyArgs(args []string) error {
	targets := []struct {
		name  string
		value *float32
	}{
		{"radius", &c.Coin.Radius},
		{"height", &c.Coin.Height},
		{"a", &c.Ellipsoid.A},
		{"b", &c.Ellipsoid.B},
		{"c", &c.Ellipsoid.C},
	}

	if len(args) > len(targets) {
		return fmt.Errorf("too many arguments: got=%d, max=%d", len(args), len(targets))
	}

	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 32)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", targets[i].name, arg, err)
		}
		*targets[i].value = float32(v)
	}
	return nil
}

// Params converts the configuration to pipeline parameters.
func (c Config) Params() coinpack.Params {
	return coinpack.Params{
		Coin:      ellipsoid.Coin{Radius: c.Coin.Radius, Height: c.Coin.Height},
		Ellipsoid: ellipsoid.Ellipsoid{A: c.Ellipsoid.A, B: c.Ellipsoid.B, C: c.Ellipsoid.C},
	}
}
