// Package config loads the game configuration from yaml over built-in
// defaults, so the binary runs with no file at all.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Theme names a character/color set. Colors are #rrggbb strings, parsed by
// the client.
type Theme struct {
	Name       string `yaml:"name"`
	Background string `yaml:"background"`
	Wall       string `yaml:"wall"`
	Player     string `yaml:"player"`
	Goal       string `yaml:"goal"`
}

type Config struct {
	// Seed fixes maze generation for reproducible runs; 0 means time-based.
	Seed uint32 `yaml:"seed"`
	// StartAge selects the initial difficulty row.
	StartAge int `yaml:"start_age"`
	// Sizes maps age to the maze side length (cols == rows).
	Sizes map[int]int `yaml:"sizes"`
	// Font is a ttf path for HUD text; empty falls back to debug text.
	Font string `yaml:"font"`
	// Monitor is the listen address of the live state stream, empty = off.
	Monitor string `yaml:"monitor"`

	Themes []Theme `yaml:"themes"`
}

// Default returns the shipped configuration.
func Default() *Config {
	return &Config{
		StartAge: 4,
		Sizes:    map[int]int{3: 5, 4: 7, 5: 9, 6: 12},
		Themes: []Theme{
			{Name: "meadow", Background: "#1c3a1c", Wall: "#8fd48f", Player: "#fa3636", Goal: "#edbc1e"},
			{Name: "ocean", Background: "#0f2740", Wall: "#34fbf6", Player: "#edbc1e", Goal: "#0abd38"},
			{Name: "candy", Background: "#2e1030", Wall: "#cb18dd", Player: "#34fbf6", Goal: "#fa3636"},
		},
	}
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("sizes table is empty")
	}
	for age, n := range c.Sizes {
		if n < 1 {
			return fmt.Errorf("size for age %d must be positive, got %d", age, n)
		}
	}
	if len(c.Themes) == 0 {
		return fmt.Errorf("no themes")
	}
	return nil
}

// SizeForAge maps an age onto the maze side length, clamping to the nearest
// table row when the exact age is missing.
func (c *Config) SizeForAge(age int) int {
	if n, ok := c.Sizes[age]; ok {
		return n
	}
	bestAge, bestN, found := 0, 0, false
	for a, n := range c.Sizes {
		if !found || abs(a-age) < abs(bestAge-age) || (abs(a-age) == abs(bestAge-age) && a < bestAge) {
			bestAge, bestN, found = a, n, true
		}
	}
	return bestN
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
