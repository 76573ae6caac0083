// Package config loads stepviz settings from a YAML file.
//
// Every field has a default, so a file only needs the keys it changes.
// Command-line flags are applied on top by the caller and the result is
// checked again with Validate.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every parse or validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Color modes for terminal output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the tunables shared by the CLI and the HTTP server.
type Config struct {
	// Speed multiplies playback speed; 2 halves every frame interval.
	Speed float64 `yaml:"speed" validate:"gt=0,lte=100"`
	// Size is the array length for sort and search, the grid side for
	// pathfinding and the node count for graphs.
	Size int `yaml:"size" validate:"gte=1,lte=500"`
	// Seed feeds every random generator. Zero picks a time-based seed.
	Seed int64 `yaml:"seed"`
	// Heartbeat is the pathfinding heartbeat interval; 0 disables it.
	Heartbeat int `yaml:"heartbeat" validate:"gte=0"`
	// Density is the wall probability of random mazes.
	Density  float64 `yaml:"density" validate:"gte=0,lt=1"`
	LogLevel string  `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	Listen   string  `yaml:"listen" validate:"required,hostname_port"`
	Color    string  `yaml:"color" validate:"oneof=auto always never"`
}

var validate = validator.New()

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Speed:     1,
		Size:      20,
		Heartbeat: 5,
		Density:   0.3,
		LogLevel:  "info",
		Listen:    ":8080",
		Color:     ColorAuto,
	}
}

// Validate checks field ranges and enumerations.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// Load reads path over the defaults. An empty path returns the defaults.
// Unknown keys are rejected so that typos do not pass silently.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a YAML document over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Rand returns a generator seeded with Seed, or with the current time when
// Seed is zero.
func (c Config) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(seed))
}
