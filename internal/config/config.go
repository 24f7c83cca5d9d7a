package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds all configurable paths and conversion settings.
type Config struct {
	InputDir   string `json:"input_dir"`
	OutputDir  string `json:"output_dir"`
	Format     string `json:"format"`      // "webp" or "png"
	TargetSize int    `json:"target_size"` // longest side after downsampling, 0 keeps original
	Workers    int    `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
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

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	InputDir   string
	OutputDir  string
	Format     string
	TargetSize int
	Workers    int
}

// Resolve fills in any empty fields with defaults. CLI flags take
// priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.InputDir != "" {
		c.InputDir = flags.InputDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.TargetSize > 0 {
		c.TargetSize = flags.TargetSize
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.InputDir == "" {
		c.InputDir = "."
	}
	if c.OutputDir == "" {
		c.OutputDir = c.InputDir
	}
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate rejects settings that Resolve cannot default away.
func (c *Config) Validate() error {
	if c.Format != "webp" && c.Format != "png" {
		return fmt.Errorf("config: unsupported format %q (want webp or png)", c.Format)
	}
	if c.TargetSize < 0 {
		return fmt.Errorf("config: negative target size %d", c.TargetSize)
	}
	return nil
}
