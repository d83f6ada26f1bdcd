package bench

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Workload WorkloadConfig `toml:"workload"`
	Profile  ProfileConfig  `toml:"profile"`
	Logging  LoggingConfig  `toml:"logging"`
}

type WorkloadConfig struct {
	Entities int     `toml:"entities"`
	Frames   int     `toml:"frames"`
	Shapes   int     `toml:"shapes"` // number of distinct component sets, 1-4
	Step     float64 `toml:"step"`   // integration step in seconds
}

type ProfileConfig struct {
	Mode string `toml:"mode"` // none, cpu, mem
	Path string `toml:"path"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // console, json
}

// Load reads the config at path. Values not present in the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a toml document on top of the default config.
func Parse(data []byte) (*Config, error) {
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func Defaults() *Config {
	return &Config{
		Workload: WorkloadConfig{
			Entities: 100_000,
			Frames:   100,
			Shapes:   len(shapes),
			Step:     1.0 / 60.0,
		},
		Profile: ProfileConfig{
			Mode: "none",
			Path: ".",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func (c *Config) Validate() error {
	if c.Workload.Entities < 0 {
		return fmt.Errorf("workload.entities must not be negative, got %d", c.Workload.Entities)
	}

	if c.Workload.Frames < 0 {
		return fmt.Errorf("workload.frames must not be negative, got %d", c.Workload.Frames)
	}

	if c.Workload.Shapes < 1 || c.Workload.Shapes > len(shapes) {
		return fmt.Errorf("workload.shapes must be in [1, %d], got %d", len(shapes), c.Workload.Shapes)
	}

	switch c.Profile.Mode {
	case "none", "cpu", "mem":
	default:
		return fmt.Errorf("unknown profile.mode %q", c.Profile.Mode)
	}

	return nil
}
