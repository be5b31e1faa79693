package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Profile ProfileConfig `toml:"profile"`
	Logging LoggingConfig `toml:"logging"`
}

type ProfileConfig struct {
	Rounds     int    `toml:"rounds"`
	Iterations int    `toml:"iterations"`
	Slots      int    `toml:"slots"`    // slots allocated and recycled per iteration
	Capacity   int    `toml:"capacity"` // initial backing size of each pool
	Mode       string `toml:"mode"`     // "mem", "allocs" or "cpu"
	Path       string `toml:"path"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads the TOML file at path over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Default() *Config {
	return &Config{
		Profile: ProfileConfig{
			Rounds:     50,
			Iterations: 10000,
			Slots:      1000,
			Capacity:   128,
			Mode:       "allocs",
			Path:       ".",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func (c *Config) validate() error {
	switch c.Profile.Mode {
	case "mem", "allocs", "cpu":
	default:
		return fmt.Errorf("unknown profile mode %q", c.Profile.Mode)
	}
	if c.Profile.Rounds <= 0 || c.Profile.Iterations <= 0 || c.Profile.Slots <= 0 {
		return fmt.Errorf("rounds, iterations and slots must be positive")
	}
	return nil
}
