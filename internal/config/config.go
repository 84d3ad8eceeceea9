// Package config loads the small amount of runtime configuration the
// game accepts: input bindings and the RNG seed. Gameplay itself is
// compiled constants; the config exists because the input wiring is a
// harness decision, not a gameplay one.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration.
type Config struct {
	// Seed selects the obstacle RNG stream; 0 means time-based.
	Seed int64 `yaml:"seed"`

	Input InputConfig `yaml:"input"`
}

// InputConfig binds actions to key names. An explicitly empty jump list
// disables jumping entirely, which reproduces the original's
// spectator-sandbox behavior.
type InputConfig struct {
	Jump []string `yaml:"jump"`
	Quit []string `yaml:"quit"`
}

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		Seed: 0,
		Input: InputConfig{
			Jump: []string{"space"},
			Quit: []string{"escape"},
		},
	}
}

// Load reads the config at path, layered over the defaults so omitted
// fields keep their compiled values. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
