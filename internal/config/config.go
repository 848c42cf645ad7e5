// Package config loads the mimir.yaml tooling configuration used by the
// mimir command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

const DefaultPath = "mimir.yaml"

var ErrUnsupportedEnvironment = errors.New("environment must be \"dom\"")

type Config struct {
	// Environment selects the document implementation. Only the in-memory
	// simulated DOM exists today.
	Environment string `yaml:"environment"`
	// Globals exposes the example components on the preview index page.
	Globals bool `yaml:"globals"`
	// Setup lists files the doctor command checks for existence.
	Setup []string `yaml:"setup"`
	// Exclude holds glob patterns of paths tooling should skip.
	Exclude []string `yaml:"exclude"`

	Addr  string `yaml:"addr"`
	Title string `yaml:"title"`
}

func Default() Config {
	return Config{
		Environment: "dom",
		Globals:     true,
		Addr:        ":8930",
		Title:       "mimir preview",
	}
}

// Load reads path and merges it over the defaults. A missing file yields
// the defaults without error.
func Load(p string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", p, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", p, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.Environment != "dom" {
		return fmt.Errorf("%w, got %q", ErrUnsupportedEnvironment, c.Environment)
	}

	for _, pattern := range c.Exclude {
		if _, err := path.Match(pattern, "probe"); err != nil {
			return fmt.Errorf("bad exclude pattern %q: %w", pattern, err)
		}
	}

	return nil
}

// Excluded reports whether p matches any exclude pattern.
func (c Config) Excluded(p string) bool {
	for _, pattern := range c.Exclude {
		if ok, err := path.Match(pattern, p); err == nil && ok {
			return true
		}
	}
	return false
}
