// Package config resolves console settings from three layers, lowest
// precedence first: an optional contable.yaml file, a .env file in the
// working directory, and CONTABLE_* environment variables.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// envPrefix namespaces the environment variables (CONTABLE_BASE_URL, ...).
const envPrefix = "contable"

// Config holds everything the console needs to reach and talk to a backend.
type Config struct {
	BaseURL string        `yaml:"base_url" envconfig:"BASE_URL"`
	Timeout time.Duration `yaml:"timeout" envconfig:"TIMEOUT"`
	Debug   bool          `yaml:"debug" envconfig:"DEBUG"`
	Output  string        `yaml:"output" envconfig:"OUTPUT"` // table, json or csv
}

// Default returns the settings used when nothing else is configured.
func Default() *Config {
	return &Config{
		BaseURL: "http://localhost:8080",
		Timeout: 30 * time.Second,
		Output:  "table",
	}
}

// Load resolves the configuration. path names a YAML file; an empty path or
// a missing file is fine, the remaining layers still apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// optional file
		case err != nil:
			return nil, fmt.Errorf("reading config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	// A .env in the working directory feeds the environment layer; its
	// absence is not an error.
	_ = godotenv.Load()

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required (set base_url or CONTABLE_BASE_URL)")
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
