// Package config holds clinectl's settings: an optional JSON config file
// overlaid with environment variables.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/cline-tools/clinectl/pkg/automation"
)

type Config struct {
	BaseURL        string `json:"base_url" env:"CLINECTL_BASE_URL"`
	TimeoutSeconds int    `json:"timeout_seconds" env:"CLINECTL_TIMEOUT_SECONDS"`
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL:        automation.DefaultBaseURL,
		TimeoutSeconds: 30,
	}
}

// Timeout returns the request timeout as a duration. Non-positive values
// fall back to the default.
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return time.Duration(DefaultConfig().TimeoutSeconds) * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LoadConfig reads the config file at path and applies environment
// overrides. A missing file is not an error; defaults are used.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := env.Parse(cfg); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func SaveConfig(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
