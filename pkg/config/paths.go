package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	EnvClinectlConfig = "CLINECTL_CONFIG"
	EnvClinectlHome   = "CLINECTL_HOME"
)

// ResolveConfigPath picks the config file location: CLINECTL_CONFIG wins,
// then CLINECTL_HOME/config.json, then ~/.clinectl/config.json.
func ResolveConfigPath() string {
	if configPath := expandHome(strings.TrimSpace(os.Getenv(EnvClinectlConfig))); configPath != "" {
		return configPath
	}

	homeDir := expandHome(strings.TrimSpace(os.Getenv(EnvClinectlHome)))
	if homeDir == "" {
		homeDir = defaultClinectlHome()
	}

	return filepath.Join(homeDir, "config.json")
}

func defaultClinectlHome() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".clinectl"
	}
	return filepath.Join(home, ".clinectl")
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil && home != "" {
			return filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(path, "~"), "/"))
		}
	}
	return path
}
