package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const landConfigFile = "land.yaml"

// LoadLand loads the game configuration.
// Search order: customPath -> ~/.land/configs/land.yaml -> ./configs/land.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
// A custom file that fails Validate is an error; invalid files on the search
// path are skipped.
func LoadLand(customPath string) (LandConfig, error) {
	cfg := DefaultLandConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return DefaultLandConfig(), fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fileCfg := DefaultLandConfig()
		if err := yaml.Unmarshal(data, &fileCfg); err == nil && fileCfg.Validate() == nil {
			return fileCfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultLandYAML, &cfg); err != nil {
		return DefaultLandConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// searchPaths returns the user and local config locations in priority order.
func searchPaths() []string {
	var paths []string
	if p := userConfigPath(landConfigFile); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", landConfigFile))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".land", "configs", filename)
}
