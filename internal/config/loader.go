package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// HustleFile is the config file name looked up in the config directories.
const HustleFile = "hustle.yaml"

// LoadHustle loads Tile Hustle configuration.
// Search order: customPath -> ~/.hustle/configs/hustle.yaml -> ./configs/hustle.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides
// the keys it names.
func LoadHustle(customPath string) (HustleConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultHustleConfig(), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parseHustle(data)
		if err != nil {
			return DefaultHustleConfig(), fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(HustleFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseHustle(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", HustleFile)); err == nil {
		if cfg, err := parseHustle(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseHustle(defaultHustleYAML)
	if err != nil {
		return DefaultHustleConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseHustle decodes data on top of the defaults. Texture entries are
// merged key by key rather than replacing the whole atlas.
func parseHustle(data []byte) (HustleConfig, error) {
	cfg := DefaultHustleConfig()
	textures := cfg.Textures
	cfg.Textures = nil

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultHustleConfig(), err
	}

	for k, v := range cfg.Textures {
		textures[k] = v
	}
	cfg.Textures = textures
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}

// UserDir returns ~/.hustle, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hustle")
}

// ApplyHustlePreset modifies the config based on a difficulty preset.
func ApplyHustlePreset(cfg *HustleConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
