package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadZigzag loads zigzag configuration. Files are decoded over the
// defaults, so a partial file only overrides what it names.
// Search order: customPath -> ~/.zigzag/configs/zigzag.yaml -> ./configs/zigzag.yaml -> embedded default
func LoadZigzag(customPath string) (ZigzagConfig, error) {
	cfg := DefaultZigzagConfig()

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
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, p := range []string{userConfigPath("zigzag.yaml"), filepath.Join("configs", "zigzag.yaml")} {
		if p == "" {
			continue
		}
		if loaded, ok := tryLoad(p); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultZigzagYAML, &cfg); err != nil {
		return DefaultZigzagConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads and validates an optional config file.
func tryLoad(path string) (ZigzagConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ZigzagConfig{}, false
	}
	cfg := DefaultZigzagConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ZigzagConfig{}, false
	}
	if cfg.Validate() != nil {
		return ZigzagConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".zigzag", "configs", filename)
}

// ApplyZigzagPreset modifies the config based on a difficulty preset.
func ApplyZigzagPreset(cfg *ZigzagConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Path.Forgiveness = 0.8
	case DifficultyHard:
		cfg.Path.Forgiveness = 0.6
	}
}
