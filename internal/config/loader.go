package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadChomper loads the chomper configuration.
// Search order: customPath -> ~/.chomper/configs/chomper.yaml -> ./configs/chomper.yaml -> embedded default
func LoadChomper(customPath string) (ChomperConfig, error) {
	var cfg ChomperConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("chomper.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/chomper.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultChomperYAML, &cfg); err != nil {
		return DefaultChomperConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chomper", "configs", filename)
}

// ApplyChomperPreset modifies the config based on a difficulty preset.
// The named presets pin the adversary count and the power window; "fixed"
// plays whatever the loaded file says.
func ApplyChomperPreset(cfg *ChomperConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.Ghosts = 1
		cfg.Rules.VulnWindowTicks = 1200
	case DifficultyNormal:
		cfg.Rules.Ghosts = 2
		cfg.Rules.VulnWindowTicks = 900
	case DifficultyHard:
		cfg.Rules.Ghosts = 4
		cfg.Rules.VulnWindowTicks = 600
	}
}
