// Package config provides YAML-based game configuration loading and
// difficulty presets for the chomper platform.
package config

// ChomperConfig contains all configuration for the chomper game.
type ChomperConfig struct {
	Board ChomperBoard `yaml:"board"`
	Rules ChomperRules `yaml:"rules"`
}

// ChomperBoard selects the maze a round opens on and where custom boards
// are scanned from.
type ChomperBoard struct {
	Default string `yaml:"default"` // board ID, e.g. "classic"
	Dir     string `yaml:"dir"`     // custom board directory; empty disables scanning
}

// ChomperRules defines the round parameters a difficulty preset adjusts.
// Out-of-range values degrade inside the simulation (ghost count is
// clamped to at least 1, a non-positive window falls back to 900 ticks).
type ChomperRules struct {
	Ghosts          int `yaml:"ghosts"`            // adversary count
	VulnWindowTicks int `yaml:"vuln_window_ticks"` // power-pickup window, ticks at 60 Hz
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
