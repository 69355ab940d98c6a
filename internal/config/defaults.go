package config

import (
	_ "embed"
)

//go:embed defaults/chomper.yaml
var defaultChomperYAML []byte

// DefaultChomperConfig returns the default chomper configuration.
func DefaultChomperConfig() ChomperConfig {
	return ChomperConfig{
		Board: ChomperBoard{
			Default: "classic",
		},
		Rules: ChomperRules{
			Ghosts:          2,
			VulnWindowTicks: 900,
		},
	}
}
