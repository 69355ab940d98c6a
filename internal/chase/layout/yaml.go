package layout

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-chomper/internal/chase"
)

// yamlLayout is the on-disk schema for a custom board.
type yamlLayout struct {
	ID        string `yaml:"id"`
	Title     string `yaml:"title"`
	TunnelRow *int   `yaml:"tunnel_row,omitempty"`
	Spawn     struct {
		Chomper yamlPoint `yaml:"chomper"`
		Ghosts  yamlPoint `yaml:"ghosts"`
	} `yaml:"spawn"`
	Rows []string `yaml:"rows"`
}

type yamlPoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// ParseYAML parses and fully validates one custom board file. The returned
// layout is guaranteed to build.
func ParseYAML(data []byte) (Layout, error) {
	var yl yamlLayout
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Layout{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Layout{}, fmt.Errorf("board file has no id")
	}

	title := yl.Title
	if title == "" {
		title = yl.ID
	}
	tunnelRow := -1
	if yl.TunnelRow != nil {
		tunnelRow = *yl.TunnelRow
	}

	l := Layout{
		ID:           yl.ID,
		Title:        title,
		TunnelRow:    tunnelRow,
		ChomperSpawn: chase.Point{X: yl.Spawn.Chomper.X, Y: yl.Spawn.Chomper.Y},
		GhostSpawn:   chase.Point{X: yl.Spawn.Ghosts.X, Y: yl.Spawn.Ghosts.Y},
		Rows:         yl.Rows,
	}
	if _, err := l.Build(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// FormatExtensions returns the file extensions the loader accepts.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
