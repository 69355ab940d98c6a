// Package layout provides the playable boards for the chase engine: two
// built-in mazes plus a loader for custom boards shipped as YAML files.
// This package depends on chase but chase does not depend on layout.
package layout

import (
	"fmt"

	"github.com/vovakirdan/tui-chomper/internal/chase"
)

// Layout is one playable board: the tile rows plus the metadata the engine
// cannot derive from tiles alone.
type Layout struct {
	ID    string
	Title string

	// TunnelRow is the row with horizontal wraparound; -1 disables it.
	TunnelRow int

	ChomperSpawn chase.Point
	GhostSpawn   chase.Point

	Rows []string
}

// Build validates the layout and constructs its grid. Boards that would
// make a round unplayable (no pickups, chomper walled in from the start)
// are rejected here rather than surfacing as a broken round later.
func (l Layout) Build() (*chase.Grid, error) {
	g, err := chase.NewGrid(l.Rows, l.TunnelRow)
	if err != nil {
		return nil, fmt.Errorf("layout %q: %w", l.ID, err)
	}
	if g.CountPickups() == 0 {
		return nil, fmt.Errorf("layout %q: no pickups on the board", l.ID)
	}
	if !l.inBounds(g, l.ChomperSpawn) {
		return nil, fmt.Errorf("layout %q: chomper spawn (%d,%d) outside the board",
			l.ID, l.ChomperSpawn.X, l.ChomperSpawn.Y)
	}
	if g.IsWall(l.ChomperSpawn.X, l.ChomperSpawn.Y) {
		return nil, fmt.Errorf("layout %q: chomper spawn (%d,%d) is a wall",
			l.ID, l.ChomperSpawn.X, l.ChomperSpawn.Y)
	}
	// The classic board spawns ghosts inside the house wall; they step out
	// on their first move, so only bounds are enforced for the ghost tile.
	if !l.inBounds(g, l.GhostSpawn) {
		return nil, fmt.Errorf("layout %q: ghost spawn (%d,%d) outside the board",
			l.ID, l.GhostSpawn.X, l.GhostSpawn.Y)
	}
	return g, nil
}

func (l Layout) inBounds(g *chase.Grid, p chase.Point) bool {
	return p.X >= 0 && p.X < g.Width() && p.Y >= 0 && p.Y < g.Height()
}
