package chase

import "fmt"

// Tile symbols recognized by the grid. Any other byte behaves as an open
// floor cell, so a sloppy layout degrades instead of crashing.
const (
	TileWall        = '#'
	TileOpen        = ' '
	TilePickup      = '.'
	TilePowerPickup = '*'
)

// Point is a tile coordinate.
type Point struct {
	X, Y int
}

// Grid is the static tile map of one maze: walls, pickups, power pickups and
// paired numeric teleporters. It is immutable after construction and freely
// shared; a Round references a Grid but never owns or mutates one.
type Grid struct {
	width     int
	height    int
	tunnelRow int
	cells     []byte // row-major
}

// NewGrid builds a grid from row strings. Rows must be non-empty and all the
// same width; the content bytes are taken as-is. tunnelRow is the row on
// which stepping off the left or right edge wraps to the opposite edge.
func NewGrid(rows []string, tunnelRow int) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("chase: grid has no rows")
	}
	w := len(rows[0])
	if w == 0 {
		return nil, fmt.Errorf("chase: grid row 0 is empty")
	}
	cells := make([]byte, 0, w*len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("chase: grid row %d is %d cells wide, want %d", y, len(row), w)
		}
		cells = append(cells, row...)
	}
	if tunnelRow < 0 || tunnelRow >= len(rows) {
		tunnelRow = -1 // no wraparound row
	}
	return &Grid{
		width:     w,
		height:    len(rows),
		tunnelRow: tunnelRow,
		cells:     cells,
	}, nil
}

// Width returns the grid width in tiles.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in tiles.
func (g *Grid) Height() int { return g.height }

// TunnelRow returns the wraparound row, or -1 if the grid has none.
func (g *Grid) TunnelRow() int { return g.tunnelRow }

// At returns the tile byte at (x, y), or a wall for out-of-bounds coordinates.
func (g *Grid) At(x, y int) byte {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return TileWall
	}
	return g.cells[y*g.width+x]
}

// IsWall reports whether (x, y) blocks movement. Out-of-bounds is always a
// wall; this is the single boundary rule every movement check relies on.
func (g *Grid) IsWall(x, y int) bool {
	return g.At(x, y) == TileWall
}

// IsPickup reports whether the map has a pickup (regular or power) at (x, y).
// Out-of-bounds is never a pickup. Whether it has already been collected is
// the round's business, not the grid's.
func (g *Grid) IsPickup(x, y int) bool {
	c := g.At(x, y)
	return c == TilePickup || c == TilePowerPickup
}

// IsPowerPickup reports whether the map has a power pickup at (x, y).
func (g *Grid) IsPowerPickup(x, y int) bool {
	return g.At(x, y) == TilePowerPickup
}

// TeleporterID returns the teleporter id at (x, y), if the cell is one.
// Teleporters are the digit tiles '0'..'9'.
func (g *Grid) TeleporterID(x, y int) (int, bool) {
	c := g.At(x, y)
	if c < '0' || c > '9' {
		return 0, false
	}
	return int(c - '0'), true
}

// PairedTeleporter finds the other cell carrying the same teleporter id as
// (x, y), scanning in row-major order and skipping the origin cell. Valid
// maps have exactly one partner per id; on a malformed map with a lone
// teleporter there is no pair and the cell behaves as ordinary floor.
func (g *Grid) PairedTeleporter(x, y int) (Point, bool) {
	id, ok := g.TeleporterID(x, y)
	if !ok {
		return Point{}, false
	}
	want := byte('0' + id)
	for i, c := range g.cells {
		if c != want {
			continue
		}
		px, py := i%g.width, i/g.width
		if px == x && py == y {
			continue
		}
		return Point{X: px, Y: py}, true
	}
	return Point{}, false
}

// CountPickups returns the number of pickup cells in the map.
func (g *Grid) CountPickups() int {
	n := 0
	for _, c := range g.cells {
		if c == TilePickup || c == TilePowerPickup {
			n++
		}
	}
	return n
}
