package layout

import "github.com/vovakirdan/tui-chomper/internal/chase"

// Built-in board geometry. Both boards are 28x31 with the wrap tunnel on
// row 14 and the classic spawn tiles.
const builtinTunnelRow = 14

var builtinSpawns = struct {
	chomper chase.Point
	ghost   chase.Point
}{
	chomper: chase.Point{X: 13, Y: 23},
	ghost:   chase.Point{X: 13, Y: 14},
}

var classicRows = []string{
	"############################",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#*####.#####.##.#####.####*#",
	"#.####.#####.##.#####.####.#",
	"#..........................#",
	"#.####.##.########.##.####.#",
	"#.####.##.########.##.####.#",
	"#......##....##....##......#",
	"######.##### ## #####.######",
	"#####..##### ## #####..#####",
	"#####.##            ##.#####",
	"#......# ### ## ### #......#",
	"######.# #        # #.######",
	"     #.# #  ####  # #.#     ",
	"######.# #        # #.######",
	"#......# ########## #......#",
	"#####.##            ##.#####",
	"#####..##### ## #####..#####",
	"######.##### ## #####.######",
	"#......##....##....##......#",
	"#.####.##.########.##.####.#",
	"#.####.##.########.##.####.#",
	"#...##................##...#",
	"###.##.####.##.####.##.###.#",
	"#*..   ####.##.####   ..*..#",
	"###.##.####.##.####.##.###.#",
	"#...##................##...#",
	"#.##########.##.##########.#",
	"#..........................#",
	"############################",
}

// tunnelsRows keeps the classic outer ring but opens the middle into one
// large chamber and adds two teleporter pairs: a vertical pair through the
// top and bottom walls and a horizontal pair on the tunnel row itself.
var tunnelsRows = []string{
	"############1###############",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#*####.#####.##.#####.####*#",
	"#.####.#####.##.#####.####.#",
	"#..........................#",
	"#.####.##.########.##.####.#",
	"#.####.##.########.##.####.#",
	"#......##....##....##......#",
	"######.##### ## #####.######",
	"#####..##### ## #####..#####",
	"#####.##            ##.#####",
	"#......#            #......#",
	"## ###.#            #.######",
	"2    #.#            #.#    2",
	"######.#            #.#### #",
	"#......#            #......#",
	"#####.##            ##.#####",
	"#####..##### ## #####..#####",
	"######.##### ## #####.######",
	"#......##....##....##......#",
	"#.####.##.########.##.####.#",
	"#.####.##.########.##.####.#",
	"#...##................##...#",
	"###.##.####.##.####.######.#",
	"#*..   ####.##.####   ..*..#",
	"###.##.####.##.####.######.#",
	"#...##................##...#",
	"#.##########.##.##########.#",
	"#..........................#",
	"############1###############",
}

// Builtin returns the built-in boards in menu order.
func Builtin() []Layout {
	return []Layout{
		{
			ID:           "classic",
			Title:        "Classic",
			TunnelRow:    builtinTunnelRow,
			ChomperSpawn: builtinSpawns.chomper,
			GhostSpawn:   builtinSpawns.ghost,
			Rows:         classicRows,
		},
		{
			ID:           "tunnels",
			Title:        "Tunnels",
			TunnelRow:    builtinTunnelRow,
			ChomperSpawn: builtinSpawns.chomper,
			GhostSpawn:   builtinSpawns.ghost,
			Rows:         tunnelsRows,
		},
	}
}

// BuiltinByID returns the built-in board with the given ID.
func BuiltinByID(id string) (Layout, bool) {
	for _, l := range Builtin() {
		if l.ID == id {
			return l, true
		}
	}
	return Layout{}, false
}
