// Package chomper adapts a chase round to the platform Game interface:
// it maps input frames to buffered intents, steps the round once per tick
// and renders the board into the screen buffer. All game rules live in
// internal/chase; this package is plumbing and paint.
package chomper

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-chomper/internal/chase"
	"github.com/vovakirdan/tui-chomper/internal/chase/layout"
	"github.com/vovakirdan/tui-chomper/internal/config"
	"github.com/vovakirdan/tui-chomper/internal/core"
	"github.com/vovakirdan/tui-chomper/internal/match"
	"github.com/vovakirdan/tui-chomper/internal/registry"
)

func init() {
	registry.Register("chomper", func() registry.Game { return New() })
}

// Package-level knobs set by the CLI and menus before the game is created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	boardID          string
	boardDir         string
	gameMode         match.Mode
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// SetBoardID selects the board the next round opens on. Unknown IDs fall
// back to the classic board at Reset.
func SetBoardID(id string) {
	boardID = id
}

// SetBoardDir sets the directory scanned for custom board files.
func SetBoardDir(dir string) {
	boardDir = dir
}

// SetMode selects the play mode for the next round. Unknown strings keep
// solo; feeding a bad flag should never make the game unplayable.
func SetMode(mode string) {
	m, err := match.ParseMode(mode)
	if err != nil {
		m = match.ModeSolo
	}
	gameMode = m
}

// Game implements the chomper game over a chase round.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.ChomperConfig
	mode    match.Mode

	board layout.Layout
	grid  *chase.Grid
	round *chase.Round

	paused bool

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new chomper game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "chomper"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Chomper"
}

// Reset initializes or restarts the game. Restarting keeps the same seed,
// so a round replays identically until the platform hands out a new one;
// the original cabinet behaved the same way.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadChomper(configPath)
	if err != nil {
		log.Warn("could not load game config, using defaults", "error", err)
		cfg = config.DefaultChomperConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyChomperPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.mode = gameMode

	g.board = resolveBoard(cfg)
	grid, err := g.board.Build()
	if err != nil {
		// Custom boards are validated at load time, so this only fires
		// for a broken built-in; the classic board is the safety net.
		log.Warn("board failed to build, using classic", "board", g.board.ID, "error", err)
		g.board, _ = layout.BuiltinByID("classic")
		grid, _ = g.board.Build()
	}
	g.grid = grid

	g.round = chase.NewRound(grid, chase.RoundConfig{
		Seed:         uint16(runtime.Seed),
		Ghosts:       cfg.Rules.Ghosts,
		VulnWindow:   cfg.Rules.VulnWindowTicks,
		Controllers:  g.mode.Controllers(cfg.Rules.Ghosts),
		ChomperSpawn: g.board.ChomperSpawn,
		GhostSpawn:   g.board.GhostSpawn,
	})

	g.paused = false

	// The board draws 1:1 under a two-row HUD.
	g.minScreenW = grid.Width()
	g.minScreenH = grid.Height() + hudHeight
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH
}

// resolveBoard picks the board for the next round: explicit selection
// first, then the config default, then the classic built-in.
func resolveBoard(cfg config.ChomperConfig) layout.Layout {
	dir := boardDir
	if dir == "" {
		dir = cfg.Board.Dir
	}
	id := boardID
	if id == "" {
		id = cfg.Board.Default
	}
	if id != "" {
		l, err := layout.Find(dir, id)
		if err == nil {
			return l
		}
		log.Warn("falling back to the classic board", "error", err)
	}
	l, _ := layout.BuiltinByID("classic")
	return l
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	// Handle restart
	if input.Has(core.ActionRestart) && g.round.Ended() {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused || g.screenTooSmall || g.round.Ended() {
		return core.StepResult{State: g.State()}
	}

	g.applyIntents(input)
	g.round.Tick()

	return core.StepResult{State: g.State()}
}

// applyIntents translates this frame's pressed directions into buffered
// round intents, one per seat. The mode decides which actor slot a seat
// drives; seats mapped to AI slots are dropped inside the round.
func (g *Game) applyIntents(input core.InputFrame) {
	for _, seat := range []match.Seat{match.SeatPrimary, match.SeatAlt} {
		slot := g.mode.Slot(seat)
		if slot < 0 {
			continue
		}
		if dx, dy, ok := seatVector(input, seat); ok {
			g.round.ApplyIntent(slot, dx, dy)
		}
	}
}

// seatVector maps a seat's pressed direction actions to a unit vector.
// Up wins over down, vertical over horizontal, mirroring the single-key
// semantics of the original input handling.
func seatVector(input core.InputFrame, seat match.Seat) (dx, dy int, ok bool) {
	up, down, left, right := core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight
	if seat == match.SeatAlt {
		up, down, left, right = core.ActionAltUp, core.ActionAltDown, core.ActionAltLeft, core.ActionAltRight
	}

	switch {
	case input.Has(up):
		return 0, -1, true
	case input.Has(down):
		return 0, 1, true
	case input.Has(left):
		return -1, 0, true
	case input.Has(right):
		return 1, 0, true
	}
	return 0, 0, false
}

// State returns the current score and round status.
func (g *Game) State() core.GameState {
	if g.round == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.round.Score(),
		GameOver: g.round.Ended(),
		Won:      g.round.Won(),
		Paused:   g.paused,
	}
}

// Snapshot returns a deep copy of the underlying round state. Determinism
// tests compare snapshots of same-seed games tick for tick.
func (g *Game) Snapshot() chase.Snapshot {
	return g.round.Snapshot()
}

// Board returns the layout the current round plays on.
func (g *Game) Board() layout.Layout {
	return g.board
}

// Mode returns the play mode of the current round.
func (g *Game) Mode() match.Mode {
	return g.mode
}

// Ticks returns how many fixed steps the current round has simulated.
func (g *Game) Ticks() uint64 {
	if g.round == nil {
		return 0
	}
	return g.round.Frame()
}
