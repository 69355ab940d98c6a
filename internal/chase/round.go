// Package chase implements a deterministic, fixed-timestep chase simulation:
// one chomper collecting pickups on a tile grid while ghosts alternate
// between wandering and fleeing. The package is pure logic with no I/O, no
// clock and no dependencies; the platform feeds it intents and elapsed time
// and reads state back out. Everything is reproducible from the seed: two
// rounds with the same grid, seed and intent script stay identical forever.
package chase

// Scoring and timing constants.
const (
	scorePickup      = 10
	scorePowerPickup = 50

	// vulnDuration is the power-pickup window in ticks (~15 s at 60 Hz).
	vulnDuration = 900
)

// ghostScores is the ascending reward for consecutive ghosts eaten within
// one vulnerability window. The index saturates at the last entry.
var ghostScores = [...]int{200, 400, 800, 1600}

// Classic spawn tiles, used when a config leaves spawns unset. They match
// the built-in 28x31 layouts.
var (
	classicChomperSpawn = Point{X: 13, Y: 23}
	classicGhostSpawn   = Point{X: 13, Y: 14}
)

// ControllerKind tags who drives an actor slot. It is resolved once at round
// start so the tick body consults a tag instead of re-deriving modes.
type ControllerKind int

const (
	// ControllerAI runs the built-in decision process for the slot.
	ControllerAI ControllerKind = iota
	// ControllerExternal moves only on intents fed through ApplyIntent.
	ControllerExternal
)

// RoundConfig describes one round: the seed, how many ghosts, who controls
// each slot, and where actors spawn. Zero values degrade to sensible
// defaults rather than failing; a round must always be constructible.
type RoundConfig struct {
	// Seed for the shared LFSR. Zero picks the generator's fixed default.
	Seed uint16

	// Ghosts is the adversary count, clamped to at least 1.
	Ghosts int

	// VulnWindow is how many ticks a power pickup keeps ghosts vulnerable.
	// Non-positive values fall back to the standard 900-tick window.
	VulnWindow int

	// Controllers holds per-slot kinds: slot 0 is the chomper, slots 1..N
	// the ghosts. Missing entries default to an externally driven chomper
	// and AI ghosts.
	Controllers []ControllerKind

	// ChomperSpawn and GhostSpawn override the classic spawn tiles.
	// The zero Point means "use the classic tile". All ghosts share one
	// spawn tile; they diverge through their own decisions.
	ChomperSpawn Point
	GhostSpawn   Point
}

// intent is one buffered directional request for an actor slot.
type intent struct {
	dx, dy int
	ok     bool
}

// Round owns all mutable state of one play-through: the actors, the
// collected-set shadowing the grid's pickups, score, timers and the shared
// generator. It is created fresh per round and discarded at the end; nothing
// persists across rounds in here.
type Round struct {
	grid *Grid
	rng  *LFSR

	chomper      Actor
	chomperThink int
	ghosts       []Ghost
	kinds        []ControllerKind
	pending      []intent

	collected   []bool
	pickupsLeft int
	score       int
	alive       bool
	vulnWindow  int
	vulnTicks   int
	eatenCount  int
	frame       uint64
}

// NewRound builds a round over a grid. The grid is referenced, not copied;
// it must stay alive and unmodified for the round's lifetime.
func NewRound(grid *Grid, cfg RoundConfig) *Round {
	ghosts := cfg.Ghosts
	if ghosts < 1 {
		ghosts = 1
	}

	kinds := make([]ControllerKind, 1+ghosts)
	kinds[0] = ControllerExternal
	for i := 1; i <= ghosts; i++ {
		kinds[i] = ControllerAI
	}
	copy(kinds, cfg.Controllers)

	chomperSpawn := cfg.ChomperSpawn
	if chomperSpawn == (Point{}) {
		chomperSpawn = classicChomperSpawn
	}
	ghostSpawn := cfg.GhostSpawn
	if ghostSpawn == (Point{}) {
		ghostSpawn = classicGhostSpawn
	}
	window := cfg.VulnWindow
	if window <= 0 {
		window = vulnDuration
	}

	r := &Round{
		grid:       grid,
		rng:        NewLFSR(cfg.Seed),
		chomper:    NewActor(chomperSpawn.X, chomperSpawn.Y, 0, 0, chomperMovePeriod),
		ghosts:     make([]Ghost, ghosts),
		kinds:      kinds,
		pending:    make([]intent, 1+ghosts),
		collected:  make([]bool, grid.Width()*grid.Height()),
		alive:      true,
		vulnWindow: window,
	}
	for i := range r.ghosts {
		r.ghosts[i] = NewGhost(ghostSpawn.X, ghostSpawn.Y, 0, -1)
	}
	r.pickupsLeft = grid.CountPickups()
	return r
}

// ApplyIntent buffers one directional intent for an actor slot, to be
// applied at the start of the next tick. Intents for AI slots, unknown
// slots, or non-cardinal vectors are dropped; feeding input is never an
// error, it is just sometimes meaningless.
func (r *Round) ApplyIntent(slot, dx, dy int) {
	if slot < 0 || slot >= len(r.pending) {
		return
	}
	if r.kinds[slot] != ControllerExternal {
		return
	}
	vertical := dx == 0 && (dy == -1 || dy == 1)
	horizontal := dy == 0 && (dx == -1 || dx == 1)
	if !vertical && !horizontal {
		return
	}
	r.pending[slot] = intent{dx: dx, dy: dy, ok: true}
}

// Tick advances the simulation exactly one fixed virtual frame. The step
// order below is a correctness contract, not a style choice: pickups must
// resolve before ghosts think so a power pickup flips AI policy the very
// tick it is eaten, and collisions must come last so they see final
// positions. Once the round has ended, Tick is a no-op.
func (r *Round) Tick() {
	if r.Ended() {
		return
	}
	r.frame++

	// 1. Apply buffered external intents.
	for slot := range r.pending {
		it := r.pending[slot]
		if !it.ok {
			continue
		}
		r.pending[slot] = intent{}
		if slot == 0 {
			r.chomper.ProcessInput(r.grid, it.dx, it.dy)
		} else {
			r.ghosts[slot-1].ProcessInput(r.grid, it.dx, it.dy)
		}
	}

	// 2. Advance the chomper. An AI-driven chomper wanders on the same
	// cadence a ghost thinks at; there is no smarter policy for it.
	if r.kinds[0] == ControllerAI {
		r.chomperThink++
		if r.chomperThink >= ghostThinkInterval {
			decideWander(r.grid, &r.chomper, r.rng)
			r.chomperThink = 0
		}
	}
	blocked := r.chomper.Update(r.grid)
	if blocked && r.kinds[0] == ControllerAI {
		decideWander(r.grid, &r.chomper, r.rng)
	}

	// 3. Resolve pickup collection at the chomper's cell.
	if r.grid.IsPickup(r.chomper.X, r.chomper.Y) {
		idx := r.chomper.Y*r.grid.Width() + r.chomper.X
		if !r.collected[idx] {
			r.collected[idx] = true
			r.pickupsLeft--
			if r.grid.IsPowerPickup(r.chomper.X, r.chomper.Y) {
				r.score += scorePowerPickup
				r.vulnTicks = r.vulnWindow
				for i := range r.ghosts {
					r.ghosts[i].Vulnerable = true
				}
				r.eatenCount = 0
			} else {
				r.score += scorePickup
			}
		}
	}

	// 4. Decay the vulnerability window. Hitting exactly zero is the only
	// place time turns vulnerability off.
	if r.vulnTicks > 0 {
		r.vulnTicks--
		if r.vulnTicks == 0 {
			for i := range r.ghosts {
				r.ghosts[i].Vulnerable = false
			}
		}
	}

	// 5. Advance every ghost, in slot order; the order matters because they
	// share one generator.
	for i := range r.ghosts {
		gh := &r.ghosts[i]
		if r.kinds[1+i] == ControllerAI {
			gh.Update(r.grid, r.rng, r.chomper.X, r.chomper.Y)
		} else {
			gh.Actor.Update(r.grid)
		}
	}

	// 6. Resolve collisions on the chomper's cell. A lethal contact ends
	// the round immediately; no later vulnerable contact can undo it.
	for i := range r.ghosts {
		gh := &r.ghosts[i]
		if gh.X != r.chomper.X || gh.Y != r.chomper.Y {
			continue
		}
		if gh.Vulnerable {
			tier := r.eatenCount
			if tier >= len(ghostScores) {
				tier = len(ghostScores) - 1
			}
			r.score += ghostScores[tier]
			r.eatenCount++
			gh.ResetToSpawn()
		} else {
			r.alive = false
			break
		}
	}
}

// Grid returns the grid this round plays on.
func (r *Round) Grid() *Grid { return r.grid }

// Chomper returns a copy of the chomper's actor state.
func (r *Round) Chomper() Actor { return r.chomper }

// GhostCount returns the number of ghosts in the round.
func (r *Round) GhostCount() int { return len(r.ghosts) }

// GhostAt returns a copy of the ghost in slot i (0-based among ghosts).
func (r *Round) GhostAt(i int) Ghost { return r.ghosts[i] }

// Controller returns the controller kind of an actor slot.
func (r *Round) Controller(slot int) ControllerKind {
	if slot < 0 || slot >= len(r.kinds) {
		return ControllerAI
	}
	return r.kinds[slot]
}

// CollectedAt reports whether the pickup at (x, y) has been collected.
// Cells that never held a pickup report false.
func (r *Round) CollectedAt(x, y int) bool {
	if x < 0 || x >= r.grid.Width() || y < 0 || y >= r.grid.Height() {
		return false
	}
	return r.collected[y*r.grid.Width()+x]
}

// Score returns the current score. It never decreases.
func (r *Round) Score() int { return r.score }

// PickupsLeft returns the uncollected pickup count. It never increases.
func (r *Round) PickupsLeft() int { return r.pickupsLeft }

// Alive reports whether the chomper is still alive.
func (r *Round) Alive() bool { return r.alive }

// Won reports whether every pickup has been collected.
func (r *Round) Won() bool { return r.pickupsLeft == 0 }

// Ended reports whether the round is over, by death or by clearing the map.
func (r *Round) Ended() bool { return !r.alive || r.pickupsLeft == 0 }

// VulnTicks returns the remaining vulnerability window in ticks, 0 when no
// window is active. Renderers key flash cadences off this.
func (r *Round) VulnTicks() int { return r.vulnTicks }

// EatenCount returns how many ghosts were eaten in the current window.
func (r *Round) EatenCount() int { return r.eatenCount }

// Frame returns the number of ticks advanced so far.
func (r *Round) Frame() uint64 { return r.frame }
