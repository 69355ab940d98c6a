package chase

// Move periods: how many ticks elapse between grid steps. The chomper steps
// every 5th tick, ghosts every 6th, so the chomper outruns a ghost down a
// straight corridor. Both speeds hang off the one fixed tick rate.
const (
	chomperMovePeriod = 5
	ghostMovePeriod   = 6
)

// Actor is one piece on the grid: the chomper or a ghost. Position is in
// whole tiles; the heading is a cardinal unit vector or zero when stopped.
// The sub-frame counter gates movement so different actors can move at
// different speeds under the same tick rate.
type Actor struct {
	X, Y   int
	DX, DY int

	sub    int
	period int

	// Queued heading awaiting the next aligned step; (0,0) means none.
	queuedDX, queuedDY int
}

// NewActor creates an actor at a spawn tile with an initial heading.
func NewActor(x, y, dx, dy, period int) Actor {
	return Actor{X: x, Y: y, DX: dx, DY: dy, period: period}
}

// ProcessInput records a requested heading from an external controller and
// applies it immediately when the turn is safe to take now:
//   - the actor sits on a tile boundary (sub counter 0) and the target cell
//     is not a wall,
//   - the turn is perpendicular to the current heading and the target cell
//     is not a wall (taking 90-degree turns mid-step keeps input snappy), or
//   - the turn exactly reverses the current heading, which is always legal.
//
// Otherwise the request stays queued and is retried at the next step.
func (a *Actor) ProcessInput(g *Grid, dx, dy int) {
	if dx == a.DX && dy == a.DY {
		return
	}
	a.queuedDX, a.queuedDY = dx, dy

	aligned := a.sub == 0
	perpendicular := (dx != 0 && a.DY != 0) || (dy != 0 && a.DX != 0)
	open := !g.IsWall(a.X+dx, a.Y+dy)
	reversal := dx == -a.DX && dy == -a.DY

	if (aligned && open) || (perpendicular && open) || reversal {
		a.DX, a.DY = dx, dy
		a.queuedDX, a.queuedDY = 0, 0
	}
}

// Update advances the sub-frame counter and, when it completes a period,
// performs one grid step: resolve the queued heading (drop it if its cell is
// walled), advance along the heading with tunnel wraparound, and either move
// or stop dead against a wall. Landing on a paired teleporter relocates the
// actor to its partner cell, heading intact.
//
// Returns true when the step was blocked by a wall, which is what forces an
// AI ghost to re-think outside its normal cadence.
func (a *Actor) Update(g *Grid) bool {
	a.sub++
	if a.sub < a.period {
		return false
	}
	a.sub = 0

	if a.queuedDX != 0 || a.queuedDY != 0 {
		if !g.IsWall(a.X+a.queuedDX, a.Y+a.queuedDY) {
			a.DX, a.DY = a.queuedDX, a.queuedDY
		}
		a.queuedDX, a.queuedDY = 0, 0
	}

	nx, ny := a.X+a.DX, a.Y+a.DY
	if ny == g.TunnelRow() {
		if nx < 0 {
			nx = g.Width() - 1
		}
		if nx >= g.Width() {
			nx = 0
		}
	}

	if g.IsWall(nx, ny) {
		a.DX, a.DY = 0, 0
		a.queuedDX, a.queuedDY = 0, 0
		return true
	}

	moved := nx != a.X || ny != a.Y
	a.X, a.Y = nx, ny
	if moved {
		if pair, ok := g.PairedTeleporter(a.X, a.Y); ok {
			a.X, a.Y = pair.X, pair.Y
		}
	}
	return false
}

// Stopped reports whether the actor has a zero heading.
func (a *Actor) Stopped() bool {
	return a.DX == 0 && a.DY == 0
}
