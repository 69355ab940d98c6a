package chase

import "sort"

// ghostThinkInterval is the number of ticks between scheduled AI decisions.
// It is coarser than the move period on purpose: a ghost commits to a
// heading for a few steps instead of dithering every tile.
const ghostThinkInterval = 8

// Candidate enumeration order for AI decisions: up, down, left, right.
// The order is part of the deterministic contract; reordering changes which
// heading a given LFSR draw selects.
var directions = [4]Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Flee weights. A candidate pointing directly away from the chomper on its
// axis outranks everything else; the draw then happens inside the top tier
// only, so flee paths stay biased but not exploitable.
const (
	fleeWeightAway  = 10
	fleeWeightOther = 1
)

// Ghost is an adversary actor. Beyond movement it carries the vulnerability
// flag flipped by power pickups, the think timer pacing its AI, and the
// spawn pose it returns to after being eaten.
type Ghost struct {
	Actor
	Vulnerable bool

	think            int
	spawn            Point
	spawnDX, spawnDY int
}

// NewGhost creates a ghost at its spawn tile with an initial heading.
func NewGhost(x, y, dx, dy int) Ghost {
	return Ghost{
		Actor:   NewActor(x, y, dx, dy, ghostMovePeriod),
		spawn:   Point{X: x, Y: y},
		spawnDX: dx,
		spawnDY: dy,
	}
}

// Think re-evaluates the ghost's heading: the flee policy while vulnerable,
// the wander policy otherwise. Only this ghost's heading is touched.
func (gh *Ghost) Think(g *Grid, rng *LFSR, targetX, targetY int) {
	if gh.Vulnerable {
		decideFlee(g, &gh.Actor, rng, targetX, targetY)
		return
	}
	decideWander(g, &gh.Actor, rng)
}

// Update runs one tick of an AI-controlled ghost: pace the think timer,
// re-decide at the cadence, then move. A wall-blocked step forces an
// immediate re-think so the ghost never freezes against an obstacle waiting
// for the next scheduled decision.
func (gh *Ghost) Update(g *Grid, rng *LFSR, targetX, targetY int) {
	gh.think++
	if gh.think >= ghostThinkInterval {
		gh.Think(g, rng, targetX, targetY)
		gh.think = 0
	}

	if blocked := gh.Actor.Update(g); blocked {
		gh.Think(g, rng, targetX, targetY)
	}
}

// ResetToSpawn puts an eaten ghost back at its spawn pose. The vulnerability
// flag is left alone: within one power window a respawned ghost can be eaten
// again, which is what lets the score multiplier climb.
func (gh *Ghost) ResetToSpawn() {
	gh.X, gh.Y = gh.spawn.X, gh.spawn.Y
	gh.DX, gh.DY = gh.spawnDX, gh.spawnDY
	gh.queuedDX, gh.queuedDY = 0, 0
}

// decideWander picks uniformly among the non-wall candidate headings,
// excluding the exact reverse of the current heading. At a dead end the
// exclusion would leave nothing, so reversal becomes the sole fallback and
// costs no draw.
func decideWander(g *Grid, a *Actor, rng *LFSR) {
	opts := make([]Point, 0, 4)
	for _, d := range directions {
		if g.IsWall(a.X+d.X, a.Y+d.Y) {
			continue
		}
		if d.X == -a.DX && d.Y == -a.DY {
			continue
		}
		opts = append(opts, d)
	}
	if len(opts) == 0 {
		a.DX, a.DY = -a.DX, -a.DY
		return
	}
	pick := opts[rng.Range(0, len(opts)-1)]
	a.DX, a.DY = pick.X, pick.Y
}

// decideFlee weighs the same candidates by whether they move directly away
// from the pursuer on their axis, then draws uniformly among the top-weight
// tier. The sort is stable so equal-weight candidates keep enumeration
// order, which keeps the draw deterministic for a given register state.
func decideFlee(g *Grid, a *Actor, rng *LFSR, targetX, targetY int) {
	toX := targetX - a.X
	toY := targetY - a.Y

	type weighted struct {
		d Point
		w int
	}
	opts := make([]weighted, 0, 4)
	for _, d := range directions {
		if g.IsWall(a.X+d.X, a.Y+d.Y) {
			continue
		}
		if d.X == -a.DX && d.Y == -a.DY {
			continue
		}
		w := fleeWeightOther
		if (d.X == 0 && sign(toY) == -d.Y) || (d.Y == 0 && sign(toX) == -d.X) {
			w = fleeWeightAway
		}
		opts = append(opts, weighted{d: d, w: w})
	}
	if len(opts) == 0 {
		a.DX, a.DY = -a.DX, -a.DY
		return
	}

	sort.SliceStable(opts, func(i, j int) bool { return opts[i].w > opts[j].w })
	tier := 1
	for tier < len(opts) && opts[tier].w == opts[0].w {
		tier++
	}
	pick := opts[rng.Range(0, tier-1)]
	a.DX, a.DY = pick.d.X, pick.d.Y
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
