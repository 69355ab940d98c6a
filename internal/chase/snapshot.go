package chase

// ActorSnap captures the full movement state of one actor, including the
// bits a renderer never needs (sub-frame counter, queued heading) so that
// two rounds comparing equal really are in identical states.
type ActorSnap struct {
	X, Y               int
	DX, DY             int
	Sub                int
	QueuedDX, QueuedDY int
}

// GhostSnap is an ActorSnap plus the ghost-only state.
type GhostSnap struct {
	ActorSnap
	Vulnerable bool
	Think      int
}

// Snapshot is a deep copy of everything observable about a round. Snapshots
// from two same-seed rounds fed identical intents must stay equal tick for
// tick; the determinism tests lean on that.
type Snapshot struct {
	Frame       uint64
	Chomper     ActorSnap
	Ghosts      []GhostSnap
	Collected   []bool
	PickupsLeft int
	Score       int
	Alive       bool
	VulnTicks   int
	EatenCount  int
}

func snapActor(a *Actor) ActorSnap {
	return ActorSnap{
		X: a.X, Y: a.Y,
		DX: a.DX, DY: a.DY,
		Sub:      a.sub,
		QueuedDX: a.queuedDX, QueuedDY: a.queuedDY,
	}
}

// Snapshot returns a deep copy of the round's observable state.
func (r *Round) Snapshot() Snapshot {
	s := Snapshot{
		Frame:       r.frame,
		Chomper:     snapActor(&r.chomper),
		Ghosts:      make([]GhostSnap, len(r.ghosts)),
		Collected:   make([]bool, len(r.collected)),
		PickupsLeft: r.pickupsLeft,
		Score:       r.score,
		Alive:       r.alive,
		VulnTicks:   r.vulnTicks,
		EatenCount:  r.eatenCount,
	}
	for i := range r.ghosts {
		gh := &r.ghosts[i]
		s.Ghosts[i] = GhostSnap{
			ActorSnap:  snapActor(&gh.Actor),
			Vulnerable: gh.Vulnerable,
			Think:      gh.think,
		}
	}
	copy(s.Collected, r.collected)
	return s
}
