package chase

import (
	"reflect"
	"testing"
)

// pickupRows is a corridor with two pickups and a ghost sealed in a box
// below it, so pickup and timer scenarios observe the chomper alone. The
// boxed ghost blocks on its first step, zeroes its heading and then stands
// still forever without consuming generator draws.
var pickupRows = []string{
	"#######",
	"#.   .#",
	"#######",
	"## ####",
	"#######",
}

func pickupRound(t *testing.T) *Round {
	t.Helper()
	g := mustGrid(t, pickupRows, -1)
	return NewRound(g, RoundConfig{
		Ghosts:       1,
		ChomperSpawn: Point{X: 2, Y: 1},
		GhostSpawn:   Point{X: 2, Y: 3},
	})
}

func tick(r *Round, n int) {
	for i := 0; i < n; i++ {
		r.Tick()
	}
}

func TestRoundPickupCollectedOnce(t *testing.T) {
	r := pickupRound(t)

	// Walk left onto the pickup: the chomper steps every 5th tick.
	r.ApplyIntent(0, -1, 0)
	tick(r, 4)
	if r.Score() != 0 || r.PickupsLeft() != 2 {
		t.Fatalf("score=%d left=%d before the first step, want 0 and 2", r.Score(), r.PickupsLeft())
	}
	r.Tick()
	if r.Score() != scorePickup {
		t.Fatalf("score = %d after collecting, want %d", r.Score(), scorePickup)
	}
	if r.PickupsLeft() != 1 {
		t.Fatalf("pickups left = %d, want 1", r.PickupsLeft())
	}
	if !r.CollectedAt(1, 1) {
		t.Error("CollectedAt(1,1) = false after collecting there")
	}

	// Leave and come back: the cell must not pay out twice.
	r.ApplyIntent(0, 1, 0)
	tick(r, 5)
	r.ApplyIntent(0, -1, 0)
	tick(r, 5)
	if c := r.Chomper(); c.X != 1 || c.Y != 1 {
		t.Fatalf("chomper at (%d,%d), want back on (1,1)", c.X, c.Y)
	}
	if r.Score() != scorePickup || r.PickupsLeft() != 1 {
		t.Errorf("score=%d left=%d after revisiting, want unchanged %d and 1", r.Score(), r.PickupsLeft(), scorePickup)
	}
	if r.Ended() {
		t.Error("round ended with a pickup remaining")
	}
}

func TestRoundWinOnLastPickup(t *testing.T) {
	r := pickupRound(t)

	r.ApplyIntent(0, -1, 0)
	tick(r, 5) // collect (1,1)
	r.ApplyIntent(0, 1, 0)
	tick(r, 20) // steps land on 2,3,4 and finally the pickup at (5,1)

	if r.PickupsLeft() != 0 {
		t.Fatalf("pickups left = %d, want 0", r.PickupsLeft())
	}
	if !r.Won() || !r.Ended() {
		t.Errorf("Won=%v Ended=%v, want both true", r.Won(), r.Ended())
	}
	if !r.Alive() {
		t.Error("winning must not kill the chomper")
	}

	frame := r.Frame()
	r.Tick()
	if r.Frame() != frame {
		t.Errorf("frame advanced to %d after the round ended, want %d", r.Frame(), frame)
	}
}

func TestRoundPowerPickupWindow(t *testing.T) {
	g := mustGrid(t, []string{
		"#######",
		"# * *.#",
		"#######",
		"## ####",
		"#######",
	}, -1)
	r := NewRound(g, RoundConfig{
		Ghosts:       1,
		ChomperSpawn: Point{X: 1, Y: 1},
		GhostSpawn:   Point{X: 2, Y: 3},
	})

	r.ApplyIntent(0, 1, 0)
	tick(r, 5) // onto the first power pickup
	if r.Score() != scorePowerPickup {
		t.Fatalf("score = %d, want %d", r.Score(), scorePowerPickup)
	}
	// The window arms at 900 and decays once within the same tick.
	if r.VulnTicks() != vulnDuration-1 {
		t.Fatalf("window = %d, want %d", r.VulnTicks(), vulnDuration-1)
	}
	if !r.GhostAt(0).Vulnerable {
		t.Error("ghost not vulnerable after a power pickup")
	}
	if r.EatenCount() != 0 {
		t.Errorf("eaten count = %d, want 0", r.EatenCount())
	}

	// A second power pickup mid-window re-arms the clock and restarts the
	// reward ladder; pretend three ghosts were eaten meanwhile.
	r.eatenCount = 3
	tick(r, 10) // steps land on (3,1) then the pickup at (4,1)
	if r.Score() != 2*scorePowerPickup {
		t.Fatalf("score = %d, want %d", r.Score(), 2*scorePowerPickup)
	}
	if r.VulnTicks() != vulnDuration-1 {
		t.Errorf("window = %d after re-arm, want %d", r.VulnTicks(), vulnDuration-1)
	}
	if r.EatenCount() != 0 {
		t.Errorf("eaten count = %d after re-arm, want 0", r.EatenCount())
	}
	if !r.GhostAt(0).Vulnerable {
		t.Error("ghost lost vulnerability across a re-arm")
	}
	if r.Ended() {
		t.Error("round ended with the plain pickup still on the board")
	}
}

func TestRoundCustomVulnWindow(t *testing.T) {
	g := mustGrid(t, []string{
		"#######",
		"# *  .#",
		"#######",
		"## ####",
		"#######",
	}, -1)
	r := NewRound(g, RoundConfig{
		Ghosts:       1,
		VulnWindow:   50,
		ChomperSpawn: Point{X: 1, Y: 1},
		GhostSpawn:   Point{X: 2, Y: 3},
	})

	r.ApplyIntent(0, 1, 0)
	tick(r, 5)
	if r.VulnTicks() != 49 {
		t.Fatalf("window = %d, want 49", r.VulnTicks())
	}
}

func TestRoundVulnerabilityExpires(t *testing.T) {
	r := pickupRound(t)
	r.vulnTicks = 3
	r.ghosts[0].Vulnerable = true
	r.eatenCount = 5

	tick(r, 2)
	if r.VulnTicks() != 1 || !r.GhostAt(0).Vulnerable {
		t.Fatalf("window=%d vulnerable=%v, want 1 and true", r.VulnTicks(), r.GhostAt(0).Vulnerable)
	}
	r.Tick()
	if r.VulnTicks() != 0 {
		t.Fatalf("window = %d, want 0", r.VulnTicks())
	}
	if r.GhostAt(0).Vulnerable {
		t.Error("ghost still vulnerable after the window hit zero")
	}
	// Only a fresh power pickup restarts the ladder; expiry does not.
	if r.EatenCount() != 5 {
		t.Errorf("eaten count = %d after expiry, want 5", r.EatenCount())
	}
}

// collisionRound puts n ghosts directly on the chomper's cell, standing
// still, so the collision pass runs against a known arrangement.
func collisionRound(t *testing.T, n int) *Round {
	t.Helper()
	g := mustGrid(t, []string{
		"#######",
		"#    .#",
		"#######",
		"## ####",
		"#######",
	}, -1)
	r := NewRound(g, RoundConfig{
		Ghosts:       n,
		ChomperSpawn: Point{X: 1, Y: 1},
		GhostSpawn:   Point{X: 2, Y: 3},
	})
	for i := range r.ghosts {
		r.ghosts[i].X, r.ghosts[i].Y = 1, 1
	}
	return r
}

func TestRoundEatsVulnerableGhosts(t *testing.T) {
	r := collisionRound(t, 2)
	r.vulnTicks = 500
	r.ghosts[0].Vulnerable = true
	r.ghosts[1].Vulnerable = true

	r.Tick()
	if want := ghostScores[0] + ghostScores[1]; r.Score() != want {
		t.Fatalf("score = %d, want %d (200 then 400 within one tick)", r.Score(), want)
	}
	if r.EatenCount() != 2 {
		t.Fatalf("eaten count = %d, want 2", r.EatenCount())
	}
	for i := 0; i < 2; i++ {
		gh := r.GhostAt(i)
		if gh.X != 2 || gh.Y != 3 {
			t.Errorf("ghost %d at (%d,%d), want respawned at (2,3)", i, gh.X, gh.Y)
		}
		if !gh.Vulnerable {
			t.Errorf("ghost %d lost vulnerability on respawn", i)
		}
	}
	if !r.Alive() {
		t.Error("eating ghosts must not kill the chomper")
	}
}

func TestRoundGhostRewardSaturates(t *testing.T) {
	r := collisionRound(t, 1)
	r.vulnTicks = 500
	r.ghosts[0].Vulnerable = true
	r.eatenCount = 7

	r.Tick()
	if want := ghostScores[len(ghostScores)-1]; r.Score() != want {
		t.Fatalf("score = %d, want the saturated reward %d", r.Score(), want)
	}
	if r.EatenCount() != 8 {
		t.Errorf("eaten count = %d, want 8", r.EatenCount())
	}
}

func TestRoundLethalCollisionEndsRound(t *testing.T) {
	r := collisionRound(t, 1)

	r.Tick()
	if r.Alive() {
		t.Fatal("chomper survived a non-vulnerable ghost contact")
	}
	if !r.Ended() || r.Won() {
		t.Errorf("Ended=%v Won=%v, want true and false", r.Ended(), r.Won())
	}
	if r.Score() != 0 {
		t.Errorf("score = %d after a lethal contact, want 0", r.Score())
	}
	if gh := r.GhostAt(0); gh.X != 1 || gh.Y != 1 {
		t.Errorf("lethal ghost moved to (%d,%d), want to stay on (1,1)", gh.X, gh.Y)
	}

	// The round is frozen: ticks and intents change nothing.
	frame := r.Frame()
	r.ApplyIntent(0, 1, 0)
	tick(r, 3)
	if r.Frame() != frame {
		t.Errorf("frame advanced to %d after death, want %d", r.Frame(), frame)
	}
	if c := r.Chomper(); c.X != 1 || c.Y != 1 || c.DX != 0 || c.DY != 0 {
		t.Errorf("chomper state changed after death: (%d,%d) heading (%d,%d)", c.X, c.Y, c.DX, c.DY)
	}
}

func TestRoundLethalContactStopsCollisionPass(t *testing.T) {
	r := collisionRound(t, 2)
	r.vulnTicks = 500
	r.ghosts[1].Vulnerable = true // slot order puts the lethal ghost first

	r.Tick()
	if r.Alive() {
		t.Fatal("chomper survived the lethal first contact")
	}
	if r.Score() != 0 || r.EatenCount() != 0 {
		t.Errorf("score=%d eaten=%d, want 0 and 0: death halts the pass", r.Score(), r.EatenCount())
	}
	if gh := r.GhostAt(1); gh.X != 1 || gh.Y != 1 {
		t.Errorf("vulnerable ghost moved to (%d,%d), want untouched on (1,1)", gh.X, gh.Y)
	}
}

func TestRoundSwapPassThroughIsSafe(t *testing.T) {
	g := mustGrid(t, []string{
		"##############",
		"#           .#",
		"##############",
	}, -1)
	r := NewRound(g, RoundConfig{
		Ghosts:       1,
		Controllers:  []ControllerKind{ControllerExternal, ControllerExternal},
		ChomperSpawn: Point{X: 1, Y: 1},
		GhostSpawn:   Point{X: 11, Y: 1},
	})

	// Drive the actors toward each other. With periods 5 and 6 they are
	// adjacent after tick 29 and both step on tick 30, exchanging cells.
	r.ApplyIntent(0, 1, 0)
	r.ApplyIntent(1, -1, 0)
	tick(r, 29)
	c, gh := r.Chomper(), r.GhostAt(0)
	if c.X != 6 || gh.X != 7 {
		t.Fatalf("chomper X=%d ghost X=%d after 29 ticks, want 6 and 7", c.X, gh.X)
	}

	r.Tick()
	c, gh = r.Chomper(), r.GhostAt(0)
	if c.X != 7 || gh.X != 6 {
		t.Fatalf("chomper X=%d ghost X=%d after the swap tick, want 7 and 6", c.X, gh.X)
	}
	if !r.Alive() {
		t.Error("cell swap counted as a collision; contact is cell sharing only")
	}
}

func TestRoundApplyIntentValidation(t *testing.T) {
	r := pickupRound(t)

	r.ApplyIntent(7, 1, 0)
	r.ApplyIntent(-1, 1, 0)
	r.ApplyIntent(1, -1, 0) // AI slot
	r.ApplyIntent(0, 1, 1)  // diagonal
	r.ApplyIntent(0, 2, 0)  // not a unit vector
	r.ApplyIntent(0, 0, 0)
	for slot, it := range r.pending {
		if it.ok {
			t.Fatalf("slot %d buffered an invalid intent %+v", slot, it)
		}
	}

	// Later intents for the same slot overwrite earlier ones.
	r.ApplyIntent(0, 0, -1)
	r.ApplyIntent(0, -1, 0)
	if it := r.pending[0]; !it.ok || it.dx != -1 || it.dy != 0 {
		t.Fatalf("buffered intent = %+v, want dx=-1 dy=0", it)
	}

	r.Tick()
	if c := r.Chomper(); c.DX != -1 || c.DY != 0 {
		t.Errorf("heading = (%d,%d) after tick, want (-1,0)", c.DX, c.DY)
	}
	if r.pending[0].ok {
		t.Error("applied intent should leave the buffer empty")
	}
}

func TestRoundConfigDefaults(t *testing.T) {
	g := mustGrid(t, pickupRows, -1)
	r := NewRound(g, RoundConfig{})

	if r.GhostCount() != 1 {
		t.Fatalf("ghost count = %d, want the clamp to 1", r.GhostCount())
	}
	if r.Controller(0) != ControllerExternal || r.Controller(1) != ControllerAI {
		t.Errorf("controllers = %v/%v, want external chomper and AI ghost", r.Controller(0), r.Controller(1))
	}
	if r.Controller(99) != ControllerAI {
		t.Errorf("out-of-range slot reported %v, want the AI default", r.Controller(99))
	}
	if c := r.Chomper(); c.X != classicChomperSpawn.X || c.Y != classicChomperSpawn.Y {
		t.Errorf("chomper spawned at (%d,%d), want the classic tile", c.X, c.Y)
	}
	gh := r.GhostAt(0)
	if gh.X != classicGhostSpawn.X || gh.Y != classicGhostSpawn.Y {
		t.Errorf("ghost spawned at (%d,%d), want the classic tile", gh.X, gh.Y)
	}
	if gh.DX != 0 || gh.DY != -1 {
		t.Errorf("ghost spawn heading = (%d,%d), want (0,-1)", gh.DX, gh.DY)
	}
	if r.rng.s != lfsrFallbackSeed {
		t.Errorf("seed register = %#x, want the fallback %#x", r.rng.s, lfsrFallbackSeed)
	}
	if r.PickupsLeft() != g.CountPickups() {
		t.Errorf("pickups left = %d, want %d", r.PickupsLeft(), g.CountPickups())
	}
	if r.Frame() != 0 || !r.Alive() || r.VulnTicks() != 0 || r.EatenCount() != 0 {
		t.Error("fresh round carries non-zero progress state")
	}

	// Explicit controller kinds override the defaults slot by slot.
	r = NewRound(g, RoundConfig{
		Ghosts:      1,
		Controllers: []ControllerKind{ControllerAI, ControllerExternal},
	})
	if r.Controller(0) != ControllerAI || r.Controller(1) != ControllerExternal {
		t.Errorf("controllers = %v/%v, want AI chomper and external ghost", r.Controller(0), r.Controller(1))
	}
}

func TestRoundAIChomperSelfDrives(t *testing.T) {
	g := mustGrid(t, []string{
		"#####",
		"#  .#",
		"#####",
		"## ##",
		"#####",
	}, -1)
	r := NewRound(g, RoundConfig{
		Ghosts:       1,
		Controllers:  []ControllerKind{ControllerAI, ControllerAI},
		ChomperSpawn: Point{X: 1, Y: 1},
		GhostSpawn:   Point{X: 2, Y: 3},
	})

	// Intents at an AI slot are dropped, and the chomper still moves on
	// its own: the scheduled decision on tick 8 has one open candidate.
	r.ApplyIntent(0, -1, 0)
	if r.pending[0].ok {
		t.Fatal("AI slot buffered an external intent")
	}
	tick(r, 10)
	if c := r.Chomper(); c.X != 2 || c.Y != 1 {
		t.Errorf("AI chomper at (%d,%d) after 10 ticks, want (2,1)", c.X, c.Y)
	}
}

// chaseRows is a small but full-featured layout: pickups, a power pickup,
// a wrapping tunnel row and a teleporter pair.
var chaseRows = []string{
	"#########",
	"#...*...#",
	"#.#.#.#.#",
	"  .   .  ",
	"#.#.#.#.#",
	"#..1*1..#",
	"#########",
}

func scriptedIntent(t uint64) (int, int) {
	switch (t / 25) % 4 {
	case 0:
		return 1, 0
	case 1:
		return 0, 1
	case 2:
		return -1, 0
	default:
		return 0, -1
	}
}

func TestRoundDeterminism(t *testing.T) {
	cfg := RoundConfig{
		Seed:         0x1234,
		Ghosts:       2,
		ChomperSpawn: Point{X: 1, Y: 1},
		GhostSpawn:   Point{X: 7, Y: 5},
	}
	a := NewRound(mustGrid(t, chaseRows, 3), cfg)
	b := NewRound(mustGrid(t, chaseRows, 3), cfg)

	for i := uint64(0); i < 400; i++ {
		dx, dy := scriptedIntent(i)
		a.ApplyIntent(0, dx, dy)
		b.ApplyIntent(0, dx, dy)
		a.Tick()
		b.Tick()
		if !reflect.DeepEqual(a.Snapshot(), b.Snapshot()) {
			t.Fatalf("rounds diverged at tick %d:\n%+v\n%+v", i+1, a.Snapshot(), b.Snapshot())
		}
	}
	if a.Score() < scorePickup {
		t.Error("scripted run collected nothing; the scenario went stale")
	}
}

func TestRoundInvariants(t *testing.T) {
	r := NewRound(mustGrid(t, chaseRows, 3), RoundConfig{
		Seed:         0x7777,
		Ghosts:       2,
		ChomperSpawn: Point{X: 1, Y: 1},
		GhostSpawn:   Point{X: 7, Y: 5},
	})

	g := r.Grid()
	prevScore, prevLeft := r.Score(), r.PickupsLeft()
	ghostMoved := false
	for i := uint64(0); i < 600 && !r.Ended(); i++ {
		dx, dy := scriptedIntent(i)
		r.ApplyIntent(0, dx, dy)
		r.Tick()

		if c := r.Chomper(); g.IsWall(c.X, c.Y) {
			t.Fatalf("tick %d: chomper inside a wall at (%d,%d)", r.Frame(), c.X, c.Y)
		}
		for s := 0; s < r.GhostCount(); s++ {
			gh := r.GhostAt(s)
			if g.IsWall(gh.X, gh.Y) {
				t.Fatalf("tick %d: ghost %d inside a wall at (%d,%d)", r.Frame(), s, gh.X, gh.Y)
			}
			if gh.X != 7 || gh.Y != 5 {
				ghostMoved = true
			}
		}
		if r.Score() < prevScore {
			t.Fatalf("tick %d: score fell from %d to %d", r.Frame(), prevScore, r.Score())
		}
		if r.PickupsLeft() > prevLeft {
			t.Fatalf("tick %d: pickups grew from %d to %d", r.Frame(), prevLeft, r.PickupsLeft())
		}
		if r.VulnTicks() < 0 || r.VulnTicks() > vulnDuration {
			t.Fatalf("tick %d: window out of range: %d", r.Frame(), r.VulnTicks())
		}
		prevScore, prevLeft = r.Score(), r.PickupsLeft()
	}
	if !ghostMoved {
		t.Error("no ghost ever left its spawn across the whole run")
	}
}
