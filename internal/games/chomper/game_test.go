package chomper

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-chomper/internal/chase"
	"github.com/vovakirdan/tui-chomper/internal/core"
	"github.com/vovakirdan/tui-chomper/internal/match"
)

// resetKnobs restores the package-level selection knobs after a test.
func resetKnobs() {
	configPath = ""
	difficultyPreset = ""
	boardID = ""
	boardDir = ""
	gameMode = match.ModeSolo
}

func writeBoard(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

// stripBoard keeps the chomper lane (row 3) and the ghost lane (row 1)
// apart so seat-mapping tests never end in a collision.
const stripBoard = `id: strip
title: Strip
spawn:
  chomper: {x: 1, y: 3}
  ghosts: {x: 5, y: 1}
rows:
  - "#######"
  - "#.....#"
  - "#.###.#"
  - "#     #"
  - "#######"
`

// oneshotBoard has a single pickup one step to the right of the spawn, so
// a round is winnable on the first move.
const oneshotBoard = `id: oneshot
title: One Shot
spawn:
  chomper: {x: 1, y: 1}
  ghosts: {x: 3, y: 1}
rows:
  - "#####"
  - "# . #"
  - "#####"
`

// newBoardGame readies a game on a custom board with the given mode and
// difficulty, cleaning up all package knobs when the test finishes.
func newBoardGame(t *testing.T, board, id, mode, preset string) *Game {
	t.Helper()
	t.Cleanup(resetKnobs)

	dir := t.TempDir()
	writeBoard(t, dir, id+".yaml", board)
	SetBoardDir(dir)
	SetBoardID(id)
	SetMode(mode)
	SetDifficultyPreset(preset)

	g := New()
	g.Reset(core.RuntimeConfig{Seed: 12345, ScreenW: 80, ScreenH: 24, TickRate: 60})
	return g
}

// step advances the game n ticks with the given held actions.
func step(g *Game, n int, actions ...core.Action) {
	input := core.NewInputFrame()
	for _, a := range actions {
		input.Set(a)
	}
	for i := 0; i < n; i++ {
		g.Step(input)
	}
}

func TestGameIDAndTitle(t *testing.T) {
	g := New()
	if g.ID() != "chomper" {
		t.Errorf("ID = %q, want chomper", g.ID())
	}
	if g.Title() != "Chomper" {
		t.Errorf("Title = %q, want Chomper", g.Title())
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed fed identical inputs stay identical.
	t.Cleanup(resetKnobs)
	cfg := core.RuntimeConfig{
		Seed:    12345,
		ScreenW: 80,
		ScreenH: 40, // the classic board is 31 rows plus the HUD
	}

	g1 := New()
	g1.Reset(cfg)
	g2 := New()
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		input.Clear()
		switch i {
		case 0:
			input.Set(core.ActionLeft)
		case 60:
			input.Set(core.ActionUp)
		case 150:
			input.Set(core.ActionRight)
		}
		g1.Step(input)
		g2.Step(input)

		if i%50 == 0 && !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
			t.Fatalf("snapshots diverged at tick %d", i+1)
		}
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Error("snapshots diverged after 300 ticks")
	}
}

func TestSoloControllers(t *testing.T) {
	g := newBoardGame(t, stripBoard, "strip", "solo", "normal")

	if got := g.round.Controller(0); got != chase.ControllerExternal {
		t.Errorf("chomper controller = %v, want external", got)
	}
	for i := 1; i <= g.round.GhostCount(); i++ {
		if got := g.round.Controller(i); got != chase.ControllerAI {
			t.Errorf("ghost slot %d controller = %v, want AI", i, got)
		}
	}
}

func TestVersusSeatsDriveDistinctSlots(t *testing.T) {
	g := newBoardGame(t, stripBoard, "strip", "versus", "easy")

	if g.round.GhostCount() != 1 {
		t.Fatalf("ghost count = %d, want 1 on easy", g.round.GhostCount())
	}

	// Arrows steer the chomper right along row 3, WASD steers the ghost
	// left along row 1.
	step(g, 20, core.ActionRight, core.ActionAltLeft)

	ch := g.round.Chomper()
	if ch.X != 5 || ch.Y != 3 {
		t.Errorf("chomper at (%d,%d), want (5,3)", ch.X, ch.Y)
	}
	gh := g.round.GhostAt(0)
	if gh.X != 2 || gh.Y != 1 {
		t.Errorf("ghost at (%d,%d), want (2,1)", gh.X, gh.Y)
	}
	if !g.round.Alive() {
		t.Error("round ended in a collision-free layout")
	}
	if g.round.Score() != 0 {
		t.Errorf("score = %d, want 0 (ghosts do not collect pickups)", g.round.Score())
	}
}

func TestGhostModeHumanDrivesGhost(t *testing.T) {
	g := newBoardGame(t, stripBoard, "strip", "ghost", "easy")

	if got := g.round.Controller(0); got != chase.ControllerAI {
		t.Fatalf("chomper controller = %v, want AI in ghost mode", got)
	}
	if got := g.round.Controller(1); got != chase.ControllerExternal {
		t.Fatalf("ghost controller = %v, want external in ghost mode", got)
	}

	step(g, 12, core.ActionLeft)

	gh := g.round.GhostAt(0)
	if gh.X != 3 || gh.Y != 1 {
		t.Errorf("ghost at (%d,%d), want (3,1)", gh.X, gh.Y)
	}
	// The AI chomper picks a heading on its first think and leaves the
	// spawn by its second move boundary.
	ch := g.round.Chomper()
	if ch.X == 1 && ch.Y == 3 {
		t.Error("AI chomper never left its spawn")
	}
}

func TestSoloAltSeatAlsoDrivesChomper(t *testing.T) {
	g := newBoardGame(t, oneshotBoard, "oneshot", "solo", "normal")

	step(g, 5, core.ActionAltRight)

	st := g.State()
	if !st.Won || !st.GameOver {
		t.Fatalf("state = %+v, want a cleared board via the WASD seat", st)
	}
	if st.Score != 10 {
		t.Errorf("score = %d, want 10", st.Score)
	}
}

func TestRestartReplaysSameRound(t *testing.T) {
	g := newBoardGame(t, oneshotBoard, "oneshot", "solo", "normal")

	step(g, 5, core.ActionRight)
	if !g.State().Won {
		t.Fatal("first run did not clear the board")
	}
	firstScore := g.State().Score

	// Finished rounds ignore everything except restart.
	step(g, 10, core.ActionRight)
	if g.round.Frame() != 5 {
		t.Fatalf("frame advanced to %d after the round ended", g.round.Frame())
	}

	step(g, 1, core.ActionRestart)
	st := g.State()
	if st.GameOver || st.Score != 0 {
		t.Fatalf("state after restart = %+v, want a fresh round", st)
	}

	// Same seed, same inputs, same outcome.
	step(g, 5, core.ActionRight)
	if !g.State().Won || g.State().Score != firstScore {
		t.Errorf("replay state = %+v, want a repeat of score %d", g.State(), firstScore)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newBoardGame(t, stripBoard, "strip", "solo", "normal")

	step(g, 3)
	if g.round.Frame() != 3 {
		t.Fatalf("frame = %d, want 3", g.round.Frame())
	}

	step(g, 1, core.ActionPause)
	if !g.State().Paused {
		t.Fatal("pause did not engage")
	}
	step(g, 4)
	if g.round.Frame() != 3 {
		t.Errorf("frame = %d while paused, want 3", g.round.Frame())
	}

	step(g, 1, core.ActionPause)
	if g.State().Paused {
		t.Fatal("pause did not release")
	}
	if g.round.Frame() != 4 {
		t.Errorf("frame = %d after unpause, want 4", g.round.Frame())
	}
}

func TestDifficultyPresetGhostCount(t *testing.T) {
	g := newBoardGame(t, stripBoard, "strip", "solo", "hard")
	if g.round.GhostCount() != 4 {
		t.Errorf("ghost count = %d, want 4 on hard", g.round.GhostCount())
	}
}

func TestUnknownBoardFallsBackToClassic(t *testing.T) {
	t.Cleanup(resetKnobs)
	SetBoardID("no-such-board")

	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 40})

	if g.board.ID != "classic" {
		t.Errorf("board = %q, want classic fallback", g.board.ID)
	}
}

func TestUnknownModeFallsBackToSolo(t *testing.T) {
	t.Cleanup(resetKnobs)
	SetMode("co-op")
	if gameMode != match.ModeSolo {
		t.Errorf("mode = %v, want solo fallback", gameMode)
	}
	SetMode("versus")
	if gameMode != match.ModeVersus {
		t.Errorf("mode = %v, want versus", gameMode)
	}
}

func TestWindowTooSmall(t *testing.T) {
	t.Cleanup(resetKnobs)

	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 40, ScreenH: 10})

	if !g.screenTooSmall {
		t.Fatal("31-row board on a 10-row screen should be too small")
	}

	step(g, 5, core.ActionRight)
	if g.round.Frame() != 0 {
		t.Errorf("frame = %d, want 0 while the window is too small", g.round.Frame())
	}

	screen := core.NewScreen(40, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("missing resize prompt")
	}
}

func TestRenderShowsBoardAndActors(t *testing.T) {
	g := newBoardGame(t, stripBoard, "strip", "solo", "easy")

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	content := screen.String()

	if !strings.Contains(content, "Chomper") {
		t.Error("HUD missing the game title")
	}
	if !strings.Contains(content, "#") {
		t.Error("no walls rendered")
	}
	if !strings.Contains(content, "C") {
		t.Error("no chomper rendered")
	}
	if !strings.Contains(content, ".") {
		t.Error("no pickups rendered")
	}
}
