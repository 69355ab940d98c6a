// Package match defines how a round is played: the mode (who is human, who
// is AI), the mapping from local seats to engine actor slots, and the record
// written to storage when a round ends. It is the bridge between menu/CLI
// choices and the engine's controller configuration.
package match

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-chomper/internal/chase"
)

// Mode selects who drives which actor. All modes run in one process on one
// keyboard; the engine itself only sees controller kinds per slot.
type Mode int

const (
	// ModeSolo: the player drives the chomper, every ghost is AI.
	ModeSolo Mode = iota
	// ModeVersus: seat one drives the chomper, seat two the first ghost.
	ModeVersus
	// ModeGhost: the player drives the first ghost against an AI chomper.
	ModeGhost
)

// Modes returns all modes in menu order.
func Modes() []Mode {
	return []Mode{ModeSolo, ModeVersus, ModeGhost}
}

func (m Mode) String() string {
	switch m {
	case ModeSolo:
		return "solo"
	case ModeVersus:
		return "versus"
	case ModeGhost:
		return "ghost"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Title returns the human-readable menu label.
func (m Mode) Title() string {
	switch m {
	case ModeSolo:
		return "Solo"
	case ModeVersus:
		return "Versus"
	case ModeGhost:
		return "Ghost"
	default:
		return m.String()
	}
}

// ParseMode resolves a mode name from a flag or menu value.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "solo":
		return ModeSolo, nil
	case "versus", "vs":
		return ModeVersus, nil
	case "ghost":
		return ModeGhost, nil
	}
	return ModeSolo, fmt.Errorf("unknown mode %q (valid: solo, versus, ghost)", s)
}

// Controllers returns the per-slot controller kinds for a round with the
// given ghost count: slot 0 is the chomper, slots 1..ghosts the ghosts.
// The count is clamped to at least one ghost, mirroring the engine.
func (m Mode) Controllers(ghosts int) []chase.ControllerKind {
	if ghosts < 1 {
		ghosts = 1
	}
	kinds := make([]chase.ControllerKind, 1+ghosts)
	for i := range kinds {
		kinds[i] = chase.ControllerAI
	}
	switch m {
	case ModeSolo:
		kinds[0] = chase.ControllerExternal
	case ModeVersus:
		kinds[0] = chase.ControllerExternal
		kinds[1] = chase.ControllerExternal
	case ModeGhost:
		kinds[1] = chase.ControllerExternal
	}
	return kinds
}

// Seat identifies a local player seat on the shared keyboard.
type Seat int

const (
	// SeatPrimary is the arrow-key seat.
	SeatPrimary Seat = iota
	// SeatAlt is the WASD seat, used in versus.
	SeatAlt
)

// Slot returns the engine actor slot a seat drives in this mode, or -1 when
// the seat is idle. Outside versus both seats drive the same actor, so one
// player can use either hand position.
func (m Mode) Slot(seat Seat) int {
	switch m {
	case ModeSolo:
		return 0
	case ModeVersus:
		if seat == SeatAlt {
			return 1
		}
		return 0
	case ModeGhost:
		return 1
	}
	return -1
}

// Outcome is how a round ended.
type Outcome int

const (
	// OutcomeCleared: every pickup collected.
	OutcomeCleared Outcome = iota
	// OutcomeCaught: a ghost caught the chomper.
	OutcomeCaught
	// OutcomeQuit: the player left mid-round.
	OutcomeQuit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCleared:
		return "cleared"
	case OutcomeCaught:
		return "caught"
	case OutcomeQuit:
		return "quit"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Record is one finished round, as persisted to the scoreboard. Storage
// stamps the play time on insert.
type Record struct {
	SessionID string // one session groups the rounds of a program run
	Player    string
	GameID    string
	BoardID   string
	Mode      Mode
	Outcome   Outcome
	Score     int
	Ticks     uint64
}
