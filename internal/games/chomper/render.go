package chomper

import (
	"fmt"

	"github.com/vovakirdan/tui-chomper/internal/core"
)

// Animation cadences in ticks. The round only counts frames; all flashing
// and chewing lives here in the renderer.
const (
	hudHeight = 2

	mouthPeriod       = 8   // chomper open/closed alternation
	wavePeriod        = 10  // ghost skirt alternation
	pickupFlashPeriod = 15  // power pickup blink
	vulnFlashStart    = 120 // remaining window at which vulnerable ghosts flash
)

// Ghost colors cycle by slot, vulnerable ghosts override with blue.
var ghostPalette = []core.Color{
	core.ColorBrightRed,
	core.ColorOrange,
	core.ColorBrightMagenta,
	core.ColorBrightCyan,
}

// Render draws the current state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH))
		return
	}

	g.renderHUD(dst)

	if g.round == nil {
		return
	}

	offX := (dst.Width() - g.grid.Width()) / 2
	offY := hudHeight

	g.renderBoard(dst, offX, offY)
	g.renderGhosts(dst, offX, offY)
	g.renderChomper(dst, offX, offY)

	switch {
	case g.round.Won():
		g.renderOverlay(dst, "Board cleared!", fmt.Sprintf("Final Score: %d", g.round.Score()))
	case !g.round.Alive():
		g.renderOverlay(dst, "Caught!", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := " Chomper"
	if g.round != nil {
		hud = fmt.Sprintf(" Chomper — Score: %d  Pickups: %d  Board: %s  Mode: %s",
			g.round.Score(), g.round.PickupsLeft(), g.board.Title, g.mode.Title())
	}

	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws walls, remaining pickups and teleporter pads.
func (g *Game) renderBoard(dst *core.Screen, offX, offY int) {
	frame := g.round.Frame()
	blinkOn := (frame/pickupFlashPeriod)%2 == 0

	for y := 0; y < g.grid.Height(); y++ {
		for x := 0; x < g.grid.Width(); x++ {
			sx, sy := offX+x, offY+y
			switch {
			case g.grid.IsWall(x, y):
				dst.SetCell(sx, sy, '#', core.ColorBrightBlue)
			case g.grid.IsPickup(x, y) && !g.round.CollectedAt(x, y):
				if g.grid.IsPowerPickup(x, y) {
					if blinkOn {
						dst.SetCell(sx, sy, '*', core.ColorBrightYellow)
					}
				} else {
					dst.SetCell(sx, sy, '.', core.ColorWhite)
				}
			default:
				if _, ok := g.grid.TeleporterID(x, y); ok {
					dst.SetCell(sx, sy, rune(g.grid.At(x, y)), core.ColorBrightMagenta)
				}
			}
		}
	}
}

// renderChomper draws the player actor with a chewing animation while it
// moves; a stopped chomper keeps its mouth open.
func (g *Game) renderChomper(dst *core.Screen, offX, offY int) {
	ch := g.round.Chomper()

	glyph := 'C'
	if (ch.DX != 0 || ch.DY != 0) && (g.round.Frame()/mouthPeriod)%2 == 1 {
		glyph = 'c'
	}
	dst.SetCell(offX+ch.X, offY+ch.Y, glyph, core.ColorBrightYellow)
}

// renderGhosts draws every ghost with a waving skirt. Vulnerable ghosts
// turn blue and flash white when the window is about to close.
func (g *Game) renderGhosts(dst *core.Screen, offX, offY int) {
	frame := g.round.Frame()

	glyph := 'M'
	if (frame/wavePeriod)%2 == 1 {
		glyph = 'W'
	}

	for i := 0; i < g.round.GhostCount(); i++ {
		gh := g.round.GhostAt(i)

		color := ghostPalette[i%len(ghostPalette)]
		if gh.Vulnerable {
			color = core.ColorBrightBlue
			if g.round.VulnTicks() <= vulnFlashStart && (frame/pickupFlashPeriod)%2 == 1 {
				color = core.ColorBrightWhite
			}
		}
		dst.SetCell(offX+gh.X, offY+gh.Y, glyph, color)
	}
}

// renderOverlay draws a centered message box over the board.
func (g *Game) renderOverlay(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
