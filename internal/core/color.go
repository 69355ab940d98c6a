package core

// Color represents a foreground color for a screen cell.
// Values are abstract; the platform maps them to ANSI codes at draw time.
type Color uint8

// Predefined colors. The chase renderer leans on BrightYellow (chomper),
// BrightRed/Orange/BrightMagenta/BrightCyan (ghosts), BrightBlue (walls)
// and White (pickups); menus and banners use the rest.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)
