package core

// Color is a foreground color for a screen cell. The host maps each
// value to a terminal color.
type Color uint8

// Palette for simulation elements.
const (
	ColorDefault      Color = iota
	ColorYellow             // hints
	ColorCyan               // predicted orbit
	ColorWhite              // regular bodies
	ColorBrightYellow       // selection markers
	ColorBrightWhite        // large bodies
	ColorOrange             // sun
	ColorGray               // tiny bodies
)
