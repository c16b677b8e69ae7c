package core

// Color is the foreground color of a screen cell.
// Values map onto ANSI 256-color codes in the platform layer.
type Color uint8

// Palette used by the flappy renderer.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorBrightGreen
	ColorYellow
	ColorBrightYellow
	ColorOrange
	ColorRed
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorGray
)
