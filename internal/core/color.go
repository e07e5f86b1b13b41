package core

// Color represents a foreground color for a screen cell.
// The platform layer maps these to ANSI 256-color codes.
type Color uint8

// Colors used by the game renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorGray
	ColorBrightWhite
)

// RowColors cycles through block row colors from top to bottom.
var RowColors = []Color{ColorCyan, ColorYellow, ColorMagenta, ColorGreen, ColorBlue}
