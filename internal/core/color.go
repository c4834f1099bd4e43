package core

// Color is the foreground color of a screen cell. Front-ends translate it to
// their own styles through ANSI.
type Color uint8

// Colors used by the arena renderer.
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

	// NumColors is the number of defined colors.
	NumColors = int(ColorGray) + 1
)

// The first 15 colors map onto the standard terminal palette, skipping black.
const (
	ansiOrange = 208
	ansiGray   = 245
)

// ANSI returns the 256-color palette index of c, or -1 for the terminal default.
// Unknown values fall back to the default.
func (c Color) ANSI() int {
	switch {
	case c == ColorDefault || int(c) >= NumColors:
		return -1
	case c <= ColorWhite:
		return int(c)
	case c <= ColorBrightWhite:
		return int(c) + 1
	case c == ColorOrange:
		return ansiOrange
	default:
		return ansiGray
	}
}
