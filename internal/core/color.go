package core

// Color represents a foreground color for a screen glyph.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightCyan
	ColorBrightWhite
	ColorGray
)

// Palette used by the snake renderer, matching the browser client.
const (
	ColorHead  = ColorBrightCyan // #7fffd4
	ColorBody  = ColorBrightWhite
	ColorFood  = ColorBrightRed // #ff4b2b
	ColorFrame = ColorGray
)
