package core

// Color represents a foreground color for a screen cell.
// The platform maps these to terminal styles.
type Color uint8

// Predefined colors for board elements.
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

// tileColors is the cycle used for tile values: 2, 4, 8, ...
var tileColors = []Color{
	ColorBrightYellow,
	ColorBrightGreen,
	ColorBrightCyan,
	ColorBrightBlue,
	ColorBrightMagenta,
	ColorBrightRed,
	ColorOrange,
	ColorBrightWhite,
}

// TileColor returns the display color for a tile value. Every power of two
// gets a stable hue; the cycle repeats for very large values.
func TileColor(value int) Color {
	if value <= 1 {
		return ColorGray
	}
	exp := 0
	for v := value; v > 1; v >>= 1 {
		exp++
	}
	return tileColors[(exp-1)%len(tileColors)]
}
