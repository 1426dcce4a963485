package core

// Color is a foreground color for a screen cell. The renderer turns it into
// an ANSI 256-color code with Code.
type Color uint8

// The first block follows the 16 standard terminal colors; the rest are
// picked from the 256-color cube for the sky backdrops and fire.
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
	ColorOrange // Enemy fire, dusk sky
	ColorGray   // Clouds, hints
	ColorSky    // Storm rain
	ColorSmoke  // Night stars

	numColors
)

var ansiCodes = [numColors]string{
	ColorRed:           "1",
	ColorGreen:         "2",
	ColorYellow:        "3",
	ColorBlue:          "4",
	ColorMagenta:       "5",
	ColorCyan:          "6",
	ColorWhite:         "7",
	ColorBrightRed:     "9",
	ColorBrightGreen:   "10",
	ColorBrightYellow:  "11",
	ColorBrightBlue:    "12",
	ColorBrightMagenta: "13",
	ColorBrightCyan:    "14",
	ColorBrightWhite:   "15",
	ColorOrange:        "208",
	ColorGray:          "245",
	ColorSky:           "74",
	ColorSmoke:         "252",
}

// Code returns the ANSI 256-color code, or "" for the terminal default.
func (c Color) Code() string {
	if c >= numColors {
		return ""
	}
	return ansiCodes[c]
}

// Colors lists every non-default color.
func Colors() []Color {
	cs := make([]Color, 0, numColors-1)
	for c := ColorDefault + 1; c < numColors; c++ {
		cs = append(cs, c)
	}
	return cs
}
