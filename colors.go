package writelog

import (
	"strings"

	"github.com/fatih/color"
)

// Color is a member of the fixed 16-color display palette. The palette
// follows the classic console scheme: eight dark colors plus their
// bright counterparts. ColorUnset leaves the display default in place.
type Color int

const (
	ColorUnset Color = iota
	ColorBlack
	ColorDarkBlue
	ColorDarkGreen
	ColorDarkCyan
	ColorDarkRed
	ColorDarkMagenta
	ColorDarkYellow
	ColorGray
	ColorDarkGray
	ColorBlue
	ColorGreen
	ColorCyan
	ColorRed
	ColorMagenta
	ColorYellow
	ColorWhite
)

var colorNames = []string{
	ColorUnset:       "Unset",
	ColorBlack:       "Black",
	ColorDarkBlue:    "DarkBlue",
	ColorDarkGreen:   "DarkGreen",
	ColorDarkCyan:    "DarkCyan",
	ColorDarkRed:     "DarkRed",
	ColorDarkMagenta: "DarkMagenta",
	ColorDarkYellow:  "DarkYellow",
	ColorGray:        "Gray",
	ColorDarkGray:    "DarkGray",
	ColorBlue:        "Blue",
	ColorGreen:       "Green",
	ColorCyan:        "Cyan",
	ColorRed:         "Red",
	ColorMagenta:     "Magenta",
	ColorYellow:      "Yellow",
	ColorWhite:       "White",
}

// Valid reports whether c is ColorUnset or a palette member.
func (c Color) Valid() bool {
	return c >= ColorUnset && c <= ColorWhite
}

// String returns the palette name, or "Unknown" for out-of-range values.
func (c Color) String() string {
	if !c.Valid() {
		return "Unknown"
	}
	return colorNames[c]
}

// ParseColor converts a palette name to its Color value. Matching is
// case-insensitive. Unknown names produce a *ConfigError.
func ParseColor(name string) (Color, error) {
	for i, n := range colorNames {
		if strings.EqualFold(name, n) {
			return Color(i), nil
		}
	}
	return 0, newConfigError("color", name, "not a member of the color palette")
}

// foregroundAttributes maps the palette to ANSI foreground attributes.
// Dark palette entries map to the normal-intensity codes, bright entries
// to the high-intensity codes.
var foregroundAttributes = map[Color]color.Attribute{
	ColorBlack:       color.FgBlack,
	ColorDarkBlue:    color.FgBlue,
	ColorDarkGreen:   color.FgGreen,
	ColorDarkCyan:    color.FgCyan,
	ColorDarkRed:     color.FgRed,
	ColorDarkMagenta: color.FgMagenta,
	ColorDarkYellow:  color.FgYellow,
	ColorGray:        color.FgWhite,
	ColorDarkGray:    color.FgHiBlack,
	ColorBlue:        color.FgHiBlue,
	ColorGreen:       color.FgHiGreen,
	ColorCyan:        color.FgHiCyan,
	ColorRed:         color.FgHiRed,
	ColorMagenta:     color.FgHiMagenta,
	ColorYellow:      color.FgHiYellow,
	ColorWhite:       color.FgHiWhite,
}

var backgroundAttributes = map[Color]color.Attribute{
	ColorBlack:       color.BgBlack,
	ColorDarkBlue:    color.BgBlue,
	ColorDarkGreen:   color.BgGreen,
	ColorDarkCyan:    color.BgCyan,
	ColorDarkRed:     color.BgRed,
	ColorDarkMagenta: color.BgMagenta,
	ColorDarkYellow:  color.BgYellow,
	ColorGray:        color.BgWhite,
	ColorDarkGray:    color.BgHiBlack,
	ColorBlue:        color.BgHiBlue,
	ColorGreen:       color.BgHiGreen,
	ColorCyan:        color.BgHiCyan,
	ColorRed:         color.BgHiRed,
	ColorMagenta:     color.BgHiMagenta,
	ColorYellow:      color.BgHiYellow,
	ColorWhite:       color.BgHiWhite,
}

func (c Color) foreground() (color.Attribute, bool) {
	a, ok := foregroundAttributes[c]
	return a, ok
}

func (c Color) background() (color.Attribute, bool) {
	a, ok := backgroundAttributes[c]
	return a, ok
}
