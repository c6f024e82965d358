package core

import "fmt"

// Color represents a foreground color for a screen cell or a drawn entity.
// Uses ANSI 256-color codes for terminal compatibility; RGB returns the
// matching 24-bit value for frontends that draw real pixels.
type Color uint8

// Predefined colors for game elements.
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
	ColorBrightYellow
	ColorPink
	ColorHotPink
	ColorGold
	ColorOrange
	ColorSlate
	ColorGray
)

var colorRGB = map[Color]uint32{
	ColorDefault:      0xFFFFFF,
	ColorRed:          0xC0392B,
	ColorGreen:        0x27AE60,
	ColorYellow:       0xF1C40F,
	ColorBlue:         0x2980B9,
	ColorMagenta:      0x8E44AD,
	ColorCyan:         0x4ECDC4,
	ColorWhite:        0xFFFFFF,
	ColorBrightRed:    0xE74C3C,
	ColorBrightYellow: 0xF4D03F,
	ColorPink:         0xFFB6C1,
	ColorHotPink:      0xFF69B4,
	ColorGold:         0xFFD700,
	ColorOrange:       0xFFA500,
	ColorSlate:        0x2C3E50,
	ColorGray:         0x7F8C8D,
}

// RGB returns the color as 8-bit red, green and blue components.
func (c Color) RGB() (r, g, b uint8) {
	v, ok := colorRGB[c]
	if !ok {
		v = colorRGB[ColorDefault]
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

// Hex returns the color in CSS #RRGGBB notation.
func (c Color) Hex() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// ParseHexColor maps a #RRGGBB string to the closest predefined color.
// Unknown values map to ColorDefault.
func ParseHexColor(hex string) Color {
	var v uint32
	if _, err := fmt.Sscanf(hex, "#%06X", &v); err != nil {
		return ColorDefault
	}
	best, bestDist := ColorDefault, -1
	for c, rgb := range colorRGB {
		dr := int(rgb>>16&0xFF) - int(v>>16&0xFF)
		dg := int(rgb>>8&0xFF) - int(v>>8&0xFF)
		db := int(rgb&0xFF) - int(v&0xFF)
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist || (d == bestDist && c < best) {
			best, bestDist = c, d
		}
	}
	return best
}
