package tetromino

import "fmt"

// Color is an RGB display color. The engine carries it as an opaque tag for
// the driver's renderer; nothing in the placement rules reads it.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// RGB returns the color as a [r, g, b] triple.
func (c Color) RGB() [3]uint8 {
	return [3]uint8{c.R, c.G, c.B}
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// The named piece colors.
var (
	Cyan   = Color{R: 0, G: 255, B: 255}
	Blue   = Color{R: 0, G: 0, B: 255}
	Orange = Color{R: 255, G: 127, B: 0}
	Yellow = Color{R: 255, G: 255, B: 0}
	Green  = Color{R: 0, G: 255, B: 0}
	Purple = Color{R: 255, G: 0, B: 255}
	Red    = Color{R: 255, G: 0, B: 0}
)

// colorNames maps the seven color names to their RGB values.
var colorNames = map[string]Color{
	"cyan":   Cyan,
	"blue":   Blue,
	"orange": Orange,
	"yellow": Yellow,
	"green":  Green,
	"purple": Purple,
	"red":    Red,
}

// ColorByName looks up one of the seven named piece colors. The boolean is
// false for unknown names.
func ColorByName(name string) (Color, bool) {
	c, ok := colorNames[name]
	return c, ok
}

// Name returns the color's name, or "" when the color is not one of the
// seven named piece colors.
func (c Color) Name() string {
	for name, known := range colorNames {
		if known == c {
			return name
		}
	}
	return ""
}
