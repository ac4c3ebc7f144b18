package tetromino

import "fmt"

// Shape identifies one of the seven canonical piece geometries. The set is
// closed: shapes are data (a base mask and a color), not behavior.
type Shape int

// The seven shapes.
const (
	I Shape = iota
	J
	L
	O
	S
	T
	Z
)

// Shapes returns all seven shapes in canonical order.
func Shapes() []Shape {
	return []Shape{I, J, L, O, S, T, Z}
}

// String returns the shape's letter.
func (s Shape) String() string {
	if s < I || s > Z {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return string("IJLOSTZ"[s])
}

// ParseShape converts a one-letter shape name (case-insensitive) into a
// Shape.
func ParseShape(name string) (Shape, error) {
	switch name {
	case "I", "i":
		return I, nil
	case "J", "j":
		return J, nil
	case "L", "l":
		return L, nil
	case "O", "o":
		return O, nil
	case "S", "s":
		return S, nil
	case "T", "t":
		return T, nil
	case "Z", "z":
		return Z, nil
	}
	return 0, fmt.Errorf("unknown shape %q (want one of I, J, L, O, S, T, Z)", name)
}

// shapeDef holds a shape's compile-time data: the base mask as string rows
// ('x' marks a set cell) and the display color. Base masks are trimmed to
// the occupied bounding box.
type shapeDef struct {
	rows  []string
	color Color
}

// shapeTable maps each shape to its canonical base orientation and color.
var shapeTable = map[Shape]shapeDef{
	I: {
		rows:  []string{"xxxx"},
		color: Cyan,
	},
	J: {
		rows: []string{
			"x..",
			"xxx",
		},
		color: Blue,
	},
	L: {
		rows: []string{
			"..x",
			"xxx",
		},
		color: Orange,
	},
	O: {
		rows: []string{
			"xx",
			"xx",
		},
		color: Yellow,
	},
	S: {
		rows: []string{
			".xx",
			"xx.",
		},
		color: Green,
	},
	T: {
		rows: []string{
			".x.",
			"xxx",
		},
		color: Purple,
	},
	Z: {
		rows: []string{
			"xx.",
			".xx",
		},
		color: Red,
	},
}

// Color returns the shape's fixed display color.
func (s Shape) Color() Color {
	return shapeTable[s].color
}
