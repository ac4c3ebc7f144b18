package grid

import "fmt"

// Coordinate is a (row, column) pair. It doubles as an absolute grid
// position and as an extent (height, width), matching how the two are mixed
// in placement arithmetic: position + extent = far corner.
//
// Coordinates are immutable values. Components are non-negative by contract;
// operations that could produce a negative component report failure instead
// of wrapping.
type Coordinate struct {
	Row int
	Col int
}

// Coord returns the coordinate at the given row and column.
func Coord(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// String returns the coordinate as "(row, col)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Add returns the component-wise sum of c and o.
func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{Row: c.Row + o.Row, Col: c.Col + o.Col}
}

// Offset returns c shifted by the given row and column deltas.
func (c Coordinate) Offset(rows, cols int) Coordinate {
	return Coordinate{Row: c.Row + rows, Col: c.Col + cols}
}

// Sub returns the component-wise difference c - o. The boolean is false when
// either component of the result would be negative; in that case the zero
// coordinate is returned.
func (c Coordinate) Sub(o Coordinate) (Coordinate, bool) {
	if o.Row > c.Row || o.Col > c.Col {
		return Coordinate{}, false
	}
	return Coordinate{Row: c.Row - o.Row, Col: c.Col - o.Col}, true
}

// Within reports whether c lies inside the box spanned by low and high,
// inclusive on both corners.
func (c Coordinate) Within(low, high Coordinate) bool {
	return c.Row >= low.Row && c.Col >= low.Col &&
		c.Row <= high.Row && c.Col <= high.Col
}

// Area returns Row*Col, the number of cells in a grid of this extent.
func (c Coordinate) Area() int {
	return c.Row * c.Col
}

// FromRowMajor converts a flat row-major index into a coordinate within a
// grid of the given dims. The boolean is false when the index does not fall
// inside the grid.
func FromRowMajor(index int, dims Coordinate) (Coordinate, bool) {
	if index < 0 || dims.Col <= 0 || index >= dims.Area() {
		return Coordinate{}, false
	}
	return Coordinate{Row: index / dims.Col, Col: index % dims.Col}, true
}

// FromColumnMajor converts a flat column-major index into a coordinate
// within a grid of the given dims. The boolean is false when the index does
// not fall inside the grid.
func FromColumnMajor(index int, dims Coordinate) (Coordinate, bool) {
	if index < 0 || dims.Row <= 0 || index >= dims.Area() {
		return Coordinate{}, false
	}
	return Coordinate{Row: index % dims.Row, Col: index / dims.Row}, true
}

// min/max corner helpers for order-independent rectangles.

func minCorner(a, b Coordinate) Coordinate {
	return Coordinate{Row: min(a.Row, b.Row), Col: min(a.Col, b.Col)}
}

func maxCorner(a, b Coordinate) Coordinate {
	return Coordinate{Row: max(a.Row, b.Row), Col: max(a.Col, b.Col)}
}
