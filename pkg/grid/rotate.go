package grid

// Transpose returns a new grid with rows and columns swapped: the cell at
// (r, c) moves to (c, r).
func Transpose[T Cell[T]](g *Grid[T]) *Grid[T] {
	out := New(Coordinate{Row: g.shape.Col, Col: g.shape.Row}, g.empty)
	for r := 0; r < g.shape.Row; r++ {
		for c := 0; c < g.shape.Col; c++ {
			out.cells[out.index(Coord(c, r))] = g.cells[g.index(Coord(r, c))]
		}
	}
	return out
}

// RotateCW returns a new grid rotated 90 degrees clockwise: the transpose
// with its column order reversed. An R×C grid becomes C×R.
func RotateCW[T Cell[T]](g *Grid[T]) *Grid[T] {
	out := New(Coordinate{Row: g.shape.Col, Col: g.shape.Row}, g.empty)
	for r := 0; r < g.shape.Row; r++ {
		for c := 0; c < g.shape.Col; c++ {
			out.cells[out.index(Coord(c, g.shape.Row-1-r))] = g.cells[g.index(Coord(r, c))]
		}
	}
	return out
}

// RotateCCW returns a new grid rotated 90 degrees counterclockwise: the
// transpose with its row order reversed. RotateCCW exactly undoes
// [RotateCW].
func RotateCCW[T Cell[T]](g *Grid[T]) *Grid[T] {
	out := New(Coordinate{Row: g.shape.Col, Col: g.shape.Row}, g.empty)
	for r := 0; r < g.shape.Row; r++ {
		for c := 0; c < g.shape.Col; c++ {
			out.cells[out.index(Coord(g.shape.Col-1-c, r))] = g.cells[g.index(Coord(r, c))]
		}
	}
	return out
}
