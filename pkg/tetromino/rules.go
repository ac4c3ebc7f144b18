package tetromino

import "github.com/stackfall/stackfall/pkg/grid"

// The placement rules are pure functions over (position, board, piece).
// Position is the board coordinate of the piece mask's top-left cell. The
// rules read the board and the piece and mutate neither; committing a piece
// is a separate, explicit write ([Place]).

// InBounds reports whether the piece's active mask, anchored at the given
// position, lies entirely on the board. It guards horizontal moves and
// rotations: a move whose target fails InBounds is rejected and the piece
// keeps its prior position and rotation.
func InBounds[V grid.Cell[V]](at grid.Coordinate, board *grid.Grid[V], t *Tetromino[V]) bool {
	return at.Within(grid.Coordinate{}, board.Shape()) &&
		at.Add(t.Extent()).Within(grid.Coordinate{}, board.Shape())
}

// ReachedBottom reports whether the piece's bottom edge, anchored at the
// given position, is flush with or past the board's last row. Flush counts
// as bottom: a piece resting exactly on the last row has no further legal
// step.
func ReachedBottom[V grid.Cell[V]](at grid.Coordinate, board *grid.Grid[V], t *Tetromino[V]) bool {
	return at.Add(t.Extent()).Row >= board.Shape().Row
}

// Hits reports whether any set cell of the piece's active mask, anchored at
// the given position, coincides with an occupied board cell. It slices the
// board over the piece's rectangle, ANDs the slice with the mask, and
// checks for any surviving cell.
//
// Positions whose rectangle does not fit on the board report false: no
// overlap is representable there. Callers gate moves with [InBounds] first,
// so such positions are already rejected.
func Hits[V grid.Cell[V]](at grid.Coordinate, board *grid.Grid[V], t *Tetromino[V]) bool {
	slice, err := board.Slice(at, at.Add(t.Extent()))
	if err != nil {
		return false
	}
	if err := slice.SetMaskAnd(t.Mask(), grid.Coordinate{}); err != nil {
		return false
	}
	return slice.AnySet()
}

// Place commits the piece into the board at the given position by merging
// its active mask with OR semantics. The write is atomic; an out-of-range
// position returns the grid's typed error and leaves the board unchanged.
//
// Drivers should only call Place after [InBounds] passes and [Hits] reports
// false at the position.
func Place[V grid.Cell[V]](board *grid.Grid[V], t *Tetromino[V], at grid.Coordinate) error {
	return board.SetMaskOr(t.Mask(), at)
}
