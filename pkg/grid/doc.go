// Package grid provides the rectangular cell grids that back the stackfall
// playfield and piece masks.
//
// # Overview
//
// A [Grid] is a fixed-shape rectangle of cells addressed by row and column.
// Grids are generic over their cell type, which must satisfy [Cell] — the
// small capability interface for bitwise composition. [Bit] is the default
// instantiation and models a plain occupied/empty flag.
//
// Every grid carries a "negative" value: the cell value that means empty for
// that grid. The negative value is fixed at construction and board-wide; it
// is what [Grid.AnySet] and [Grid.CountSet] compare against.
//
// # Writing regions
//
// Grids are mutated only through masked region writes. [Grid.SetMask]
// overwrites a rectangle with another grid's cells; [Grid.SetMaskAnd],
// [Grid.SetMaskOr] and [Grid.SetMaskXor] combine the mask bitwise with the
// cells already present. All masked writes validate the full destination
// rectangle before touching any cell, so a rejected write leaves the grid
// unchanged:
//
//	board := grid.New(grid.Coord(20, 10), grid.Off)
//	mask := grid.New(grid.Coord(2, 2), grid.On)
//	if err := board.SetMaskOr(mask, grid.Coord(19, 4)); err != nil {
//	    // *OutOfRangeError: destination extends past the board
//	}
//
// # Reading regions
//
// [Grid.Slice] extracts a rectangular sub-grid between two corners, given in
// either order. The rectangle is inclusive of the low corner and exclusive
// of the high corner. Slicing never aliases the source grid.
//
// # Rotation
//
// [Transpose], [RotateCW] and [RotateCCW] are pure functions producing new
// grids. Rotation is exact on the discrete cells: four clockwise rotations
// return the original grid, and a clockwise rotation undoes a
// counterclockwise one.
package grid
