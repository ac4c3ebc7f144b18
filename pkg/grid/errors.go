package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrRaggedRows is returned by [FromRows] when the input rows do not all
	// have the same length. Grids are strictly rectangular.
	ErrRaggedRows = errors.New("rows must all have the same length")

	// ErrInvalidOp is returned by [Grid.Combine] when the operator is not
	// one of [And], [Or] or [Xor].
	ErrInvalidOp = errors.New("unknown combine operator")
)

// OutOfRangeError reports a slice or masked write whose rectangle extends
// outside the grid. Cell is the first destination cell that does not exist.
// The operation that produced it made no change to the grid.
type OutOfRangeError struct {
	Cell Coordinate
}

// Error implements the error interface.
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("cell %s is outside the grid", e.Cell)
}

// DimensionMismatchError reports a bitwise combine between grids of
// different shapes.
type DimensionMismatchError struct {
	Left  Coordinate
	Right Coordinate
}

// Error implements the error interface.
func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("grid shapes %s and %s differ", e.Left, e.Right)
}
