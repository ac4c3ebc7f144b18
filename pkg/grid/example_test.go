package grid_test

import (
	"fmt"

	"github.com/stackfall/stackfall/pkg/grid"
)

func ExampleGrid_SetMaskOr() {
	// A small playfield and a 2x2 block merged into its bottom-left corner.
	board := grid.New(grid.Coord(4, 5), grid.Off)
	block := grid.New(grid.Coord(2, 2), grid.On)

	if err := board.SetMaskOr(block, grid.Coord(2, 0)); err != nil {
		fmt.Println("merge failed:", err)
		return
	}

	for _, row := range board.Rows() {
		for _, cell := range row {
			if cell == grid.On {
				fmt.Print("x")
			} else {
				fmt.Print(".")
			}
		}
		fmt.Println()
	}
	// Output:
	// .....
	// .....
	// xx...
	// xx...
}

func ExampleGrid_Slice() {
	board := grid.New(grid.Coord(3, 3), grid.Off)
	_ = board.SetValue(grid.On, grid.Coord(0, 0), grid.Coord(3, 1))

	// Corners may be given in either order; the rectangle is [low, high).
	sub, _ := board.Slice(grid.Coord(2, 2), grid.Coord(0, 0))
	fmt.Println("shape:", sub.Shape())
	fmt.Println("set cells:", sub.CountSet())
	// Output:
	// shape: (2, 2)
	// set cells: 2
}

func ExampleRotateCW() {
	piece, _ := grid.FromRows([][]grid.Bit{
		{grid.On, grid.Off, grid.Off},
		{grid.On, grid.On, grid.On},
	}, grid.Off)

	turned := grid.RotateCW(piece)
	fmt.Println("before:", piece.Shape(), "after:", turned.Shape())
	// Output:
	// before: (2, 3) after: (3, 2)
}
