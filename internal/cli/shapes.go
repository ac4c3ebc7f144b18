package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stackfall/stackfall/pkg/tetromino"
)

// newShapesCmd creates the shapes command, a debug inspector for the seven
// piece geometries.
func newShapesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shapes [shape...]",
		Short: "Show piece shapes and their rotation states (debug tool)",
		Long: `Show each piece's four precomputed rotation states as colored blocks,
together with its color and the extent of every state.

With no arguments, all seven shapes (I, J, L, O, S, T, Z) are shown.`,
		Example: `  # All seven shapes
  stackfall shapes

  # Just the two chiral pairs
  stackfall shapes S Z J L`,
		RunE: func(cmd *cobra.Command, args []string) error {
			shapes := tetromino.Shapes()
			if len(args) > 0 {
				shapes = shapes[:0]
				for _, arg := range args {
					shape, err := tetromino.ParseShape(arg)
					if err != nil {
						return err
					}
					shapes = append(shapes, shape)
				}
			}

			for _, shape := range shapes {
				if err := printShape(shape); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// printShape prints one shape's header and all four rotation states.
func printShape(shape tetromino.Shape) error {
	piece, err := tetromino.NewBit(shape)
	if err != nil {
		return err
	}

	fmt.Println(styleTitle.Render(fmt.Sprintf("%s (%s)", shape, piece.Color().Name())))
	for state := 0; state < 4; state++ {
		extent := piece.Extent()
		fmt.Println(styleDim.Render(fmt.Sprintf("  %d° · %dx%d", state*90, extent.Row, extent.Col)))
		fmt.Println(renderMask(piece.Mask(), piece.Color()))
		piece.RotateCW()
	}
	fmt.Println()
	return nil
}
