package tetromino

import (
	"fmt"

	"github.com/stackfall/stackfall/pkg/grid"
)

// rotationStates is the number of 90-degree orientations of a piece.
const rotationStates = 4

// Tetromino is a live piece: a shape identity, its display color, the four
// precomputed rotation-state masks, and the index of the active state.
//
// The masks are generic over the board's cell type so that a piece can be
// composed bitwise with any board it will be placed on. Set cells hold the
// filled value given at construction; the rest hold the empty value.
type Tetromino[V grid.Cell[V]] struct {
	shape Shape
	color Color
	masks [rotationStates]*grid.Grid[V]
	index int
}

// New creates a piece of the given shape. Set cells of the masks hold
// filled, all others hold empty; empty also becomes the masks' negative
// value. The four rotation masks are derived up front by repeated clockwise
// rotation of the shape's base mask.
func New[V grid.Cell[V]](shape Shape, filled, empty V) (*Tetromino[V], error) {
	def, ok := shapeTable[shape]
	if !ok {
		return nil, fmt.Errorf("unknown shape %v", shape)
	}

	rows := make([][]V, len(def.rows))
	for r, row := range def.rows {
		rows[r] = make([]V, len(row))
		for c := range rows[r] {
			if row[c] == 'x' {
				rows[r][c] = filled
			} else {
				rows[r][c] = empty
			}
		}
	}
	base, err := grid.FromRows(rows, empty)
	if err != nil {
		return nil, err
	}

	t := &Tetromino[V]{shape: shape, color: def.color}
	t.masks[0] = base
	for i := 1; i < rotationStates; i++ {
		t.masks[i] = grid.RotateCW(t.masks[i-1])
	}
	return t, nil
}

// NewBit creates a piece with plain occupied/empty cells, the default
// instantiation for boolean playfields.
func NewBit(shape Shape) (*Tetromino[grid.Bit], error) {
	return New(shape, grid.On, grid.Off)
}

// Shape returns the piece's shape identity.
func (t *Tetromino[V]) Shape() Shape {
	return t.shape
}

// Color returns the piece's display color.
func (t *Tetromino[V]) Color() Color {
	return t.color
}

// Mask returns the active rotation-state mask. Callers must not mutate it.
func (t *Tetromino[V]) Mask() *grid.Grid[V] {
	return t.masks[t.index]
}

// Extent returns the active mask's shape as (rows, cols).
func (t *Tetromino[V]) Extent() grid.Coordinate {
	return t.masks[t.index].Shape()
}

// Rotation returns the current rotation-state index, always in [0, 4).
func (t *Tetromino[V]) Rotation() int {
	return t.index
}

// RotateCW advances the piece to the next clockwise rotation state.
func (t *Tetromino[V]) RotateCW() {
	t.index = (t.index + 1) % rotationStates
}

// RotateCCW retreats the piece to the previous rotation state.
func (t *Tetromino[V]) RotateCCW() {
	t.index = (t.index + rotationStates - 1) % rotationStates
}
