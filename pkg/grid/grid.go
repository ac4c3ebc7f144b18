package grid

// Cell is the capability interface grid cells must satisfy: equality plus
// the three bitwise operators used by masked writes and [Grid.Combine].
// [Bit] is the canonical implementation; richer cell payloads (for example
// small integer flag sets) qualify by providing the same three methods.
type Cell[T any] interface {
	comparable
	And(T) T
	Or(T) T
	Xor(T) T
}

// Bit is the default cell type: a plain occupied/empty flag.
type Bit bool

// The two Bit values, named for readability at call sites.
const (
	On  Bit = true
	Off Bit = false
)

// And returns the logical AND of b and o.
func (b Bit) And(o Bit) Bit { return b && o }

// Or returns the logical OR of b and o.
func (b Bit) Or(o Bit) Bit { return b || o }

// Xor returns the logical XOR of b and o.
func (b Bit) Xor(o Bit) Bit { return b != o }

// Op selects the operator applied by [Grid.Combine].
type Op int

// The supported combine operators.
const (
	And Op = iota
	Or
	Xor
)

// String returns the operator name in lowercase.
func (op Op) String() string {
	switch op {
	case And:
		return "and"
	case Or:
		return "or"
	case Xor:
		return "xor"
	default:
		return "invalid"
	}
}

// Grid is a fixed-shape rectangular grid of cells. The shape never changes
// after construction and every cell always holds a valid T. Each grid
// carries a negative value, the cell value meaning empty, fixed for the
// grid's lifetime.
//
// Cells are stored row-major in a single backing slice.
type Grid[T Cell[T]] struct {
	shape Coordinate
	empty T
	cells []T
}

// New returns a grid of the given shape with every cell set to fill. The
// fill value becomes the grid's negative value. Negative shape components
// are treated as zero.
func New[T Cell[T]](shape Coordinate, fill T) *Grid[T] {
	shape = Coordinate{Row: max(shape.Row, 0), Col: max(shape.Col, 0)}
	g := &Grid[T]{
		shape: shape,
		empty: fill,
		cells: make([]T, shape.Area()),
	}
	for i := range g.cells {
		g.cells[i] = fill
	}
	return g
}

// FromRows builds a grid from a snapshot of rows, copying the cells. The
// negative value is supplied explicitly; it need not appear in the snapshot.
// FromRows returns [ErrRaggedRows] when the rows differ in length.
func FromRows[T Cell[T]](rows [][]T, negative T) (*Grid[T], error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	g := &Grid[T]{
		shape: Coordinate{Row: len(rows), Col: cols},
		empty: negative,
		cells: make([]T, 0, len(rows)*cols),
	}
	for _, row := range rows {
		if len(row) != cols {
			return nil, ErrRaggedRows
		}
		g.cells = append(g.cells, row...)
	}
	return g, nil
}

// Shape returns the grid's extent as (rows, cols).
func (g *Grid[T]) Shape() Coordinate {
	return g.shape
}

// Negative returns the grid's empty-cell value.
func (g *Grid[T]) Negative() T {
	return g.empty
}

// At returns the cell at c. The boolean is false when c lies outside the
// grid.
func (g *Grid[T]) At(c Coordinate) (T, bool) {
	if c.Row < 0 || c.Col < 0 || c.Row >= g.shape.Row || c.Col >= g.shape.Col {
		var zero T
		return zero, false
	}
	return g.cells[g.index(c)], true
}

// Rows returns a copy of the grid's cells as a slice of rows. Mutating the
// result does not affect the grid.
func (g *Grid[T]) Rows() [][]T {
	rows := make([][]T, g.shape.Row)
	for r := range rows {
		rows[r] = make([]T, g.shape.Col)
		copy(rows[r], g.cells[r*g.shape.Col:(r+1)*g.shape.Col])
	}
	return rows
}

// Clone returns an independent copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{shape: g.shape, empty: g.empty, cells: cells}
}

// Equal reports whether g and o have the same shape and identical cells.
// The grids' negative values are not compared.
func (g *Grid[T]) Equal(o *Grid[T]) bool {
	if g.shape != o.shape {
		return false
	}
	for i, cell := range g.cells {
		if cell != o.cells[i] {
			return false
		}
	}
	return true
}

// AnySet reports whether any cell differs from the grid's negative value.
func (g *Grid[T]) AnySet() bool {
	for _, cell := range g.cells {
		if cell != g.empty {
			return true
		}
	}
	return false
}

// CountSet returns the number of cells that differ from the grid's negative
// value.
func (g *Grid[T]) CountSet() int {
	n := 0
	for _, cell := range g.cells {
		if cell != g.empty {
			n++
		}
	}
	return n
}

// Slice extracts the sub-grid spanning the box defined by the two corners,
// given in either order: the rectangle runs from the component-wise minimum
// corner (inclusive) to the component-wise maximum corner (exclusive). The
// sub-grid is an independent copy and inherits g's negative value.
//
// Slice returns an [*OutOfRangeError] when either corner lies outside
// [(0,0), Shape()] inclusive. This is a recoverable condition, not a fault.
func (g *Grid[T]) Slice(c1, c2 Coordinate) (*Grid[T], error) {
	zero := Coordinate{}
	if !c1.Within(zero, g.shape) {
		return nil, &OutOfRangeError{Cell: c1}
	}
	if !c2.Within(zero, g.shape) {
		return nil, &OutOfRangeError{Cell: c2}
	}
	low, high := minCorner(c1, c2), maxCorner(c1, c2)
	out := New(Coordinate{Row: high.Row - low.Row, Col: high.Col - low.Col}, g.empty)
	for r := 0; r < out.shape.Row; r++ {
		for c := 0; c < out.shape.Col; c++ {
			out.cells[out.index(Coord(r, c))] = g.cells[g.index(low.Offset(r, c))]
		}
	}
	return out, nil
}

// SetMask overwrites the rectangle anchored at the top-left coordinate at,
// sized to the mask's shape, with the mask's cells. The write is atomic:
// the whole destination rectangle is validated first, and on failure an
// [*OutOfRangeError] names the first invalid destination cell and the grid
// is left unchanged.
func (g *Grid[T]) SetMask(mask *Grid[T], at Coordinate) error {
	return g.writeMask(mask, at, func(m, _ T) T { return m })
}

// SetMaskAnd is [Grid.SetMask] with AND semantics: each destination cell
// becomes mask AND cell.
func (g *Grid[T]) SetMaskAnd(mask *Grid[T], at Coordinate) error {
	return g.writeMask(mask, at, func(m, cur T) T { return m.And(cur) })
}

// SetMaskOr is [Grid.SetMask] with OR semantics: each destination cell
// becomes mask OR cell. This is the merge used to commit a locked piece into
// the playfield.
func (g *Grid[T]) SetMaskOr(mask *Grid[T], at Coordinate) error {
	return g.writeMask(mask, at, func(m, cur T) T { return m.Or(cur) })
}

// SetMaskXor is [Grid.SetMask] with XOR semantics: each destination cell
// becomes mask XOR cell.
func (g *Grid[T]) SetMaskXor(mask *Grid[T], at Coordinate) error {
	return g.writeMask(mask, at, func(m, cur T) T { return m.Xor(cur) })
}

// SetValue fills an extent-sized rectangle anchored at the top-left
// coordinate at with value. It is equivalent to building a uniform mask and
// calling [Grid.SetMask].
func (g *Grid[T]) SetValue(value T, at, extent Coordinate) error {
	return g.SetMask(New(extent, value), at)
}

// Combine returns a new grid of identical shape whose every cell is
// g OP other. It returns a [*DimensionMismatchError] when the shapes differ
// and [ErrInvalidOp] for an unknown operator.
//
// Both operands are flattened in column-major order and the result rebuilt
// in the same order; the traversal order must, and does, match on both
// sides.
func (g *Grid[T]) Combine(other *Grid[T], op Op) (*Grid[T], error) {
	if g.shape != other.shape {
		return nil, &DimensionMismatchError{Left: g.shape, Right: other.shape}
	}
	if op != And && op != Or && op != Xor {
		return nil, ErrInvalidOp
	}
	out := New(g.shape, g.empty)
	for i := 0; i < g.shape.Area(); i++ {
		c, _ := FromColumnMajor(i, g.shape)
		j := g.index(c)
		out.cells[j] = apply(op, g.cells[j], other.cells[j])
	}
	return out, nil
}

// apply evaluates a OP b for a validated operator.
func apply[T Cell[T]](op Op, a, b T) T {
	switch op {
	case And:
		return a.And(b)
	case Or:
		return a.Or(b)
	default:
		return a.Xor(b)
	}
}

// index converts an in-range coordinate to its row-major offset.
func (g *Grid[T]) index(c Coordinate) int {
	return c.Row*g.shape.Col + c.Col
}

// writeMask validates the destination rectangle, then merges the mask into
// it cell by cell.
func (g *Grid[T]) writeMask(mask *Grid[T], at Coordinate, merge func(maskCell, cur T) T) error {
	if err := g.checkRect(at, mask.shape); err != nil {
		return err
	}
	for r := 0; r < mask.shape.Row; r++ {
		for c := 0; c < mask.shape.Col; c++ {
			i := g.index(at.Offset(r, c))
			g.cells[i] = merge(mask.cells[mask.index(Coord(r, c))], g.cells[i])
		}
	}
	return nil
}

// checkRect verifies that an extent-sized rectangle anchored at the top-left
// coordinate at lies fully inside the grid. On failure it reports the first
// invalid destination cell in row-major order.
func (g *Grid[T]) checkRect(at, extent Coordinate) error {
	far := at.Add(extent)
	if at.Row >= 0 && at.Col >= 0 && far.Row <= g.shape.Row && far.Col <= g.shape.Col {
		return nil
	}
	last := g.shape.Offset(-1, -1)
	for r := 0; r < extent.Row; r++ {
		for c := 0; c < extent.Col; c++ {
			if dst := at.Offset(r, c); !dst.Within(Coordinate{}, last) {
				return &OutOfRangeError{Cell: dst}
			}
		}
	}
	// Empty rectangle anchored outside the grid.
	return &OutOfRangeError{Cell: at}
}
