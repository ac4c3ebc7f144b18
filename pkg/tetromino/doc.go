// Package tetromino provides the seven falling pieces and the placement
// rules that relate a piece to a playfield grid.
//
// # Pieces
//
// A [Tetromino] is built from one of the seven canonical shapes ([I], [J],
// [L], [O], [S], [T], [Z]). Construction precomputes the piece's four
// rotation-state masks by repeated clockwise rotation of the shape's base
// mask, so rotating a live piece is a modular index bump that never fails
// and never allocates. Masks are trimmed to the occupied bounding box: a
// piece's extent is exactly the rectangle its set cells span, which keeps
// collision slices and masks the same shape.
//
// Each shape carries a fixed display color. The engine treats the color as
// an opaque tag for the driver's renderer and never interprets it.
//
// # Placement rules
//
// [InBounds], [ReachedBottom] and [Hits] are pure predicates over a
// candidate position, a board and a piece. They borrow both values and
// mutate neither. A driver's tick loop uses them as transition guards: a
// falling piece advances one row while neither [ReachedBottom] nor [Hits]
// fires at the next row, then locks into the board via [Place].
package tetromino
