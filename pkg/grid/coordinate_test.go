package grid_test

import (
	"testing"

	"github.com/stackfall/stackfall/pkg/grid"
)

func TestCoordinateAdd(t *testing.T) {
	got := grid.Coord(2, 3).Add(grid.Coord(1, 4))
	if got != grid.Coord(3, 7) {
		t.Errorf("Add = %v, want (3, 7)", got)
	}
	if off := grid.Coord(2, 3).Offset(1, 0); off != grid.Coord(3, 3) {
		t.Errorf("Offset = %v, want (3, 3)", off)
	}
}

func TestCoordinateSub(t *testing.T) {
	tests := []struct {
		name   string
		a, b   grid.Coordinate
		want   grid.Coordinate
		wantOK bool
	}{
		{"Simple", grid.Coord(5, 4), grid.Coord(2, 1), grid.Coord(3, 3), true},
		{"Zero", grid.Coord(2, 2), grid.Coord(2, 2), grid.Coord(0, 0), true},
		{"RowUnderflow", grid.Coord(1, 4), grid.Coord(2, 1), grid.Coordinate{}, false},
		{"ColUnderflow", grid.Coord(4, 1), grid.Coord(1, 2), grid.Coordinate{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.a.Sub(tt.b)
			if ok != tt.wantOK {
				t.Fatalf("Sub ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Sub = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCoordinateWithin(t *testing.T) {
	low, high := grid.Coord(0, 0), grid.Coord(5, 6)

	tests := []struct {
		name string
		c    grid.Coordinate
		want bool
	}{
		{"Interior", grid.Coord(2, 3), true},
		{"LowCorner", grid.Coord(0, 0), true},
		{"HighCorner", grid.Coord(5, 6), true},
		{"RowPastHigh", grid.Coord(6, 0), false},
		{"ColPastHigh", grid.Coord(0, 7), false},
		{"NegativeRow", grid.Coord(-1, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Within(low, high); got != tt.want {
				t.Errorf("Within = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromRowMajor(t *testing.T) {
	// A 3x5 grid flattened row-major:
	//  0  1  2  3  4
	//  5  6  7  8  9
	// 10 11 12 13 14
	dims := grid.Coord(3, 5)

	c, ok := grid.FromRowMajor(6, dims)
	if !ok {
		t.Fatal("FromRowMajor(6) not ok")
	}
	if c != grid.Coord(1, 1) {
		t.Errorf("FromRowMajor(6) = %v, want (1, 1)", c)
	}

	if _, ok := grid.FromRowMajor(15, dims); ok {
		t.Error("FromRowMajor(15) should be out of range")
	}
	if _, ok := grid.FromRowMajor(-1, dims); ok {
		t.Error("FromRowMajor(-1) should be out of range")
	}
}

func TestFromColumnMajor(t *testing.T) {
	// A 5x3 grid flattened column-major:
	// 0 5 10
	// 1 6 11
	// 2 7 12
	// 3 8 13
	// 4 9 14
	dims := grid.Coord(5, 3)

	c, ok := grid.FromColumnMajor(6, dims)
	if !ok {
		t.Fatal("FromColumnMajor(6) not ok")
	}
	if c != grid.Coord(1, 1) {
		t.Errorf("FromColumnMajor(6) = %v, want (1, 1)", c)
	}

	c, ok = grid.FromColumnMajor(10, dims)
	if !ok {
		t.Fatal("FromColumnMajor(10) not ok")
	}
	if c != grid.Coord(0, 2) {
		t.Errorf("FromColumnMajor(10) = %v, want (0, 2)", c)
	}

	if _, ok := grid.FromColumnMajor(15, dims); ok {
		t.Error("FromColumnMajor(15) should be out of range")
	}
}

func TestArea(t *testing.T) {
	if got := grid.Coord(4, 6).Area(); got != 24 {
		t.Errorf("Area = %d, want 24", got)
	}
}
