// Package mino defines the polyomino shape model: a small rectangular grid
// of optionally-colored cells, plus the queries every other part of minokit
// is built on (size, validity, block count, textual rendering).
//
// Shapes are plain value types. Nothing in this package or in
// [github.com/minokit/minokit/pkg/mino/transform] mutates a shape after
// construction; every operation returns a fresh, independently owned value,
// so shapes are safe to share between goroutines.
//
// A well-formed shape is rectangular and non-degenerate: at least one row,
// at least one column, and every row the same length. [New] enforces this;
// [Shape.Valid] checks it standalone for grids built by hand.
package mino

import (
	"errors"
	"fmt"
)

// ErrInvalidShape is returned by [New] and [EmptyShape] when the grid is
// degenerate (zero rows or zero columns) or ragged (rows of unequal length).
var ErrInvalidShape = errors.New("invalid shape")

// Row is one horizontal line of cells, left to right.
type Row []Cell

// Shape is a rectangular grid of cells, rows ordered top to bottom.
// Use [New] to build one from raw rows; literal values are acceptable only
// where the grid is known-rectangular by construction (e.g. the tetromino
// catalog).
type Shape []Row

// Size is a shape's dimensions. It is always derived from the grid, never
// stored alongside it.
type Size struct {
	Width  int
	Height int
}

// New validates rows and returns them as a Shape. The rows are deep-copied,
// so the caller's backing slices stay independent of the result.
// Returns [ErrInvalidShape] if the grid is empty, has an empty first row,
// or is not rectangular.
func New(rows []Row) (Shape, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidShape)
	}
	width := len(rows[0])
	if width == 0 {
		return nil, fmt.Errorf("%w: zero width", ErrInvalidShape)
	}
	for i, r := range rows {
		if len(r) != width {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrInvalidShape, i, len(r), width)
		}
	}
	return Shape(rows).Clone(), nil
}

// EmptyShape returns a width×height grid of empty cells.
// Returns [ErrInvalidShape] unless both dimensions are at least 1.
// The empty shape is the identity element for padding and combining.
func EmptyShape(width, height int) (Shape, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidShape, width, height)
	}
	s := make(Shape, height)
	for i := range s {
		s[i] = make(Row, width)
	}
	return s, nil
}

// Valid reports whether the shape satisfies the grid invariant:
// height ≥ 1, width ≥ 1, and all rows of equal length.
func (s Shape) Valid() bool {
	if len(s) == 0 || len(s[0]) == 0 {
		return false
	}
	width := len(s[0])
	for _, r := range s[1:] {
		if len(r) != width {
			return false
		}
	}
	return true
}

// Size returns the shape's dimensions, recomputed as (length of row 0,
// number of rows). The shape must satisfy the grid invariant.
func (s Shape) Size() Size {
	return Size{Width: len(s[0]), Height: len(s)}
}

// BlockCount returns the number of occupied cells.
func (s Shape) BlockCount() int {
	n := 0
	for _, row := range s {
		for _, c := range row {
			if c.Filled {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the shape. Mutating the copy's rows never
// affects the original.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for i, row := range s {
		out[i] = make(Row, len(row))
		copy(out[i], row)
	}
	return out
}

// Equal reports structural equality: same dimensions and identical cell
// content (occupancy and color) at every position.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i, row := range s {
		if len(row) != len(other[i]) {
			return false
		}
		for j, c := range row {
			if c != other[i][j] {
				return false
			}
		}
	}
	return true
}
