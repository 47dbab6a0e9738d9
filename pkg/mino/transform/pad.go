package transform

import (
	"errors"
	"fmt"

	"github.com/minokit/minokit/pkg/mino"
)

var (
	// ErrNegativeOffset is returned by [Pad] and [Shift] when either offset
	// is negative. Padding only ever grows a shape.
	ErrNegativeOffset = errors.New("pad offsets must be non-negative")

	// ErrTargetTooSmall is returned by [PadTo] when the target size is
	// smaller than the shape's current size in either dimension. Shapes are
	// never cropped to fit.
	ErrTargetTooSmall = errors.New("target size smaller than shape")
)

// emptyRows builds n empty rows of the given width.
func emptyRows(width, n int) []mino.Row {
	rows := make([]mino.Row, n)
	for i := range rows {
		rows[i] = make(mino.Row, width)
	}
	return rows
}

// stackTop returns s with n empty rows of the given width prepended.
// stackBottom appends instead. Both copy s's rows, so the result shares no
// backing storage with the input. These two primitives, composed with
// transpose, express every 2D pad in this package.
func stackTop(width, n int, s mino.Shape) mino.Shape {
	out := make(mino.Shape, 0, len(s)+n)
	out = append(out, emptyRows(width, n)...)
	return append(out, s.Clone()...)
}

func stackBottom(width, n int, s mino.Shape) mino.Shape {
	out := make(mino.Shape, 0, len(s)+n)
	out = append(out, s.Clone()...)
	return append(out, emptyRows(width, n)...)
}

// Shift inserts rowOffset empty rows above the shape and colOffset empty
// columns to its left, moving the content toward the bottom-right. The
// result's size is (width+colOffset, height+rowOffset) and its block count
// equals the input's. Returns [ErrNegativeOffset] if either offset is
// negative.
func Shift(colOffset, rowOffset int, s mino.Shape) (mino.Shape, error) {
	if colOffset < 0 || rowOffset < 0 {
		return nil, fmt.Errorf("%w: got (%d, %d)", ErrNegativeOffset, colOffset, rowOffset)
	}
	size := s.Size()
	out := stackTop(size.Width, rowOffset, s)
	// Columns become rows under transposition, so a left-pad is a top-pad
	// of the transposed grid.
	out = transpose(stackTop(size.Height+rowOffset, colOffset, transpose(out)))
	return out, nil
}

// Pad is the mirror image of [Shift]: it appends rowOffset empty rows below
// the shape and colOffset empty columns to its right, leaving the content
// anchored at the top-left. Same sizing and error contract as [Shift].
func Pad(colOffset, rowOffset int, s mino.Shape) (mino.Shape, error) {
	if colOffset < 0 || rowOffset < 0 {
		return nil, fmt.Errorf("%w: got (%d, %d)", ErrNegativeOffset, colOffset, rowOffset)
	}
	size := s.Size()
	out := stackBottom(size.Width, rowOffset, s)
	out = transpose(stackBottom(size.Height+rowOffset, colOffset, transpose(out)))
	return out, nil
}

// PadTo grows the shape to exactly targetWidth×targetHeight by padding right
// and bottom. Returns [ErrTargetTooSmall] if the target is below the current
// size in either dimension.
func PadTo(targetWidth, targetHeight int, s mino.Shape) (mino.Shape, error) {
	size := s.Size()
	if targetWidth < size.Width || targetHeight < size.Height {
		return nil, fmt.Errorf("%w: shape is %dx%d, target %dx%d",
			ErrTargetTooSmall, size.Width, size.Height, targetWidth, targetHeight)
	}
	return Pad(targetWidth-size.Width, targetHeight-size.Height, s)
}
