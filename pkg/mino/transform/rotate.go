package transform

import "github.com/minokit/minokit/pkg/mino"

// Rotate90 returns the shape rotated one quarter-turn: reverse the row
// order, then transpose. The result's width and height are the input's
// swapped, block count is preserved, and four applications yield a shape
// equal in content to the original.
func Rotate90(s mino.Shape) mino.Shape {
	reversed := make(mino.Shape, len(s))
	for i, row := range s {
		reversed[len(s)-1-i] = row
	}
	return transpose(reversed)
}

// transpose flips the grid across its main diagonal: cell (i, j) of the
// result is cell (j, i) of the input. Shared by rotation and by the
// column-padding path in pad.go.
func transpose(s mino.Shape) mino.Shape {
	width := len(s[0])
	out := make(mino.Shape, width)
	for j := range out {
		out[j] = make(mino.Row, len(s))
		for i, row := range s {
			out[j][i] = row[j]
		}
	}
	return out
}
