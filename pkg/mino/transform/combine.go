package transform

import "github.com/minokit/minokit/pkg/mino"

// Overlaps reports whether the two shapes occupy any common cell position.
//
// Comparison runs only over the sub-rectangle both shapes cover: if the
// shapes differ in size, rows and columns beyond the shorter extent are
// never examined. Callers that need a full-extent answer should bring both
// shapes to a common size with [PadTo] first.
func Overlaps(a, b mino.Shape) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		rowA, rowB := a[i], b[i]
		for j := 0; j < len(rowA) && j < len(rowB); j++ {
			if rowA[j].Filled && rowB[j].Filled {
				return true
			}
		}
	}
	return false
}

// Combine merges two shapes onto a grid sized to the elementwise maximum of
// their dimensions. Each input is padded to that size, then cells merge
// position by position: an empty cell yields the other shape's cell, and a
// cell occupied in both inputs becomes mino.Black.
//
// Combine is only defined for non-overlapping inputs. It does not check the
// precondition — the Black marker is what a violation looks like, not a
// supported result — so callers must verify with [Overlaps] beforehand.
// For non-overlapping inputs the result is commutative in content.
func Combine(a, b mino.Shape) mino.Shape {
	sizeA, sizeB := a.Size(), b.Size()
	width := max(sizeA.Width, sizeB.Width)
	height := max(sizeA.Height, sizeB.Height)

	// Targets are elementwise maxima, so PadTo cannot fail here.
	pa, _ := PadTo(width, height, a)
	pb, _ := PadTo(width, height, b)

	out := make(mino.Shape, height)
	for i := range out {
		out[i] = make(mino.Row, width)
		for j := range out[i] {
			out[i][j] = mergeCell(pa[i][j], pb[i][j])
		}
	}
	return out
}

func mergeCell(a, b mino.Cell) mino.Cell {
	switch {
	case a.Filled && b.Filled:
		return mino.Filled(mino.Black)
	case a.Filled:
		return a
	default:
		return b
	}
}
