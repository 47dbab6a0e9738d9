// Package transform provides the pure shape algebra: rotation, padding,
// alignment, overlap detection, and non-overlapping combination.
//
// Every function takes shapes by value and returns a fresh shape; inputs are
// never mutated. All operations assume their inputs satisfy the grid
// invariant checked by mino.Shape.Valid.
//
// # Rotation
//
// [Rotate90] rotates one quarter-turn in a fixed direction: the rows are
// reversed and the grid transposed, so the result's cell (i, j) is the
// input's cell (j, height-1-i). Width and height swap, and four applications
// restore the original content.
//
// # Padding and alignment
//
// [Pad] grows a shape by appending empty rows below and empty columns to the
// right; [Shift] is the mirror image, prepending above and to the left. Both
// are built from a single 1D row-stacking primitive plus transposition rather
// than a bespoke 2D insert. [PadTo] grows a shape to an exact target size and
// is how two shapes of different sizes are brought onto a common grid before
// combining.
//
// Offsets are never negative: [Pad] and [Shift] reject negative offsets with
// [ErrNegativeOffset], and [PadTo] rejects targets smaller than the current
// size with [ErrTargetTooSmall]. Nothing is ever silently cropped.
//
// # Overlap and combination
//
// [Overlaps] reports whether two shapes occupy any common cell. When the
// shapes differ in size, only the overlapping sub-rectangle is compared —
// rows and columns beyond the shorter shape's extent are ignored. This
// zip-to-shortest behavior is a sharp edge: callers who care about the full
// extent should normalize both shapes with [PadTo] first, which is exactly
// what [Combine] does internally.
//
// [Combine] merges two non-overlapping shapes onto their elementwise-max
// grid. It does not verify the precondition: any cell occupied in both
// inputs is written as mino.Black to make the contract violation visible,
// so callers must check [Overlaps] beforehand.
package transform
