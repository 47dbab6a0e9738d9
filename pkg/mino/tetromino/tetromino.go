// Package tetromino holds the catalog of the seven canonical tetromino
// pieces and the uniform random generators built on top of it.
//
// The catalog order is fixed (I, J, T, O, Z, L, S) and treated as an index
// space by the random generator and by tests. Each piece carries one fixed
// color. Random selection is driven by an injected [Source] rather than a
// package-level generator, so sampling is deterministic under a seeded
// *rand.Rand.
package tetromino

import (
	"strings"

	"github.com/minokit/minokit/pkg/mino"
)

// Piece is a named catalog entry.
type Piece struct {
	Name  string
	Color mino.Color
	Shape mino.Shape
}

// fromPattern builds a shape literal from row strings: 'x' marks an occupied
// cell of the given color, anything else is empty. Only used for the catalog
// below, where every pattern is rectangular by inspection.
func fromPattern(c mino.Color, rows ...string) mino.Shape {
	s := make(mino.Shape, len(rows))
	for i, r := range rows {
		s[i] = make(mino.Row, len(r))
		for j, ch := range r {
			if ch == 'x' {
				s[i][j] = mino.Filled(c)
			}
		}
	}
	return s
}

// catalog is the source of truth for the seven pieces. Never handed out
// directly: accessors clone, so callers cannot corrupt the literals.
var catalog = []Piece{
	{Name: "I", Color: mino.Cyan, Shape: fromPattern(mino.Cyan,
		"x",
		"x",
		"x",
		"x",
	)},
	{Name: "J", Color: mino.Blue, Shape: fromPattern(mino.Blue,
		".x",
		".x",
		"xx",
	)},
	{Name: "T", Color: mino.Purple, Shape: fromPattern(mino.Purple,
		"xxx",
		".x.",
	)},
	{Name: "O", Color: mino.Yellow, Shape: fromPattern(mino.Yellow,
		"xx",
		"xx",
	)},
	{Name: "Z", Color: mino.Red, Shape: fromPattern(mino.Red,
		"xx.",
		".xx",
	)},
	{Name: "L", Color: mino.Orange, Shape: fromPattern(mino.Orange,
		"x.",
		"x.",
		"xx",
	)},
	{Name: "S", Color: mino.Green, Shape: fromPattern(mino.Green,
		".xx",
		"xx.",
	)},
}

// Count is the number of pieces in the catalog.
const Count = 7

// All returns the seven tetromino shapes in catalog order.
// Each call returns fresh copies.
func All() []mino.Shape {
	out := make([]mino.Shape, len(catalog))
	for i, p := range catalog {
		out[i] = p.Shape.Clone()
	}
	return out
}

// Pieces returns the seven catalog entries (name, color, shape) in order,
// with cloned shapes.
func Pieces() []Piece {
	out := make([]Piece, len(catalog))
	for i, p := range catalog {
		out[i] = Piece{Name: p.Name, Color: p.Color, Shape: p.Shape.Clone()}
	}
	return out
}

// Names returns the piece names in catalog order.
func Names() []string {
	out := make([]string, len(catalog))
	for i, p := range catalog {
		out[i] = p.Name
	}
	return out
}

// ByName looks up a piece case-insensitively. The returned piece's shape is
// a fresh copy.
func ByName(name string) (Piece, bool) {
	for _, p := range catalog {
		if strings.EqualFold(p.Name, name) {
			return Piece{Name: p.Name, Color: p.Color, Shape: p.Shape.Clone()}, true
		}
	}
	return Piece{}, false
}
