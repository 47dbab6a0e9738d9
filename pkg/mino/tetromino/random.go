package tetromino

import "github.com/minokit/minokit/pkg/mino"

// Source supplies the randomness for [Random] and [RandomColor].
// *math/rand.Rand satisfies it; tests can pass a seeded instance or a stub.
type Source interface {
	// Intn returns a uniform value in [0, n). n must be > 0.
	Intn(n int) int
}

// Random returns one of the seven catalog shapes, each equally likely.
// The result is a fresh copy.
func Random(src Source) mino.Shape {
	return catalog[src.Intn(len(catalog))].Shape.Clone()
}

// RandomPiece is like [Random] but returns the full catalog entry.
func RandomPiece(src Source) Piece {
	p := catalog[src.Intn(len(catalog))]
	return Piece{Name: p.Name, Color: p.Color, Shape: p.Shape.Clone()}
}

// RandomColor returns one of the eight colors, each equally likely,
// independent of the shape generator.
func RandomColor(src Source) mino.Color {
	colors := mino.Colors()
	return colors[src.Intn(len(colors))]
}
