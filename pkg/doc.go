// Package pkg provides the core libraries for minokit.
//
// # Overview
//
// Minokit models Tetris-style polyomino pieces as small rectangular grids of
// optionally-colored cells, with a pure transformation algebra on top. The
// pkg directory is organized into three areas:
//
//  1. [mino] - The shape model (cells, colors, grids, validity, rendering)
//  2. [mino/transform] - Pure shape algebra (rotate, pad, shift, overlap, combine)
//  3. [mino/tetromino] - The seven-piece catalog and seedable random sampling
//
// # Quick Start
//
//	piece, _ := tetromino.ByName("T")
//	rotated := transform.Rotate90(piece.Shape)
//	fmt.Println(rotated)
//
// Every operation returns a fresh shape value; nothing is mutated in place,
// so all of pkg is safe for concurrent use.
package pkg
