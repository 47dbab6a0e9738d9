package mino

import "strings"

// EmptyGlyph is the placeholder rune for unoccupied cells in textual output.
const EmptyGlyph = '.'

// String renders the shape as text for debugging: one line per row, rows
// joined by newlines, [EmptyGlyph] for empty cells and [Color.Glyph] for
// occupied ones. The exact glyphs are not a contract — only that the mapping
// from {empty, colors} to runes is injective.
func (s Shape) String() string {
	var b strings.Builder
	for i, row := range s {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			if c.IsEmpty() {
				b.WriteRune(EmptyGlyph)
			} else {
				b.WriteRune(c.Color.Glyph())
			}
		}
	}
	return b.String()
}
