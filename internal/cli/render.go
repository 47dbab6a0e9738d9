package cli

import (
	"fmt"
	"strings"

	"github.com/minokit/minokit/pkg/mino"
)

// renderShape renders a shape as text under the given theme, one line per
// row. With colored set, each occupied cell's glyph is wrapped in the
// lipgloss style for its color; empty cells stay dim.
func renderShape(s mino.Shape, t theme, colored bool) string {
	var b strings.Builder
	for i, row := range s {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			g := string(t.glyphFor(c))
			if !colored {
				b.WriteString(g)
				continue
			}
			if c.IsEmpty() {
				b.WriteString(StyleDim.Render(g))
			} else {
				b.WriteString(pieceStyles[c.Color].Render(g))
			}
		}
	}
	return b.String()
}

// printShape writes a rendered shape indented under the current output.
// Lines are printed as-is: glyphs may already carry their own styling.
func printShape(s mino.Shape, t theme, colored bool) {
	for _, line := range strings.Split(renderShape(s, t, colored), "\n") {
		fmt.Println("  " + line)
	}
}
