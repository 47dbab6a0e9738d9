package mino

// Color is a cell color tag. The set is closed: exactly eight values,
// enumerable via [Colors]. Black doubles as the clash marker written by
// transform.Combine when both inputs occupy the same cell (which callers
// are required to rule out beforehand).
type Color uint8

const (
	Cyan Color = iota
	Blue
	Orange
	Yellow
	Green
	Purple
	Red
	Black

	numColors // sentinel for enumeration, not a valid color
)

// Colors returns all colors in declaration order.
// The slice is freshly allocated on every call.
func Colors() []Color {
	out := make([]Color, numColors)
	for i := range out {
		out[i] = Color(i)
	}
	return out
}

// String returns the lowercase color name, or "unknown" for values
// outside the enum.
func (c Color) String() string {
	switch c {
	case Cyan:
		return "cyan"
	case Blue:
		return "blue"
	case Orange:
		return "orange"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	case Purple:
		return "purple"
	case Red:
		return "red"
	case Black:
		return "black"
	default:
		return "unknown"
	}
}

// Glyph returns a single printable rune for textual rendering.
// Each color maps to a distinct rune, and none collides with the empty-cell
// placeholder used by [Shape.String]. Cyan=c, Blue=b, Orange=o, Yellow=y,
// Green=g, Purple=p, Red=r, Black=#.
func (c Color) Glyph() rune {
	switch c {
	case Cyan:
		return 'c'
	case Blue:
		return 'b'
	case Orange:
		return 'o'
	case Yellow:
		return 'y'
	case Green:
		return 'g'
	case Purple:
		return 'p'
	case Red:
		return 'r'
	case Black:
		return '#'
	default:
		return '?'
	}
}

// Cell is one grid position: either empty or occupied with a color.
// The zero value is an empty cell.
type Cell struct {
	Color  Color // meaningful only when Filled is true
	Filled bool
}

// Filled returns an occupied cell with the given color.
func Filled(c Color) Cell { return Cell{Color: c, Filled: true} }

// IsEmpty reports whether the cell is unoccupied.
func (c Cell) IsEmpty() bool { return !c.Filled }
