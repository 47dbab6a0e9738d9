package cli

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/minokit/minokit/pkg/mino"
)

// theme maps cell states to display runes. The default theme mirrors the
// library's own glyphs; a TOML file can remap any subset of them, as long as
// the mapping stays injective (distinct glyph per state).
type theme struct {
	empty  rune
	glyphs map[mino.Color]rune
}

// themeFile is the on-disk TOML layout:
//
//	empty = "·"
//
//	[glyphs]
//	cyan = "I"
//	yellow = "O"
type themeFile struct {
	Empty  string            `toml:"empty"`
	Glyphs map[string]string `toml:"glyphs"`
}

// defaultTheme returns the library's built-in glyph mapping.
func defaultTheme() theme {
	t := theme{empty: mino.EmptyGlyph, glyphs: make(map[mino.Color]rune)}
	for _, c := range mino.Colors() {
		t.glyphs[c] = c.Glyph()
	}
	return t
}

// loadTheme reads a TOML theme file and overlays it on the default theme.
// Unknown color names, multi-rune glyphs, and glyph collisions are rejected.
func loadTheme(path string) (theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return theme{}, fmt.Errorf("read theme: %w", err)
	}
	var file themeFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return theme{}, fmt.Errorf("parse theme: %w", err)
	}

	t := defaultTheme()
	if file.Empty != "" {
		r, err := singleRune(file.Empty)
		if err != nil {
			return theme{}, fmt.Errorf("empty glyph: %w", err)
		}
		t.empty = r
	}
	for name, glyph := range file.Glyphs {
		color, ok := colorByName(name)
		if !ok {
			return theme{}, fmt.Errorf("unknown color %q in theme", name)
		}
		r, err := singleRune(glyph)
		if err != nil {
			return theme{}, fmt.Errorf("glyph for %s: %w", name, err)
		}
		t.glyphs[color] = r
	}

	if err := t.validate(); err != nil {
		return theme{}, err
	}
	return t, nil
}

// validate checks that the empty placeholder and all color glyphs are
// pairwise distinct.
func (t theme) validate() error {
	seen := map[rune]string{t.empty: "empty"}
	for _, c := range mino.Colors() {
		g := t.glyphs[c]
		if prev, dup := seen[g]; dup {
			return fmt.Errorf("theme glyph %q used for both %s and %s", g, prev, c)
		}
		seen[g] = c.String()
	}
	return nil
}

// glyphFor returns the display rune for a cell under this theme.
func (t theme) glyphFor(c mino.Cell) rune {
	if c.IsEmpty() {
		return t.empty
	}
	return t.glyphs[c.Color]
}

func singleRune(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("%q is not a single character", s)
	}
	return r, nil
}

func colorByName(name string) (mino.Color, bool) {
	for _, c := range mino.Colors() {
		if c.String() == name {
			return c, true
		}
	}
	return 0, false
}
