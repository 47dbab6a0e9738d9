package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/minokit/minokit/pkg/mino"
)

func writeTheme(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write theme: %v", err)
	}
	return path
}

func TestDefaultTheme_MatchesLibraryGlyphs(t *testing.T) {
	th := defaultTheme()
	if th.empty != mino.EmptyGlyph {
		t.Errorf("empty glyph = %q, want %q", th.empty, mino.EmptyGlyph)
	}
	for _, c := range mino.Colors() {
		if th.glyphs[c] != c.Glyph() {
			t.Errorf("glyph for %v = %q, want %q", c, th.glyphs[c], c.Glyph())
		}
	}
	if err := th.validate(); err != nil {
		t.Errorf("default theme invalid: %v", err)
	}
}

func TestLoadTheme_Overrides(t *testing.T) {
	path := writeTheme(t, `
empty = "·"

[glyphs]
cyan = "I"
yellow = "O"
`)
	th, err := loadTheme(path)
	if err != nil {
		t.Fatalf("loadTheme() error: %v", err)
	}
	if th.empty != '·' {
		t.Errorf("empty glyph = %q, want '·'", th.empty)
	}
	if th.glyphs[mino.Cyan] != 'I' {
		t.Errorf("cyan glyph = %q, want 'I'", th.glyphs[mino.Cyan])
	}
	if th.glyphs[mino.Yellow] != 'O' {
		t.Errorf("yellow glyph = %q, want 'O'", th.glyphs[mino.Yellow])
	}
	// Untouched colors keep the defaults.
	if th.glyphs[mino.Red] != mino.Red.Glyph() {
		t.Errorf("red glyph = %q, want default %q", th.glyphs[mino.Red], mino.Red.Glyph())
	}
}

func TestLoadTheme_RejectsCollision(t *testing.T) {
	path := writeTheme(t, `
[glyphs]
cyan = "z"
red = "z"
`)
	if _, err := loadTheme(path); err == nil {
		t.Error("loadTheme() accepted colliding glyphs")
	}
}

func TestLoadTheme_RejectsUnknownColor(t *testing.T) {
	path := writeTheme(t, `
[glyphs]
magenta = "m"
`)
	if _, err := loadTheme(path); err == nil {
		t.Error("loadTheme() accepted unknown color name")
	}
}

func TestLoadTheme_RejectsMultiRuneGlyph(t *testing.T) {
	path := writeTheme(t, `
[glyphs]
cyan = "ab"
`)
	if _, err := loadTheme(path); err == nil {
		t.Error("loadTheme() accepted multi-character glyph")
	}
}

func TestLoadTheme_MissingFile(t *testing.T) {
	if _, err := loadTheme(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("loadTheme() on missing file returned nil error")
	}
}
