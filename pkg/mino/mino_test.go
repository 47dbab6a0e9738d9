package mino

import (
	"errors"
	"testing"
)

func TestNew_Valid(t *testing.T) {
	s, err := New([]Row{
		{Filled(Red), {}},
		{{}, Filled(Red)},
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if !s.Valid() {
		t.Error("Valid() = false, want true")
	}
	if got := s.Size(); got != (Size{Width: 2, Height: 2}) {
		t.Errorf("Size() = %+v, want 2x2", got)
	}
	if got := s.BlockCount(); got != 2 {
		t.Errorf("BlockCount() = %d, want 2", got)
	}
}

func TestNew_CopiesInput(t *testing.T) {
	rows := []Row{{Filled(Blue)}}
	s, err := New(rows)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	rows[0][0] = Cell{}
	if s[0][0].IsEmpty() {
		t.Error("mutating input rows changed the constructed shape")
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name string
		rows []Row
	}{
		{"no rows", nil},
		{"zero width", []Row{{}}},
		{"ragged", []Row{{{}, {}}, {{}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.rows); !errors.Is(err, ErrInvalidShape) {
				t.Errorf("New() error = %v, want ErrInvalidShape", err)
			}
		})
	}
}

func TestEmptyShape(t *testing.T) {
	s, err := EmptyShape(3, 2)
	if err != nil {
		t.Fatalf("EmptyShape() error: %v", err)
	}
	if got := s.Size(); got != (Size{Width: 3, Height: 2}) {
		t.Errorf("Size() = %+v, want 3x2", got)
	}
	if got := s.BlockCount(); got != 0 {
		t.Errorf("BlockCount() = %d, want 0", got)
	}
	if !s.Valid() {
		t.Error("Valid() = false, want true")
	}
}

func TestEmptyShape_BadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {0, 0}, {-1, 2}} {
		if _, err := EmptyShape(dims[0], dims[1]); !errors.Is(err, ErrInvalidShape) {
			t.Errorf("EmptyShape(%d, %d) error = %v, want ErrInvalidShape", dims[0], dims[1], err)
		}
	}
}

func TestValid_Ragged(t *testing.T) {
	s := Shape{{Filled(Cyan), Filled(Cyan)}, {Filled(Cyan)}}
	if s.Valid() {
		t.Error("Valid() = true for ragged grid, want false")
	}
}

func TestClone_Independent(t *testing.T) {
	s := Shape{{Filled(Green)}}
	c := s.Clone()
	c[0][0] = Cell{}
	if s[0][0].IsEmpty() {
		t.Error("mutating clone changed the original")
	}
	if !s.Equal(Shape{{Filled(Green)}}) {
		t.Error("original no longer equals its initial value")
	}
}

func TestEqual(t *testing.T) {
	a := Shape{{Filled(Red), {}}}
	b := Shape{{Filled(Red), {}}}
	c := Shape{{Filled(Blue), {}}}
	d := Shape{{Filled(Red)}}

	if !a.Equal(b) {
		t.Error("Equal() = false for identical shapes")
	}
	if a.Equal(c) {
		t.Error("Equal() = true for different colors")
	}
	if a.Equal(d) {
		t.Error("Equal() = true for different widths")
	}
}

func TestString(t *testing.T) {
	s := Shape{
		{Filled(Cyan), {}},
		{{}, Filled(Black)},
	}
	want := "c.\n.#"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
