package cli

import (
	"testing"

	"github.com/minokit/minokit/pkg/mino"
)

func TestParseShift(t *testing.T) {
	tests := []struct {
		in        string
		cols      int
		rows      int
		expectErr bool
	}{
		{"0,0", 0, 0, false},
		{"3,1", 3, 1, false},
		{" 2 , 4 ", 2, 4, false},
		{"-1,0", -1, 0, false}, // range is checked by transform.Shift
		{"1", 0, 0, true},
		{"1,2,3", 0, 0, true},
		{"a,b", 0, 0, true},
		{"", 0, 0, true},
	}
	for _, tt := range tests {
		cols, rows, err := parseShift(tt.in)
		if tt.expectErr {
			if err == nil {
				t.Errorf("parseShift(%q) expected error, got (%d, %d)", tt.in, cols, rows)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseShift(%q) error: %v", tt.in, err)
			continue
		}
		if cols != tt.cols || rows != tt.rows {
			t.Errorf("parseShift(%q) = (%d, %d), want (%d, %d)", tt.in, cols, rows, tt.cols, tt.rows)
		}
	}
}

func TestPlacedPiece(t *testing.T) {
	s, err := placedPiece("O", "1,1")
	if err != nil {
		t.Fatalf("placedPiece() error: %v", err)
	}
	if size := s.Size(); size != (mino.Size{Width: 3, Height: 3}) {
		t.Errorf("Size() = %+v, want 3x3", size)
	}
	if !s[1][1].Filled || s[0][0].Filled {
		t.Error("shift did not move the piece toward the bottom-right")
	}
}

func TestPlacedPiece_UnknownName(t *testing.T) {
	if _, err := placedPiece("Q", "0,0"); err == nil {
		t.Error("placedPiece(Q) expected error for unknown piece")
	}
}

func TestPlacedPiece_NegativeShift(t *testing.T) {
	if _, err := placedPiece("O", "-1,0"); err == nil {
		t.Error("placedPiece with negative shift expected error")
	}
}
