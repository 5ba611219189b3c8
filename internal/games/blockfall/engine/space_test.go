package engine

import (
	"slices"
	"testing"

	"github.com/vovakirdan/blockfall/internal/core"
)

func TestSpaceInsertRemove(t *testing.T) {
	s := NewSpace(Pivot{}, core.ColorRed, core.ColorBrightRed)

	s.Insert(3, -2)
	if !s.Contains(3, -2) {
		t.Error("Contains(3, -2) = false after Insert")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", s.Len())
	}
	if s.Remove(5, 5) {
		t.Error("Remove() of an absent cell should return false")
	}
	if !s.Remove(3, -2) {
		t.Error("Remove() of a present cell should return true")
	}
	if s.Contains(3, -2) || s.Len() != 0 {
		t.Error("cell still present after Remove")
	}
}

func TestSpaceCellsOrdered(t *testing.T) {
	s := NewSpace(Pivot{}, 0, 0, Cell{2, 1}, Cell{0, 1}, Cell{5, 0}, Cell{1, -1})
	got := s.Cells()
	expected := []Cell{{1, -1}, {5, 0}, {0, 1}, {2, 1}}
	if !slices.Equal(got, expected) {
		t.Errorf("Cells() = %v, expected %v", got, expected)
	}
}

func TestRotationRoundTrip(t *testing.T) {
	for _, k := range Kinds {
		t.Run(k.String(), func(t *testing.T) {
			base := k.Shape().Cells()
			for n := -8; n <= 8; n++ {
				got := k.Shape().Rotated(n).Rotated(-n).Cells()
				if !slices.Equal(got, base) {
					t.Errorf("Rotated(%d).Rotated(%d) = %v, expected %v", n, -n, got, base)
				}
			}
			full := k.Shape().Rotated(1).Rotated(1).Rotated(1).Rotated(1).Cells()
			if !slices.Equal(full, base) {
				t.Errorf("four quarter turns = %v, expected %v", full, base)
			}
			if got := k.Shape().Rotated(4).Cells(); !slices.Equal(got, base) {
				t.Errorf("Rotated(4) = %v, expected %v", got, base)
			}
		})
	}
}

func TestRotationKeepsColorsAndPivot(t *testing.T) {
	s := KindT.Shape()
	r := s.Rotated(3)
	if r.Pivot() != s.Pivot() || r.Color() != s.Color() || r.Light() != s.Light() {
		t.Error("Rotated() should keep pivot and colors")
	}
	if s.Len() != 4 {
		t.Errorf("catalog shape mutated, Len() = %d", s.Len())
	}
}

func TestRotationConvention(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		k        int
		expected []Cell
	}{
		{"I quarter turn lies on row 2", KindI, 1, []Cell{{0, 2}, {1, 2}, {2, 2}, {3, 2}}},
		{"I half turn is column 2", KindI, 2, []Cell{{2, 0}, {2, 1}, {2, 2}, {2, 3}}},
		{"I three quarter turns lies on row 1", KindI, 3, []Cell{{0, 1}, {1, 1}, {2, 1}, {3, 1}}},
		{"O is invariant", KindO, 1, []Cell{{1, 2}, {2, 2}, {1, 3}, {2, 3}}},
		{"T quarter turn", KindT, 1, []Cell{{1, 2}, {2, 2}, {3, 2}, {2, 3}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.kind.Shape().Rotated(tc.k).Cells()
			if !slices.Equal(got, tc.expected) {
				t.Errorf("Rotated(%d) = %v, expected %v", tc.k, got, tc.expected)
			}
			if offsets := tc.kind.Offsets(tc.k); !slices.Equal(offsets, tc.expected) {
				t.Errorf("Offsets(%d) = %v, expected %v", tc.k, offsets, tc.expected)
			}
		})
	}
}

func TestCatalogOffsetsStayInPieceBox(t *testing.T) {
	for _, k := range Kinds {
		for r := 0; r < 4; r++ {
			offsets := k.Offsets(r)
			if len(offsets) != 4 {
				t.Fatalf("%v r=%d has %d cells, expected 4", k, r, len(offsets))
			}
			for _, c := range offsets {
				if c.X < 0 || c.X > 3 || c.Y < 0 || c.Y > 3 {
					t.Errorf("%v r=%d cell %v outside the 4x4 box", k, r, c)
				}
			}
		}
	}
}

func TestKindString(t *testing.T) {
	var got string
	for _, k := range Kinds {
		got += k.String()
	}
	if got != "IJZOTSL" {
		t.Errorf("kind letters = %q, expected %q", got, "IJZOTSL")
	}
	if Kind(9).String() != "?" {
		t.Errorf("Kind(9).String() = %q, expected %q", Kind(9).String(), "?")
	}
}
