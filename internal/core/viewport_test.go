package core

import (
	"math"
	"testing"
)

func TestViewportToCell(t *testing.T) {
	// 800x600 world into 80x20 cells starting at row 1
	v := NewViewport(800, 600, NewRect(0, 1, 80, 20))

	tests := []struct {
		name   string
		x, y   float64
		cx, cy int
		inside bool
	}{
		{"origin", 0, 0, 0, 1, true},
		{"center", 400, 300, 40, 11, true},
		{"last cell", 799, 599, 79, 20, true},
		{"right edge exclusive", 800, 10, 80, 1, false},
		{"negative", -5, 10, -1, 1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cx, cy, ok := v.ToCell(tc.x, tc.y)
			if cx != tc.cx || cy != tc.cy || ok != tc.inside {
				t.Errorf("ToCell(%v, %v) = (%d, %d, %v), expected (%d, %d, %v)",
					tc.x, tc.y, cx, cy, ok, tc.cx, tc.cy, tc.inside)
			}
		})
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := NewViewport(800, 600, NewRect(2, 1, 40, 30))

	for _, c := range []CellPoint{{2, 1}, {10, 10}, {41, 30}} {
		x, y := v.ToWorld(c.X, c.Y)
		cx, cy, ok := v.ToCell(x, y)
		if !ok || cx != c.X || cy != c.Y {
			t.Errorf("cell %v -> world (%v, %v) -> cell (%d, %d, %v)", c, x, y, cx, cy, ok)
		}
	}
}

func TestViewportCellSize(t *testing.T) {
	v := NewViewport(800, 600, NewRect(0, 0, 80, 30))

	if math.Abs(v.CellW()-10) > 1e-9 {
		t.Errorf("CellW() = %v, expected 10", v.CellW())
	}
	if math.Abs(v.CellH()-20) > 1e-9 {
		t.Errorf("CellH() = %v, expected 20", v.CellH())
	}
	if v.CellSpan(25) != 3 {
		t.Errorf("CellSpan(25) = %d, expected 3", v.CellSpan(25))
	}

	empty := NewViewport(800, 600, NewRect(0, 0, 0, 0))
	if _, _, ok := empty.ToCell(1, 1); ok {
		t.Error("empty viewport should not contain any point")
	}
}
